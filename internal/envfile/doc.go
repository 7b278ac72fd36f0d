// Package envfile provides a structure-preserving store for dotenv files.
//
// Unlike map-based dotenv loaders, the store keeps every line of the file:
// blanks, comments, and even unrecognized junk survive a parse/serialize
// round trip byte-for-byte, and entries keep their position across edits.
// Only the entry lines being mutated are ever rewritten.
//
// # Line Classification
//
// Each line of input becomes exactly one typed line:
//
//   - blank: empty or whitespace-only
//   - comment: first non-whitespace character is '#'
//   - entry: contains '='; split at the first one only
//   - other: anything else, kept verbatim
//
// Parsing never fails. A malformed file may contain duplicate keys; the
// first occurrence wins for lookups, and the mutators enforce uniqueness
// going forward.
//
// # Quoting
//
// Parsing strips one pair of fully-wrapping single or double quotes from a
// value. Serialization re-quotes with double quotes only, when the value
// contains a space, '#', newline, or either quote character. A previously
// single-quoted value therefore normalizes to double-quoted (or unquoted)
// form on its first re-save.
//
// # Lifecycle
//
// Documents are not cached: every edit is load, mutate, persist. Two
// concurrent edits of the same file are last-writer-wins, an accepted
// limitation of a single-user local tool.
package envfile
