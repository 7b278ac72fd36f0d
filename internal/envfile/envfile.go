package envfile

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	kerrors "github.com/PolarWolf314/envdeck/internal/errors"
)

// EncryptedPrefix marks a value as sealed by the secrets package.
const EncryptedPrefix = "encrypted:"

// Kind classifies a single line of a dotenv document.
type Kind int

const (
	// LineBlank is a line that is empty or whitespace-only.
	LineBlank Kind = iota
	// LineComment is a line whose first non-whitespace character is '#'.
	LineComment
	// LineEntry is a KEY=value assignment.
	LineEntry
	// LineOther is a non-blank, non-comment line with no '=' in it.
	// It is kept verbatim so malformed files survive a round trip.
	LineOther
)

// Line is one line of a dotenv document. For LineEntry, Key and Value hold
// the parsed form and Raw caches the last-serialized text; for every other
// kind Raw is the original text, stored and reproduced verbatim.
type Line struct {
	Kind      Kind
	Key       string
	Value     string
	Encrypted bool
	Raw       string
}

// Document is an ordered dotenv file. Order is significant: edits preserve
// the position of every line, and Serialize reproduces non-entry lines
// byte-for-byte.
type Document struct {
	Path  string
	Lines []Line
}

// Entry is the projection of a LineEntry exposed to callers.
type Entry struct {
	Key       string
	Value     string
	Encrypted bool
}

var keyPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// IsValidKey reports whether key is an acceptable env variable name.
// Callers validate before mutating; the mutators themselves only check
// duplicate/not-found conditions.
func IsValidKey(key string) bool {
	return keyPattern.MatchString(key)
}

// IsEncryptedValue reports whether a stored value carries the encrypted
// marker prefix. This is the only crypto knowledge the store has.
func IsEncryptedValue(value string) bool {
	return strings.HasPrefix(value, EncryptedPrefix)
}

// Parse splits text on line feeds and classifies every line. A trailing
// line feed produces a trailing blank line, which is kept so the document
// round-trips. Parse never fails: every input line maps to exactly one
// line kind.
func Parse(text string) *Document {
	raw := strings.Split(text, "\n")
	doc := &Document{Lines: make([]Line, 0, len(raw))}
	for _, r := range raw {
		doc.Lines = append(doc.Lines, classify(r))
	}
	return doc
}

func classify(raw string) Line {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Line{Kind: LineBlank, Raw: raw}
	}
	if strings.HasPrefix(trimmed, "#") {
		return Line{Kind: LineComment, Raw: raw}
	}
	key, rest, found := strings.Cut(raw, "=")
	if !found {
		return Line{Kind: LineOther, Raw: raw}
	}
	// Values may themselves contain '=', so only the first one splits.
	value := unquote(strings.TrimSpace(rest))
	return Line{
		Kind:      LineEntry,
		Key:       strings.TrimSpace(key),
		Value:     value,
		Encrypted: IsEncryptedValue(value),
		Raw:       raw,
	}
}

// unquote strips exactly one pair of fully-wrapping matching quotes.
// Interior content is not unescaped.
func unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// Entries returns every entry line in document order, duplicates included.
func (d *Document) Entries() []Entry {
	var entries []Entry
	for _, ln := range d.Lines {
		if ln.Kind == LineEntry {
			entries = append(entries, Entry{Key: ln.Key, Value: ln.Value, Encrypted: ln.Encrypted})
		}
	}
	return entries
}

// Get returns the first entry with the given key. In a malformed file with
// duplicate keys the first occurrence is authoritative.
func (d *Document) Get(key string) (Entry, bool) {
	for _, ln := range d.Lines {
		if ln.Kind == LineEntry && ln.Key == key {
			return Entry{Key: ln.Key, Value: ln.Value, Encrypted: ln.Encrypted}, true
		}
	}
	return Entry{}, false
}

// Add appends a new entry at the end of the document. New keys are always
// appended, never inserted in sorted position, so the file keeps the layout
// the user knows. Returns ErrDuplicateKey if the key exists anywhere in the
// document.
func (d *Document) Add(key, value string) error {
	if _, ok := d.Get(key); ok {
		return fmt.Errorf("%w: %s", kerrors.ErrDuplicateKey, key)
	}
	d.Lines = append(d.Lines, Line{
		Kind:      LineEntry,
		Key:       key,
		Value:     value,
		Encrypted: IsEncryptedValue(value),
		Raw:       formatEntry(key, value),
	})
	return nil
}

// Update replaces the value of the first entry with the given key, in
// place. Returns ErrEntryNotFound if the key is absent; the document is
// unchanged on failure.
func (d *Document) Update(key, value string) error {
	for i := range d.Lines {
		if d.Lines[i].Kind == LineEntry && d.Lines[i].Key == key {
			d.Lines[i].Value = value
			d.Lines[i].Encrypted = IsEncryptedValue(value)
			d.Lines[i].Raw = formatEntry(key, value)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", kerrors.ErrEntryNotFound, key)
}

// Delete removes the first entry with the given key. Surrounding blank and
// comment lines are untouched, even when a comment referred to the deleted
// key. Returns ErrEntryNotFound if the key is absent.
func (d *Document) Delete(key string) error {
	for i := range d.Lines {
		if d.Lines[i].Kind == LineEntry && d.Lines[i].Key == key {
			d.Lines = append(d.Lines[:i], d.Lines[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", kerrors.ErrEntryNotFound, key)
}

// Serialize renders the document back to text. Non-entry lines are emitted
// verbatim; entry lines are recomputed from their current key and value.
// Lines are joined with a single line feed, so a trailing blank line is the
// only source of a trailing newline.
func (d *Document) Serialize() string {
	parts := make([]string, len(d.Lines))
	for i, ln := range d.Lines {
		if ln.Kind == LineEntry {
			parts[i] = formatEntry(ln.Key, ln.Value)
		} else {
			parts[i] = ln.Raw
		}
	}
	return strings.Join(parts, "\n")
}

// formatEntry renders KEY=value, double-quoting when the value needs it.
// Parsing accepts single or double quotes but serialization only ever emits
// double quotes, so an edited single-quoted value normalizes on first save.
// That asymmetry is long-standing observed behavior, kept as is.
func formatEntry(key, value string) string {
	if strings.ContainsAny(value, " #\n\"'") {
		return key + `="` + strings.ReplaceAll(value, `"`, `\"`) + `"`
	}
	return key + "=" + value
}

// Load reads and parses the env file at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read env file at %s: %w", path, err)
	}
	doc := Parse(string(data))
	doc.Path = path
	return doc, nil
}

// Save serializes the document and writes it back to its source path.
func (d *Document) Save() error {
	if d.Path == "" {
		return fmt.Errorf("document has no source path")
	}
	// #nosec G306 -- env files stay editable by the user.
	if err := os.WriteFile(d.Path, []byte(d.Serialize()), 0644); err != nil {
		return fmt.Errorf("failed to write env file at %s: %w", d.Path, err)
	}
	return nil
}
