// Package audit appends a JSON-lines record of mutating operations to the
// workspace's .envdeck/audit.jsonl.
//
// Auditing is best-effort: a failure to write the log never fails the
// operation being audited. Values are never logged, only operation names,
// file paths, and entry keys.
package audit
