package audit

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"time"

	"github.com/PolarWolf314/envdeck/internal/configs"
)

// Entry represents a single audit log entry.
type Entry struct {
	Timestamp string `json:"ts"` // RFC3339 with microseconds.
	Operation string `json:"op"` // Operation name.

	// Optional fields depending on operation.
	File  string `json:"file,omitempty"`  // Env file the operation touched.
	Key   string `json:"key,omitempty"`   // Entry key for entry operations.
	Count int    `json:"count,omitempty"` // For list/init style operations.
}

// Log appends an entry to the workspace audit log. If logging fails it
// returns silently: operations must not fail just because auditing did.
func Log(ws configs.WorkspaceSettings, entry Entry) {
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	if !ws.Initialized() {
		// Workspace not initialized, skip logging.
		return
	}

	// #nosec G306 -- audit log is informational, not secret.
	f, err := os.OpenFile(ws.AuditPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// ReadEntries reads all entries from the workspace audit log. Returns an
// empty slice if the log doesn't exist.
func ReadEntries(ws configs.WorkspaceSettings) ([]Entry, error) {
	data, err := os.ReadFile(ws.AuditPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into audit entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
