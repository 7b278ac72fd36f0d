package workflows

import (
	"context"

	"github.com/PolarWolf314/envdeck/internal/audit"
	"github.com/PolarWolf314/envdeck/internal/configs"
)

// AuditLogOptions configures the audit log workflow.
type AuditLogOptions struct {
	// Workspace is the folder whose audit log to read.
	Workspace string

	// Limit caps the number of entries returned, newest last. Zero means
	// all entries.
	Limit int
}

// AuditLogResult contains the outcome of an audit log read.
type AuditLogResult struct {
	// Workspace is the absolute workspace root.
	Workspace string

	// Entries are the audit records in append order.
	Entries []audit.Entry
}

// AuditLog reads the workspace's audit log. A missing log yields an empty
// result, not an error.
func AuditLog(ctx context.Context, opts AuditLogOptions) (*AuditLogResult, error) {
	root, err := workspaceRoot(opts.Workspace)
	if err != nil {
		return nil, err
	}

	entries, err := audit.ReadEntries(configs.WorkspaceSettingsFor(root))
	if err != nil {
		return nil, err
	}
	if opts.Limit > 0 && len(entries) > opts.Limit {
		entries = entries[len(entries)-opts.Limit:]
	}

	return &AuditLogResult{Workspace: root, Entries: entries}, nil
}
