// Package errors provides typed error values for the envdeck application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Store errors: failed entry operations (ErrDuplicateKey, ErrEntryNotFound)
//   - Workspace errors: workspace state and discovery (ErrWorkspaceNotInitialized)
//   - Crypto errors: value encryption failures (ErrDecryptFailed)
//
// # Usage
//
// Return errors from internal packages:
//
//	if _, ok := doc.Get(key); ok {
//	    return fmt.Errorf("%w: %s", errors.ErrDuplicateKey, key)
//	}
//
// Handle errors in the CLI or HTTP layer:
//
//	err := workflows.AddEntry(ctx, opts)
//	if errors.Is(err, kerrors.ErrDuplicateKey) {
//	    // Map to a 409 response
//	}
package errors
