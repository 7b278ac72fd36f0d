// Package workflows implements envdeck's user-visible operations,
// independent of any front end. The cobra CLI and the HTTP API both call
// into this package.
//
// Each workflow is a function taking a context and an Options struct and
// returning a Result struct. Every operation is a full load, mutate,
// persist cycle over the file on disk: no document is cached between
// calls, and a failed mutation leaves the file untouched because the store
// validates before modifying. Workflows always receive the workspace path
// explicitly; there is no process-wide current folder.
//
// Mutating workflows append a best-effort entry to the workspace audit log.
package workflows
