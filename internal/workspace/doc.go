// Package workspace handles env-file discovery and folder navigation.
//
// A workspace is any directory the user points envdeck at. Every function
// takes the workspace root explicitly; the package keeps no current
// directory of its own. Discovery skips hidden directories and envdeck's
// own .envdeck state directory.
package workspace
