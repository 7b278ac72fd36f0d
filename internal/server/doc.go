// Package server implements envdeck's local web UI: a huma-described JSON
// API under /api and an embedded single-page editor at /.
//
// Every API operation names its workspace folder explicitly in the request;
// the server keeps no current-directory state, so nothing one browser tab
// does can redirect another. The API carries no authentication and binds to
// localhost by default.
//
// Workflow errors map onto HTTP statuses: duplicates and double-seals are
// 409, missing entries/files/keys are 404, malformed keys and paths are
// 422, and I/O failures are 500. The error message travels verbatim in the
// response body.
package server
