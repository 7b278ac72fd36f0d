// Package configs manages envdeck's persistent configuration.
//
// Two kinds of state exist:
//
//   - User config: a TOML file under the user's config directory holding
//     the install UUID, the web UI listen address, and the recent-folders
//     list shown by the folder browser.
//   - Workspace settings: the derived layout of a workspace's .envdeck
//     directory (key file, audit log). These are computed from an explicit
//     workspace path on every call; the process keeps no ambient current
//     workspace, so concurrent sessions cannot interfere through globals.
package configs
