package configs

import (
	"log"
	"os"
	"path/filepath"
)

// UserSettings locates per-user envdeck state. It is resolved once at
// startup and is independent of any workspace.
type UserSettings struct {
	UserConfigsPath string
}

// WorkspaceSettings locates the envdeck state inside one workspace. It is
// always derived from an explicit workspace path; there is no ambient
// "current workspace" in the process.
type WorkspaceSettings struct {
	Root      string
	DeckDir   string
	KeyPath   string
	AuditPath string
}

// UserEnvdeckSettings holds the resolved per-user paths. Tests may swap the
// pointer to redirect config I/O into a temp directory.
var UserEnvdeckSettings *UserSettings

func init() {
	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	UserEnvdeckSettings = &UserSettings{
		UserConfigsPath: filepath.Join(configDir, "envdeck"),
	}
}

// WorkspaceSettingsFor derives the on-disk layout for a workspace rooted at
// the given path.
func WorkspaceSettingsFor(root string) WorkspaceSettings {
	deckDir := filepath.Join(root, ".envdeck")
	return WorkspaceSettings{
		Root:      root,
		DeckDir:   deckDir,
		KeyPath:   filepath.Join(deckDir, "envdeck.key"),
		AuditPath: filepath.Join(deckDir, "audit.jsonl"),
	}
}

// Initialized reports whether the workspace has an .envdeck directory.
func (ws WorkspaceSettings) Initialized() bool {
	info, err := os.Stat(ws.DeckDir)
	return err == nil && info.IsDir()
}
