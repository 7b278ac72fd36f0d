package workspace

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	kerrors "github.com/PolarWolf314/envdeck/internal/errors"
)

// writeTestFile is a helper to write test files with 0644 permissions.
func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create test dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
}

func TestIsEnvFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{".env", true},
		{".env.local", true},
		{"service.env", true},
		{"a/b/.env.production", true},
		{"README.md", false},
		{"environment.txt", false},
		{".envdeck", false},
	}
	for _, tt := range tests {
		if got := IsEnvFile(tt.path); got != tt.want {
			t.Errorf("IsEnvFile(%q) = %t, want %t", tt.path, got, tt.want)
		}
	}
}

func TestFindEnvFiles(t *testing.T) {
	tmpDir := t.TempDir()
	writeTestFile(t, filepath.Join(tmpDir, ".env"), "A=1")
	writeTestFile(t, filepath.Join(tmpDir, "api", ".env.local"), "B=2")
	writeTestFile(t, filepath.Join(tmpDir, "api", "notes.txt"), "nope")
	// Hidden directories and .envdeck state must be skipped.
	writeTestFile(t, filepath.Join(tmpDir, ".git", ".env"), "C=3")
	writeTestFile(t, filepath.Join(tmpDir, ".envdeck", "backup.env"), "D=4")

	files, err := FindEnvFiles(tmpDir)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("Expected 2 files, got %d: %v", len(files), files)
	}
}

func TestResolveFilesEmptyPatterns(t *testing.T) {
	files, err := ResolveFiles(nil, t.TempDir())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if files != nil {
		t.Errorf("Expected nil for empty patterns, got: %v", files)
	}
}

func TestResolveFilesLiteralAndGlob(t *testing.T) {
	tmpDir := t.TempDir()
	writeTestFile(t, filepath.Join(tmpDir, ".env"), "A=1")
	writeTestFile(t, filepath.Join(tmpDir, "services", "api", ".env"), "B=2")
	writeTestFile(t, filepath.Join(tmpDir, "services", "web", ".env"), "C=3")

	// Literal path.
	files, err := ResolveFiles([]string{".env"}, tmpDir)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(files) != 1 || files[0] != filepath.Join(tmpDir, ".env") {
		t.Errorf("Unexpected literal resolution: %v", files)
	}

	// Doublestar glob, deduplicated against the literal.
	files, err = ResolveFiles([]string{".env", "services/**/.env"}, tmpDir)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(files) != 3 {
		t.Errorf("Expected 3 deduplicated files, got %d: %v", len(files), files)
	}
}

func TestResolveFilesErrors(t *testing.T) {
	tmpDir := t.TempDir()
	writeTestFile(t, filepath.Join(tmpDir, "README.md"), "hi")

	if _, err := ResolveFiles([]string{"missing.env"}, tmpDir); !errors.Is(err, kerrors.ErrFileNotFound) {
		t.Errorf("Expected ErrFileNotFound, got: %v", err)
	}
	if _, err := ResolveFiles([]string{"README.md"}, tmpDir); !errors.Is(err, kerrors.ErrNotEnvFile) {
		t.Errorf("Expected ErrNotEnvFile, got: %v", err)
	}
	if _, err := ResolveFiles([]string{"*.env"}, tmpDir); !errors.Is(err, kerrors.ErrNoFilesFound) {
		t.Errorf("Expected ErrNoFilesFound, got: %v", err)
	}
}

func TestListFolders(t *testing.T) {
	tmpDir := t.TempDir()
	writeTestFile(t, filepath.Join(tmpDir, "api", ".env"), "A=1")
	writeTestFile(t, filepath.Join(tmpDir, "docs", "readme.md"), "hi")
	if err := os.MkdirAll(filepath.Join(tmpDir, ".envdeck"), 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}

	folders, err := ListFolders(tmpDir)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(folders) != 2 {
		t.Fatalf("Expected 2 folders (.envdeck hidden), got %d: %v", len(folders), folders)
	}
	if folders[0].Name != "api" || !folders[0].HasEnvFiles {
		t.Errorf("Expected api flagged with env files, got %+v", folders[0])
	}
	if folders[1].Name != "docs" || folders[1].HasEnvFiles {
		t.Errorf("Expected docs without env files, got %+v", folders[1])
	}
}

func TestListFoldersMissing(t *testing.T) {
	if _, err := ListFolders(filepath.Join(t.TempDir(), "nope")); !errors.Is(err, kerrors.ErrFolderNotFound) {
		t.Errorf("Expected ErrFolderNotFound, got: %v", err)
	}
}

func TestResolveWithin(t *testing.T) {
	root := t.TempDir()

	path, err := ResolveWithin(root, ".env")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if path != filepath.Join(root, ".env") {
		t.Errorf("Unexpected resolution: %s", path)
	}

	if _, err := ResolveWithin(root, "../outside/.env"); !errors.Is(err, kerrors.ErrOutsideWorkspace) {
		t.Errorf("Expected ErrOutsideWorkspace, got: %v", err)
	}
	if _, err := ResolveWithin(root, "api/../../escape.env"); !errors.Is(err, kerrors.ErrOutsideWorkspace) {
		t.Errorf("Expected ErrOutsideWorkspace, got: %v", err)
	}
	if _, err := ResolveWithin(root, "/etc/passwd"); !errors.Is(err, kerrors.ErrOutsideWorkspace) {
		t.Errorf("Expected ErrOutsideWorkspace, got: %v", err)
	}
}
