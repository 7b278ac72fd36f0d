package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kerrors "github.com/PolarWolf314/envdeck/internal/errors"

	"github.com/bmatcuk/doublestar/v4"
)

// deckDirName is envdeck's own state directory, excluded from discovery.
const deckDirName = ".envdeck"

// IsEnvFile reports whether the path names a dotenv-style file
// (.env, .env.local, service.env, ...).
func IsEnvFile(path string) bool {
	base := filepath.Base(path)
	return strings.Contains(base, ".env") && base != deckDirName
}

// FindEnvFiles walks root and returns every env file under it, in walk
// order. envdeck's own .envdeck directory and hidden directories (.git and
// friends) are never descended into.
func FindEnvFiles(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if IsEnvFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	return files, nil
}

// ResolveFiles takes user-provided paths/globs and returns matching env
// files, deduplicated. If patterns is empty, returns nil (caller should use
// default discovery).
func ResolveFiles(patterns []string, root string) ([]string, error) {
	if len(patterns) == 0 {
		return nil, nil
	}

	var files []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		resolved, err := resolvePattern(pattern, root)
		if err != nil {
			return nil, err
		}
		for _, f := range resolved {
			if !seen[f] {
				seen[f] = true
				files = append(files, f)
			}
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrNoFilesFound, strings.Join(patterns, ", "))
	}

	return files, nil
}

func resolvePattern(pattern string, root string) ([]string, error) {
	absPattern := pattern
	if !filepath.IsAbs(pattern) {
		absPattern = filepath.Join(root, pattern)
	}

	// A directory means "every env file under it".
	if info, err := os.Stat(absPattern); err == nil && info.IsDir() {
		return FindEnvFiles(absPattern)
	}

	if strings.ContainsAny(pattern, "*?[") {
		return expandGlob(absPattern)
	}

	// Literal file path.
	if _, err := os.Stat(absPattern); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrFileNotFound, pattern)
	}
	if !IsEnvFile(absPattern) {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrNotEnvFile, pattern)
	}

	return []string{absPattern}, nil
}

func expandGlob(absPattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(absPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", absPattern, err)
	}

	var filtered []string
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.IsDir() {
			continue
		}
		if inDeckDir(m) {
			continue
		}
		if IsEnvFile(m) {
			filtered = append(filtered, m)
		}
	}

	return filtered, nil
}

func inDeckDir(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == deckDirName {
			return true
		}
	}
	return false
}
