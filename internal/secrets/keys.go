package secrets

import (
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"

	kerrors "github.com/PolarWolf314/envdeck/internal/errors"
)

const keyPEMType = "ENVDECK SECRET KEY"

// SaveWorkspaceKey writes the workspace key to disk as a PEM block. The
// containing directory is created if needed, and the file gets 0600 so the
// key stays private to the user.
func SaveWorkspaceKey(path string, key []byte) error {
	if len(key) != keySize {
		return fmt.Errorf("%w: expected %d bytes, got %d", kerrors.ErrInvalidKeyLength, keySize, len(key))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create key directory: %w", err)
	}

	block := &pem.Block{Type: keyPEMType, Bytes: key}
	if err := os.WriteFile(path, pem.EncodeToMemory(block), 0600); err != nil {
		return fmt.Errorf("failed to save workspace key at %s: %w", path, err)
	}
	return nil
}

// LoadWorkspaceKey reads the workspace key from disk. Returns
// ErrKeyNotFound when the key file does not exist.
func LoadWorkspaceKey(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrKeyNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read workspace key at %s: %w", path, err)
	}

	block, _ := pem.Decode(data)
	if block == nil || block.Type != keyPEMType {
		return nil, fmt.Errorf("failed to decode PEM block containing workspace key")
	}
	if len(block.Bytes) != keySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", kerrors.ErrInvalidKeyLength, keySize, len(block.Bytes))
	}
	return block.Bytes, nil
}

// KeyFilePermissionsOK reports whether the key file has strict (0600)
// permissions. Callers warn when it does not, but do not enforce it to
// avoid breaking workflows.
func KeyFilePermissionsOK(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.Mode().Perm() == 0600, nil
}
