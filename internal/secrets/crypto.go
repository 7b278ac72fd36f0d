package secrets

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/PolarWolf314/envdeck/internal/envfile"
	kerrors "github.com/PolarWolf314/envdeck/internal/errors"

	"golang.org/x/crypto/nacl/secretbox"
)

const (
	keySize   = 32
	nonceSize = 24
)

// GenerateWorkspaceKey generates a new random 256-bit workspace key.
func GenerateWorkspaceKey() ([]byte, error) {
	key := make([]byte, keySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate workspace key: %w", err)
	}
	return key, nil
}

// EncryptValue seals a plaintext value with the workspace key and returns
// it in stored form: the encrypted marker prefix followed by the
// base64-encoded nonce and ciphertext. Sealing is non-deterministic; the
// same plaintext produces different stored values on every call.
func EncryptValue(symKey []byte, plaintext string) (string, error) {
	if len(symKey) != keySize {
		return "", fmt.Errorf("%w: expected %d bytes, got %d", kerrors.ErrInvalidKeyLength, keySize, len(symKey))
	}
	if envfile.IsEncryptedValue(plaintext) {
		return "", fmt.Errorf("%w", kerrors.ErrValueAlreadyEncrypted)
	}

	var key [keySize]byte
	copy(key[:], symKey)

	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := secretbox.Seal(nonce[:], []byte(plaintext), &nonce, &key)
	return envfile.EncryptedPrefix + base64.StdEncoding.EncodeToString(sealed), nil
}

// DecryptValue opens a stored value produced by EncryptValue and returns
// the plaintext. Returns ErrValueNotEncrypted when the value lacks the
// marker prefix and ErrDecryptFailed when the payload is malformed or was
// sealed with a different key.
func DecryptValue(symKey []byte, value string) (string, error) {
	if len(symKey) != keySize {
		return "", fmt.Errorf("%w: expected %d bytes, got %d", kerrors.ErrInvalidKeyLength, keySize, len(symKey))
	}
	if !envfile.IsEncryptedValue(value) {
		return "", fmt.Errorf("%w", kerrors.ErrValueNotEncrypted)
	}

	payload := strings.TrimPrefix(value, envfile.EncryptedPrefix)
	sealed, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", kerrors.ErrDecryptFailed, err)
	}
	if len(sealed) <= nonceSize {
		return "", fmt.Errorf("%w: payload too short", kerrors.ErrDecryptFailed)
	}

	var key [keySize]byte
	copy(key[:], symKey)

	var nonce [nonceSize]byte
	copy(nonce[:], sealed[:nonceSize])

	plaintext, ok := secretbox.Open(nil, sealed[nonceSize:], &nonce, &key)
	if !ok {
		return "", fmt.Errorf("%w", kerrors.ErrDecryptFailed)
	}
	return string(plaintext), nil
}
