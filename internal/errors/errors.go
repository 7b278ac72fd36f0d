package errors

import "errors"

// Store errors indicate a failed entry operation on an env file.
var (
	// ErrDuplicateKey indicates an add was attempted for a key that already exists.
	ErrDuplicateKey = errors.New("key already exists")

	// ErrEntryNotFound indicates an update or delete was attempted for an absent key.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrInvalidKeyName indicates the key does not match the accepted key syntax.
	ErrInvalidKeyName = errors.New("invalid key name")
)

// Workspace errors indicate issues with workspace state or file discovery.
var (
	// ErrWorkspaceNotInitialized indicates the workspace has no .envdeck directory.
	ErrWorkspaceNotInitialized = errors.New("workspace has not been initialized")

	// ErrWorkspaceAlreadyInitialized indicates the workspace already has a key.
	ErrWorkspaceAlreadyInitialized = errors.New("workspace has already been initialized")

	// ErrNoFilesFound indicates no env files matched the provided patterns.
	ErrNoFilesFound = errors.New("no matching env files found")

	// ErrFileNotFound indicates a specific env file could not be located.
	ErrFileNotFound = errors.New("env file not found")

	// ErrNotEnvFile indicates the file is not a dotenv-style file.
	ErrNotEnvFile = errors.New("not an env file")

	// ErrOutsideWorkspace indicates a path escapes the workspace root.
	ErrOutsideWorkspace = errors.New("path is outside the workspace")

	// ErrFolderNotFound indicates a folder could not be located.
	ErrFolderNotFound = errors.New("folder not found")
)

// Cryptographic errors indicate failures during value encryption or decryption.
var (
	// ErrKeyNotFound indicates the workspace key file could not be located.
	ErrKeyNotFound = errors.New("workspace key not found")

	// ErrInvalidKeyLength indicates the workspace key has an unexpected length.
	ErrInvalidKeyLength = errors.New("invalid workspace key length")

	// ErrDecryptFailed indicates a value could not be decrypted.
	ErrDecryptFailed = errors.New("failed to decrypt value")

	// ErrValueAlreadyEncrypted indicates an encrypt was attempted on a sealed value.
	ErrValueAlreadyEncrypted = errors.New("value is already encrypted")

	// ErrValueNotEncrypted indicates a decrypt was attempted on a plaintext value.
	ErrValueNotEncrypted = errors.New("value is not encrypted")
)
