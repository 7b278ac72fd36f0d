package server

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"

	kerrors "github.com/PolarWolf314/envdeck/internal/errors"
)

// NewHuma creates the huma.API the entry and folder operations register on.
func NewHuma(router *ServeMux, name, version, description string) huma.API {
	config := huma.DefaultConfig(name, version)
	config.Info.Description = description
	return humago.New(router, config)
}

// mapError translates workflow sentinel errors into HTTP status errors.
// Every failure is terminal for its request: the message is reported
// verbatim as the response payload, and nothing is retried.
func mapError(err error) error {
	switch {
	case errors.Is(err, kerrors.ErrDuplicateKey),
		errors.Is(err, kerrors.ErrValueAlreadyEncrypted),
		errors.Is(err, kerrors.ErrWorkspaceAlreadyInitialized):
		return huma.Error409Conflict(err.Error())
	case errors.Is(err, kerrors.ErrEntryNotFound),
		errors.Is(err, kerrors.ErrFileNotFound),
		errors.Is(err, kerrors.ErrFolderNotFound),
		errors.Is(err, kerrors.ErrKeyNotFound),
		errors.Is(err, kerrors.ErrNoFilesFound):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, kerrors.ErrInvalidKeyName),
		errors.Is(err, kerrors.ErrNotEnvFile),
		errors.Is(err, kerrors.ErrOutsideWorkspace),
		errors.Is(err, kerrors.ErrValueNotEncrypted),
		errors.Is(err, kerrors.ErrDecryptFailed):
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		return huma.Error500InternalServerError(err.Error())
	}
}
