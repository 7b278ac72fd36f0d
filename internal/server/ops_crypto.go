package server

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/PolarWolf314/envdeck/internal/workflows"
)

// EntryCryptoInput is the parameters for sealing or opening one entry.
type EntryCryptoInput struct {
	Key  string `path:"key" doc:"entry to operate on"`
	Body struct {
		Folder string `json:"folder" doc:"workspace folder"`
		File   string `json:"file" doc:"env file, relative to the folder"`
	}
}

// RegisterEntryEncrypt implements POST /api/entries/{key}/encrypt.
func (x *Operations) RegisterEntryEncrypt(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "entry-encrypt",
		Summary:     "Encrypt an entry's value",
		Method:      http.MethodPost,
		Path:        "/api/entries/{key}/encrypt",
		Tags:        []string{"crypto"},
	}, func(ctx context.Context, input *EntryCryptoInput) (*EntryMutationOutput, error) {
		result, err := workflows.EncryptEntry(ctx, workflows.EncryptEntryOptions{
			Workspace: input.Body.Folder,
			File:      input.Body.File,
			Key:       input.Key,
		})
		if err != nil {
			return nil, mapError(err)
		}

		output := &EntryMutationOutput{}
		output.Body.File = result.File
		output.Body.Key = result.Key
		output.Body.Encrypted = true
		return output, nil
	})
}

// RegisterEntryDecrypt implements POST /api/entries/{key}/decrypt.
func (x *Operations) RegisterEntryDecrypt(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "entry-decrypt",
		Summary:     "Decrypt an entry's value",
		Method:      http.MethodPost,
		Path:        "/api/entries/{key}/decrypt",
		Tags:        []string{"crypto"},
	}, func(ctx context.Context, input *EntryCryptoInput) (*EntryMutationOutput, error) {
		result, err := workflows.DecryptEntry(ctx, workflows.DecryptEntryOptions{
			Workspace: input.Body.Folder,
			File:      input.Body.File,
			Key:       input.Key,
		})
		if err != nil {
			return nil, mapError(err)
		}

		output := &EntryMutationOutput{}
		output.Body.File = result.File
		output.Body.Key = result.Key
		output.Body.Encrypted = false
		return output, nil
	})
}
