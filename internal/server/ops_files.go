package server

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/PolarWolf314/envdeck/internal/workflows"
)

// FileSummary is one env file in a listing.
type FileSummary struct {
	Path      string `json:"path" doc:"path relative to the workspace root"`
	Entries   int    `json:"entries" doc:"number of key-value entries"`
	Encrypted int    `json:"encrypted" doc:"number of entries with sealed values"`
}

// FilesListInput is the parameters for listing a workspace's env files.
type FilesListInput struct {
	Folder string `query:"folder" required:"true" doc:"workspace folder to scan"`
}

// FilesListOutput is the result of listing env files.
type FilesListOutput struct {
	Body struct {
		Workspace  string        `json:"workspace" doc:"absolute workspace root"`
		KeyPresent bool          `json:"key_present" doc:"whether the workspace has an encryption key"`
		Files      []FileSummary `json:"files"`
	}
}

// RegisterFilesList implements GET /api/files.
func (x *Operations) RegisterFilesList(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "files-list",
		Summary:     "List env files",
		Method:      http.MethodGet,
		Path:        "/api/files",
		Tags:        []string{"files"},
	}, func(ctx context.Context, input *FilesListInput) (*FilesListOutput, error) {
		result, err := workflows.ListFiles(ctx, workflows.ListFilesOptions{Workspace: input.Folder})
		if err != nil {
			return nil, mapError(err)
		}

		output := &FilesListOutput{}
		output.Body.Workspace = result.Workspace
		output.Body.KeyPresent = result.KeyPresent
		output.Body.Files = make([]FileSummary, 0, len(result.Files))
		for _, f := range result.Files {
			output.Body.Files = append(output.Body.Files, FileSummary{
				Path:      f.Path,
				Entries:   f.Entries,
				Encrypted: f.Encrypted,
			})
		}
		return output, nil
	})
}
