package server

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/PolarWolf314/envdeck/internal/workflows"
)

// EntryView is one entry as returned to the web UI. Sealed values are
// withheld unless the listing was requested with reveal=true.
type EntryView struct {
	Key       string `json:"key"`
	Value     string `json:"value"`
	Encrypted bool   `json:"encrypted"`
}

// EntriesListInput is the parameters for listing a file's entries.
type EntriesListInput struct {
	Folder string `query:"folder" required:"true" doc:"workspace folder"`
	File   string `query:"file" required:"true" doc:"env file, relative to the folder"`
	Reveal bool   `query:"reveal" doc:"decrypt sealed values for display (requires the workspace key)"`
}

// EntriesListOutput is the result of listing entries.
type EntriesListOutput struct {
	Body struct {
		File     string      `json:"file" doc:"resolved file path"`
		Revealed bool        `json:"revealed"`
		Entries  []EntryView `json:"entries"`
	}
}

// RegisterEntriesList implements GET /api/entries.
func (x *Operations) RegisterEntriesList(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "entries-list",
		Summary:     "List entries",
		Method:      http.MethodGet,
		Path:        "/api/entries",
		Tags:        []string{"entries"},
	}, func(ctx context.Context, input *EntriesListInput) (*EntriesListOutput, error) {
		result, err := workflows.ListEntries(ctx, workflows.ListEntriesOptions{
			Workspace: input.Folder,
			File:      input.File,
			Reveal:    input.Reveal,
		})
		if err != nil {
			return nil, mapError(err)
		}

		output := &EntriesListOutput{}
		output.Body.File = result.File
		output.Body.Revealed = result.Revealed
		output.Body.Entries = make([]EntryView, 0, len(result.Entries))
		for _, e := range result.Entries {
			output.Body.Entries = append(output.Body.Entries, EntryView{
				Key:       e.Key,
				Value:     e.Value,
				Encrypted: e.Encrypted,
			})
		}
		return output, nil
	})
}

// EntryAddInput is the parameters for adding an entry.
type EntryAddInput struct {
	Body struct {
		Folder string `json:"folder" doc:"workspace folder"`
		File   string `json:"file" doc:"env file, relative to the folder"`
		Key    string `json:"key"`
		Value  string `json:"value,omitempty"`
	}
}

// EntryMutationOutput is the result of an entry mutation.
type EntryMutationOutput struct {
	Body struct {
		File      string `json:"file" doc:"resolved file path"`
		Key       string `json:"key"`
		Encrypted bool   `json:"encrypted"`
	}
}

// RegisterEntryAdd implements POST /api/entries.
func (x *Operations) RegisterEntryAdd(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "entry-add",
		Summary:       "Add an entry",
		Method:        http.MethodPost,
		Path:          "/api/entries",
		Tags:          []string{"entries"},
		DefaultStatus: http.StatusCreated,
	}, func(ctx context.Context, input *EntryAddInput) (*EntryMutationOutput, error) {
		result, err := workflows.AddEntry(ctx, workflows.AddEntryOptions{
			Workspace: input.Body.Folder,
			File:      input.Body.File,
			Key:       input.Body.Key,
			Value:     input.Body.Value,
		})
		if err != nil {
			return nil, mapError(err)
		}

		output := &EntryMutationOutput{}
		output.Body.File = result.File
		output.Body.Key = result.Key
		output.Body.Encrypted = result.Encrypted
		return output, nil
	})
}

// EntryUpdateInput is the parameters for updating an entry's value.
type EntryUpdateInput struct {
	Key  string `path:"key" doc:"entry to update"`
	Body struct {
		Folder string `json:"folder" doc:"workspace folder"`
		File   string `json:"file" doc:"env file, relative to the folder"`
		Value  string `json:"value,omitempty"`
	}
}

// RegisterEntryUpdate implements PUT /api/entries/{key}.
func (x *Operations) RegisterEntryUpdate(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "entry-update",
		Summary:     "Update an entry",
		Method:      http.MethodPut,
		Path:        "/api/entries/{key}",
		Tags:        []string{"entries"},
	}, func(ctx context.Context, input *EntryUpdateInput) (*EntryMutationOutput, error) {
		result, err := workflows.UpdateEntry(ctx, workflows.UpdateEntryOptions{
			Workspace: input.Body.Folder,
			File:      input.Body.File,
			Key:       input.Key,
			Value:     input.Body.Value,
		})
		if err != nil {
			return nil, mapError(err)
		}

		output := &EntryMutationOutput{}
		output.Body.File = result.File
		output.Body.Key = result.Key
		output.Body.Encrypted = result.Encrypted
		return output, nil
	})
}

// EntryDeleteInput is the parameters for deleting an entry.
type EntryDeleteInput struct {
	Key    string `path:"key" doc:"entry to delete"`
	Folder string `query:"folder" required:"true" doc:"workspace folder"`
	File   string `query:"file" required:"true" doc:"env file, relative to the folder"`
}

// EntryDeleteOutput is the result of deleting an entry.
type EntryDeleteOutput struct {
	Body struct {
		File string `json:"file" doc:"resolved file path"`
		Key  string `json:"key"`
	}
}

// RegisterEntryDelete implements DELETE /api/entries/{key}.
func (x *Operations) RegisterEntryDelete(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "entry-delete",
		Summary:     "Delete an entry",
		Method:      http.MethodDelete,
		Path:        "/api/entries/{key}",
		Tags:        []string{"entries"},
	}, func(ctx context.Context, input *EntryDeleteInput) (*EntryDeleteOutput, error) {
		result, err := workflows.DeleteEntry(ctx, workflows.DeleteEntryOptions{
			Workspace: input.Folder,
			File:      input.File,
			Key:       input.Key,
		})
		if err != nil {
			return nil, mapError(err)
		}

		output := &EntryDeleteOutput{}
		output.Body.File = result.File
		output.Body.Key = result.Key
		return output, nil
	})
}
