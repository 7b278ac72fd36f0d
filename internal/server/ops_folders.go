package server

import (
	"context"
	"net/http"
	"os"
	"path/filepath"

	"github.com/danielgtaylor/huma/v2"

	"github.com/PolarWolf314/envdeck/internal/configs"
	kerrors "github.com/PolarWolf314/envdeck/internal/errors"
	"github.com/PolarWolf314/envdeck/internal/workflows"
	"github.com/PolarWolf314/envdeck/internal/workspace"
)

// FolderView is one subdirectory in the folder browser.
type FolderView struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	HasEnvFiles bool   `json:"has_env_files"`
}

// FoldersListInput is the parameters for browsing folders.
type FoldersListInput struct {
	Path string `query:"path" required:"true" doc:"folder to browse"`
}

// FoldersListOutput is the result of browsing folders.
type FoldersListOutput struct {
	Body struct {
		Path    string       `json:"path" doc:"absolute path that was browsed"`
		Parent  string       `json:"parent" doc:"parent folder, for navigating up"`
		Folders []FolderView `json:"folders"`
	}
}

// RegisterFoldersList implements GET /api/folders, the folder browser.
func (x *Operations) RegisterFoldersList(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "folders-list",
		Summary:     "Browse folders",
		Method:      http.MethodGet,
		Path:        "/api/folders",
		Tags:        []string{"folders"},
	}, func(ctx context.Context, input *FoldersListInput) (*FoldersListOutput, error) {
		path, err := filepath.Abs(input.Path)
		if err != nil {
			return nil, mapError(err)
		}

		folders, err := workspace.ListFolders(path)
		if err != nil {
			return nil, mapError(err)
		}

		output := &FoldersListOutput{}
		output.Body.Path = path
		output.Body.Parent = filepath.Dir(path)
		output.Body.Folders = make([]FolderView, 0, len(folders))
		for _, f := range folders {
			output.Body.Folders = append(output.Body.Folders, FolderView{
				Name:        f.Name,
				Path:        f.Path,
				HasEnvFiles: f.HasEnvFiles,
			})
		}
		return output, nil
	})
}

// RecentListOutput is the result of listing recent folders.
type RecentListOutput struct {
	Body struct {
		Folders []string `json:"folders" doc:"most recently visited first"`
	}
}

// RegisterRecentList implements GET /api/recent.
func (x *Operations) RegisterRecentList(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "recent-list",
		Summary:     "List recent folders",
		Method:      http.MethodGet,
		Path:        "/api/recent",
		Tags:        []string{"folders"},
	}, func(ctx context.Context, input *struct{}) (*RecentListOutput, error) {
		config, err := configs.LoadUserConfig()
		if err != nil {
			return nil, mapError(err)
		}

		output := &RecentListOutput{}
		output.Body.Folders = config.RecentFolders
		if output.Body.Folders == nil {
			output.Body.Folders = []string{}
		}
		return output, nil
	})
}

// RecentTouchInput is the parameters for recording a folder visit.
type RecentTouchInput struct {
	Body struct {
		Folder string `json:"folder" doc:"folder that was opened"`
	}
}

// RegisterRecentTouch implements POST /api/recent.
func (x *Operations) RegisterRecentTouch(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "recent-touch",
		Summary:     "Record a folder visit",
		Method:      http.MethodPost,
		Path:        "/api/recent",
		Tags:        []string{"folders"},
	}, func(ctx context.Context, input *RecentTouchInput) (*RecentListOutput, error) {
		folder, err := filepath.Abs(input.Body.Folder)
		if err != nil {
			return nil, mapError(err)
		}
		if info, err := os.Stat(folder); err != nil || !info.IsDir() {
			return nil, mapError(kerrors.ErrFolderNotFound)
		}

		config, err := configs.LoadUserConfig()
		if err != nil {
			return nil, mapError(err)
		}
		if err := configs.TouchRecentFolder(config, folder); err != nil {
			return nil, mapError(err)
		}

		output := &RecentListOutput{}
		output.Body.Folders = config.RecentFolders
		return output, nil
	})
}

// AuditListInput is the parameters for reading the audit log.
type AuditListInput struct {
	Folder string `query:"folder" required:"true" doc:"workspace folder"`
	Limit  int    `query:"limit" doc:"maximum entries, newest kept"`
}

// AuditView is one audit record.
type AuditView struct {
	Timestamp string `json:"ts"`
	Operation string `json:"op"`
	File      string `json:"file,omitempty"`
	Key       string `json:"key,omitempty"`
}

// AuditListOutput is the result of reading the audit log.
type AuditListOutput struct {
	Body struct {
		Entries []AuditView `json:"entries"`
	}
}

// RegisterAuditList implements GET /api/log.
func (x *Operations) RegisterAuditList(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "audit-list",
		Summary:     "Read the audit log",
		Method:      http.MethodGet,
		Path:        "/api/log",
		Tags:        []string{"folders"},
	}, func(ctx context.Context, input *AuditListInput) (*AuditListOutput, error) {
		result, err := workflows.AuditLog(ctx, workflows.AuditLogOptions{
			Workspace: input.Folder,
			Limit:     input.Limit,
		})
		if err != nil {
			return nil, mapError(err)
		}

		output := &AuditListOutput{}
		output.Body.Entries = make([]AuditView, 0, len(result.Entries))
		for _, e := range result.Entries {
			output.Body.Entries = append(output.Body.Entries, AuditView{
				Timestamp: e.Timestamp,
				Operation: e.Operation,
				File:      e.File,
				Key:       e.Key,
			})
		}
		return output, nil
	})
}

// ContextOutput describes the server to the UI on load.
type ContextOutput struct {
	Body struct {
		DefaultFolder string `json:"default_folder" doc:"workspace the server was started in"`
		Version       string `json:"version"`
	}
}

// RegisterContext implements GET /api/context.
func (x *Operations) RegisterContext(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "context-get",
		Summary:     "Server context",
		Method:      http.MethodGet,
		Path:        "/api/context",
		Tags:        []string{"folders"},
	}, func(ctx context.Context, input *struct{}) (*ContextOutput, error) {
		output := &ContextOutput{}
		output.Body.DefaultFolder = x.server.opts.DefaultFolder
		output.Body.Version = x.server.opts.Version
		return output, nil
	})
}
