package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/envdeck/internal/configs"
	logger "github.com/PolarWolf314/envdeck/internal/logging"
	"github.com/PolarWolf314/envdeck/internal/workflows"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	s := New(Options{
		Addr:    "127.0.0.1:0",
		Version: "test",
		Logger:  logger.Logger{},
	})
	return s.Handler()
}

func setupWorkspace(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	content := "# service config\nAPI_URL=https://example.com\nTOKEN=abc123\n"
	if err := os.WriteFile(filepath.Join(root, ".env"), []byte(content), 0o644); err != nil {
		t.Fatalf("writing env file: %v", err)
	}
	return root
}

func initWorkspace(t *testing.T, root string) {
	t.Helper()
	if _, err := workflows.InitWorkspace(context.Background(), workflows.InitOptions{Workspace: root}); err != nil {
		t.Fatalf("initializing workspace: %v", err)
	}
}

// useTempConfigDir points user config I/O at a throwaway directory so tests
// never touch the real per-user config.
func useTempConfigDir(t *testing.T) {
	t.Helper()
	previous := configs.UserEnvdeckSettings
	configs.UserEnvdeckSettings = &configs.UserSettings{
		UserConfigsPath: filepath.Join(t.TempDir(), "envdeck"),
	}
	t.Cleanup(func() { configs.UserEnvdeckSettings = previous })
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(recorder.Body.Bytes(), out); err != nil {
		t.Fatalf("decoding response %q: %v", recorder.Body.String(), err)
	}
}

func TestFilesList(t *testing.T) {
	handler := newTestServer(t)
	root := setupWorkspace(t)

	recorder := doJSON(t, handler, http.MethodGet, "/api/files?folder="+url.QueryEscape(root), nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var body struct {
		Workspace  string `json:"workspace"`
		KeyPresent bool   `json:"key_present"`
		Files      []struct {
			Path      string `json:"path"`
			Entries   int    `json:"entries"`
			Encrypted int    `json:"encrypted"`
		} `json:"files"`
	}
	decodeBody(t, recorder, &body)

	if body.KeyPresent {
		t.Error("expected no workspace key before init")
	}
	if len(body.Files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(body.Files))
	}
	if body.Files[0].Path != ".env" {
		t.Errorf("expected path .env, got %q", body.Files[0].Path)
	}
	if body.Files[0].Entries != 2 {
		t.Errorf("expected 2 entries, got %d", body.Files[0].Entries)
	}
}

func TestFilesListMissingFolder(t *testing.T) {
	handler := newTestServer(t)

	recorder := doJSON(t, handler, http.MethodGet,
		"/api/files?folder="+url.QueryEscape(filepath.Join(t.TempDir(), "nope")), nil)
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", recorder.Code, recorder.Body.String())
	}
}

func TestEntryLifecycle(t *testing.T) {
	handler := newTestServer(t)
	root := setupWorkspace(t)
	initWorkspace(t, root)

	fileBody := map[string]string{"folder": root, "file": ".env"}

	addBody := map[string]string{"folder": root, "file": ".env", "key": "NEW_KEY", "value": "hello world"}
	recorder := doJSON(t, handler, http.MethodPost, "/api/entries", addBody)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("add: expected 201, got %d: %s", recorder.Code, recorder.Body.String())
	}

	updateBody := map[string]string{"folder": root, "file": ".env", "value": "updated"}
	recorder = doJSON(t, handler, http.MethodPut, "/api/entries/NEW_KEY", updateBody)
	if recorder.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	recorder = doJSON(t, handler, http.MethodPost, "/api/entries/NEW_KEY/encrypt", fileBody)
	if recorder.Code != http.StatusOK {
		t.Fatalf("encrypt: expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	query := "folder=" + url.QueryEscape(root) + "&file=" + url.QueryEscape(".env")
	recorder = doJSON(t, handler, http.MethodGet, "/api/entries?"+query, nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var listBody struct {
		Entries []struct {
			Key       string `json:"key"`
			Value     string `json:"value"`
			Encrypted bool   `json:"encrypted"`
		} `json:"entries"`
	}
	decodeBody(t, recorder, &listBody)

	var sealed bool
	for _, e := range listBody.Entries {
		if e.Key != "NEW_KEY" {
			continue
		}
		sealed = true
		if !e.Encrypted {
			t.Error("expected NEW_KEY to be marked encrypted")
		}
		if e.Value != "" {
			t.Errorf("expected sealed value withheld, got %q", e.Value)
		}
	}
	if !sealed {
		t.Fatal("NEW_KEY missing from listing")
	}

	recorder = doJSON(t, handler, http.MethodGet, "/api/entries?"+query+"&reveal=true", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("reveal: expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	decodeBody(t, recorder, &listBody)
	for _, e := range listBody.Entries {
		if e.Key == "NEW_KEY" && e.Value != "updated" {
			t.Errorf("expected revealed value %q, got %q", "updated", e.Value)
		}
	}

	recorder = doJSON(t, handler, http.MethodPost, "/api/entries/NEW_KEY/decrypt", fileBody)
	if recorder.Code != http.StatusOK {
		t.Fatalf("decrypt: expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	recorder = doJSON(t, handler, http.MethodDelete, "/api/entries/NEW_KEY?"+query, nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	recorder = doJSON(t, handler, http.MethodGet, "/api/entries?"+query, nil)
	decodeBody(t, recorder, &listBody)
	for _, e := range listBody.Entries {
		if e.Key == "NEW_KEY" {
			t.Error("expected NEW_KEY to be deleted")
		}
	}
}

func TestEntryErrorStatuses(t *testing.T) {
	handler := newTestServer(t)
	root := setupWorkspace(t)
	query := "folder=" + url.QueryEscape(root) + "&file=" + url.QueryEscape(".env")

	duplicate := map[string]string{"folder": root, "file": ".env", "key": "TOKEN", "value": "x"}
	recorder := doJSON(t, handler, http.MethodPost, "/api/entries", duplicate)
	if recorder.Code != http.StatusConflict {
		t.Errorf("duplicate add: expected 409, got %d", recorder.Code)
	}

	recorder = doJSON(t, handler, http.MethodDelete, "/api/entries/ABSENT?"+query, nil)
	if recorder.Code != http.StatusNotFound {
		t.Errorf("missing delete: expected 404, got %d", recorder.Code)
	}

	invalid := map[string]string{"folder": root, "file": ".env", "key": "9BAD", "value": "x"}
	recorder = doJSON(t, handler, http.MethodPost, "/api/entries", invalid)
	if recorder.Code != http.StatusUnprocessableEntity {
		t.Errorf("invalid key: expected 422, got %d", recorder.Code)
	}

	escape := "folder=" + url.QueryEscape(root) + "&file=" + url.QueryEscape("../outside.env")
	recorder = doJSON(t, handler, http.MethodGet, "/api/entries?"+escape, nil)
	if recorder.Code != http.StatusUnprocessableEntity {
		t.Errorf("path escape: expected 422, got %d", recorder.Code)
	}

	fileBody := map[string]string{"folder": root, "file": ".env"}
	recorder = doJSON(t, handler, http.MethodPost, "/api/entries/TOKEN/encrypt", fileBody)
	if recorder.Code != http.StatusNotFound {
		t.Errorf("encrypt without key: expected 404, got %d", recorder.Code)
	}
}

func TestFoldersList(t *testing.T) {
	handler := newTestServer(t)
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "api"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "api", ".env"), []byte("A=1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(root, "docs"), 0o755); err != nil {
		t.Fatal(err)
	}

	recorder := doJSON(t, handler, http.MethodGet, "/api/folders?path="+url.QueryEscape(root), nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var body struct {
		Path    string `json:"path"`
		Parent  string `json:"parent"`
		Folders []struct {
			Name        string `json:"name"`
			HasEnvFiles bool   `json:"has_env_files"`
		} `json:"folders"`
	}
	decodeBody(t, recorder, &body)

	if len(body.Folders) != 2 {
		t.Fatalf("expected 2 folders, got %d", len(body.Folders))
	}
	if body.Folders[0].Name != "api" || !body.Folders[0].HasEnvFiles {
		t.Errorf("expected api with env files, got %+v", body.Folders[0])
	}
	if body.Folders[1].Name != "docs" || body.Folders[1].HasEnvFiles {
		t.Errorf("expected docs without env files, got %+v", body.Folders[1])
	}
	if body.Parent != filepath.Dir(body.Path) {
		t.Errorf("expected parent of %q, got %q", body.Path, body.Parent)
	}
}

func TestRecentFolders(t *testing.T) {
	useTempConfigDir(t)
	handler := newTestServer(t)
	root := setupWorkspace(t)

	recorder := doJSON(t, handler, http.MethodGet, "/api/recent", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	var body struct {
		Folders []string `json:"folders"`
	}
	decodeBody(t, recorder, &body)
	if len(body.Folders) != 0 {
		t.Fatalf("expected no recent folders, got %v", body.Folders)
	}

	recorder = doJSON(t, handler, http.MethodPost, "/api/recent", map[string]string{"folder": root})
	if recorder.Code != http.StatusOK {
		t.Fatalf("touch: expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	decodeBody(t, recorder, &body)
	if len(body.Folders) != 1 || body.Folders[0] != root {
		t.Errorf("expected recent [%s], got %v", root, body.Folders)
	}

	missing := filepath.Join(t.TempDir(), "gone")
	recorder = doJSON(t, handler, http.MethodPost, "/api/recent", map[string]string{"folder": missing})
	if recorder.Code != http.StatusNotFound {
		t.Errorf("missing folder: expected 404, got %d", recorder.Code)
	}
}

func TestAuditLogRoute(t *testing.T) {
	handler := newTestServer(t)
	root := setupWorkspace(t)
	initWorkspace(t, root)

	update := map[string]string{"folder": root, "file": ".env", "value": "changed"}
	recorder := doJSON(t, handler, http.MethodPut, "/api/entries/TOKEN", update)
	if recorder.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	recorder = doJSON(t, handler, http.MethodGet, "/api/log?folder="+url.QueryEscape(root), nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var body struct {
		Entries []struct {
			Operation string `json:"op"`
			Key       string `json:"key"`
		} `json:"entries"`
	}
	decodeBody(t, recorder, &body)

	if len(body.Entries) != 2 {
		t.Fatalf("expected 2 audit entries, got %d", len(body.Entries))
	}
	if body.Entries[0].Operation != "init" {
		t.Errorf("expected first op init, got %q", body.Entries[0].Operation)
	}
	if body.Entries[1].Operation != "update" || body.Entries[1].Key != "TOKEN" {
		t.Errorf("expected update of TOKEN, got %+v", body.Entries[1])
	}

	recorder = doJSON(t, handler, http.MethodGet, "/api/log?folder="+url.QueryEscape(root)+"&limit=1", nil)
	decodeBody(t, recorder, &body)
	if len(body.Entries) != 1 || body.Entries[0].Operation != "update" {
		t.Errorf("expected limit to keep newest entry, got %+v", body.Entries)
	}
}

func TestContextRoute(t *testing.T) {
	s := New(Options{
		Addr:          "127.0.0.1:0",
		DefaultFolder: "/srv/project",
		Version:       "1.2.3",
		Logger:        logger.Logger{},
	})

	recorder := doJSON(t, s.Handler(), http.MethodGet, "/api/context", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var body struct {
		DefaultFolder string `json:"default_folder"`
		Version       string `json:"version"`
	}
	decodeBody(t, recorder, &body)
	if body.DefaultFolder != "/srv/project" {
		t.Errorf("expected default folder /srv/project, got %q", body.DefaultFolder)
	}
	if body.Version != "1.2.3" {
		t.Errorf("expected version 1.2.3, got %q", body.Version)
	}
}

func TestEmbeddedUI(t *testing.T) {
	handler := newTestServer(t)

	recorder := doJSON(t, handler, http.MethodGet, "/", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), "envdeck") {
		t.Error("expected the UI page to mention envdeck")
	}
}

func TestPreflightRequest(t *testing.T) {
	handler := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/files", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK && recorder.Code != http.StatusNoContent {
		t.Fatalf("expected preflight success, got %d", recorder.Code)
	}
	if recorder.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected Access-Control-Allow-Origin header")
	}
}
