package server

import (
	"context"
	"embed"
	"io/fs"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/cors"

	logger "github.com/PolarWolf314/envdeck/internal/logging"
)

//go:embed static
var staticFS embed.FS

// Options configures a Server.
type Options struct {
	// Addr is the listen address, host:port.
	Addr string

	// DefaultFolder is the workspace the UI opens with. Requests still
	// name their folder explicitly on every call.
	DefaultFolder string

	// Version is reported in the OpenAPI document and /api/context.
	Version string

	// Logger receives request-level diagnostics.
	Logger logger.Logger
}

// Server is the local web UI: the JSON API under /api plus the embedded
// single-page editor at /.
type Server struct {
	opts       Options
	mux        *ServeMux
	httpServer *http.Server
}

// New builds a Server with all operations registered. It does not listen
// yet; call Start.
func New(opts Options) *Server {
	if opts.Version == "" {
		opts.Version = "dev"
	}

	mux := NewServeMux()
	s := &Server{opts: opts, mux: mux}

	api := NewHuma(mux, "envdeck", opts.Version,
		"Local web UI for browsing, editing, and selectively encrypting .env files.")
	huma.AutoRegister(api, &Operations{server: s})

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		// The static directory is embedded at build time; a failure here
		// is a packaging bug.
		panic(err)
	}
	mux.Handle("/", http.FileServer(http.FS(static)))

	s.httpServer = &http.Server{
		Addr:              opts.Addr,
		Handler:           cors.Default().Handler(mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the root handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.opts.Addr
}

// Start blocks serving HTTP until Shutdown is called or the listener
// fails.
func (s *Server) Start() error {
	s.opts.Logger.Infof("Listening on http://%s", s.opts.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
