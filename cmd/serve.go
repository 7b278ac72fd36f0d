package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/PolarWolf314/envdeck/internal/configs"
	logger "github.com/PolarWolf314/envdeck/internal/logging"
	"github.com/PolarWolf314/envdeck/internal/server"
	"github.com/PolarWolf314/envdeck/internal/ui"
	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Version is stamped by the release build; "dev" otherwise.
var Version = "dev"

var (
	serveAddr   string
	serveFolder string
)

func init() {
	ServeCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	ServeCmd.Flags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	ServeCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from user config)")
	ServeCmd.Flags().StringVarP(&serveFolder, "folder", "C", ".", "workspace folder the UI opens with")
}

// resetServeCommandState resets the serve command's global state for testing.
func resetServeCommandState() {
	serveAddr = ""
	serveFolder = "."
}

var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local web UI",
	Long: `Starts the envdeck server and web UI on localhost. The page opens on
the given folder, and every request names its folder explicitly, so the
server itself holds no current-directory state.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		Logger = logger.Logger{Verbose: verbose, Debug: debug}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting serve command")
		spinner, cleanup := startSpinner("Starting server...", verbose, debug)
		defer cleanup()

		config, err := configs.EnsureUserConfig()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to load user config: %v", err)
		}

		addr := serveAddr
		if addr == "" {
			addr = config.Server.Addr
		}

		folder, err := filepath.Abs(serveFolder)
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to resolve folder %s: %v", serveFolder, err)
		}

		// Best effort: the served folder counts as a visit.
		if err := configs.TouchRecentFolder(config, folder); err != nil {
			Logger.Warnf("Failed to record recent folder: %v", err)
		}

		s := server.New(server.Options{
			Addr:          addr,
			DefaultFolder: folder,
			Version:       Version,
			Logger:        Logger,
		})

		spinner.Stop()

		fmt.Println()
		banner := figure.NewColorFigure("envdeck", "alligator2", "green", true)
		banner.Print()
		fmt.Println()
		fmt.Printf("%s Serving %s\n", color.GreenString("✓"), ui.Path.Sprint(folder))
		fmt.Printf("%s Open %s in your browser\n", color.CyanString("→"), ui.Code.Sprint("http://"+addr))
		fmt.Printf("%s Press %s to stop\n\n", color.CyanString("→"), ui.Code.Sprint("Ctrl-C"))

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() { errCh <- s.Start() }()

		select {
		case err := <-errCh:
			if err != nil {
				return Logger.ErrorfAndReturn("Server failed: %v", err)
			}
			return nil
		case <-ctx.Done():
		}

		Logger.Infof("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			return Logger.ErrorfAndReturn("Shutdown failed: %v", err)
		}

		fmt.Printf("%s Server stopped\n", color.GreenString("✓"))
		return nil
	},
}
