// Serve command runs the HTTP API server.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/todolist/internal/paths"
	"github.com/mesh-intelligence/todolist/internal/server"
	"github.com/mesh-intelligence/todolist/internal/sqlite"
	"github.com/mesh-intelligence/todolist/pkg/types"
)

var (
	serveListen string
	serveDBPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the todod HTTP server",
	Long: `Serve starts the REST API on the configured listen address.

The database file location follows the precedence --db flag > config.yaml
db_path > TODOD_DB_PATH env > an env-dependent default.

Example:
  todod serve
  todod serve --listen :9090 --db ./todos.db`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "listen address (default: config listen_addr)")
	serveCmd.Flags().StringVar(&serveDBPath, "db", "", "database file (default: env-dependent)")
}

func runServe(cmd *cobra.Command, args []string) error {
	listenAddr := serveListen
	if listenAddr == "" {
		listenAddr = cfg.GetString(cfgKeyListenAddr)
	}
	env := cfg.GetString(cfgKeyEnv)

	dbPath, err := paths.ResolveDBPath(serveDBPath, cfg.GetString(cfgKeyDBPath), env)
	if err != nil {
		return fmt.Errorf("resolve db path: %w", err)
	}

	config := types.Config{ListenAddr: listenAddr, DBPath: dbPath, Env: env}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "todod",
	})
	logger.Info("opening database", "path", dbPath, "env", env)

	store, err := sqlite.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(config, store, logger).Run(ctx)
}
