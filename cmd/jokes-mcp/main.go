package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/common/promslog"
	"github.com/spf13/cobra"

	"github.com/rhobs/jokes-mcp/pkg/config"
	"github.com/rhobs/jokes-mcp/pkg/jokes"
	"github.com/rhobs/jokes-mcp/pkg/mcp"
	"github.com/rhobs/jokes-mcp/pkg/tools"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// ExitError carries the process exit code back to main.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jokes-mcp",
		Short: "MCP server exposing Chuck Norris and dad joke tools",
		Long: `jokes-mcp serves four MCP tools backed by api.chucknorris.io and
icanhazdadjoke.com over streamable HTTP (POST /mcp) or stdio.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         runServe,
	}

	cmd.Flags().String("config", "", "Path to a TOML config file")
	cmd.Flags().String("listen-host", "", "Interface to bind in HTTP mode (default: all interfaces)")
	cmd.Flags().Int("port", config.DefaultPort, "Port to listen on in HTTP mode (overrides PORT)")
	cmd.Flags().String("transport", string(config.TransportHTTP), "Transport: http or stdio")
	cmd.Flags().String("log-level", config.DefaultLogLevel, "Log level: debug, info, warn, error")
	cmd.Flags().String("log-format", config.DefaultLogFormat, "Log format: logfmt or json")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the server version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "jokes-mcp version %s\n", mcp.Version)
		},
	}
}

// loadConfig resolves defaults, the config file and the environment, then
// applies any flags the user set explicitly.
func loadConfig(cmd *cobra.Command, getenv func(string) string) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path, getenv)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("listen-host") {
		cfg.Host, _ = flags.GetString("listen-host")
	}
	if flags.Changed("port") {
		cfg.Port, _ = flags.GetInt("port")
	}
	if flags.Changed("transport") {
		t, _ := flags.GetString("transport")
		cfg.Transport = config.Transport(t)
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.LogFormat, _ = flags.GetString("log-format")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, os.Getenv)
	if err != nil {
		return &ExitError{Code: 1, Err: fmt.Errorf("invalid configuration: %w", err)}
	}

	if err := configureLogging(cfg.LogLevel, cfg.LogFormat); err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	loader, err := jokes.NewLoader(jokes.Options{
		ChuckNorrisURL: cfg.ChuckNorrisURL,
		DadJokeURL:     cfg.DadJokeURL,
	})
	if err != nil {
		return &ExitError{Code: 1, Err: fmt.Errorf("failed to create jokes loader: %w", err)}
	}

	registry := tools.DefaultRegistry()
	metrics := mcp.NewMetrics()

	mcpServer, err := mcp.NewMCPServer(mcp.JokesMCPOptions{
		Loader:             loader,
		Registry:           registry,
		Metrics:            metrics,
		ValidateCategories: cfg.ValidateCategories,
	})
	if err != nil {
		return &ExitError{Code: 1, Err: fmt.Errorf("failed to create MCP server: %w", err)}
	}

	slog.Info("Starting server",
		"transport", cfg.Transport,
		"tools", registry.Len(),
		"chuck_norris_url", cfg.ChuckNorrisURL,
		"dad_joke_url", cfg.DadJokeURL,
		"validate_categories", cfg.ValidateCategories,
	)

	ctx := cmd.Context()

	if cfg.Transport == config.TransportStdio {
		stdioServer := server.NewStdioServer(mcpServer)
		if err := stdioServer.Listen(ctx, os.Stdin, os.Stdout); err != nil {
			return &ExitError{Code: 1, Err: fmt.Errorf("stdio server failed: %w", err)}
		}
		return nil
	}

	handler, err := mcp.NewHandler(mcp.HandlerOptions{
		MCPServer: mcpServer,
		Registry:  registry,
		Metrics:   metrics,
	})
	if err != nil {
		return &ExitError{Code: 1, Err: fmt.Errorf("failed to create HTTP handler: %w", err)}
	}

	if err := mcp.Serve(ctx, handler, cfg.ListenAddr(), cfg.ShutdownTimeout); err != nil {
		slog.Error("HTTP server failed", "error", err)
		return &ExitError{Code: 1, Err: err}
	}
	return nil
}

// configureLogging sets up the slog logger with the specified level and format
func configureLogging(levelStr, formatStr string) error {
	level := promslog.NewLevel()
	if err := level.Set(levelStr); err != nil {
		return err
	}

	format := promslog.NewFormat()
	if err := format.Set(formatStr); err != nil {
		return err
	}

	// Stdout carries the protocol in stdio mode, so logs always go to stderr.
	logger := promslog.New(&promslog.Config{
		Level:  level,
		Format: format,
		Style:  promslog.GoKitStyle,
		Writer: os.Stderr,
	})
	slog.SetDefault(logger)
	return nil
}
