package mcp

import (
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/server"

	"github.com/rhobs/jokes-mcp/pkg/jokes"
	"github.com/rhobs/jokes-mcp/pkg/tools"
)

// JokesMCPOptions contains configuration options for the MCP server
type JokesMCPOptions struct {
	// Loader performs the upstream joke API calls.
	Loader jokes.Loader
	// Registry holds the tools to serve. Defaults to tools.DefaultRegistry().
	Registry *tools.Registry
	// Metrics records tool calls. Optional.
	Metrics *Metrics
	// ValidateCategories rejects categories the upstream does not list.
	ValidateCategories bool
}

const (
	mcpEndpoint    = "/mcp"
	rootEndpoint   = "/"
	healthEndpoint = "/health"
	metricsPath    = "/metrics"
	serverName     = "jokes-mcp"
)

// Version is reported to MCP clients during initialization.
var Version = "1.0.0"

func NewMCPServer(opts JokesMCPOptions) (*server.MCPServer, error) {
	if opts.Loader == nil {
		return nil, errors.New("jokes loader is required")
	}
	if opts.Registry == nil {
		opts.Registry = tools.DefaultRegistry()
	}

	mcpServer := server.NewMCPServer(
		serverName,
		Version,
		server.WithLogging(),
		server.WithRecovery(),
		server.WithToolCapabilities(false),
		server.WithInstructions(tools.ServerPrompt),
	)

	if err := SetupTools(mcpServer, opts); err != nil {
		return nil, err
	}

	return mcpServer, nil
}

// SetupTools attaches a handler to every tool in the registry. A registered
// tool without a handler is a startup error.
func SetupTools(mcpServer *server.MCPServer, opts JokesMCPOptions) error {
	handlers := map[string]server.ToolHandlerFunc{
		tools.GetChuckJoke.Name:           ChuckJokeHandler(opts),
		tools.GetChuckJokeByCategory.Name: ChuckJokeByCategoryHandler(opts),
		tools.GetChuckCategories.Name:     ChuckCategoriesHandler(opts),
		tools.GetDadJoke.Name:             DadJokeHandler(opts),
	}

	for _, def := range opts.Registry.All() {
		handler, ok := handlers[def.Name]
		if !ok {
			return fmt.Errorf("no handler for tool '%s'", def.Name)
		}

		handler = validateArguments(opts.Registry, def.Name, handler)
		if opts.Metrics != nil {
			handler = opts.Metrics.instrumentTool(def.Name, handler)
		}

		mcpServer.AddTool(def.ToMCPTool(), handler)
	}

	return nil
}
