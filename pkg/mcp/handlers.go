package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/rhobs/jokes-mcp/pkg/tools"
)

// ChuckJokeHandler handles get-chuck-joke.
func ChuckJokeHandler(opts JokesMCPOptions) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return tools.ChuckJokeHandler(ctx, opts.Loader).ToMCPResult()
	}
}

// ChuckJokeByCategoryHandler handles get-chuck-joke-by-category.
func ChuckJokeByCategoryHandler(opts JokesMCPOptions) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		input := tools.BuildCategoryJokeInput(req.GetArguments())
		input.ValidateCategory = opts.ValidateCategories

		return tools.ChuckJokeByCategoryHandler(ctx, opts.Loader, input).ToMCPResult()
	}
}

// ChuckCategoriesHandler handles get-chuck-categories.
func ChuckCategoriesHandler(opts JokesMCPOptions) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return tools.ChuckCategoriesHandler(ctx, opts.Loader).ToMCPResult()
	}
}

// DadJokeHandler handles get-dad-joke.
func DadJokeHandler(opts JokesMCPOptions) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return tools.DadJokeHandler(ctx, opts.Loader).ToMCPResult()
	}
}

// validateArguments rejects calls whose arguments do not match the tool's
// input schema before next runs. The HTTP endpoint checks this earlier; this
// covers the stdio transport.
func validateArguments(registry *tools.Registry, name string, next server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if err := registry.Validate(name, req.GetArguments()); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return next(ctx, req)
	}
}
