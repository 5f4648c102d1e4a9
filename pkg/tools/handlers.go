package tools

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/rhobs/jokes-mcp/pkg/jokes"
	"github.com/rhobs/jokes-mcp/pkg/resultutil"
)

// CategoryJokeInput holds the arguments of get-chuck-joke-by-category.
type CategoryJokeInput struct {
	Category string
	// ValidateCategory checks Category against the upstream category list first.
	ValidateCategory bool
}

// GetString is a helper to extract a string parameter with a default value
func GetString(params map[string]any, key, defaultValue string) string {
	if val, ok := params[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return defaultValue
}

func BuildCategoryJokeInput(args map[string]any) CategoryJokeInput {
	return CategoryJokeInput{
		Category: GetString(args, "category", ""),
	}
}

// ChuckJokeHandler fetches a random Chuck Norris joke.
func ChuckJokeHandler(ctx context.Context, loader jokes.Loader) *resultutil.Result {
	slog.Debug("ChuckJokeHandler called")

	joke, err := loader.RandomJoke(ctx)
	if err != nil {
		return resultutil.NewErrorResult(fmt.Errorf("failed to fetch chuck norris joke: %w", err))
	}
	return resultutil.NewTextResult(joke)
}

// ChuckJokeByCategoryHandler fetches a random Chuck Norris joke from one category.
func ChuckJokeByCategoryHandler(ctx context.Context, loader jokes.Loader, input CategoryJokeInput) *resultutil.Result {
	slog.Debug("ChuckJokeByCategoryHandler called", "category", input.Category, "validate", input.ValidateCategory)

	if input.ValidateCategory {
		categories, err := loader.Categories(ctx)
		if err != nil {
			return resultutil.NewErrorResult(fmt.Errorf("failed to fetch chuck norris categories: %w", err))
		}
		if !slices.Contains(categories, input.Category) {
			return resultutil.NewRejectionResult(fmt.Sprintf("unknown category %q (valid categories: %s)",
				input.Category, strings.Join(categories, ", ")))
		}
	}

	joke, err := loader.JokeByCategory(ctx, input.Category)
	if err != nil {
		return resultutil.NewErrorResult(fmt.Errorf("failed to fetch chuck norris joke for category %q: %w", input.Category, err))
	}
	return resultutil.NewTextResult(joke)
}

// ChuckCategoriesHandler lists the Chuck Norris joke categories as one comma-joined string.
func ChuckCategoriesHandler(ctx context.Context, loader jokes.Loader) *resultutil.Result {
	slog.Debug("ChuckCategoriesHandler called")

	categories, err := loader.Categories(ctx)
	if err != nil {
		return resultutil.NewErrorResult(fmt.Errorf("failed to fetch chuck norris categories: %w", err))
	}
	return resultutil.NewTextResult(strings.Join(categories, ", "))
}

// DadJokeHandler fetches a random dad joke.
func DadJokeHandler(ctx context.Context, loader jokes.Loader) *resultutil.Result {
	slog.Debug("DadJokeHandler called")

	joke, err := loader.DadJoke(ctx)
	if err != nil {
		return resultutil.NewErrorResult(fmt.Errorf("failed to fetch dad joke: %w", err))
	}
	return resultutil.NewTextResult(joke)
}
