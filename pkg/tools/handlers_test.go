package tools

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rhobs/jokes-mcp/pkg/jokes"
)

// mockLoader is a stub jokes.Loader with function fields
type mockLoader struct {
	randomJoke     func(ctx context.Context) (string, error)
	jokeByCategory func(ctx context.Context, category string) (string, error)
	categories     func(ctx context.Context) ([]string, error)
	dadJoke        func(ctx context.Context) (string, error)
}

var _ jokes.Loader = (*mockLoader)(nil)

func (m *mockLoader) RandomJoke(ctx context.Context) (string, error) {
	if m.randomJoke != nil {
		return m.randomJoke(ctx)
	}
	return "random", nil
}

func (m *mockLoader) JokeByCategory(ctx context.Context, category string) (string, error) {
	if m.jokeByCategory != nil {
		return m.jokeByCategory(ctx, category)
	}
	return "joke about " + category, nil
}

func (m *mockLoader) Categories(ctx context.Context) ([]string, error) {
	if m.categories != nil {
		return m.categories(ctx)
	}
	return []string{"animal", "dev"}, nil
}

func (m *mockLoader) DadJoke(ctx context.Context) (string, error) {
	if m.dadJoke != nil {
		return m.dadJoke(ctx)
	}
	return "dad", nil
}

func TestChuckJokeHandler(t *testing.T) {
	result := ChuckJokeHandler(context.Background(), &mockLoader{})
	if result.IsError() {
		t.Fatalf("unexpected error: %v", result.Error)
	}
	if result.Text != "random" {
		t.Errorf("unexpected text %q", result.Text)
	}
}

func TestChuckJokeHandler_UpstreamError(t *testing.T) {
	upstreamErr := &jokes.UpstreamError{Op: "random joke", URL: "http://x", Err: errors.New("boom")}
	loader := &mockLoader{
		randomJoke: func(ctx context.Context) (string, error) { return "", upstreamErr },
	}

	result := ChuckJokeHandler(context.Background(), loader)
	if result.Error == nil {
		t.Fatal("expected error")
	}
	if !jokes.IsUpstreamError(result.Error) {
		t.Errorf("expected upstream error to be wrapped, got %v", result.Error)
	}
}

func TestChuckJokeByCategoryHandler_PassThrough(t *testing.T) {
	var gotCategory string
	loader := &mockLoader{
		categories: func(ctx context.Context) ([]string, error) {
			t.Error("categories must not be fetched when validation is off")
			return nil, nil
		},
		jokeByCategory: func(ctx context.Context, category string) (string, error) {
			gotCategory = category
			return "Chuck Norris's keyboard has no Ctrl key.", nil
		},
	}

	result := ChuckJokeByCategoryHandler(context.Background(), loader, BuildCategoryJokeInput(map[string]any{"category": "not-a-category"}))
	if result.IsError() {
		t.Fatalf("unexpected error: %v", result.Error)
	}
	if gotCategory != "not-a-category" {
		t.Errorf("expected category to be passed through, got %q", gotCategory)
	}
}

func TestChuckJokeByCategoryHandler_Validation(t *testing.T) {
	tests := []struct {
		name          string
		category      string
		wantRejection bool
	}{
		{name: "known category", category: "dev"},
		{name: "unknown category", category: "sport", wantRejection: true},
		{name: "case sensitive", category: "Dev", wantRejection: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ChuckJokeByCategoryHandler(context.Background(), &mockLoader{}, CategoryJokeInput{
				Category:         tt.category,
				ValidateCategory: true,
			})
			if result.Error != nil {
				t.Fatalf("unexpected failure: %v", result.Error)
			}
			if (result.Rejection != "") != tt.wantRejection {
				t.Fatalf("expected rejection=%v, got %q", tt.wantRejection, result.Rejection)
			}
			if tt.wantRejection && !strings.Contains(result.Rejection, "animal, dev") {
				t.Errorf("expected valid categories in rejection, got %q", result.Rejection)
			}
		})
	}
}

func TestChuckJokeByCategoryHandler_ValidationUpstreamError(t *testing.T) {
	loader := &mockLoader{
		categories: func(ctx context.Context) ([]string, error) {
			return nil, &jokes.UpstreamError{Op: "categories", Err: errors.New("timeout")}
		},
	}

	result := ChuckJokeByCategoryHandler(context.Background(), loader, CategoryJokeInput{Category: "dev", ValidateCategory: true})
	if !jokes.IsUpstreamError(result.Error) {
		t.Fatalf("expected upstream error, got %+v", result)
	}
}

func TestChuckCategoriesHandler(t *testing.T) {
	loader := &mockLoader{
		categories: func(ctx context.Context) ([]string, error) {
			return []string{"animal", "career", "celebrity", "dev"}, nil
		},
	}

	result := ChuckCategoriesHandler(context.Background(), loader)
	if result.IsError() {
		t.Fatalf("unexpected error: %v", result.Error)
	}
	if result.Text != "animal, career, celebrity, dev" {
		t.Errorf("unexpected text %q", result.Text)
	}
}

func TestChuckCategoriesHandler_Empty(t *testing.T) {
	loader := &mockLoader{
		categories: func(ctx context.Context) ([]string, error) { return []string{}, nil },
	}

	result := ChuckCategoriesHandler(context.Background(), loader)
	if result.IsError() || result.Text != "" {
		t.Errorf("expected empty text, got %+v", result)
	}
}

func TestDadJokeHandler(t *testing.T) {
	result := DadJokeHandler(context.Background(), &mockLoader{})
	if result.IsError() {
		t.Fatalf("unexpected error: %v", result.Error)
	}
	if result.Text != "dad" {
		t.Errorf("unexpected text %q", result.Text)
	}
}

func TestGetString(t *testing.T) {
	args := map[string]any{"s": "v", "empty": "", "n": 1}

	if got := GetString(args, "s", "d"); got != "v" {
		t.Errorf("expected v, got %q", got)
	}
	if got := GetString(args, "empty", "d"); got != "" {
		t.Errorf("expected empty string to be kept, got %q", got)
	}
	if got := GetString(args, "n", "d"); got != "d" {
		t.Errorf("expected default for non-string, got %q", got)
	}
	if got := GetString(nil, "missing", "d"); got != "d" {
		t.Errorf("expected default, got %q", got)
	}
}
