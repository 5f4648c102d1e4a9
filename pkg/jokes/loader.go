package jokes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	promcfg "github.com/prometheus/common/config"
)

const (
	// DefaultChuckNorrisURL is the base URL of the Chuck Norris joke API.
	DefaultChuckNorrisURL = "https://api.chucknorris.io"
	// DefaultDadJokeURL is the base URL of the dad joke API.
	DefaultDadJokeURL = "https://icanhazdadjoke.com"

	// UserAgent identifies this server to the upstream providers.
	UserAgent = "jokes-mcp (https://github.com/rhobs/jokes-mcp)"

	randomJokePath = "/jokes/random"
	categoriesPath = "/jokes/categories"
)

// Loader defines the interface for fetching jokes from the upstream providers
type Loader interface {
	RandomJoke(ctx context.Context) (string, error)
	JokeByCategory(ctx context.Context, category string) (string, error)
	Categories(ctx context.Context) ([]string, error)
	DadJoke(ctx context.Context) (string, error)
}

// Options configures a RealLoader.
type Options struct {
	ChuckNorrisURL string
	DadJokeURL     string
	// HTTPClient overrides the client built from the default prometheus HTTP client config.
	HTTPClient *http.Client
}

// RealLoader implements Loader against the public joke APIs.
type RealLoader struct {
	chuckURL string
	dadURL   string
	client   *http.Client
}

// Ensure RealLoader implements Loader at compile time
var _ Loader = (*RealLoader)(nil)

// NewLoader creates a RealLoader. Empty URLs fall back to the public providers.
func NewLoader(opts Options) (*RealLoader, error) {
	chuckURL, err := normalizeBaseURL(opts.ChuckNorrisURL, DefaultChuckNorrisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid chuck norris url: %w", err)
	}
	dadURL, err := normalizeBaseURL(opts.DadJokeURL, DefaultDadJokeURL)
	if err != nil {
		return nil, fmt.Errorf("invalid dad joke url: %w", err)
	}

	client := opts.HTTPClient
	if client == nil {
		client, err = promcfg.NewClientFromConfig(promcfg.DefaultHTTPClientConfig, "jokes", promcfg.WithUserAgent(UserAgent))
		if err != nil {
			return nil, fmt.Errorf("error creating upstream http client: %w", err)
		}
	}

	return &RealLoader{
		chuckURL: chuckURL,
		dadURL:   dadURL,
		client:   client,
	}, nil
}

func normalizeBaseURL(raw, fallback string) (string, error) {
	if raw == "" {
		raw = fallback
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%q is not an absolute url", raw)
	}
	return strings.TrimRight(u.String(), "/"), nil
}

// chuckJoke is the subset of the api.chucknorris.io joke object we use.
type chuckJoke struct {
	Value *string `json:"value"`
}

// dadJoke is the subset of the icanhazdadjoke.com joke object we use.
type dadJoke struct {
	Joke *string `json:"joke"`
}

func (l *RealLoader) RandomJoke(ctx context.Context) (string, error) {
	const op = "random joke"
	reqURL := l.chuckURL + randomJokePath

	var joke chuckJoke
	status, err := l.getJSON(ctx, op, reqURL, &joke)
	if err != nil {
		return "", err
	}
	if joke.Value == nil {
		return "", &UpstreamError{Op: op, URL: reqURL, StatusCode: status, Err: fmt.Errorf("%w: value", ErrMissingField)}
	}
	return *joke.Value, nil
}

func (l *RealLoader) JokeByCategory(ctx context.Context, category string) (string, error) {
	const op = "joke by category"
	reqURL := l.chuckURL + randomJokePath + "?" + url.Values{"category": []string{category}}.Encode()

	var joke chuckJoke
	status, err := l.getJSON(ctx, op, reqURL, &joke)
	if err != nil {
		return "", err
	}
	if joke.Value == nil {
		return "", &UpstreamError{Op: op, URL: reqURL, StatusCode: status, Err: fmt.Errorf("%w: value", ErrMissingField)}
	}
	return *joke.Value, nil
}

func (l *RealLoader) Categories(ctx context.Context) ([]string, error) {
	const op = "categories"
	reqURL := l.chuckURL + categoriesPath

	var categories []string
	if _, err := l.getJSON(ctx, op, reqURL, &categories); err != nil {
		return nil, err
	}
	if categories == nil {
		return []string{}, nil
	}
	return categories, nil
}

func (l *RealLoader) DadJoke(ctx context.Context) (string, error) {
	const op = "dad joke"
	reqURL := l.dadURL + "/"

	var joke dadJoke
	status, err := l.getJSON(ctx, op, reqURL, &joke)
	if err != nil {
		return "", err
	}
	if joke.Joke == nil {
		return "", &UpstreamError{Op: op, URL: reqURL, StatusCode: status, Err: fmt.Errorf("%w: joke", ErrMissingField)}
	}
	return *joke.Joke, nil
}

// getJSON performs a single GET and decodes the body into out. The status code
// is not checked on its own: the body decides whether the call succeeded.
func (l *RealLoader) getJSON(ctx context.Context, op, reqURL string, out any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, &UpstreamError{Op: op, URL: reqURL, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return 0, &UpstreamError{Op: op, URL: reqURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, &UpstreamError{Op: op, URL: reqURL, StatusCode: resp.StatusCode, Err: fmt.Errorf("error reading body: %w", err)}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return resp.StatusCode, &UpstreamError{Op: op, URL: reqURL, StatusCode: resp.StatusCode, Err: fmt.Errorf("error decoding body: %w", err)}
	}
	return resp.StatusCode, nil
}
