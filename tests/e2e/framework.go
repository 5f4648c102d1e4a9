//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultMCPURL  = "http://localhost:3000"
	defaultTimeout = 30 * time.Second
)

// TestConfig holds configuration for e2e tests against a running jokes-mcp
type TestConfig struct {
	MCPURL  string
	Timeout time.Duration
}

// NewTestConfig creates a new TestConfig with defaults or env overrides
func NewTestConfig() *TestConfig {
	mcpURL := strings.TrimRight(os.Getenv("JOKES_MCP_URL"), "/")
	if mcpURL == "" {
		mcpURL = defaultMCPURL
	}
	timeout := defaultTimeout
	if v := os.Getenv("JOKES_MCP_E2E_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			timeout = d
		}
	}

	config := &TestConfig{
		MCPURL:  mcpURL,
		Timeout: timeout,
	}
	fmt.Printf("Test config: url=%s, timeout=%v\n", config.MCPURL, config.Timeout)
	return config
}

// Setup waits for the server to become ready
func (c *TestConfig) Setup(ctx context.Context) error {
	if err := c.waitForReady(ctx, c.MCPURL+"/health"); err != nil {
		return fmt.Errorf("failed waiting for jokes-mcp: %w", err)
	}

	fmt.Printf("jokes-mcp is ready at %s\n", c.MCPURL)
	return nil
}

// waitForReady polls the target URL until it returns HTTP 200, timeout occurs, or context is cancelled
func (c *TestConfig) waitForReady(ctx context.Context, targetURL string) error {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	fmt.Printf("Waiting for %s to be ready (timeout: %v)\n", targetURL, c.Timeout)
	attempt := 0
	var lastErr error
	for {
		select {
		case <-ctx.Done():
			if ctx.Err() == context.Canceled {
				return fmt.Errorf("cancelled waiting for %s", targetURL)
			}
			return fmt.Errorf("timeout waiting for %s to be ready (last error: %v)", targetURL, lastErr)
		case <-ticker.C:
			attempt++
			resp, err := http.Get(targetURL)
			if err != nil {
				lastErr = err
				fmt.Printf("Health check attempt %d failed: %v\n", attempt, err)
				continue
			}
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				fmt.Printf("Health check succeeded after %d attempts\n", attempt)
				return nil
			}
			lastErr = fmt.Errorf("unexpected status code: %d", resp.StatusCode)
			fmt.Printf("Health check attempt %d: status=%d\n", attempt, resp.StatusCode)
		}
	}
}
