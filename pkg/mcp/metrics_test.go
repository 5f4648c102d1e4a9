package mcp

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_ToolCalls(t *testing.T) {
	metrics := NewMetrics()
	loader := &MockedLoader{
		RandomJokeFunc: func(ctx context.Context) (string, error) { return "", errors.New("upstream down") },
	}
	handler := newTestHandler(t, loader, metrics)

	post(handler, toolCallBody(t, 1, "get-dad-joke", nil))
	post(handler, toolCallBody(t, 2, "get-dad-joke", nil))
	post(handler, toolCallBody(t, 3, "get-chuck-joke", nil))

	if got := testutil.ToFloat64(metrics.toolCalls.WithLabelValues("get-dad-joke", outcomeSuccess)); got != 2 {
		t.Errorf("expected 2 successful dad joke calls, got %v", got)
	}
	if got := testutil.ToFloat64(metrics.toolCalls.WithLabelValues("get-chuck-joke", outcomeError)); got != 1 {
		t.Errorf("expected 1 failed chuck joke call, got %v", got)
	}
	if got := testutil.ToFloat64(metrics.httpRequests.WithLabelValues(http.MethodPost, "/mcp", "500")); got != 1 {
		t.Errorf("expected 1 failed POST /mcp, got %v", got)
	}
	if got := testutil.ToFloat64(metrics.httpRequests.WithLabelValues(http.MethodPost, "/mcp", "200")); got != 2 {
		t.Errorf("expected 2 successful POST /mcp, got %v", got)
	}
}

func TestMetrics_Endpoint(t *testing.T) {
	metrics := NewMetrics()
	handler := newTestHandler(t, &MockedLoader{}, metrics)

	post(handler, toolCallBody(t, 1, "get-chuck-categories", nil))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	for _, name := range []string{
		"jokes_mcp_tool_calls_total",
		"jokes_mcp_tool_call_duration_seconds",
		"jokes_mcp_http_requests_total",
		"go_goroutines",
	} {
		if !strings.Contains(string(body), name) {
			t.Errorf("expected %s in metrics output", name)
		}
	}
}

func TestMetrics_UnmatchedRoute(t *testing.T) {
	metrics := NewMetrics()
	handler := newTestHandler(t, &MockedLoader{}, metrics)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	if got := testutil.ToFloat64(metrics.httpRequests.WithLabelValues(http.MethodGet, "unmatched", "404")); got != 1 {
		t.Errorf("expected unmatched route to be counted, got %v", got)
	}
}
