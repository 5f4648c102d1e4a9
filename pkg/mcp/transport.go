package mcp

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/rhobs/jokes-mcp/pkg/tools"
)

const (
	jsonRPCVersion = "2.0"

	// methodNotAllowedCode is the JSON-RPC server error code used for
	// disallowed HTTP methods on the MCP endpoint.
	methodNotAllowedCode = -32000

	internalErrorMessage    = "Internal server error"
	methodNotAllowedMessage = "Method not allowed."
	rootMessage             = "MCP jokes server is running."
)

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// errorEnvelope is a JSON-RPC error response. A nil ID encodes as null.
type errorEnvelope struct {
	JSONRPC string          `json:"jsonrpc"`
	Error   rpcError        `json:"error"`
	ID      json.RawMessage `json:"id"`
}

type rpcRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

type toolCallParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

// rpcResponse is the part of a JSON-RPC response the endpoint inspects.
type rpcResponse struct {
	Error *rpcError `json:"error,omitempty"`
}

var (
	internalErrorBody    = mustMarshal(errorEnvelope{JSONRPC: jsonRPCVersion, Error: rpcError{Code: mcp.INTERNAL_ERROR, Message: internalErrorMessage}})
	methodNotAllowedBody = mustMarshal(errorEnvelope{JSONRPC: jsonRPCVersion, Error: rpcError{Code: methodNotAllowedCode, Message: methodNotAllowedMessage}})
)

func mustMarshal(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}

// HandlerOptions configures the HTTP transport.
type HandlerOptions struct {
	MCPServer *server.MCPServer
	Registry  *tools.Registry
	// Metrics adds request instrumentation and the /metrics route. Optional.
	Metrics *Metrics
}

// endpoint is the stateless HTTP transport in front of the MCP server. It
// holds no per-request or per-client state.
type endpoint struct {
	mcpServer *server.MCPServer
	registry  *tools.Registry
}

// NewHandler builds the HTTP routes of the server.
func NewHandler(opts HandlerOptions) (http.Handler, error) {
	if opts.MCPServer == nil {
		return nil, errors.New("mcp server is required")
	}
	if opts.Registry == nil {
		opts.Registry = tools.DefaultRegistry()
	}

	e := &endpoint{
		mcpServer: opts.MCPServer,
		registry:  opts.Registry,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(loggingMiddleware)
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
		r.Method(http.MethodGet, metricsPath, opts.Metrics.Handler())
	}

	r.Get(rootEndpoint, handleRoot)
	r.Get(healthEndpoint, handleHealth)

	r.Post(mcpEndpoint, e.handleMCP)
	r.Get(mcpEndpoint, handleMethodNotAllowed)
	r.Delete(mcpEndpoint, handleMethodNotAllowed)
	r.Put(mcpEndpoint, handleMethodNotAllowed)

	return r, nil
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slog.Info("Incoming request", "method", r.Method, "path", r.URL.Path, "remote_addr", r.RemoteAddr, "request_id", middleware.GetReqID(r.Context()))
		slog.Debug("Request headers", "headers", r.Header)
		if r.ContentLength > 0 {
			slog.Info("Request content length", "content_length", r.ContentLength)
		}
		next.ServeHTTP(w, r)
	})
}

func handleRoot(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(rootMessage))
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	slog.Info("Received disallowed MCP request", "method", r.Method)
	writeJSON(w, http.StatusMethodNotAllowed, methodNotAllowedBody)
}

func (e *endpoint) handleMCP(w http.ResponseWriter, r *http.Request) {
	ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
	defer func() {
		if rec := recover(); rec != nil {
			e.fail(ww, r, fmt.Errorf("panic while handling MCP request: %v", rec))
		}
	}()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		e.fail(ww, r, fmt.Errorf("failed to read request body: %w", err))
		return
	}

	var req rpcRequest
	if err := json.Unmarshal(body, &req); err != nil {
		e.fail(ww, r, fmt.Errorf("failed to decode request: %w", err))
		return
	}
	slog.Info("Received MCP request", "rpc_method", req.Method, "id", string(req.ID))

	if req.Method == string(mcp.MethodToolsCall) {
		if rejection := e.checkToolCall(req); rejection != nil {
			writeJSON(ww, http.StatusOK, rejection)
			return
		}
	}

	msg := e.mcpServer.HandleMessage(r.Context(), body)
	if msg == nil {
		// Notifications and client responses have nothing to return.
		ww.WriteHeader(http.StatusAccepted)
		return
	}

	out, err := json.Marshal(msg)
	if err != nil {
		e.fail(ww, r, fmt.Errorf("failed to encode response: %w", err))
		return
	}

	var resp rpcResponse
	if err := json.Unmarshal(out, &resp); err == nil && resp.Error != nil && resp.Error.Code == mcp.INTERNAL_ERROR {
		e.fail(ww, r, errors.New(resp.Error.Message))
		return
	}

	writeJSON(ww, http.StatusOK, out)
}

// checkToolCall resolves the tool and validates its arguments. It returns the
// encoded JSON-RPC error to send back, or nil when the call may proceed.
func (e *endpoint) checkToolCall(req rpcRequest) []byte {
	var params toolCallParams
	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return invalidParams(req.ID, fmt.Sprintf("invalid tools/call params: %v", err))
		}
	}

	if _, err := e.registry.Lookup(params.Name); err != nil {
		return invalidParams(req.ID, err.Error())
	}

	var args map[string]any
	if len(params.Arguments) > 0 {
		if err := json.Unmarshal(params.Arguments, &args); err != nil {
			return invalidParams(req.ID, fmt.Sprintf("invalid arguments for tool '%s': arguments must be an object", params.Name))
		}
	}

	if err := e.registry.Validate(params.Name, args); err != nil {
		return invalidParams(req.ID, err.Error())
	}
	return nil
}

func invalidParams(id json.RawMessage, message string) []byte {
	return mustMarshal(errorEnvelope{
		JSONRPC: jsonRPCVersion,
		Error:   rpcError{Code: mcp.INVALID_PARAMS, Message: message},
		ID:      id,
	})
}

// fail reports err as an internal error. A response is sent at most once: if
// headers already went out, the failure is only logged.
func (e *endpoint) fail(w middleware.WrapResponseWriter, r *http.Request, err error) {
	slog.Error("Error handling MCP request", "error", err, "request_id", middleware.GetReqID(r.Context()))
	if w.Status() != 0 {
		slog.Warn("Response already started, dropping error response", "status", w.Status())
		return
	}
	writeJSON(w, http.StatusInternalServerError, internalErrorBody)
}

func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		slog.Error("Failed to write response", "error", err)
	}
}
