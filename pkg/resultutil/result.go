package resultutil

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Result represents a common tool execution result that is converted to an
// MCP CallToolResult by the protocol layer.
type Result struct {
	// Text holds the textual payload (only set for successful results)
	Text string
	// Error holds a handler failure. It is returned to the protocol layer as-is
	// so the transport can report it as an internal error.
	Error error
	// Rejection holds a message for a request the handler refused to serve. It
	// is reported back to the caller as a tool-level error result.
	Rejection string
}

// NewTextResult creates a successful result with a single text payload.
func NewTextResult(text string) *Result {
	return &Result{
		Text: text,
	}
}

// NewErrorResult creates a failed result with the given error.
func NewErrorResult(err error) *Result {
	return &Result{
		Error: err,
	}
}

// NewRejectionResult creates a result that tells the caller why the request
// was refused.
func NewRejectionResult(message string) *Result {
	return &Result{
		Rejection: message,
	}
}

// ToMCPResult converts the Result to an MCP CallToolResult.
// Failures are propagated through the error return value; rejections are
// encoded in the result with isError set.
func (r *Result) ToMCPResult() (*mcp.CallToolResult, error) {
	if r.Error != nil {
		return nil, r.Error
	}
	if r.Rejection != "" {
		return mcp.NewToolResultError(r.Rejection), nil
	}
	return mcp.NewToolResultText(r.Text), nil
}

// IsError returns true if the result represents a failure or a rejection.
func (r *Result) IsError() bool {
	return r.Error != nil || r.Rejection != ""
}
