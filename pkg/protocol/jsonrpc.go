package protocol

import "encoding/json"

// JSON-RPC 2.0 message types for editor and automation integrations.

// Request is a JSON-RPC 2.0 request.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id,omitempty"` // string or int; nil for notifications
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response is a JSON-RPC 2.0 response.
type Response struct {
	JSONRPC string `json:"jsonrpc"`
	ID      any    `json:"id,omitempty"`
	Result  any    `json:"result,omitempty"`
	Error   *Error `json:"error,omitempty"`
}

// Error is a JSON-RPC 2.0 error object.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

// Standard JSON-RPC 2.0 error codes.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// Application-specific error codes.
const (
	CodeSpecUnreadable     = -32000
	CodeCatalogUnavailable = -32001
)

// Method constants for all supported JSON-RPC methods.
const (
	// Spec analysis.
	MethodSpecScan    = "spec.scan"
	MethodSpecRoot    = "spec.root"
	MethodSpecCascade = "spec.cascade"

	// Catalog access.
	MethodCatalogList = "catalog.list"
)

// NewResponse creates a successful response.
func NewResponse(id any, result any) Response {
	return Response{
		JSONRPC: "2.0",
		ID:      id,
		Result:  result,
	}
}

// NewErrorResponse creates an error response.
func NewErrorResponse(id any, code int, message string, data any) Response {
	return Response{
		JSONRPC: "2.0",
		ID:      id,
		Error: &Error{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// Parameter types for the supported methods.

// ScanParams holds parameters for "spec.scan" and "spec.root". Either the
// spec text is supplied inline or a path is given for the server to read.
type ScanParams struct {
	Text string `json:"text,omitempty"`
	Path string `json:"path,omitempty"`
}

// CascadeParams holds parameters for "spec.cascade".
type CascadeParams struct {
	Prompts map[string]string `json:"prompts"`
	Prefix  string            `json:"prefix,omitempty"`
	Suffix  string            `json:"suffix,omitempty"`
}

// CatalogListParams holds parameters for "catalog.list". Empty dirs means
// the server's configured spec directories.
type CatalogListParams struct {
	Dirs []string `json:"dirs,omitempty"`
}

// RootResult holds the result of "spec.root".
type RootResult struct {
	Prefix string `json:"prefix"`
	Suffix string `json:"suffix"`
}
