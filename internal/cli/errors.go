// Package cli implements the command-line interface.
package cli

// Error codes for structured error responses.
// These codes are stable and can be relied upon by agents.
const (
	// Auth and config errors
	ErrAuth          = "AUTH"
	ErrConfigInvalid = "CONFIG_INVALID"

	// API errors
	ErrAPIError = "API_ERROR"
	ErrNotFound = "NOT_FOUND"

	// Input errors
	ErrInvalidInput    = "INVALID_INPUT"
	ErrMissingArgument = "MISSING_ARGUMENT"

	// Saved filter errors
	ErrFilterNotFound = "FILTER_NOT_FOUND"
	ErrFilterInvalid  = "FILTER_INVALID"

	// Cache errors
	ErrCacheError = "CACHE_ERROR"

	// MCP client integration errors
	ErrMCPClientInvalid    = "MCP_CLIENT_INVALID"
	ErrMCPConfigWriteError = "MCP_CONFIG_WRITE_ERROR"

	// General errors
	ErrInternal = "INTERNAL_ERROR"
)

// Warning codes for non-fatal issues.
const (
	WarnCacheUnavailable = "CACHE_UNAVAILABLE"
)
