// Package mcp provides an MCP (Model Context Protocol) server for tix.
// MCP enables LLM agents to manage Todoist tasks through a standardized protocol.
package mcp

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Runner executes one tix CLI invocation and returns its combined output.
// Injectable so tests can fake the CLI.
type Runner func(args []string) ([]byte, error)

// Server is an MCP server that wraps tix CLI commands.
type Server struct {
	in     io.Reader
	out    io.Writer
	runner Runner
}

// Request represents a JSON-RPC 2.0 request.
type Request struct {
	JSONRPC string           `json:"jsonrpc"`
	ID      interface{}      `json:"id,omitempty"`
	Method  string           `json:"method"`
	Params  *json.RawMessage `json:"params,omitempty"`
}

// Response represents a JSON-RPC 2.0 response.
type Response struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id,omitempty"`
	Result  interface{} `json:"result,omitempty"`
	Error   *RPCError   `json:"error,omitempty"`
}

// RPCError represents a JSON-RPC 2.0 error.
type RPCError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ServerInfo contains server capability information.
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ServerCapabilities defines what the server can do.
type ServerCapabilities struct {
	Tools   *ToolsCapability   `json:"tools,omitempty"`
	Prompts *PromptsCapability `json:"prompts,omitempty"`
}

// ToolsCapability indicates tool support.
type ToolsCapability struct {
	ListChanged bool `json:"listChanged,omitempty"`
}

// PromptsCapability indicates prompt support.
type PromptsCapability struct {
	ListChanged bool `json:"listChanged,omitempty"`
}

// ToolResult represents the result of a tool call.
type ToolResult struct {
	Content []ToolContent `json:"content"`
	IsError bool          `json:"isError,omitempty"`
}

// ToolContent represents content in a tool result.
type ToolContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// NewServer creates a new MCP server speaking over stdin/stdout.
func NewServer() *Server {
	// Resolve the current executable so tool calls re-enter the CLI
	executable, err := os.Executable()
	if err != nil {
		// Fall back to "tix" and hope it's in PATH
		executable = "tix"
	}

	return &Server{
		in:  os.Stdin,
		out: os.Stdout,
		runner: func(args []string) ([]byte, error) {
			return exec.Command(executable, args...).CombinedOutput()
		},
	}
}

// Run starts the MCP server's main loop.
func (s *Server) Run() error {
	scanner := bufio.NewScanner(s.in)
	// MCP uses line-delimited JSON
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024) // 1MB buffer

	// Log startup to stderr (not stdout which is for protocol)
	fmt.Fprintln(os.Stderr, "[tix-mcp] Server starting")

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		var req Request
		if err := json.Unmarshal([]byte(line), &req); err != nil {
			fmt.Fprintln(os.Stderr, "[tix-mcp] Parse error:", err)
			s.sendError(nil, -32700, "Parse error", err.Error())
			continue
		}

		s.handleRequest(&req)
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "[tix-mcp] Scanner error:", err)
		return err
	}

	fmt.Fprintln(os.Stderr, "[tix-mcp] Server shutting down")
	return nil
}

func (s *Server) handleRequest(req *Request) {
	// A request without an ID is a notification: no response expected
	isNotification := req.ID == nil

	switch req.Method {
	case "initialize":
		s.handleInitialize(req)
	case "initialized", "notifications/initialized":
		return
	case "tools/list":
		s.sendResult(req.ID, map[string]interface{}{"tools": toolSchemas()})
	case "tools/call":
		s.handleToolsCall(req)
	case "prompts/list":
		s.sendResult(req.ID, map[string]interface{}{"prompts": promptSchemas()})
	case "prompts/get":
		s.handlePromptsGet(req)
	case "ping":
		s.sendResult(req.ID, map[string]interface{}{})
	case "notifications/cancelled":
		return
	default:
		if !isNotification {
			s.sendError(req.ID, -32601, "Method not found", req.Method)
		}
	}
}

func (s *Server) handleInitialize(req *Request) {
	result := map[string]interface{}{
		"protocolVersion": "2024-11-05",
		"capabilities": ServerCapabilities{
			Tools:   &ToolsCapability{},
			Prompts: &PromptsCapability{},
		},
		"serverInfo": ServerInfo{
			Name:    "tix-mcp",
			Version: "0.1.0",
		},
	}
	s.sendResult(req.ID, result)
}

func (s *Server) handleToolsCall(req *Request) {
	var params struct {
		Name      string                 `json:"name"`
		Arguments map[string]interface{} `json:"arguments"`
	}

	if req.Params != nil {
		if err := json.Unmarshal(*req.Params, &params); err != nil {
			s.sendError(req.ID, -32602, "Invalid params", err.Error())
			return
		}
	}

	result, isError := s.callTool(params.Name, params.Arguments)
	s.sendResult(req.ID, ToolResult{
		Content: []ToolContent{{Type: "text", Text: result}},
		IsError: isError,
	})
}

func (s *Server) callTool(name string, args map[string]interface{}) (string, bool) {
	cmdArgs, ok := buildCLIArgs(name, args)
	if !ok {
		return fmt.Sprintf(`{"ok":false,"error":{"code":"UNKNOWN_TOOL","message":"Unknown tool: %s"}}`, name), true
	}

	fmt.Fprintf(os.Stderr, "[tix-mcp] Executing: tix %v\n", cmdArgs)

	output, err := s.runner(cmdArgs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[tix-mcp] Command error: %v, output: %s\n", err, string(output))
		// The CLI emits a JSON error envelope on failure; pass it through
		var parsed map[string]interface{}
		if json.Unmarshal(output, &parsed) == nil && len(output) > 0 {
			return string(output), true
		}
		detail, _ := json.Marshal(map[string]interface{}{
			"ok": false,
			"error": map[string]interface{}{
				"code":    "EXECUTION_ERROR",
				"message": err.Error(),
				"details": map[string]string{"output": string(output)},
			},
		})
		return string(detail), true
	}

	// The CLI can report failure in the envelope while exiting 0
	var envelope struct {
		OK *bool `json:"ok"`
	}
	if json.Unmarshal(output, &envelope) == nil && envelope.OK != nil && !*envelope.OK {
		return string(output), true
	}

	return string(output), false
}

func (s *Server) sendResult(id interface{}, result interface{}) {
	s.send(Response{
		JSONRPC: "2.0",
		ID:      id,
		Result:  result,
	})
}

func (s *Server) sendError(id interface{}, code int, message, data string) {
	s.send(Response{
		JSONRPC: "2.0",
		ID:      id,
		Error: &RPCError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	})
}

func (s *Server) send(v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	fmt.Fprintln(s.out, string(data))
}
