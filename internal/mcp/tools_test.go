package mcp

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestBuildCLIArgs(t *testing.T) {
	tests := []struct {
		name string
		tool string
		args map[string]interface{}
		want []string
	}{
		{
			name: "get tasks with query",
			tool: "tix_get_tasks",
			args: map[string]interface{}{"query": "urgent tasks due today"},
			want: []string{"tasks", "--json", "--", "urgent tasks due today"},
		},
		{
			name: "get tasks raw with limit",
			tool: "tix_get_tasks",
			args: map[string]interface{}{"query": "#Work & p1", "raw": true, "limit": float64(10)},
			want: []string{"tasks", "--raw", "--limit", "10", "--json", "--", "#Work & p1"},
		},
		{
			name: "get tasks saved filter only",
			tool: "tix_get_tasks",
			args: map[string]interface{}{"saved": "morning-review"},
			want: []string{"tasks", "--saved", "morning-review", "--json"},
		},
		{
			name: "add task with flags before positional",
			tool: "tix_add_task",
			args: map[string]interface{}{
				"content":  "Pay rent",
				"priority": "p2",
				"due":      "first of every month",
			},
			want: []string{"add", "--priority", "p2", "--due", "first of every month", "--json", "--", "Pay rent"},
		},
		{
			name: "content starting with dash survives separator",
			tool: "tix_add_task",
			args: map[string]interface{}{"content": "-draft the memo"},
			want: []string{"add", "--json", "--", "-draft the memo"},
		},
		{
			name: "update task",
			tool: "tix_update_task",
			args: map[string]interface{}{"id": "42", "due": "next monday"},
			want: []string{"update", "--due", "next monday", "--json", "--", "42"},
		},
		{
			name: "complete task",
			tool: "tix_complete_task",
			args: map[string]interface{}{"id": "42"},
			want: []string{"done", "--json", "--", "42"},
		},
		{
			name: "reopen task",
			tool: "tix_reopen_task",
			args: map[string]interface{}{"id": "42"},
			want: []string{"reopen", "--json", "--", "42"},
		},
		{
			name: "delete forces non-interactive",
			tool: "tix_delete_task",
			args: map[string]interface{}{"id": "7"},
			want: []string{"rm", "--force", "--json", "--", "7"},
		},
		{
			name: "projects list has no separator",
			tool: "tix_get_projects",
			args: nil,
			want: []string{"projects", "--json"},
		},
		{
			name: "add project with favorite",
			tool: "tix_add_project",
			args: map[string]interface{}{"name": "Chores", "favorite": true},
			want: []string{"projects", "add", "--favorite", "--json", "--", "Chores"},
		},
		{
			name: "labels list",
			tool: "tix_get_labels",
			args: nil,
			want: []string{"labels", "--json"},
		},
		{
			name: "translate filter",
			tool: "tix_translate_filter",
			args: map[string]interface{}{"query": "high priority overdue tasks"},
			want: []string{"filter", "--json", "--", "high priority overdue tasks"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := buildCLIArgs(tt.tool, tt.args)
			if !ok {
				t.Fatalf("buildCLIArgs(%q) not ok", tt.tool)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("buildCLIArgs(%q) = %v, want %v", tt.tool, got, tt.want)
			}
		})
	}
}

func TestBuildCLIArgsUnknownTool(t *testing.T) {
	if _, ok := buildCLIArgs("tix_bogus", nil); ok {
		t.Fatal("expected ok=false for unknown tool")
	}
}

func TestBuildCLIArgsJSONSeparatorOrdering(t *testing.T) {
	// Every invocation with positionals must place --json before "--"
	args, ok := buildCLIArgs("tix_get_task", map[string]interface{}{"id": "5"})
	if !ok {
		t.Fatal("buildCLIArgs not ok")
	}
	jsonIdx, sepIdx := -1, -1
	for i, a := range args {
		switch a {
		case "--json":
			jsonIdx = i
		case "--":
			sepIdx = i
		}
	}
	if jsonIdx == -1 || sepIdx == -1 || jsonIdx > sepIdx {
		t.Fatalf("expected --json before -- separator, got %v", args)
	}
}

func TestPromptsListAndGet(t *testing.T) {
	s, buf := newTestServer(nil)
	s.handleRequest(&Request{JSONRPC: "2.0", ID: 1, Method: "prompts/list"})

	var listResp struct {
		Result struct {
			Prompts []Prompt `json:"prompts"`
		} `json:"result"`
	}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &listResp); err != nil {
		t.Fatalf("parse prompts/list: %v", err)
	}

	names := make(map[string]bool)
	for _, p := range listResp.Result.Prompts {
		names[p.Name] = true
	}
	for _, want := range []string{"filter_syntax", "agent_guide"} {
		if !names[want] {
			t.Fatalf("prompts/list missing %s", want)
		}
	}

	for name, marker := range map[string]string{
		"filter_syntax": "search: paint",
		"agent_guide":   "tix_get_tasks",
	} {
		buf.Reset()
		s.handleRequest(&Request{
			JSONRPC: "2.0",
			ID:      2,
			Method:  "prompts/get",
			Params:  rawParams(t, map[string]string{"name": name}),
		})

		var getResp struct {
			Result struct {
				Messages []PromptMessage `json:"messages"`
			} `json:"result"`
			Error *RPCError `json:"error"`
		}
		if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &getResp); err != nil {
			t.Fatalf("parse prompts/get %s: %v", name, err)
		}
		if getResp.Error != nil {
			t.Fatalf("prompts/get %s error: %s", name, getResp.Error.Message)
		}
		if len(getResp.Result.Messages) != 1 {
			t.Fatalf("prompts/get %s: expected 1 message, got %d", name, len(getResp.Result.Messages))
		}
		if !strings.Contains(getResp.Result.Messages[0].Content.Text, marker) {
			t.Fatalf("prompt %s missing %q", name, marker)
		}
	}
}

func TestPromptsGetUnknown(t *testing.T) {
	s, buf := newTestServer(nil)
	s.handleRequest(&Request{
		JSONRPC: "2.0",
		ID:      3,
		Method:  "prompts/get",
		Params:  rawParams(t, map[string]string{"name": "nope"}),
	})

	resp := decodeResponse(t, buf)
	if resp.Error == nil || resp.Error.Code != -32602 {
		t.Fatalf("expected -32602 for unknown prompt, got %+v", resp.Error)
	}
}

func TestFilterSyntaxPromptEmbedsExamples(t *testing.T) {
	text := filterSyntaxPrompt()
	for _, pair := range []string{"urgent tasks due today", "p1 & today", "deadline before: Sept 5 2025"} {
		if !strings.Contains(text, pair) {
			t.Fatalf("filter syntax prompt missing %q", pair)
		}
	}
}
