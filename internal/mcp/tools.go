package mcp

import (
	"fmt"
	"strings"
)

// Tool describes an MCP tool.
type Tool struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	InputSchema InputSchema `json:"inputSchema"`
}

// InputSchema is a JSON Schema describing a tool's arguments.
type InputSchema struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties"`
	Required   []string               `json:"required,omitempty"`
}

func strProp(desc string) map[string]interface{} {
	return map[string]interface{}{"type": "string", "description": desc}
}

func boolProp(desc string) map[string]interface{} {
	return map[string]interface{}{"type": "boolean", "description": desc}
}

func intProp(desc string) map[string]interface{} {
	return map[string]interface{}{"type": "integer", "description": desc}
}

// toolSchemas returns the full tool list advertised via tools/list.
func toolSchemas() []Tool {
	return []Tool{
		{
			Name: "tix_get_tasks",
			Description: "List Todoist tasks. The query is plain natural language " +
				"(e.g. \"urgent tasks due today\") and is translated to Todoist " +
				"filter syntax automatically. Queries already in filter syntax " +
				"pass through unchanged.",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]interface{}{
					"query":   strProp("Natural-language query or Todoist filter string"),
					"raw":     boolProp("Treat query as literal filter syntax, skipping translation"),
					"saved":   strProp("Name of a saved filter to run instead of a query"),
					"project": strProp("Limit results to a project by ID"),
					"label":   strProp("Limit results to a label name"),
					"limit":   intProp("Maximum number of tasks to return"),
				},
			},
		},
		{
			Name:        "tix_get_task",
			Description: "Show a single task with its full description and metadata.",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]interface{}{
					"id": strProp("Task ID"),
				},
				Required: []string{"id"},
			},
		},
		{
			Name:        "tix_add_task",
			Description: "Create a new Todoist task.",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]interface{}{
					"content":     strProp("Task content (title)"),
					"description": strProp("Longer markdown description"),
					"project":     strProp("Project ID to file the task under"),
					"priority":    strProp("Priority p1 (highest) to p4 (lowest)"),
					"due":         strProp("Due date in natural language, e.g. \"tomorrow 9am\""),
					"deadline":    strProp("Deadline date in YYYY-MM-DD form"),
					"labels":      strProp("Comma-separated label names"),
				},
				Required: []string{"content"},
			},
		},
		{
			Name:        "tix_update_task",
			Description: "Update fields on an existing task. Only provided fields change.",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]interface{}{
					"id":          strProp("Task ID"),
					"content":     strProp("New task content"),
					"description": strProp("New description"),
					"priority":    strProp("Priority p1 (highest) to p4 (lowest)"),
					"due":         strProp("New due date in natural language"),
					"deadline":    strProp("New deadline in YYYY-MM-DD form"),
					"labels":      strProp("Comma-separated label names (replaces existing)"),
				},
				Required: []string{"id"},
			},
		},
		{
			Name:        "tix_complete_task",
			Description: "Mark a task as completed.",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]interface{}{
					"id": strProp("Task ID"),
				},
				Required: []string{"id"},
			},
		},
		{
			Name:        "tix_reopen_task",
			Description: "Reopen a previously completed task.",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]interface{}{
					"id": strProp("Task ID"),
				},
				Required: []string{"id"},
			},
		},
		{
			Name:        "tix_delete_task",
			Description: "Permanently delete a task. This cannot be undone.",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]interface{}{
					"id": strProp("Task ID"),
				},
				Required: []string{"id"},
			},
		},
		{
			Name:        "tix_get_projects",
			Description: "List all Todoist projects with their IDs.",
			InputSchema: InputSchema{
				Type:       "object",
				Properties: map[string]interface{}{},
			},
		},
		{
			Name:        "tix_add_project",
			Description: "Create a new Todoist project.",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]interface{}{
					"name":     strProp("Project name"),
					"color":    strProp("Todoist color name, e.g. \"berry_red\""),
					"favorite": boolProp("Mark the project as a favorite"),
				},
				Required: []string{"name"},
			},
		},
		{
			Name:        "tix_get_labels",
			Description: "List all Todoist labels.",
			InputSchema: InputSchema{
				Type:       "object",
				Properties: map[string]interface{}{},
			},
		},
		{
			Name: "tix_translate_filter",
			Description: "Translate a natural-language query into Todoist filter " +
				"syntax without running it. Useful for previewing what a query " +
				"will match.",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]interface{}{
					"query": strProp("Natural-language query, e.g. \"high priority overdue tasks\""),
				},
				Required: []string{"query"},
			},
		},
	}
}

// buildCLIArgs maps an MCP tool call onto a tix CLI invocation.
//
// Argument ordering standard (strictly enforced):
//  1. Command name
//  2. Flags with values (--flag value)
//  3. "--json" (always added for MCP)
//  4. "--" separator (prevents args starting with "-" from parsing as flags)
//  5. Positional arguments
//
// Returns ok=false for unknown tool names.
func buildCLIArgs(toolName string, args map[string]interface{}) ([]string, bool) {
	get := func(key string) string { return toString(args[key]) }
	getBool := func(key string) bool {
		b, _ := args[key].(bool)
		return b
	}

	var cliArgs []string
	var positional []string

	addFlag := func(flag, key string) {
		if v := get(key); v != "" {
			cliArgs = append(cliArgs, flag, v)
		}
	}

	switch toolName {
	case "tix_get_tasks":
		cliArgs = []string{"tasks"}
		if getBool("raw") {
			cliArgs = append(cliArgs, "--raw")
		}
		addFlag("--saved", "saved")
		addFlag("--project", "project")
		addFlag("--label", "label")
		addFlag("--limit", "limit")
		if q := get("query"); q != "" {
			positional = append(positional, q)
		}
	case "tix_get_task":
		cliArgs = []string{"view"}
		positional = append(positional, get("id"))
	case "tix_add_task":
		cliArgs = []string{"add"}
		addFlag("--description", "description")
		addFlag("--project", "project")
		addFlag("--priority", "priority")
		addFlag("--due", "due")
		addFlag("--deadline", "deadline")
		addFlag("--label", "labels")
		positional = append(positional, get("content"))
	case "tix_update_task":
		cliArgs = []string{"update"}
		addFlag("--content", "content")
		addFlag("--description", "description")
		addFlag("--priority", "priority")
		addFlag("--due", "due")
		addFlag("--deadline", "deadline")
		addFlag("--label", "labels")
		positional = append(positional, get("id"))
	case "tix_complete_task":
		cliArgs = []string{"done"}
		positional = append(positional, get("id"))
	case "tix_reopen_task":
		cliArgs = []string{"reopen"}
		positional = append(positional, get("id"))
	case "tix_delete_task":
		// MCP callers cannot answer an interactive prompt
		cliArgs = []string{"rm", "--force"}
		positional = append(positional, get("id"))
	case "tix_get_projects":
		cliArgs = []string{"projects"}
	case "tix_add_project":
		cliArgs = []string{"projects", "add"}
		addFlag("--color", "color")
		if getBool("favorite") {
			cliArgs = append(cliArgs, "--favorite")
		}
		positional = append(positional, get("name"))
	case "tix_get_labels":
		cliArgs = []string{"labels"}
	case "tix_translate_filter":
		cliArgs = []string{"filter"}
		positional = append(positional, get("query"))
	default:
		return nil, false
	}

	cliArgs = append(cliArgs, "--json")
	if len(positional) > 0 {
		cliArgs = append(cliArgs, "--")
		for _, p := range positional {
			if strings.TrimSpace(p) != "" {
				cliArgs = append(cliArgs, p)
			}
		}
	}

	return cliArgs, true
}

func toString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		// JSON numbers decode as float64; render integers without a decimal point
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%v", val)
	default:
		return ""
	}
}
