package mcp

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/natemoore/tix/internal/filter"
)

// Prompt describes an MCP prompt.
type Prompt struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// PromptMessage is a single message in a prompt result.
type PromptMessage struct {
	Role    string        `json:"role"`
	Content PromptContent `json:"content"`
}

// PromptContent is the content of a prompt message.
type PromptContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func promptSchemas() []Prompt {
	return []Prompt{
		{
			Name: "filter_syntax",
			Description: "Reference for Todoist filter syntax and how tix translates " +
				"natural language into it. Use before composing raw filter queries.",
		},
		{
			Name:        "agent_guide",
			Description: "Guide for managing Todoist tasks effectively through tix tools.",
		},
	}
}

func (s *Server) handlePromptsGet(req *Request) {
	var params struct {
		Name string `json:"name"`
	}
	if req.Params != nil {
		if err := json.Unmarshal(*req.Params, &params); err != nil {
			s.sendError(req.ID, -32602, "Invalid params", err.Error())
			return
		}
	}

	var text string
	switch params.Name {
	case "filter_syntax":
		text = filterSyntaxPrompt()
	case "agent_guide":
		text = getAgentGuide()
	default:
		s.sendError(req.ID, -32602, "Unknown prompt", params.Name)
		return
	}

	s.sendResult(req.ID, map[string]interface{}{
		"messages": []PromptMessage{
			{
				Role:    "user",
				Content: PromptContent{Type: "text", Text: text},
			},
		},
	})
}

// filterSyntaxPrompt renders the filter reference, including the same
// worked examples the translation engine is built around.
func filterSyntaxPrompt() string {
	var b strings.Builder

	b.WriteString(`# Todoist Filter Syntax

tix accepts plain natural language in task queries and translates it to
Todoist filter syntax. You can also write filter syntax directly; queries
containing filter operators pass through unchanged.

## Operators

- "p1" .. "p4": priority, p1 is highest
- "today", "tomorrow", "overdue", "7 days": due dates
- "#ProjectName": tasks in a project
- "@label": tasks with a label
- "deadline before: <date>", "deadline after: <date>", "deadline: <date>"
- "no deadline", "no date", "no priority"
- "search: <text>": full-text search
- "&" combines conditions (AND), "|" is OR

## Translation examples

`)

	for _, ex := range filter.Examples() {
		fmt.Fprintf(&b, "- %q -> %q\n", ex.Input, ex.Output)
	}

	return b.String()
}
