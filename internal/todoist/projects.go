package todoist

import (
	"context"
	"fmt"
	"net/http"
)

// Project is a Todoist project.
type Project struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Color          string `json:"color,omitempty"`
	ParentID       string `json:"parent_id,omitempty"`
	Order          int    `json:"order,omitempty"`
	IsShared       bool   `json:"is_shared,omitempty"`
	IsFavorite     bool   `json:"is_favorite,omitempty"`
	IsInboxProject bool   `json:"is_inbox_project,omitempty"`
	ViewStyle      string `json:"view_style,omitempty"`
	URL            string `json:"url,omitempty"`
}

// ListProjects returns all projects.
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var projects []Project
	if err := c.do(ctx, http.MethodGet, "/projects", nil, nil, &projects); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// ProjectArgs carries the writable project fields.
type ProjectArgs struct {
	Name       string `json:"name"`
	ParentID   string `json:"parent_id,omitempty"`
	Color      string `json:"color,omitempty"`
	IsFavorite bool   `json:"is_favorite,omitempty"`
}

// CreateProject creates a project.
func (c *Client) CreateProject(ctx context.Context, args ProjectArgs) (*Project, error) {
	var project Project
	if err := c.do(ctx, http.MethodPost, "/projects", nil, args, &project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return &project, nil
}
