package todoist

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Task is a Todoist task.
type Task struct {
	ID          string    `json:"id"`
	Content     string    `json:"content"`
	Description string    `json:"description,omitempty"`
	ProjectID   string    `json:"project_id,omitempty"`
	SectionID   string    `json:"section_id,omitempty"`
	ParentID    string    `json:"parent_id,omitempty"`
	Order       int       `json:"order,omitempty"`
	Priority    int       `json:"priority,omitempty"` // API scale: 4 is highest
	Labels      []string  `json:"labels,omitempty"`
	Due         *Due      `json:"due,omitempty"`
	Deadline    *Deadline `json:"deadline,omitempty"`
	URL         string    `json:"url,omitempty"`
	IsCompleted bool      `json:"is_completed,omitempty"`
	CreatedAt   string    `json:"created_at,omitempty"`
}

// Due is a task due date.
type Due struct {
	Date        string `json:"date,omitempty"`
	Datetime    string `json:"datetime,omitempty"`
	String      string `json:"string,omitempty"`
	IsRecurring bool   `json:"is_recurring,omitempty"`
	Timezone    string `json:"timezone,omitempty"`
}

// Deadline is a task deadline (distinct from the due date).
type Deadline struct {
	Date string `json:"date,omitempty"`
}

// PriorityFromLevel converts the user-facing p1..p4 scale (1 is highest) to
// the API scale (4 is highest). Out-of-range levels clamp to p4.
func PriorityFromLevel(level int) int {
	if level < 1 || level > 4 {
		return 1
	}
	return 5 - level
}

// LevelFromPriority converts the API priority scale back to p1..p4.
func LevelFromPriority(priority int) int {
	if priority < 1 || priority > 4 {
		return 4
	}
	return 5 - priority
}

// ListTasksOptions narrows a task listing. Filter is forwarded verbatim as
// the API filter query; callers translate natural language first.
type ListTasksOptions struct {
	Filter    string
	ProjectID string
	Label     string
}

// ListTasks returns active tasks matching opts.
func (c *Client) ListTasks(ctx context.Context, opts ListTasksOptions) ([]Task, error) {
	query := url.Values{}
	if opts.Filter != "" {
		query.Set("filter", opts.Filter)
	}
	if opts.ProjectID != "" {
		query.Set("project_id", opts.ProjectID)
	}
	if opts.Label != "" {
		query.Set("label", opts.Label)
	}

	var tasks []Task
	if err := c.do(ctx, http.MethodGet, "/tasks", query, nil, &tasks); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// GetTask returns a single active task.
func (c *Client) GetTask(ctx context.Context, id string) (*Task, error) {
	var task Task
	if err := c.do(ctx, http.MethodGet, "/tasks/"+id, nil, nil, &task); err != nil {
		return nil, fmt.Errorf("get task %s: %w", id, err)
	}
	return &task, nil
}

// TaskArgs carries the writable task fields for create and update calls.
// Nil/zero fields are omitted and left untouched by the API.
type TaskArgs struct {
	Content      string   `json:"content,omitempty"`
	Description  string   `json:"description,omitempty"`
	ProjectID    string   `json:"project_id,omitempty"`
	Priority     int      `json:"priority,omitempty"` // API scale
	DueString    string   `json:"due_string,omitempty"`
	DeadlineDate string   `json:"deadline_date,omitempty"`
	Labels       []string `json:"labels,omitempty"`
}

// CreateTask creates a task and returns the API's view of it.
func (c *Client) CreateTask(ctx context.Context, args TaskArgs) (*Task, error) {
	var task Task
	if err := c.do(ctx, http.MethodPost, "/tasks", nil, args, &task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return &task, nil
}

// UpdateTask applies args to an existing task.
func (c *Client) UpdateTask(ctx context.Context, id string, args TaskArgs) (*Task, error) {
	var task Task
	if err := c.do(ctx, http.MethodPost, "/tasks/"+id, nil, args, &task); err != nil {
		return nil, fmt.Errorf("update task %s: %w", id, err)
	}
	return &task, nil
}

// CloseTask completes a task.
func (c *Client) CloseTask(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodPost, "/tasks/"+id+"/close", nil, nil, nil); err != nil {
		return fmt.Errorf("close task %s: %w", id, err)
	}
	return nil
}

// ReopenTask reopens a completed task.
func (c *Client) ReopenTask(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodPost, "/tasks/"+id+"/reopen", nil, nil, nil); err != nil {
		return fmt.Errorf("reopen task %s: %w", id, err)
	}
	return nil
}

// DeleteTask permanently deletes a task.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/tasks/"+id, nil, nil, nil); err != nil {
		return fmt.Errorf("delete task %s: %w", id, err)
	}
	return nil
}
