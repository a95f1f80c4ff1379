package mcp

// getAgentGuide returns the embedded agent guide content.
// This guide helps AI agents understand how to effectively use tix.
func getAgentGuide() string {
	return `# tix Agent Guide

This guide helps AI agents manage a user's Todoist tasks through tix.

## Core Concepts

**tix** is a Todoist CLI with natural-language filter translation:
- **Tasks**: The unit of work. Each has an ID, content, optional description,
  priority (p1 highest .. p4 lowest), due date, deadline, labels, and project.
- **Projects**: Containers for tasks, referenced in filters as #ProjectName.
- **Labels**: Cross-project tags, referenced in filters as @label.
- **Filters**: Todoist query strings. tix_get_tasks accepts plain natural
  language and translates it, so you rarely need to write filter syntax.

## Key Workflows

### 1. Finding Tasks

Prefer natural language; the query is translated automatically:

    tix_get_tasks(query="urgent tasks due today")
    tix_get_tasks(query="high priority overdue tasks")
    tix_get_tasks(query="tasks that mention invoice")

For exact filter control, pass filter syntax (it passes through unchanged)
or set raw=true:

    tix_get_tasks(query="#Work & p1")
    tix_get_tasks(query="(today | overdue) & @email", raw=true)

Use tix_translate_filter to preview a translation without running it.

### 2. Creating Tasks

    tix_add_task(content="Pay rent", due="first of every month", priority="p2")

- Due dates accept natural language ("tomorrow 9am", "every friday").
- Deadlines are distinct from due dates and take YYYY-MM-DD form.
- To file under a project, list projects first to find the ID:
  tix_get_projects() then tix_add_task(content="...", project="<id>")

### 3. Completing and Updating

1. Find the task ID with tix_get_tasks
2. tix_complete_task(id="...") to finish it
3. tix_update_task(id="...", due="next monday") to reschedule
4. tix_reopen_task(id="...") if it was completed by mistake

### 4. Deleting

tix_delete_task permanently deletes a task. Confirm with the user before
calling it; completing (tix_complete_task) is usually what they want.

## Output Format

Every tool returns a JSON envelope:

    {"ok": true, "data": {...}, "warnings": [...], "meta": {...}}

On failure, "ok" is false and "error" holds {"code", "message"}. Relay the
message to the user; do not retry blindly on AUTH or NOT_FOUND errors.

## Tips

- Task IDs are opaque strings; never invent them.
- Priority in tool arguments is the user scale: p1 is most urgent.
- Results may be served from a short-lived local cache; mutations
  invalidate it automatically.
`
}
