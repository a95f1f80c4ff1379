package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/natemoore/tix/internal/cache"
	"github.com/natemoore/tix/internal/todoist"
	"github.com/natemoore/tix/internal/ui"
)

const tokenSuggestion = "Set TODOIST_API_TOKEN, pass --token, or add api_token to the config file (Todoist: Settings -> Integrations -> Developer)"

// apiClient builds a Todoist client from the resolved token and config.
func apiClient() (*todoist.Client, error) {
	token := getConfig().ResolveToken(tokenFlag)
	if token == "" {
		return nil, fmt.Errorf("no Todoist API token configured")
	}
	return todoist.New(todoist.Options{
		Token:   token,
		BaseURL: getConfig().BaseURL,
	}), nil
}

// openCache opens the response cache, or returns nil when caching is
// disabled (config or --no-cache). Cache failures never fail the command.
func openCache() (*cache.Cache, []Warning) {
	if noCacheFlag || !getConfig().Cache.Enabled {
		return nil, nil
	}
	c, err := cache.Open(getConfig().CachePath())
	if err != nil {
		return nil, []Warning{{
			Code:    WarnCacheUnavailable,
			Message: fmt.Sprintf("cache unavailable: %v", err),
		}}
	}
	return c, nil
}

// cachedFetch reads key from the cache, falling back to fetch and storing
// the result. Returns whether the value came from the cache.
func cachedFetch(c *cache.Cache, key string, out interface{}, fetch func() (interface{}, error)) (bool, error) {
	if c != nil {
		if raw, ok, err := c.Get(key); err == nil && ok {
			if json.Unmarshal(raw, out) == nil {
				return true, nil
			}
			// Unreadable entry; drop it and refetch.
			_ = c.DeletePrefix(key)
		}
	}

	fresh, err := fetch()
	if err != nil {
		return false, err
	}

	raw, err := json.Marshal(fresh)
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, err
	}

	if c != nil {
		_ = c.Put(key, raw, getConfig().CacheTTL())
	}
	return false, nil
}

// invalidateCache drops cached listings under the given prefixes after a
// mutation. A nil cache or delete failure is ignored.
func invalidateCache(prefixes ...string) {
	c, _ := openCache()
	if c == nil {
		return
	}
	defer c.Close()
	for _, p := range prefixes {
		_ = c.DeletePrefix(p)
	}
}

// parsePriority accepts "p1".."p4" or "1".."4" (1 is most urgent) and
// returns the API-scale priority.
func parsePriority(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "p")
	level, err := strconv.Atoi(s)
	if err != nil || level < 1 || level > 4 {
		return 0, fmt.Errorf("invalid priority %q (use p1..p4)", s)
	}
	return todoist.PriorityFromLevel(level), nil
}

// parseLabels splits a comma-separated label list.
func parseLabels(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var labels []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			labels = append(labels, part)
		}
	}
	return labels
}

// taskLine renders one task for list output.
func taskLine(t todoist.Task) string {
	var b strings.Builder

	prio := fmt.Sprintf("p%d", todoist.LevelFromPriority(t.Priority))
	if todoist.LevelFromPriority(t.Priority) == 1 {
		b.WriteString(ui.AccentBold.Render(prio))
	} else {
		b.WriteString(ui.Muted.Render(prio))
	}
	b.WriteString(" ")
	b.WriteString(t.Content)

	if t.Due != nil {
		b.WriteString(" ")
		b.WriteString(ui.Muted.Render("due " + dueLabel(t.Due)))
	}
	if t.Deadline != nil && t.Deadline.Date != "" {
		b.WriteString(" ")
		b.WriteString(ui.Muted.Render("deadline " + t.Deadline.Date))
	}
	for _, label := range t.Labels {
		b.WriteString(" ")
		b.WriteString(ui.Accent.Render("@" + label))
	}

	b.WriteString("  ")
	b.WriteString(ui.Muted.Render("(" + t.ID + ")"))
	return b.String()
}

// dueLabel prefers the human-readable due string when the API provides one.
func dueLabel(due *todoist.Due) string {
	if due.String != "" {
		return due.String
	}
	if due.Datetime != "" {
		if ts, err := time.Parse(time.RFC3339, due.Datetime); err == nil {
			return ts.Format("2006-01-02 15:04")
		}
		return due.Datetime
	}
	return due.Date
}
