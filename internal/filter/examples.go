package filter

// Example is a documented translation pair.
type Example struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// Examples returns documented sample translations. The values are literal
// and stable, feeding help text, MCP prompt generation, and tests without
// consulting the catalog at call time.
func Examples() []Example {
	return []Example{
		{"urgent tasks due today", "p1 & today"},
		{"tasks that mention paint and are due this week", "7 days & search: paint"},
		{"high priority overdue tasks", "p2 & overdue"},
		{"work project tasks", "#Work"},
		{"deadline before Sept 5 2025", "deadline before: Sept 5 2025"},
		{"paint", "search: paint"},
		{"#Work & p1", "#Work & p1"},
	}
}
