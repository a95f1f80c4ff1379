package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/natemoore/tix/internal/todoist"
	"github.com/natemoore/tix/internal/ui"
)

var viewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show a single task in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		client, err := apiClient()
		if err != nil {
			return handleError(ErrAuth, err, tokenSuggestion)
		}

		c, warnings := openCache()
		if c != nil {
			defer c.Close()
		}

		var task todoist.Task
		cached, err := cachedFetch(c, "task:"+id, &task, func() (interface{}, error) {
			return client.GetTask(cmd.Context(), id)
		})
		if err != nil {
			return handleError(ErrNotFound, err, "Run 'tix tasks' to list task IDs")
		}

		if isJSONOutput() {
			outputSuccessWithWarnings(map[string]interface{}{"task": task}, warnings, &Meta{Cached: cached})
			return nil
		}

		fmt.Fprintln(stdout, ui.Header(task.Content))
		fmt.Fprintln(stdout, taskLine(task))
		if task.URL != "" {
			fmt.Fprintln(stdout, ui.Hint(task.URL))
		}

		if task.Description != "" {
			display := ui.NewDisplayContext()
			rendered, err := ui.RenderMarkdown(task.Description, display.TermWidth)
			if err != nil {
				// Fall back to the raw text rather than failing the command
				rendered = task.Description + "\n"
			}
			fmt.Fprintf(stdout, "\n%s", rendered)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
