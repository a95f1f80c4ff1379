package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/natemoore/tix/internal/ui"
)

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Complete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		client, err := apiClient()
		if err != nil {
			return handleError(ErrAuth, err, tokenSuggestion)
		}

		if err := client.CloseTask(cmd.Context(), id); err != nil {
			return handleError(ErrAPIError, err, "")
		}

		invalidateCache("tasks:", "task:"+id)

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"id": id, "completed": true}, nil)
			return nil
		}
		fmt.Fprintln(stdout, ui.Successf("Completed task %s", id))
		return nil
	},
}

var reopenCmd = &cobra.Command{
	Use:   "reopen <id>",
	Short: "Reopen a completed task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		client, err := apiClient()
		if err != nil {
			return handleError(ErrAuth, err, tokenSuggestion)
		}

		if err := client.ReopenTask(cmd.Context(), id); err != nil {
			return handleError(ErrAPIError, err, "")
		}

		invalidateCache("tasks:", "task:"+id)

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"id": id, "completed": false}, nil)
			return nil
		}
		fmt.Fprintln(stdout, ui.Successf("Reopened task %s", id))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(reopenCmd)
}
