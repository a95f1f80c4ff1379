package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/natemoore/tix/internal/ui"
)

var rmForceFlag bool

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a task permanently",
	Long: `Delete a task permanently. This cannot be undone; completing a task
with 'tix done' is usually what you want.

Prompts for confirmation on a terminal unless --force is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		if !rmForceFlag {
			if !promptForConfirm(fmt.Sprintf("Permanently delete task %s?", id)) {
				return handleErrorMsg(ErrInvalidInput, "deletion not confirmed (use --force to skip the prompt)", "")
			}
		}

		client, err := apiClient()
		if err != nil {
			return handleError(ErrAuth, err, tokenSuggestion)
		}

		if err := client.DeleteTask(cmd.Context(), id); err != nil {
			return handleError(ErrAPIError, err, "")
		}

		invalidateCache("tasks:", "task:"+id)

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"id": id, "deleted": true}, nil)
			return nil
		}
		fmt.Fprintln(stdout, ui.Successf("Deleted task %s", id))
		return nil
	},
}

func init() {
	rmCmd.Flags().BoolVarP(&rmForceFlag, "force", "f", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(rmCmd)
}
