package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/natemoore/tix/internal/dates"
	"github.com/natemoore/tix/internal/todoist"
	"github.com/natemoore/tix/internal/ui"
)

var (
	updateContentFlag     string
	updateDescriptionFlag string
	updatePriorityFlag    string
	updateDueFlag         string
	updateDeadlineFlag    string
	updateLabelFlag       string
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields on a task",
	Long: `Update fields on a task. Only the provided flags change.

Examples:
  tix update 8675309 --due "next monday"
  tix update 8675309 --priority p1 --label urgent,work`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		deadline, err := dates.ResolveDeadline(updateDeadlineFlag, time.Now())
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}

		taskArgs := todoist.TaskArgs{
			Content:      updateContentFlag,
			Description:  updateDescriptionFlag,
			DueString:    updateDueFlag,
			DeadlineDate: deadline,
			Labels:       parseLabels(updateLabelFlag),
		}
		if updatePriorityFlag != "" {
			priority, err := parsePriority(updatePriorityFlag)
			if err != nil {
				return handleError(ErrInvalidInput, err, "")
			}
			taskArgs.Priority = priority
		}

		if taskArgs.Content == "" && taskArgs.Description == "" && taskArgs.Priority == 0 &&
			taskArgs.DueString == "" && taskArgs.DeadlineDate == "" && len(taskArgs.Labels) == 0 {
			return handleErrorMsg(ErrMissingArgument, "nothing to update; pass at least one field flag", "")
		}

		client, err := apiClient()
		if err != nil {
			return handleError(ErrAuth, err, tokenSuggestion)
		}

		task, err := client.UpdateTask(cmd.Context(), id, taskArgs)
		if err != nil {
			return handleError(ErrAPIError, err, "")
		}

		invalidateCache("tasks:", "task:"+id)

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"task": task}, nil)
			return nil
		}

		fmt.Fprintln(stdout, ui.Successf("Updated task %s", task.ID))
		fmt.Fprintln(stdout, taskLine(*task))
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateContentFlag, "content", "", "New task content")
	updateCmd.Flags().StringVarP(&updateDescriptionFlag, "description", "d", "", "New description")
	updateCmd.Flags().StringVarP(&updatePriorityFlag, "priority", "p", "", "Priority p1 (highest) to p4 (lowest)")
	updateCmd.Flags().StringVar(&updateDueFlag, "due", "", "New due date in natural language")
	updateCmd.Flags().StringVar(&updateDeadlineFlag, "deadline", "", "New deadline date (YYYY-MM-DD)")
	updateCmd.Flags().StringVar(&updateLabelFlag, "label", "", "Comma-separated label names (replaces existing)")
	rootCmd.AddCommand(updateCmd)
}
