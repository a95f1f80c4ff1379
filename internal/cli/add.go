package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/natemoore/tix/internal/dates"
	"github.com/natemoore/tix/internal/todoist"
	"github.com/natemoore/tix/internal/ui"
)

var (
	addDescriptionFlag string
	addProjectFlag     string
	addPriorityFlag    string
	addDueFlag         string
	addDeadlineFlag    string
	addLabelFlag       string
)

var addCmd = &cobra.Command{
	Use:   "add <content...>",
	Short: "Create a task",
	Long: `Create a task.

Due dates accept Todoist natural language; deadlines take YYYY-MM-DD.

Examples:
  tix add Pay rent --due "first of every month" --priority p2
  tix add Ship the report --deadline 2026-09-05 --label work,writing`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content := strings.TrimSpace(strings.Join(args, " "))
		if content == "" {
			return handleErrorMsg(ErrMissingArgument, "task content is required", "")
		}

		deadline, err := dates.ResolveDeadline(addDeadlineFlag, time.Now())
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}

		taskArgs := todoist.TaskArgs{
			Content:      content,
			Description:  addDescriptionFlag,
			ProjectID:    addProjectFlag,
			DueString:    addDueFlag,
			DeadlineDate: deadline,
			Labels:       parseLabels(addLabelFlag),
		}
		if addPriorityFlag != "" {
			priority, err := parsePriority(addPriorityFlag)
			if err != nil {
				return handleError(ErrInvalidInput, err, "")
			}
			taskArgs.Priority = priority
		}

		client, err := apiClient()
		if err != nil {
			return handleError(ErrAuth, err, tokenSuggestion)
		}

		task, err := client.CreateTask(cmd.Context(), taskArgs)
		if err != nil {
			return handleError(ErrAPIError, err, "")
		}

		invalidateCache("tasks:")

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"task": task}, nil)
			return nil
		}

		fmt.Fprintln(stdout, ui.Successf("Added task %s", task.ID))
		fmt.Fprintln(stdout, taskLine(*task))
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addDescriptionFlag, "description", "d", "", "Longer markdown description")
	addCmd.Flags().StringVar(&addProjectFlag, "project", "", "Project ID to file the task under")
	addCmd.Flags().StringVarP(&addPriorityFlag, "priority", "p", "", "Priority p1 (highest) to p4 (lowest)")
	addCmd.Flags().StringVar(&addDueFlag, "due", "", "Due date in natural language")
	addCmd.Flags().StringVar(&addDeadlineFlag, "deadline", "", "Deadline date (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&addLabelFlag, "label", "", "Comma-separated label names")
	rootCmd.AddCommand(addCmd)
}
