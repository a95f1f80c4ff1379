package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/natemoore/tix/internal/filter"
	"github.com/natemoore/tix/internal/store"
	"github.com/natemoore/tix/internal/todoist"
	"github.com/natemoore/tix/internal/ui"
)

var (
	tasksRawFlag     bool
	tasksSavedFlag   string
	tasksProjectFlag string
	tasksLabelFlag   string
	tasksLimitFlag   int
)

var tasksCmd = &cobra.Command{
	Use:   "tasks [query...]",
	Short: "List tasks matching a natural-language query",
	Long: `List tasks matching a query.

The query is plain natural language and is translated to Todoist filter
syntax before running. Queries already in filter syntax pass through
unchanged.

Examples:
  tix tasks urgent tasks due today
  tix tasks "tasks that mention paint and are due this week"
  tix tasks "#Work & p1"                 # filter syntax, passes through
  tix tasks --raw "(today | overdue)"    # skip translation entirely
  tix tasks --saved morning-review       # run a saved filter by name
  tix tasks                              # no query: everything due today or overdue`,
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.TrimSpace(strings.Join(args, " "))

		filterQuery, err := resolveTaskFilter(query)
		if err != nil {
			return handleError(ErrFilterNotFound, err, "Run 'tix filter list' to see saved filters")
		}

		client, err := apiClient()
		if err != nil {
			return handleError(ErrAuth, err, tokenSuggestion)
		}

		c, warnings := openCache()
		if c != nil {
			defer c.Close()
		}

		key := taskCacheKey(filterQuery, tasksProjectFlag, tasksLabelFlag)
		var tasks []todoist.Task
		cached, err := cachedFetch(c, key, &tasks, func() (interface{}, error) {
			return client.ListTasks(cmd.Context(), todoist.ListTasksOptions{
				Filter:    filterQuery,
				ProjectID: tasksProjectFlag,
				Label:     tasksLabelFlag,
			})
		})
		if err != nil {
			return handleError(ErrAPIError, err, "")
		}

		if tasksLimitFlag > 0 && len(tasks) > tasksLimitFlag {
			tasks = tasks[:tasksLimitFlag]
		}

		if isJSONOutput() {
			outputSuccessWithWarnings(map[string]interface{}{
				"tasks":  tasks,
				"filter": filterQuery,
			}, warnings, &Meta{Count: len(tasks), Filter: filterQuery, Cached: cached})
			return nil
		}

		if filterQuery != "" {
			fmt.Fprintf(stdout, "%s %s\n\n", ui.Hint("filter:"), ui.FilterString(filterQuery))
		}
		if len(tasks) == 0 {
			fmt.Fprintln(stdout, ui.Hint("No tasks found."))
			return nil
		}
		for _, t := range tasks {
			fmt.Fprintln(stdout, taskLine(t))
		}
		fmt.Fprintf(stdout, "\n%s\n", ui.Hint(fmt.Sprintf("%d task(s)", len(tasks))))
		return nil
	},
}

// resolveTaskFilter turns the command input into the filter string to send
// to the API: a saved filter by name, the raw query, or the translation.
func resolveTaskFilter(query string) (string, error) {
	if tasksSavedFlag != "" {
		saved, found, err := store.New(store.DefaultPath()).Get(tasksSavedFlag)
		if err != nil {
			return "", err
		}
		if !found {
			return "", fmt.Errorf("saved filter %q not found", tasksSavedFlag)
		}
		return saved.Query, nil
	}

	if query == "" {
		// Sensible default view
		return "today | overdue", nil
	}
	if tasksRawFlag {
		return query, nil
	}
	return filter.Format(query), nil
}

func taskCacheKey(filterQuery, projectID, label string) string {
	return "tasks:" + filterQuery + "|p=" + projectID + "|l=" + label
}

func init() {
	tasksCmd.Flags().BoolVar(&tasksRawFlag, "raw", false, "Treat the query as literal filter syntax")
	tasksCmd.Flags().StringVar(&tasksSavedFlag, "saved", "", "Run a saved filter by name")
	tasksCmd.Flags().StringVar(&tasksProjectFlag, "project", "", "Limit to a project by ID")
	tasksCmd.Flags().StringVar(&tasksLabelFlag, "label", "", "Limit to a label name")
	tasksCmd.Flags().IntVar(&tasksLimitFlag, "limit", 0, "Maximum number of tasks to show")
	rootCmd.AddCommand(tasksCmd)
}
