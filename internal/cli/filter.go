package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/natemoore/tix/internal/filter"
	"github.com/natemoore/tix/internal/shellquote"
	"github.com/natemoore/tix/internal/store"
	"github.com/natemoore/tix/internal/ui"
)

var filterExamplesFlag bool

var filterCmd = &cobra.Command{
	Use:   "filter [query...]",
	Short: "Translate a natural-language query to filter syntax",
	Long: `Translate a natural-language query into Todoist filter syntax without
running it.

Examples:
  tix filter urgent tasks due today        # p1 & today
  tix filter high priority overdue tasks   # p2 & overdue
  tix filter --examples                    # show translation examples`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if filterExamplesFlag {
			examples := filter.Examples()
			if isJSONOutput() {
				outputSuccess(map[string]interface{}{"examples": examples}, &Meta{Count: len(examples)})
				return nil
			}
			for _, ex := range examples {
				fmt.Fprintf(stdout, "%-50q %s\n", ex.Input, ui.FilterString(ex.Output))
			}
			return nil
		}

		query := strings.TrimSpace(strings.Join(args, " "))
		if query == "" {
			return handleErrorMsg(ErrMissingArgument, "query is required (or pass --examples)", "")
		}

		translated := filter.Format(query)
		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"query":  query,
				"filter": translated,
			}, &Meta{Filter: translated})
			return nil
		}
		fmt.Fprintln(stdout, ui.FilterString(translated))
		fmt.Fprintln(stdout, ui.Hint("Run it: tix tasks --raw "+shellquote.QuoteIfNeeded(translated)))
		return nil
	},
}

var filterSaveCmd = &cobra.Command{
	Use:   "save <name> <query...>",
	Short: "Save a filter under a name",
	Long: `Save a filter under a name for reuse with 'tix tasks --saved <name>'.

The query is translated first, so natural language works here too. Names
are normalized to slugs ("Morning Review" becomes "morning-review").`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		query := strings.TrimSpace(strings.Join(args[1:], " "))

		translated := filter.Format(query)
		saved, err := store.New(store.DefaultPath()).Save(name, translated)
		if err != nil {
			return handleError(ErrFilterInvalid, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"filter": saved}, nil)
			return nil
		}
		fmt.Fprintln(stdout, ui.Successf("Saved filter %q: %s", saved.Name, ui.FilterString(saved.Query)))
		return nil
	},
}

var filterListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved filters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		filters, err := store.New(store.DefaultPath()).List()
		if err != nil {
			return handleError(ErrInternal, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"filters": filters}, &Meta{Count: len(filters)})
			return nil
		}

		if len(filters) == 0 {
			fmt.Fprintln(stdout, ui.Hint("No saved filters. Create one with 'tix filter save <name> <query>'."))
			return nil
		}
		for _, f := range filters {
			fmt.Fprintf(stdout, "%-24s %s\n", ui.Bold.Render(f.Name), ui.FilterString(f.Query))
		}
		return nil
	},
}

var filterRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Delete a saved filter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		removed, err := store.New(store.DefaultPath()).Remove(name)
		if err != nil {
			return handleError(ErrInternal, err, "")
		}
		if !removed {
			return handleErrorMsg(ErrFilterNotFound, fmt.Sprintf("saved filter %q not found", name),
				"Run 'tix filter list' to see saved filters")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"name": store.NormalizeName(name), "removed": true}, nil)
			return nil
		}
		fmt.Fprintln(stdout, ui.Successf("Removed filter %q", store.NormalizeName(name)))
		return nil
	},
}

func init() {
	filterCmd.Flags().BoolVar(&filterExamplesFlag, "examples", false, "Show translation examples")
	filterCmd.AddCommand(filterSaveCmd)
	filterCmd.AddCommand(filterListCmd)
	filterCmd.AddCommand(filterRmCmd)
	rootCmd.AddCommand(filterCmd)
}
