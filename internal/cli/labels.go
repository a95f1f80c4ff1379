package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/natemoore/tix/internal/todoist"
	"github.com/natemoore/tix/internal/ui"
)

var labelsCmd = &cobra.Command{
	Use:   "labels",
	Short: "List labels",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := apiClient()
		if err != nil {
			return handleError(ErrAuth, err, tokenSuggestion)
		}

		c, warnings := openCache()
		if c != nil {
			defer c.Close()
		}

		var labels []todoist.Label
		cached, err := cachedFetch(c, "labels:all", &labels, func() (interface{}, error) {
			return client.ListLabels(cmd.Context())
		})
		if err != nil {
			return handleError(ErrAPIError, err, "")
		}

		if isJSONOutput() {
			outputSuccessWithWarnings(map[string]interface{}{"labels": labels}, warnings,
				&Meta{Count: len(labels), Cached: cached})
			return nil
		}

		if len(labels) == 0 {
			fmt.Fprintln(stdout, ui.Hint("No labels."))
			return nil
		}
		for _, l := range labels {
			fmt.Fprintf(stdout, "%s  %s\n", ui.Accent.Render("@"+l.Name), ui.Muted.Render("("+l.ID+")"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(labelsCmd)
}
