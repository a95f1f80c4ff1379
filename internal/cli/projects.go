package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/natemoore/tix/internal/todoist"
	"github.com/natemoore/tix/internal/ui"
)

var (
	projectColorFlag    string
	projectFavoriteFlag bool
	projectParentFlag   string
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List projects",
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

		var projects []todoist.Project
		cached, err := cachedFetch(c, "projects:all", &projects, func() (interface{}, error) {
			return client.ListProjects(cmd.Context())
		})
		if err != nil {
			return handleError(ErrAPIError, err, "")
		}

		if isJSONOutput() {
			outputSuccessWithWarnings(map[string]interface{}{"projects": projects}, warnings,
				&Meta{Count: len(projects), Cached: cached})
			return nil
		}

		if len(projects) == 0 {
			fmt.Fprintln(stdout, ui.Hint("No projects."))
			return nil
		}
		for _, p := range projects {
			name := ui.Accent.Render("#" + p.Name)
			var marks []string
			if p.IsInboxProject {
				marks = append(marks, "inbox")
			}
			if p.IsFavorite {
				marks = append(marks, "favorite")
			}
			suffix := ""
			if len(marks) > 0 {
				suffix = " " + ui.Hint("["+strings.Join(marks, ", ")+"]")
			}
			fmt.Fprintf(stdout, "%s%s  %s\n", name, suffix, ui.Muted.Render("("+p.ID+")"))
		}
		return nil
	},
}

var projectsAddCmd = &cobra.Command{
	Use:   "add <name...>",
	Short: "Create a project",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(strings.Join(args, " "))
		if name == "" {
			return handleErrorMsg(ErrMissingArgument, "project name is required", "")
		}

		client, err := apiClient()
		if err != nil {
			return handleError(ErrAuth, err, tokenSuggestion)
		}

		project, err := client.CreateProject(cmd.Context(), todoist.ProjectArgs{
			Name:       name,
			Color:      projectColorFlag,
			ParentID:   projectParentFlag,
			IsFavorite: projectFavoriteFlag,
		})
		if err != nil {
			return handleError(ErrAPIError, err, "")
		}

		invalidateCache("projects:")

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"project": project}, nil)
			return nil
		}
		fmt.Fprintln(stdout, ui.Successf("Created project #%s (%s)", project.Name, project.ID))
		return nil
	},
}

func init() {
	projectsAddCmd.Flags().StringVar(&projectColorFlag, "color", "", "Todoist color name (e.g. berry_red)")
	projectsAddCmd.Flags().StringVar(&projectParentFlag, "parent", "", "Parent project ID")
	projectsAddCmd.Flags().BoolVar(&projectFavoriteFlag, "favorite", false, "Mark as a favorite")
	projectsCmd.AddCommand(projectsAddCmd)
	rootCmd.AddCommand(projectsCmd)
}
