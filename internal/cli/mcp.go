package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/natemoore/tix/internal/mcpclient"
)

var mcpClientFlag string

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Manage MCP client integrations",
	Long: `Manage MCP client integrations for tix.

Install, remove, or inspect the tix MCP server entry in supported
client config files (Claude Code, Claude Desktop, Cursor).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var mcpInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Add tix to an MCP client config",
	Long: `Add tix to an MCP client config file.

Supported clients: claude-code, claude-desktop, cursor

Examples:
  tix mcp install --client claude-code
  tix mcp install --client claude-desktop --config ~/.config/tix/config.toml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := mcpclient.Client(mcpClientFlag)
		if !mcpclient.ValidClient(mcpClientFlag) {
			return handleErrorMsg(ErrMCPClientInvalid, fmt.Sprintf("unknown client: %s", mcpClientFlag),
				"Supported clients: claude-code, claude-desktop, cursor")
		}

		cfgPath, err := mcpclient.ConfigPath(client, "")
		if err != nil {
			return handleError(ErrInternal, err, "")
		}

		entry := mcpclient.BuildServerEntry(configPath)
		result, err := mcpclient.Install(cfgPath, entry)
		if err != nil {
			return handleError(ErrMCPConfigWriteError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"client":      string(client),
				"config_path": cfgPath,
				"result":      result.String(),
				"entry": map[string]interface{}{
					"command": entry.Command,
					"args":    entry.Args,
				},
			}, nil)
			return nil
		}

		switch result {
		case mcpclient.Installed:
			fmt.Fprintf(stdout, "Installed tix in %s config.\n", client)
		case mcpclient.Updated:
			fmt.Fprintf(stdout, "Updated tix in %s config.\n", client)
		case mcpclient.AlreadyInstalled:
			fmt.Fprintf(stdout, "Already installed in %s config.\n", client)
		}
		fmt.Fprintf(stdout, "config: %s\n", cfgPath)
		return nil
	},
}

var mcpRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove tix from an MCP client config",
	Long: `Remove tix from an MCP client config file.

Supported clients: claude-code, claude-desktop, cursor

Examples:
  tix mcp remove --client claude-code`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := mcpclient.Client(mcpClientFlag)
		if !mcpclient.ValidClient(mcpClientFlag) {
			return handleErrorMsg(ErrMCPClientInvalid, fmt.Sprintf("unknown client: %s", mcpClientFlag),
				"Supported clients: claude-code, claude-desktop, cursor")
		}

		cfgPath, err := mcpclient.ConfigPath(client, "")
		if err != nil {
			return handleError(ErrInternal, err, "")
		}

		removed, err := mcpclient.Remove(cfgPath)
		if err != nil {
			return handleError(ErrMCPConfigWriteError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"client":      string(client),
				"config_path": cfgPath,
				"removed":     removed,
			}, nil)
			return nil
		}

		if removed {
			fmt.Fprintf(stdout, "Removed tix from %s config.\n", client)
		} else {
			fmt.Fprintf(stdout, "tix was not installed in %s config.\n", client)
		}
		return nil
	},
}

var mcpShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the server entry that install would write",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entry := mcpclient.BuildServerEntry(configPath)

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"name": mcpclient.ServerName,
				"entry": map[string]interface{}{
					"command": entry.Command,
					"args":    entry.Args,
				},
			}, nil)
			return nil
		}

		fmt.Fprintf(stdout, "name:    %s\n", mcpclient.ServerName)
		fmt.Fprintf(stdout, "command: %s\n", entry.Command)
		fmt.Fprintf(stdout, "args:    %v\n", entry.Args)
		return nil
	},
}

var mcpStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show tix MCP install status for all clients",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var statuses []*mcpclient.ClientStatus
		for _, client := range mcpclient.AllClients() {
			cfgPath, err := mcpclient.ConfigPath(client, "")
			if err != nil {
				return handleError(ErrInternal, err, "")
			}
			status, err := mcpclient.Status(client, cfgPath)
			if err != nil {
				return handleError(ErrInternal, err, "")
			}
			statuses = append(statuses, status)
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"clients": statuses}, &Meta{Count: len(statuses)})
			return nil
		}

		for _, s := range statuses {
			state := "not installed"
			if s.Installed {
				state = "installed"
			} else if !s.Exists {
				state = "no config file"
			}
			fmt.Fprintf(stdout, "%-16s %-14s %s\n", s.Client, state, s.ConfigPath)
		}
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{mcpInstallCmd, mcpRemoveCmd} {
		cmd.Flags().StringVar(&mcpClientFlag, "client", "", "MCP client (claude-code, claude-desktop, cursor)")
		_ = cmd.MarkFlagRequired("client")
	}
	mcpCmd.AddCommand(mcpInstallCmd)
	mcpCmd.AddCommand(mcpRemoveCmd)
	mcpCmd.AddCommand(mcpStatusCmd)
	mcpCmd.AddCommand(mcpShowCmd)
	rootCmd.AddCommand(mcpCmd)
}
