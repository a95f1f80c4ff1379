package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/natemoore/tix/internal/cache"
	"github.com/natemoore/tix/internal/ui"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and manage the response cache",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cache statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := getConfig().CachePath()
		c, err := cache.Open(path)
		if err != nil {
			return handleError(ErrCacheError, err, "")
		}
		defer c.Close()

		stats, err := c.Stats()
		if err != nil {
			return handleError(ErrCacheError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"path":    path,
				"entries": stats.Entries,
				"expired": stats.Expired,
				"bytes":   stats.Bytes,
				"enabled": getConfig().Cache.Enabled,
				"ttl":     getConfig().CacheTTL().String(),
			}, nil)
			return nil
		}

		fmt.Fprintln(stdout, ui.Header("Cache"))
		fmt.Fprintf(stdout, "path:    %s\n", path)
		fmt.Fprintf(stdout, "enabled: %t\n", getConfig().Cache.Enabled)
		fmt.Fprintf(stdout, "ttl:     %s\n", getConfig().CacheTTL())
		fmt.Fprintf(stdout, "entries: %d (%d expired)\n", stats.Entries, stats.Expired)
		fmt.Fprintf(stdout, "size:    %d bytes\n", stats.Bytes)
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all cached responses",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := cache.Open(getConfig().CachePath())
		if err != nil {
			return handleError(ErrCacheError, err, "")
		}
		defer c.Close()

		if err := c.Purge(); err != nil {
			return handleError(ErrCacheError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"cleared": true}, nil)
			return nil
		}
		fmt.Fprintln(stdout, ui.Success("Cache cleared"))
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}
