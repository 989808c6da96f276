package cli

import (
	"fmt"
	"io"

	"github.com/ppiankov/fakenews/internal/cache"
	"github.com/spf13/cobra"
)

// cacheCmd represents the cache command
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Maintain the result cache",
	Long: `Maintain the configured result cache (cache.backend).

Only persistent backends (disk, layered, redis) hold entries between runs.`,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every cached verdict",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, cleanup, err := openConfiguredCache()
		if err != nil {
			return err
		}
		defer cleanup()
		return clearCache(c, cmd.OutOrStdout())
	},
}

var cacheSweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Remove expired entries from the disk cache",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, cleanup, err := openConfiguredCache()
		if err != nil {
			return err
		}
		defer cleanup()
		return sweepCache(c, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheSweepCmd)
}

// openConfiguredCache opens the cache from config, even when cache.enabled is false
func openConfiguredCache() (cache.Cache, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	cfg.Cache.Enabled = true
	return openCache(cfg.Cache)
}

func clearCache(c cache.Cache, out io.Writer) error {
	if err := c.Clear(); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	fmt.Fprintln(out, "✓ Cache cleared")
	return nil
}

func sweepCache(c cache.Cache, out io.Writer) error {
	sweeper, ok := c.(cache.Sweeper)
	if !ok {
		return fmt.Errorf("cache backend expires entries on its own; nothing to sweep")
	}
	removed, err := sweeper.Sweep()
	if err != nil {
		return fmt.Errorf("sweep cache: %w", err)
	}
	fmt.Fprintf(out, "✓ Removed %d expired entries\n", removed)
	return nil
}
