package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/metroroute/pkg/cache"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the map render cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached maps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if c.Config.Cache.Disabled {
				printInfo(c.out, "Cache is disabled")
				return nil
			}

			ch, err := c.openCache(ctx)
			if err != nil {
				return err
			}
			defer ch.Close()

			count := -1
			if fc, ok := ch.(*cache.FileCache); ok {
				if n, err := fc.Len(); err == nil {
					count = n
				}
			}
			if err := ch.Clear(ctx); err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}

			switch fc := ch.(type) {
			case *cache.FileCache:
				printSuccess(c.out, "Cleared %d cached entries", count)
				printDetail(c.out, "Directory: %s", fc.Dir())
			case *cache.RedisCache:
				printSuccess(c.out, "Cleared cached entries")
				printDetail(c.out, "Backend: redis")
			default:
				printSuccess(c.out, "Cleared cached entries")
			}
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := c.Config.CacheDirOrDefault()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Fprintln(c.out, dir)
			return nil
		},
	}
}
