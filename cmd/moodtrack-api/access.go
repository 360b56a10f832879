package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JonnyWalker81/moodtrack/backend/internal/auth"
	"github.com/JonnyWalker81/moodtrack/backend/internal/logger"
)

var accessCmd = &cobra.Command{
	Use:   "access",
	Short: "Permission cache maintenance",
}

var accessInvalidateCmd = &cobra.Command{
	Use:   "invalidate <user-id>...",
	Short: "Drop cached permission grants",
	Long: `Drop the cached permission grants of the given users so the next request
re-reads their role and status. Run it after changing a user record; it only
reaches running servers when cache.driver is redis.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAccessInvalidate,
}

func init() {
	accessCmd.AddCommand(accessInvalidateCmd)
}

func runAccessInvalidate(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.close()

	ctx := logger.WithLogger(cmd.Context(), a.log)
	if a.cfg.Cache.Driver != "redis" {
		a.log.Warn("memory cache is process-local; running servers keep their grants until the TTL expires")
	}

	permCache, err := openCache(ctx, a.cfg)
	if err != nil {
		return err
	}
	defer permCache.Close()

	resolver := auth.NewResolver(a.store.Users(), permCache, a.cfg.Cache.PermissionTTL)
	for _, uid := range args {
		if err := resolver.Invalidate(ctx, uid); err != nil {
			return fmt.Errorf("failed to invalidate grant for %s: %w", uid, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "invalidated %s\n", uid)
	}
	return nil
}
