package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"subtract/internal/logging"
	"subtract/internal/subs"
)

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and manage sidecar subtitle caches",
	}

	cacheCmd.AddCommand(newCacheListCommand(ctx))
	cacheCmd.AddCommand(newCacheCleanCommand(ctx))

	return cacheCmd
}

func newCacheListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list <video>",
		Short: "List the sidecar files cached for a video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sidecars, err := subs.Sidecars(args[0])
			if err != nil {
				return fmt.Errorf("list sidecars: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(sidecars) == 0 {
				fmt.Fprintln(out, "No cached sidecar files.")
				return nil
			}

			const stampLayout = "2006-01-02 15:04"
			rows := make([][]string, 0, len(sidecars))
			for _, sidecar := range sidecars {
				size, modified := "?", "?"
				if info, err := os.Stat(sidecar); err == nil {
					size = humanBytes(info.Size())
					modified = info.ModTime().Local().Format(stampLayout)
				}
				rows = append(rows, []string{sidecar, size, modified})
			}
			headers := []string{"File", "Size", "Modified"}
			fmt.Fprintln(out, renderTable(headers, rows, 2))
			return nil
		},
	}
}

func newCacheCleanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clean <video>",
		Short: "Delete the sidecar files cached for a video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			sidecars, err := subs.Sidecars(args[0])
			if err != nil {
				return fmt.Errorf("list sidecars: %w", err)
			}
			removed := 0
			for _, sidecar := range sidecars {
				if err := os.Remove(sidecar); err != nil {
					return fmt.Errorf("remove %s: %w", sidecar, err)
				}
				logger.Debug("removed sidecar", logging.String("path", sidecar))
				removed++
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d sidecar file(s)\n", removed)
			return nil
		},
	}
}

func humanBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
