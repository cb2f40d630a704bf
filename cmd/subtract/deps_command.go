package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"subtract/internal/deps"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check availability of the external tools subtract needs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			statuses := deps.CheckBinaries([]deps.Requirement{
				{Name: "FFmpeg", Command: cfg.Tools.FFmpeg, Description: "Extracts embedded subtitle streams"},
				{Name: "FFprobe", Command: cfg.Tools.FFprobe, Description: "Inspects container streams"},
			})
			statuses = append(statuses, deps.CheckPlayer(cfg.Player.Command))

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			failed := false
			for _, status := range statuses {
				kind := statusOK
				message := status.Command
				if !status.Available {
					kind = statusError
					message = status.Detail
					failed = true
				}
				fmt.Fprintln(out, renderStatusLine(status.Name, kind, message, colorize))
			}
			if failed {
				return errors.New("one or more external tools are unavailable")
			}
			return nil
		},
	}
}
