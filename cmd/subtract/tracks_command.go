package main

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"subtract/internal/language"
	"subtract/internal/media/ffprobe"
	"subtract/internal/subs"
)

func newTracksCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tracks <video>",
		Short: "List embedded subtitle streams and cached sidecar files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			video := args[0]
			if _, err := os.Stat(video); err != nil {
				return fmt.Errorf("video: %w", err)
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			result, err := ffprobe.Inspect(cmd.Context(), cfg.Tools.FFprobe, video)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", displayTitle(video))
			fmt.Fprintf(out, "Duration: %s, %d video and %d audio streams\n\n",
				formatSeconds(result.DurationSeconds()),
				result.VideoStreamCount(),
				result.AudioStreamCount(),
			)

			streams := result.SubtitleStreams()
			if len(streams) == 0 {
				fmt.Fprintln(out, "No embedded subtitle streams found.")
			} else {
				rows := make([][]string, 0, len(streams))
				for i, stream := range streams {
					tag := language.ExtractFromTags(stream.Tags)
					rows = append(rows, []string{
						fmt.Sprintf("s:%d", i),
						language.ToISO3(tag),
						language.DisplayName(tag),
						stream.CodecName,
						stream.Tags["title"],
						streamFlags(stream),
					})
				}
				headers := []string{"Stream", "Code", "Language", "Codec", "Title", "Flags"}
				fmt.Fprintln(out, renderTable(headers, rows))
			}

			sidecars, err := subs.Sidecars(video)
			if err != nil {
				return fmt.Errorf("list sidecars: %w", err)
			}
			fmt.Fprintln(out)
			if len(sidecars) == 0 {
				fmt.Fprintln(out, "Cached sidecar files: none")
				return nil
			}
			fmt.Fprintln(out, "Cached sidecar files:")
			for _, sidecar := range sidecars {
				fmt.Fprintf(out, "  %s\n", sidecar)
			}
			return nil
		},
	}
	return cmd
}

func streamFlags(stream ffprobe.Stream) string {
	var flags []string
	if stream.Disposition.Default != 0 {
		flags = append(flags, "default")
	}
	if stream.Disposition.Forced != 0 {
		flags = append(flags, "forced")
	}
	return strings.Join(flags, ",")
}

func formatSeconds(seconds float64) string {
	if seconds <= 0 || math.IsNaN(seconds) {
		return "unknown"
	}
	return time.Duration(seconds * float64(time.Second)).Round(time.Second).String()
}
