package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"subtract/internal/language"
	"subtract/internal/logging"
	"subtract/internal/player"
	"subtract/internal/subs"
)

func newMergeCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge <video> <language> [language...]",
		Short: "Play a video with subtitle tracks from several languages merged",
		Long: `Extract one embedded subtitle track per language, merge them into a
single track ordered by start time, and play the video with that track.

Language codes are passed to the extraction tool as given (use the codes
shown by "subtract tracks"). Each per-language track and the merged
result are cached as sidecar files next to the video; the merge sidecar
is keyed by the languages in the order given.

Example:
  subtract merge movie.mp4 eng fre`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			video := args[0]
			if _, err := os.Stat(video); err != nil {
				return fmt.Errorf("video: %w", err)
			}

			languages := make([]string, 0, len(args)-1)
			names := make([]string, 0, len(args)-1)
			for _, arg := range args[1:] {
				code := strings.ToLower(strings.TrimSpace(arg))
				if code == "" {
					return fmt.Errorf("empty language code")
				}
				languages = append(languages, code)
				names = append(names, language.DisplayName(code))
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			logger.Info("merging subtitle tracks",
				logging.String("video", video),
				logging.String("languages", strings.Join(names, ", ")),
			)

			svc := subs.NewService(&subs.FFmpegExtractor{Binary: cfg.Tools.FFmpeg}, logger)
			track, err := svc.Merged(cmd.Context(), video, languages)
			if err != nil {
				return err
			}

			p, err := player.New(player.Options{
				Command:    cfg.Player.Command,
				Args:       cfg.Player.Args,
				Fullscreen: cfg.Player.Fullscreen,
			}, logger)
			if err != nil {
				return err
			}
			return p.Play(cmd.Context(), video, track)
		},
	}
	return cmd
}
