package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"subtract/internal/logging"
	"subtract/internal/player"
	"subtract/internal/redact"
	"subtract/internal/subs"
)

func newDropCommand(ctx *commandContext) *cobra.Command {
	var wordlistPath string
	var dropRate int
	var languageFlag string

	cmd := &cobra.Command{
		Use:   "drop <video>",
		Short: "Play a video with words hidden from its subtitles",
		Long: `Play a video with its embedded subtitles, hiding selected words behind
underscores of the same length. Words come from a word list file, a
random drop rate, or both; with neither option the subtitles play
unmodified.

The extracted track is cached as a sidecar file next to the video and
reused on later runs. The sidecar always holds the original text;
redaction is applied to a copy right before playback.

Examples:
  subtract drop movie.mp4 --wordlist curses.txt
  subtract drop movie.mp4 --drop-rate 30
  subtract drop movie.mp4 --language fre --wordlist curses.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dropRate < 0 || dropRate > 100 {
				return fmt.Errorf("--drop-rate must be between 0 and 100, got %d", dropRate)
			}
			video := args[0]
			if _, err := os.Stat(video); err != nil {
				return fmt.Errorf("video: %w", err)
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			language := strings.ToLower(strings.TrimSpace(languageFlag))
			if language == "" {
				language = cfg.Subtitles.DefaultLanguage
			}

			svc := subs.NewService(&subs.FFmpegExtractor{Binary: cfg.Tools.FFmpeg}, logger)
			track, err := svc.Track(cmd.Context(), video, language)
			if err != nil {
				return err
			}

			if wordlistPath != "" {
				words, err := redact.LoadWordList(wordlistPath)
				if err != nil {
					return err
				}
				policy := redact.NewWordListPolicy(words)
				track, err = subs.Transformed(track, policy.Apply)
				if err != nil {
					return err
				}
				logger.Debug("applied word list", logging.Int("words", len(words)))
			}

			if dropRate > 0 {
				keepRatio := float64(100-dropRate) / 100
				policy := redact.NewRandomPolicy(keepRatio, nil)
				track, err = subs.Transformed(track, policy.Apply)
				if err != nil {
					return err
				}
				logger.Debug("applied random drop", logging.Float64("keep_ratio", keepRatio))
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

	cmd.Flags().StringVar(&wordlistPath, "wordlist", "", "File with words to hide, one per line")
	cmd.Flags().IntVar(&dropRate, "drop-rate", 0, "Percentage of words to hide at random")
	cmd.Flags().StringVar(&languageFlag, "language", "", "Subtitle stream language (default: the first stream)")
	return cmd
}
