package player

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/asticode/go-astisub"

	"subtract/internal/logging"
)

const darwinVLCPath = "/Applications/VLC.app/Contents/MacOS/VLC"

// Options configures a Player.
type Options struct {
	// Command is the player binary; empty triggers VLC auto-detection.
	Command string
	// Args are extra flags inserted before the subtitle/video arguments.
	Args []string
	// Fullscreen starts playback in full screen.
	Fullscreen bool
}

// Player runs an external player process and blocks until it exits.
type Player struct {
	command    string
	extraArgs  []string
	fullscreen bool
	logger     *slog.Logger
}

// New resolves the player binary and returns a ready Player.
func New(opts Options, logger *slog.Logger) (*Player, error) {
	command, err := Resolve(opts.Command)
	if err != nil {
		return nil, err
	}
	return &Player{
		command:    command,
		extraArgs:  opts.Args,
		fullscreen: opts.Fullscreen,
		logger:     logging.NewComponentLogger(logger, "player"),
	}, nil
}

// Resolve locates the player binary: the configured command when set,
// otherwise "vlc" on PATH, otherwise the macOS application bundle.
func Resolve(configured string) (string, error) {
	if c := strings.TrimSpace(configured); c != "" {
		path, err := exec.LookPath(c)
		if err != nil {
			return "", fmt.Errorf("player %q not found: %w", c, err)
		}
		return path, nil
	}
	if path, err := exec.LookPath("vlc"); err == nil {
		return path, nil
	}
	if runtime.GOOS == "darwin" {
		if info, err := os.Stat(darwinVLCPath); err == nil && !info.IsDir() {
			return darwinVLCPath, nil
		}
	}
	return "", errors.New("no vlc binary found; set player.command in the config")
}

// Play writes track to a temporary subtitle file and runs the player
// over video with that track, blocking until the process exits. A
// nonzero exit surfaces as an error carrying the player's output.
func (p *Player) Play(ctx context.Context, video string, track *astisub.Subtitles) error {
	dir, err := os.MkdirTemp("", "subtract-")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	subsPath := filepath.Join(dir, "subs.ssa")
	if err := track.Write(subsPath); err != nil {
		return fmt.Errorf("write subtitle file: %w", err)
	}

	args := make([]string, 0, len(p.extraArgs)+5)
	if p.fullscreen {
		args = append(args, "--fullscreen")
	}
	args = append(args, p.extraArgs...)
	args = append(args, "--sub-file", subsPath, video, "vlc://quit")

	p.logger.Info("starting playback",
		logging.String("video", video),
		logging.String("subtitles", subsPath),
	)
	cmd := exec.CommandContext(ctx, p.command, args...) //nolint:gosec
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("player: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}
