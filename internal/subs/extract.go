package subs

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Extractor produces the raw SSA text of an embedded subtitle stream. An
// empty language selects the container's first subtitle stream.
type Extractor interface {
	Extract(ctx context.Context, video, language string) ([]byte, error)
}

// FFmpegExtractor shells out to ffmpeg to decode an embedded subtitle
// stream to SSA on stdout.
type FFmpegExtractor struct {
	// Binary is the ffmpeg command to run; empty means "ffmpeg" from PATH.
	Binary string
}

// Extract runs ffmpeg once and returns its stdout. Failures carry
// ffmpeg's trimmed stderr, so a missing stream or unknown language
// surfaces with the tool's own diagnostic.
func (e *FFmpegExtractor) Extract(ctx context.Context, video, language string) ([]byte, error) {
	binary := strings.TrimSpace(e.Binary)
	if binary == "" {
		binary = "ffmpeg"
	}

	selector := "0:s:0"
	if language != "" {
		selector = "0:s:m:language:" + language
	}
	args := []string{
		"-v", "error",
		"-hide_banner",
		"-i", video,
		"-map", selector,
		"-f", "ass",
		"-",
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffmpeg extract: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	if stdout.Len() == 0 {
		return nil, fmt.Errorf("ffmpeg extract: no subtitle data for %q", video)
	}
	return stdout.Bytes(), nil
}
