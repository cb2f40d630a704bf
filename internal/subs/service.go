package subs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/asticode/go-astisub"

	"subtract/internal/logging"
)

// Service fetches subtitle tracks for videos, caching every extracted or
// merged track as a sidecar file next to the video.
type Service struct {
	extractor Extractor
	logger    *slog.Logger
}

// NewService wires a track service. A nil extractor defaults to ffmpeg
// from PATH; a nil logger disables logging.
func NewService(extractor Extractor, logger *slog.Logger) *Service {
	if extractor == nil {
		extractor = &FFmpegExtractor{}
	}
	return &Service{
		extractor: extractor,
		logger:    logging.NewComponentLogger(logger, "subs"),
	}
}

// Track returns the subtitle track for video, extracting and persisting a
// sidecar on first use. An existing sidecar is returned as-is without
// checking it against the video. An empty language selects the default
// embedded stream.
func (s *Service) Track(ctx context.Context, video, language string) (*astisub.Subtitles, error) {
	var sidecar string
	if language == "" {
		sidecar = SidecarPath(video)
	} else {
		sidecar = SidecarPath(video, language)
	}

	if _, err := os.Stat(sidecar); err == nil {
		s.logger.Debug("using cached track", logging.String("sidecar", sidecar))
		return Load(sidecar)
	}

	raw, err := s.extractor.Extract(ctx, video, language)
	if err != nil {
		return nil, err
	}
	track, err := astisub.ReadFromSSA(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse extracted track: %w", err)
	}
	if err := Save(track, sidecar); err != nil {
		return nil, err
	}
	s.logger.Info("extracted track",
		logging.String("video", video),
		logging.String("language", language),
		logging.String("sidecar", sidecar),
		logging.Int("events", len(track.Items)),
	)
	return track, nil
}

// Merged combines the tracks for the given languages into one track
// ordered by ascending event start time, caching the result under a
// sidecar keyed by the languages in the order given. Per-language tracks
// go through Track and populate their own sidecars on the way.
func (s *Service) Merged(ctx context.Context, video string, languages []string) (*astisub.Subtitles, error) {
	if len(languages) == 0 {
		return nil, errors.New("merge: at least one language required")
	}

	sidecar := SidecarPath(video, languages...)
	if _, err := os.Stat(sidecar); err == nil {
		s.logger.Debug("using cached merged track", logging.String("sidecar", sidecar))
		return Load(sidecar)
	}

	var merged *astisub.Subtitles
	for _, lang := range languages {
		track, err := s.Track(ctx, video, lang)
		if err != nil {
			return nil, err
		}
		if merged == nil {
			merged = track
			continue
		}
		merged.Items = append(merged.Items, track.Items...)
	}
	sort.SliceStable(merged.Items, func(i, j int) bool {
		return merged.Items[i].StartAt < merged.Items[j].StartAt
	})

	if err := Save(merged, sidecar); err != nil {
		return nil, err
	}
	s.logger.Info("merged tracks",
		logging.String("video", video),
		logging.String("sidecar", sidecar),
		logging.Int("languages", len(languages)),
		logging.Int("events", len(merged.Items)),
	)
	return merged, nil
}
