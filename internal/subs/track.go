package subs

import (
	"bytes"
	"fmt"

	"github.com/asticode/go-astisub"
)

// Load reads a subtitle track from path.
func Load(path string) (*astisub.Subtitles, error) {
	track, err := astisub.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("load track %s: %w", path, err)
	}
	return track, nil
}

// Save writes a subtitle track to path in the format implied by its
// extension.
func Save(track *astisub.Subtitles, path string) error {
	if err := track.Write(path); err != nil {
		return fmt.Errorf("save track %s: %w", path, err)
	}
	return nil
}

// Clone produces an independent deep copy of a track by serializing it to
// SSA and parsing it back. Mutating the copy never aliases the original.
func Clone(track *astisub.Subtitles) (*astisub.Subtitles, error) {
	var buf bytes.Buffer
	if err := track.WriteToSSA(&buf); err != nil {
		return nil, fmt.Errorf("clone track: %w", err)
	}
	cloned, err := astisub.ReadFromSSA(&buf)
	if err != nil {
		return nil, fmt.Errorf("clone track: %w", err)
	}
	return cloned, nil
}

// TransformText applies fn to the dialogue text of every event in place.
// Events whose source text opened with a {...} override block are
// control data and are skipped entirely. The parser strips such blocks
// into the first line item's inline style, so the raw text never reaches
// fn and the block has to be detected structurally.
func TransformText(track *astisub.Subtitles, fn func(string) string) {
	for _, item := range track.Items {
		if startsWithOverride(item) {
			continue
		}
		for i := range item.Lines {
			line := &item.Lines[i]
			for j := range line.Items {
				line.Items[j].Text = fn(line.Items[j].Text)
			}
		}
	}
}

func startsWithOverride(item *astisub.Item) bool {
	if len(item.Lines) == 0 || len(item.Lines[0].Items) == 0 {
		return false
	}
	first := item.Lines[0].Items[0]
	return first.InlineStyle != nil && first.InlineStyle.SSAEffect != ""
}

// Transformed clones track and applies fn to the copy, leaving the
// original (and therefore any sidecar it was loaded from) unredacted.
func Transformed(track *astisub.Subtitles, fn func(string) string) (*astisub.Subtitles, error) {
	cloned, err := Clone(track)
	if err != nil {
		return nil, err
	}
	TransformText(cloned, fn)
	return cloned, nil
}
