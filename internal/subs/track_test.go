package subs

import (
	"strings"
	"testing"

	"github.com/asticode/go-astisub"
)

func parseDoc(t *testing.T, doc string) *astisub.Subtitles {
	t.Helper()
	track, err := astisub.ReadFromSSA(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return track
}

func itemText(item *astisub.Item) string {
	var b strings.Builder
	for _, line := range item.Lines {
		for _, li := range line.Items {
			b.WriteString(li.Text)
		}
	}
	return b.String()
}

func TestCloneIsIndependent(t *testing.T) {
	original := parseDoc(t, ssaDoc(cue{"0:00:01.00", "0:00:02.00", "Well, damn it."}))

	cloned, err := Clone(original)
	if err != nil {
		t.Fatalf("clone: %v", err)
	}
	TransformText(cloned, strings.ToUpper)

	if got := itemText(original.Items[0]); got != "Well, damn it." {
		t.Fatalf("original mutated: %q", got)
	}
	if got := itemText(cloned.Items[0]); got != "WELL, DAMN IT." {
		t.Fatalf("clone not transformed: %q", got)
	}
}

func TestTransformTextCoversAllEvents(t *testing.T) {
	track := parseDoc(t, ssaDoc(
		cue{"0:00:01.00", "0:00:02.00", "one"},
		cue{"0:00:03.00", "0:00:04.00", "two"},
		cue{"0:00:05.00", "0:00:06.00", "three"},
	))

	TransformText(track, func(string) string { return "gone" })

	for i, item := range track.Items {
		if got := itemText(item); got != "gone" {
			t.Fatalf("event %d not transformed: %q", i, got)
		}
	}
}

func TestTransformedLeavesOriginalUntouched(t *testing.T) {
	track := parseDoc(t, ssaDoc(cue{"0:00:01.00", "0:00:02.00", "keep me"}))

	redacted, err := Transformed(track, func(string) string { return "_______" })
	if err != nil {
		t.Fatalf("transformed: %v", err)
	}
	if got := itemText(track.Items[0]); got != "keep me" {
		t.Fatalf("original mutated: %q", got)
	}
	if got := itemText(redacted.Items[0]); got != "_______" {
		t.Fatalf("copy not transformed: %q", got)
	}
}

func TestTransformedSkipsStyledEvents(t *testing.T) {
	track := parseDoc(t, ssaDoc(
		cue{"0:00:01.00", "0:00:02.00", "{\\an8}Well, damn it."},
		cue{"0:00:03.00", "0:00:04.00", "Well, damn it."},
	))

	redacted, err := Transformed(track, func(string) string { return "REDACTED" })
	if err != nil {
		t.Fatalf("transformed: %v", err)
	}
	if got := itemText(redacted.Items[0]); got != "Well, damn it." {
		t.Fatalf("styled event changed: %q", got)
	}
	if got := itemText(redacted.Items[1]); got != "REDACTED" {
		t.Fatalf("plain event not transformed: %q", got)
	}

	// The override block itself survives the clone-transform round trip.
	first := redacted.Items[0].Lines[0].Items[0]
	if first.InlineStyle == nil || first.InlineStyle.SSAEffect != "{\\an8}" {
		t.Fatalf("override block lost: %#v", first)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/no/such/track.ssa"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
