package player

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/asticode/go-astisub"
)

const ssaFixture = `[Script Info]
ScriptType: v4.00+

[V4+ Styles]
Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding
Style: Default,Arial,16,&H00FFFFFF,&H000000FF,&H00000000,&H00000000,0,0,0,0,100,100,0,0,1,2,0,2,10,10,10,0

[Events]
Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text
Dialogue: 0,0:00:01.00,0:00:02.00,Default,,0,0,0,,Well, damn it.
`

func fixtureTrack(t *testing.T) *astisub.Subtitles {
	t.Helper()
	track, err := astisub.ReadFromSSA(strings.NewReader(ssaFixture))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return track
}

func writeStubPlayer(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub scripts require a unix shell")
	}
	path := filepath.Join(t.TempDir(), "fakeplayer")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub player: %v", err)
	}
	return path
}

func TestResolveConfiguredMissing(t *testing.T) {
	if _, err := Resolve(filepath.Join(t.TempDir(), "no-such-player")); err == nil {
		t.Fatal("expected error for missing configured player")
	}
}

func TestPlayInvokesPlayer(t *testing.T) {
	argsFile := filepath.Join(t.TempDir(), "args.txt")
	stub := writeStubPlayer(t, "#!/bin/sh\nprintf '%s\\n' \"$@\" > "+argsFile+"\nexit 0\n")

	p, err := New(Options{Command: stub, Fullscreen: true}, nil)
	if err != nil {
		t.Fatalf("new player: %v", err)
	}
	if err := p.Play(context.Background(), "movie.mp4", fixtureTrack(t)); err != nil {
		t.Fatalf("play: %v", err)
	}

	recorded, err := os.ReadFile(argsFile)
	if err != nil {
		t.Fatalf("read recorded args: %v", err)
	}
	args := strings.Split(strings.TrimSpace(string(recorded)), "\n")
	if args[0] != "--fullscreen" {
		t.Fatalf("expected --fullscreen first, got %v", args)
	}
	if args[len(args)-1] != "vlc://quit" {
		t.Fatalf("expected vlc://quit last, got %v", args)
	}
	if args[len(args)-2] != "movie.mp4" {
		t.Fatalf("expected video before quit instruction, got %v", args)
	}
	var subFile string
	for i, arg := range args {
		if arg == "--sub-file" && i+1 < len(args) {
			subFile = args[i+1]
		}
	}
	if subFile == "" {
		t.Fatalf("no --sub-file argument: %v", args)
	}
	if _, err := os.Stat(subFile); !os.IsNotExist(err) {
		t.Fatalf("temp subtitle file not cleaned up: %s", subFile)
	}
}

func TestPlayExtraArgsPrecedeSubFile(t *testing.T) {
	argsFile := filepath.Join(t.TempDir(), "args.txt")
	stub := writeStubPlayer(t, "#!/bin/sh\nprintf '%s\\n' \"$@\" > "+argsFile+"\nexit 0\n")

	p, err := New(Options{Command: stub, Args: []string{"--no-audio"}}, nil)
	if err != nil {
		t.Fatalf("new player: %v", err)
	}
	if err := p.Play(context.Background(), "movie.mp4", fixtureTrack(t)); err != nil {
		t.Fatalf("play: %v", err)
	}

	recorded, err := os.ReadFile(argsFile)
	if err != nil {
		t.Fatalf("read recorded args: %v", err)
	}
	args := strings.Split(strings.TrimSpace(string(recorded)), "\n")
	if args[0] != "--no-audio" {
		t.Fatalf("expected extra args first without fullscreen, got %v", args)
	}
}

func TestPlaySurfacesNonzeroExit(t *testing.T) {
	stub := writeStubPlayer(t, "#!/bin/sh\necho 'cannot open display' >&2\nexit 3\n")

	p, err := New(Options{Command: stub}, nil)
	if err != nil {
		t.Fatalf("new player: %v", err)
	}
	err = p.Play(context.Background(), "movie.mp4", fixtureTrack(t))
	if err == nil {
		t.Fatal("expected playback failure")
	}
	if !strings.Contains(err.Error(), "cannot open display") {
		t.Fatalf("player diagnostic lost: %v", err)
	}
}
