package subs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSidecarPath(t *testing.T) {
	tests := []struct {
		name      string
		video     string
		languages []string
		want      string
	}{
		{"default track", "/media/movie.mp4", nil, "/media/movie.ssa"},
		{"single language", "/media/movie.mp4", []string{"eng"}, "/media/movie.eng.ssa"},
		{"merge key joins in order", "/media/movie.mkv", []string{"eng", "fre"}, "/media/movie.eng_fre.ssa"},
		{"merge key is order sensitive", "/media/movie.mkv", []string{"fre", "eng"}, "/media/movie.fre_eng.ssa"},
		{"no extension", "/media/movie", []string{"eng"}, "/media/movie.eng.ssa"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SidecarPath(tt.video, tt.languages...); got != tt.want {
				t.Errorf("SidecarPath(%q, %v) = %q, want %q", tt.video, tt.languages, got, tt.want)
			}
		})
	}
}

func TestSidecars(t *testing.T) {
	dir := t.TempDir()
	video := filepath.Join(dir, "movie.mp4")
	for _, name := range []string{"movie.eng.ssa", "movie.ssa", "movie.eng_fre.ssa", "other.ssa", "movie.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	found, err := Sidecars(video)
	if err != nil {
		t.Fatalf("sidecars: %v", err)
	}
	if len(found) != 3 {
		t.Fatalf("expected 3 sidecars, got %v", found)
	}
	if found[0] != filepath.Join(dir, "movie.ssa") {
		t.Fatalf("expected default sidecar first, got %v", found)
	}
}

func TestSidecarsNoneFound(t *testing.T) {
	dir := t.TempDir()
	found, err := Sidecars(filepath.Join(dir, "movie.mp4"))
	if err != nil {
		t.Fatalf("sidecars: %v", err)
	}
	if len(found) != 0 {
		t.Fatalf("expected none, got %v", found)
	}
}
