package subs

import (
	"os"
	"path/filepath"
	"strings"
)

// SidecarPath returns the cache file for a video and language set: the
// video path with its extension replaced by ".ssa", ".<lang>.ssa", or
// ".<l1>_<l2>.ssa". The language order is preserved, so merging the same
// languages in a different order addresses a different sidecar.
func SidecarPath(video string, languages ...string) string {
	base := strings.TrimSuffix(video, filepath.Ext(video))
	if len(languages) == 0 {
		return base + ".ssa"
	}
	return base + "." + strings.Join(languages, "_") + ".ssa"
}

// Sidecars lists the existing cache files for video, default track first,
// the rest in directory order.
func Sidecars(video string) ([]string, error) {
	dir := filepath.Dir(video)
	stem := strings.TrimSuffix(filepath.Base(video), filepath.Ext(video))

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var found []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".ssa") {
			continue
		}
		if strings.HasPrefix(name, stem+".") {
			found = append(found, filepath.Join(dir, name))
		}
	}
	// Default sidecar sorts first when present.
	def := filepath.Join(dir, stem+".ssa")
	for i, path := range found {
		if path == def && i != 0 {
			copy(found[1:i+1], found[:i])
			found[0] = def
			break
		}
	}
	return found, nil
}
