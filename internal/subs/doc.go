// Package subs loads, caches, transforms, and merges subtitle tracks.
//
// Tracks live in the SSA exchange format handled by go-astisub and are
// cached as sidecar files next to the source video: video.ssa for the
// default stream, video.<lang>.ssa per language, and
// video.<l1>_<l2>.ssa for merged tracks. A sidecar, once present, is
// trusted as-is; nothing compares it against the video it came from.
// Extraction of embedded streams is delegated to an ffmpeg subprocess.
package subs
