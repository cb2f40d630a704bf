// Package player launches an external media player with a prepared
// subtitle track overlaid on a video. The track is written to a scoped
// temporary directory that is removed again on every return path.
package player
