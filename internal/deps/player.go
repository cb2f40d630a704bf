package deps

import (
	"subtract/internal/player"
)

// CheckPlayer reports whether a playable media-player binary can be
// resolved, honoring an explicitly configured command first.
func CheckPlayer(configured string) Status {
	status := Status{
		Name:        "Player",
		Description: "Plays the video with the prepared subtitle track",
	}
	resolved, err := player.Resolve(configured)
	if err != nil {
		status.Command = configured
		status.Detail = err.Error()
		return status
	}
	status.Command = resolved
	status.Available = true
	return status
}
