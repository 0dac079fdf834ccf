package games

import (
	"fmt"
	"strings"
)

// liveMarkers are the status substrings that mean a game is underway.
var liveMarkers = []string{"in progress", "delayed", "warmup"}

// IsFinalStatus reports whether a detailed status string describes a
// completed game. Matching is a case-insensitive substring check so
// variants like "Final: Tied" still register.
func IsFinalStatus(status string) bool {
	return strings.Contains(strings.ToLower(status), "final")
}

// IsLiveStatus reports whether a detailed status string describes a game
// that is underway (including delays and warmup).
func IsLiveStatus(status string) bool {
	lower := strings.ToLower(status)
	for _, marker := range liveMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// StatusDetail derives the display status for a game. Live games with a
// known inning get a half-inning suffix; extra-inning finals collapse to
// the "F/<n>" marker; everything else passes through unchanged.
func StatusDetail(status string, inning int, topInning bool) string {
	final := IsFinalStatus(status)
	if final && inning > 9 {
		return fmt.Sprintf("F/%d", inning)
	}
	if !final && IsLiveStatus(status) && inning > 0 {
		half := "Bot"
		if topInning {
			half = "Top"
		}
		return fmt.Sprintf("%s – %s %d", status, half, inning)
	}
	return status
}
