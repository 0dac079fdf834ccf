package games

import "testing"

func TestIsFinalStatusVariants(t *testing.T) {
	cases := map[string]bool{
		"Final":         true,
		"FINAL":         true,
		"Final: Tied":   true,
		"Game Over":     false,
		"In Progress":   false,
		"Scheduled":     false,
		"":              false,
		"final/called":  true,
		"Warmup":        false,
		"Delayed Start": false,
	}
	for status, want := range cases {
		if got := IsFinalStatus(status); got != want {
			t.Fatalf("IsFinalStatus(%q) = %v, want %v", status, got, want)
		}
	}
}

func TestIsLiveStatusVariants(t *testing.T) {
	cases := map[string]bool{
		"In Progress":        true,
		"in progress":        true,
		"Delayed Start: Rain": true,
		"Warmup":             true,
		"Final":              false,
		"Scheduled":          false,
		"Postponed":          false,
		"":                   false,
	}
	for status, want := range cases {
		if got := IsLiveStatus(status); got != want {
			t.Fatalf("IsLiveStatus(%q) = %v, want %v", status, got, want)
		}
	}
}

func TestFinalAndLiveNeverBothTrue(t *testing.T) {
	statuses := []string{"Final", "In Progress", "Warmup", "Delayed", "Scheduled", "Postponed", ""}
	for _, status := range statuses {
		if IsFinalStatus(status) && IsLiveStatus(status) {
			t.Fatalf("status %q classified both final and live", status)
		}
	}
}

func TestStatusDetailLiveInning(t *testing.T) {
	if got := StatusDetail("In Progress", 5, true); got != "In Progress – Top 5" {
		t.Fatalf("unexpected detail %q", got)
	}
	if got := StatusDetail("In Progress", 7, false); got != "In Progress – Bot 7" {
		t.Fatalf("unexpected detail %q", got)
	}
}

func TestStatusDetailExtraInnings(t *testing.T) {
	if got := StatusDetail("Final", 11, false); got != "F/11" {
		t.Fatalf("unexpected detail %q", got)
	}
	// Regulation finals keep the raw status.
	if got := StatusDetail("Final", 9, false); got != "Final" {
		t.Fatalf("unexpected detail %q", got)
	}
}

func TestStatusDetailPassThrough(t *testing.T) {
	if got := StatusDetail("Scheduled", 0, false); got != "Scheduled" {
		t.Fatalf("unexpected detail %q", got)
	}
	// Live with unknown inning gets no suffix.
	if got := StatusDetail("Warmup", 0, true); got != "Warmup" {
		t.Fatalf("unexpected detail %q", got)
	}
}
