package standings

import "testing"

func TestDivisionLabelKnownIDs(t *testing.T) {
	cases := map[int]string{
		200: "AL West",
		201: "AL East",
		202: "AL Central",
		203: "NL West",
		204: "NL East",
		205: "NL Central",
	}
	for id, want := range cases {
		if got := DivisionLabel(id, "ignored", "ignored"); got != want {
			t.Fatalf("id %d: got %q, want %q", id, got, want)
		}
	}
}

func TestDivisionLabelShortensDivisionName(t *testing.T) {
	got := DivisionLabel(999, "American League East", "")
	if got != "AL East" {
		t.Fatalf("got %q, want AL East", got)
	}
	got = DivisionLabel(999, "National League Central", "")
	if got != "NL Central" {
		t.Fatalf("got %q, want NL Central", got)
	}
}

func TestDivisionLabelFallsBackToLeagueName(t *testing.T) {
	got := DivisionLabel(999, "", "American League")
	if got != "AL" {
		t.Fatalf("got %q, want AL", got)
	}
}

func TestDivisionLabelGenericFallback(t *testing.T) {
	if got := DivisionLabel(999, "", ""); got != "Division" {
		t.Fatalf("got %q, want Division", got)
	}
}
