package providers

import "testing"

func TestResolveTimezone(t *testing.T) {
	if loc := ResolveTimezone("America/New_York"); loc == nil {
		t.Fatal("expected valid location")
	}
	if loc := ResolveTimezone(""); loc != nil {
		t.Fatalf("expected nil for empty tz, got %v", loc)
	}
	if loc := ResolveTimezone("Not/AZone"); loc != nil {
		t.Fatalf("expected nil for bogus tz, got %v", loc)
	}
}
