package config

import (
	"reflect"
	"testing"
)

func TestListEnvOrDefault(t *testing.T) {
	t.Setenv("LIST_TEST", "")
	if got := listEnvOrDefault("LIST_TEST", []string{"*"}); !reflect.DeepEqual(got, []string{"*"}) {
		t.Fatalf("expected default for unset, got %v", got)
	}

	t.Setenv("LIST_TEST", "https://a.example, https://b.example ,")
	want := []string{"https://a.example", "https://b.example"}
	if got := listEnvOrDefault("LIST_TEST", []string{"*"}); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	t.Setenv("LIST_TEST", " , ,")
	if got := listEnvOrDefault("LIST_TEST", []string{"*"}); !reflect.DeepEqual(got, []string{"*"}) {
		t.Fatalf("expected default for blank entries, got %v", got)
	}
}

func TestBoolEnvOrDefault(t *testing.T) {
	t.Setenv("BOOL_TEST", "")
	if got := boolEnvOrDefault("BOOL_TEST", true); !got {
		t.Fatalf("expected default true when unset")
	}

	cases := []struct {
		val      string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"FALSE", false},
		{"0", false},
		{"no", false},
		{"maybe", true}, // falls back to default on unknown
	}

	for _, tc := range cases {
		t.Setenv("BOOL_TEST", tc.val)
		if got := boolEnvOrDefault("BOOL_TEST", true); got != tc.expected {
			t.Fatalf("expected %v for %s, got %v", tc.expected, tc.val, got)
		}
	}
}
