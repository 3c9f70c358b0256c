package ingest_test

import (
	"testing"

	"github.com/hooplytics/playtype-stats-service/internal/ingest"
)

func TestSplitName(t *testing.T) {
	cases := []struct {
		name      string
		in        string
		wantFirst string
		wantLast  string
	}{
		{"two tokens", "Jane Doe", "Jane", "Doe"},
		{"single token keeps last empty", "Cher", "Cher", ""},
		{"empty", "", "", ""},
		{"whitespace only", "   ", "", ""},
		{"three tokens join the remainder", "Juan Carlos Navarro", "Juan", "Carlos Navarro"},
		{"extra inner whitespace collapses", "Jane   Doe", "Jane", "Doe"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			first, last := ingest.SplitName(tc.in)
			if first != tc.wantFirst || last != tc.wantLast {
				t.Fatalf("SplitName(%q) = (%q, %q), want (%q, %q)", tc.in, first, last, tc.wantFirst, tc.wantLast)
			}
		})
	}
}
