package game

import (
	"errors"
	"testing"
)

func TestParsePlayerRejectsMalformedCandidates(t *testing.T) {
	cases := []struct {
		name string
		c    Candidate
	}{
		{"empty candidate", Candidate{}},
		{"empty id", Candidate{ID: "", Name: "x", Color: "#fff", Ready: false}},
		{"non-string id", Candidate{ID: 42, Name: "x", Color: "#fff", Ready: false}},
		{"whitespace-only name", Candidate{ID: "x", Name: "  ", Color: "#fff", Ready: false}},
		{"missing name", Candidate{ID: "x", Color: "#fff", Ready: false}},
		{"non-string color", Candidate{ID: "x", Name: "x", Color: 7, Ready: false}},
		{"non-bool ready", Candidate{ID: "x", Name: "x", Color: "#fff", Ready: "yes"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParsePlayer(tc.c); !errors.Is(err, ErrInvalidPlayer) {
				t.Fatalf("expected ErrInvalidPlayer, got %v", err)
			}
		})
	}
}

func TestParsePlayerAcceptsWellFormedCandidate(t *testing.T) {
	p, err := ParsePlayer(Candidate{ID: "p1", Name: "Ann", Color: "#ef4444", Ready: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Player{ID: "p1", Name: "Ann", Color: "#ef4444", Ready: true, Tile: 1}
	if p != want {
		t.Fatalf("unexpected player: %+v", p)
	}
}

func TestSanitizePlayerCoercesLooseTypes(t *testing.T) {
	p := SanitizePlayer(Candidate{ID: 123, Name: "  Bo  ", Color: nil, Ready: "yes"})
	want := Player{ID: "123", Name: "Bo", Color: DefaultColor, Ready: true, Tile: 1, IsHost: false}
	if p != want {
		t.Fatalf("unexpected player: %+v", p)
	}
}

func TestSanitizePlayerKeepsNumericTile(t *testing.T) {
	p := SanitizePlayer(Candidate{ID: "p1", Name: "Ann", Color: "#fff", Ready: true, Tile: float64(42)})
	if p.Tile != 42 {
		t.Fatalf("expected tile 42, got %d", p.Tile)
	}
}

func TestSanitizePlayerIdempotent(t *testing.T) {
	first := SanitizePlayer(Candidate{ID: 123, Name: "  Bo  ", Color: nil, Ready: "yes", Tile: 7})
	second := SanitizePlayer(first.Candidate())
	if first != second {
		t.Fatalf("sanitize not idempotent: %+v vs %+v", first, second)
	}
}
