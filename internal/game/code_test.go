package game

import (
	"strconv"
	"testing"
)

func TestNewRoomCodeIsFourDigits(t *testing.T) {
	for range 1000 {
		code := NewRoomCode()
		if len(code) != 4 {
			t.Fatalf("expected 4 characters, got %q", code)
		}
		n, err := strconv.Atoi(code)
		if err != nil {
			t.Fatalf("code %q is not numeric: %v", code, err)
		}
		if n < 1000 || n > 9999 {
			t.Fatalf("code %d out of range", n)
		}
	}
}

func TestNewPlayerIDIsOpaqueAndDistinct(t *testing.T) {
	a := NewPlayerID()
	b := NewPlayerID()
	if a == "" || b == "" {
		t.Fatal("expected non-empty ids")
	}
	if a == b {
		t.Fatalf("expected distinct ids, got %q twice", a)
	}
}

func TestRollDiceRange(t *testing.T) {
	for range 1000 {
		roll := RollDice()
		if roll < 2 || roll > 12 {
			t.Fatalf("roll %d outside [2,12]", roll)
		}
	}
}
