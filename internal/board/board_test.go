package board

import (
	"errors"
	"fmt"
	"testing"
)

func newTestBoard() *Board {
	b := &Board{Categories: make([]Category, NumCategories)}
	for i := range b.Categories {
		clues := make([]Clue, CluesPerCategory)
		for j := range clues {
			clues[j] = Clue{
				Question: fmt.Sprintf("q-%d-%d", i, j),
				Answer:   fmt.Sprintf("a-%d-%d", i, j),
				Showing:  Hidden,
			}
		}
		b.Categories[i] = Category{Title: fmt.Sprintf("category %d", i), Clues: clues}
	}
	return b
}

func TestActivateRevealSequence(t *testing.T) {
	b := &Board{Categories: []Category{{
		Title: "Math",
		Clues: []Clue{{Question: "2+2", Answer: "4", Showing: Hidden}},
	}}}
	coord := Coord{Category: 0, Clue: 0}

	text, revealed, err := Activate(b, coord)
	if err != nil || !revealed {
		t.Fatalf("first activate: revealed=%v err=%v", revealed, err)
	}
	if text != "2+2" {
		t.Fatalf("first activate: got %q, want question", text)
	}
	if b.Categories[0].Clues[0].Showing != Question {
		t.Fatalf("first activate: state %q, want %q", b.Categories[0].Clues[0].Showing, Question)
	}

	text, revealed, err = Activate(b, coord)
	if err != nil || !revealed {
		t.Fatalf("second activate: revealed=%v err=%v", revealed, err)
	}
	if text != "4" {
		t.Fatalf("second activate: got %q, want answer", text)
	}
	if b.Categories[0].Clues[0].Showing != Answer {
		t.Fatalf("second activate: state %q, want %q", b.Categories[0].Clues[0].Showing, Answer)
	}

	// Terminal state: every further click is a no-op.
	for i := 0; i < 3; i++ {
		text, revealed, err = Activate(b, coord)
		if err != nil {
			t.Fatalf("activate %d: unexpected err %v", i+3, err)
		}
		if revealed || text != "" {
			t.Fatalf("activate %d: got (%q, %v), want ignored click", i+3, text, revealed)
		}
		if b.Categories[0].Clues[0].Showing != Answer {
			t.Fatalf("activate %d: state regressed to %q", i+3, b.Categories[0].Clues[0].Showing)
		}
	}
}

func TestActivateOutOfRange(t *testing.T) {
	cases := []struct {
		name  string
		coord Coord
	}{
		{name: "category too large", coord: Coord{Category: 10, Clue: 0}},
		{name: "category at bound", coord: Coord{Category: NumCategories, Clue: 0}},
		{name: "negative category", coord: Coord{Category: -1, Clue: 0}},
		{name: "clue too large", coord: Coord{Category: 0, Clue: CluesPerCategory}},
		{name: "negative clue", coord: Coord{Category: 0, Clue: -1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := newTestBoard()

			_, _, err := Activate(b, tc.coord)
			if err == nil || !errors.Is(err, ErrOutOfRange) {
				t.Fatalf("want ErrOutOfRange, got %v", err)
			}

			for i, cat := range b.Categories {
				for j, clue := range cat.Clues {
					if clue.Showing != Hidden {
						t.Fatalf("board changed at (%d,%d): %q", i, j, clue.Showing)
					}
				}
			}
		})
	}
}

func TestActivateOnEmptyBoard(t *testing.T) {
	b := New()

	_, _, err := Activate(b, Coord{Category: 0, Clue: 0})
	if err == nil || !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("want ErrOutOfRange on empty board, got %v", err)
	}
}

func TestPopulated(t *testing.T) {
	if New().Populated() {
		t.Fatalf("empty board reported as populated")
	}
	if !newTestBoard().Populated() {
		t.Fatalf("full board reported as unpopulated")
	}
}

func TestCloneDoesNotAlias(t *testing.T) {
	b := newTestBoard()
	clone := b.Clone()

	if _, _, err := Activate(b, Coord{Category: 2, Clue: 3}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if clone.Categories[2].Clues[3].Showing != Hidden {
		t.Fatalf("mutating the original leaked into the clone")
	}
}
