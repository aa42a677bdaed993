package board

import "errors"

var ErrOutOfRange = errors.New("coordinate out of range")

// RevealState tracks how much of a clue has been shown. It only ever
// advances Hidden -> Question -> Answer; there is no reset within a game.
type RevealState string

const (
	Hidden   RevealState = "hidden"
	Question RevealState = "question"
	Answer   RevealState = "answer"
)

const (
	// NumCategories is the board width.
	NumCategories = 6
	// CluesPerCategory is the board height.
	CluesPerCategory = 5
)

type Clue struct {
	Question string      `json:"question"`
	Answer   string      `json:"answer"`
	Showing  RevealState `json:"showing"`
}

type Category struct {
	Title string `json:"title"`
	Clues []Clue `json:"clues"`
}

// Board holds one game's categories. It is either fully empty (pre-load)
// or carries exactly NumCategories categories of CluesPerCategory clues.
type Board struct {
	Categories []Category `json:"categories"`
}

// New returns an empty, not-yet-loaded board.
func New() *Board {
	return &Board{}
}

func (b *Board) Populated() bool {
	return len(b.Categories) == NumCategories
}

// Clone deep-copies the board so snapshots handed to other goroutines
// never alias the session-owned value.
func (b *Board) Clone() *Board {
	out := &Board{Categories: make([]Category, len(b.Categories))}
	for i, cat := range b.Categories {
		clues := make([]Clue, len(cat.Clues))
		copy(clues, cat.Clues)
		out.Categories[i] = Category{Title: cat.Title, Clues: clues}
	}
	return out
}

// Coord addresses one cell on the board.
type Coord struct {
	Category int `json:"category"`
	Clue     int `json:"clue"`
}

// Activate advances the clue at c one step through its reveal sequence and
// returns the text to display: the question on the first activation, the
// answer on the second. Once the answer is showing further activations are
// ignored and revealed is false. Coordinates outside the board fail with
// ErrOutOfRange and leave the board untouched.
//
// This is the only code path that mutates a clue's Showing state.
func Activate(b *Board, c Coord) (text string, revealed bool, err error) {
	if c.Category < 0 || c.Category >= len(b.Categories) {
		return "", false, ErrOutOfRange
	}

	cat := &b.Categories[c.Category]
	if c.Clue < 0 || c.Clue >= len(cat.Clues) {
		return "", false, ErrOutOfRange
	}

	clue := &cat.Clues[c.Clue]
	switch clue.Showing {
	case Hidden:
		clue.Showing = Question
		return clue.Question, true, nil
	case Question:
		clue.Showing = Answer
		return clue.Answer, true, nil
	default:
		return "", false, nil
	}
}
