package types

import "github.com/jeopardize/board-backend/internal/board"

// ClientMessage is what a connected client may send:
//
//	StartGame: {}                       — request a fresh board
//	Activate:  {category, clue}         — click the cell at that coordinate
type ClientMessage struct {
	Type     string `json:"type"`
	Category int    `json:"category"`
	Clue     int    `json:"clue"`
}

type RevealPayload struct {
	Category int    `json:"category"`
	Clue     int    `json:"clue"`
	Text     string `json:"text"`
}

// ServerMessage is either a versioned board snapshot or an error. LoadError
// rides on a snapshot so a failed load still tells clients the prior board
// is the one on display.
type ServerMessage struct {
	Type      string         `json:"type"` // "StateSnapshot" | "Error"
	Version   int            `json:"version,omitempty"`
	Loading   bool           `json:"loading,omitempty"`
	Board     *board.Board   `json:"board,omitempty"`
	Reveal    *RevealPayload `json:"reveal,omitempty"`
	LoadError string         `json:"load_error,omitempty"`
	Error     string         `json:"error,omitempty"`
}
