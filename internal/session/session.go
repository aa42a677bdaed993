package session

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/jeopardize/board-backend/internal/board"
)

var ErrLoadInFlight = errors.New("a board load is already in flight")

// Loader is the board-loading dependency; satisfied by *loader.Loader.
type Loader interface {
	LoadBoard(ctx context.Context) (*board.Board, error)
}

type Msg interface{ isSessionMsg() }

type Join struct {
	ClientID string
	Outbox   chan Snapshot // where this client wants to receive snapshots
}

func (Join) isSessionMsg() {}

type Leave struct{ ClientID string }

func (Leave) isSessionMsg() {}

// StartGame requests a fresh board. Reply answers immediately: nil when the
// load was accepted, ErrLoadInFlight when a prior load is still running.
// The outcome of the load itself arrives later as a broadcast snapshot.
type StartGame struct {
	Reply chan error
}

func (StartGame) isSessionMsg() {}

// Activate is a cell click carrying a structured coordinate.
type Activate struct {
	Coord board.Coord
}

func (Activate) isSessionMsg() {}

type GetState struct {
	Reply chan View
}

func (GetState) isSessionMsg() {}

type Shutdown struct{}

func (Shutdown) isSessionMsg() {}

// loadResult is posted back to the loop by the load goroutine so the board
// is only ever touched from inside the actor.
type loadResult struct {
	board *board.Board
	err   error
}

func (loadResult) isSessionMsg() {}

// Reveal reports the text uncovered by the activation that produced a
// snapshot.
type Reveal struct {
	Coord board.Coord
	Text  string
}

type Snapshot struct {
	Version int
	Loading bool
	Board   *board.Board
	Reveal  *Reveal
	LoadErr string
}

type View struct {
	Version    int
	NumClients int
	Loading    bool
	Board      *board.Board
}

// Session owns exactly one board. All access goes through the inbox loop,
// so the board is mutated by a single goroutine. While a load is in flight
// activations are ignored and further StartGame requests are rejected; the
// previous board stays visible until the new one is fully built.
type Session struct {
	inbox   chan Msg
	board   *board.Board
	version int
	loading bool
	loader  Loader
	clients map[string]chan Snapshot
	log     *zap.Logger
	ctx     context.Context
	cancel  context.CancelFunc
}

func New(parent context.Context, l Loader, log *zap.Logger) *Session {
	ctx, cancel := context.WithCancel(parent)

	s := &Session{
		inbox:   make(chan Msg, 64),
		board:   board.New(),
		loader:  l,
		clients: make(map[string]chan Snapshot),
		log:     log,
		ctx:     ctx,
		cancel:  cancel,
	}

	go s.loop()
	return s
}

func (s *Session) Inbox() chan<- Msg { return s.inbox }

func (s *Session) loop() {
	for {
		select {
		case <-s.ctx.Done():
			s.shutdown()
			return

		case m := <-s.inbox:
			switch msg := m.(type) {
			case Join:
				s.clients[msg.ClientID] = msg.Outbox
				msg.Outbox <- s.snapshot()

			case Leave:
				delete(s.clients, msg.ClientID)

			case StartGame:
				if s.loading {
					msg.Reply <- ErrLoadInFlight
					break
				}
				s.loading = true
				msg.Reply <- nil
				s.broadcast(s.snapshot())

				go func() {
					b, err := s.loader.LoadBoard(s.ctx)
					select {
					case s.inbox <- loadResult{board: b, err: err}:
					case <-s.ctx.Done():
					}
				}()

			case loadResult:
				s.loading = false
				if msg.err != nil {
					s.log.Warn("board load failed", zap.Error(msg.err))
					snap := s.snapshot()
					snap.LoadErr = msg.err.Error()
					s.broadcast(snap)
					break
				}
				s.board = msg.board
				s.version++
				s.broadcast(s.snapshot())

			case Activate:
				if s.loading {
					break
				}
				text, revealed, err := board.Activate(s.board, msg.Coord)
				if err != nil {
					// Coordinates come from rendered cell ids, so a bad one
					// is a client bug, not a user-facing failure.
					s.log.Warn("activation out of range",
						zap.Int("category", msg.Coord.Category),
						zap.Int("clue", msg.Coord.Clue),
					)
					break
				}
				if !revealed {
					break
				}
				s.version++
				snap := s.snapshot()
				snap.Reveal = &Reveal{Coord: msg.Coord, Text: text}
				s.broadcast(snap)

			case GetState:
				msg.Reply <- View{
					Version:    s.version,
					NumClients: len(s.clients),
					Loading:    s.loading,
					Board:      s.board.Clone(),
				}

			case Shutdown:
				s.shutdown()
				return
			}
		}
	}
}

func (s *Session) snapshot() Snapshot {
	return Snapshot{
		Version: s.version,
		Loading: s.loading,
		Board:   s.board.Clone(),
	}
}

func (s *Session) shutdown() {
	for id, ch := range s.clients {
		close(ch)
		delete(s.clients, id)
	}
	s.cancel()
}

func (s *Session) broadcast(snap Snapshot) {
	for id, ch := range s.clients {
		select {
		case ch <- snap:
		default:
			// Client is slow/full - drop them.
			close(ch)
			delete(s.clients, id)
		}
	}
}
