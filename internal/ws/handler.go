package ws

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"go.uber.org/zap"

	"github.com/jeopardize/board-backend/internal/board"
	"github.com/jeopardize/board-backend/internal/hub"
	"github.com/jeopardize/board-backend/internal/session"
	"github.com/jeopardize/board-backend/internal/types"
)

// Handler is the presentation adapter boundary: it maps wire messages to
// session commands (clicks carry a structured coordinate) and streams
// versioned snapshots back to the client.
func Handler(h *hub.Hub, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			http.Error(w, "missing code", http.StatusBadRequest)
			return
		}

		reply := make(chan *session.Session, 1)
		h.Inbox() <- hub.GetSession{Code: code, Reply: reply}
		sess := <-reply
		if sess == nil {
			http.Error(w, "game not found", http.StatusNotFound)
			return
		}

		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		out := make(chan session.Snapshot, 8)
		clientID := randID(6)

		sess.Inbox() <- session.Join{ClientID: clientID, Outbox: out}
		defer func() { sess.Inbox() <- session.Leave{ClientID: clientID} }()

		writeCtx, writeCancel := context.WithCancel(r.Context())
		defer writeCancel()
		go func() {
			for snap := range out {
				writeMessage(writeCtx, conn, snapshotMessage(snap))
			}
		}()

		for {
			ctx, cancel := context.WithTimeout(r.Context(), 5*time.Minute)
			_, data, err := conn.Read(ctx)
			cancel()
			if err != nil {
				switch websocket.CloseStatus(err) {
				case websocket.StatusNormalClosure, websocket.StatusGoingAway:
					return
				}
				return
			}

			var cm types.ClientMessage
			if err := json.Unmarshal(data, &cm); err != nil {
				writeMessage(r.Context(), conn, types.ServerMessage{Type: "Error", Error: "bad json"})
				continue
			}

			switch cm.Type {
			case "StartGame":
				reply := make(chan error, 1)
				sess.Inbox() <- session.StartGame{Reply: reply}
				if err := <-reply; err != nil {
					if errors.Is(err, session.ErrLoadInFlight) {
						writeMessage(r.Context(), conn, types.ServerMessage{Type: "Error", Error: "game is already loading"})
						continue
					}
					writeMessage(r.Context(), conn, types.ServerMessage{Type: "Error", Error: err.Error()})
				}

			case "Activate":
				sess.Inbox() <- session.Activate{
					Coord: board.Coord{Category: cm.Category, Clue: cm.Clue},
				}

			default:
				log.Debug("unknown client message", zap.String("type", cm.Type))
				writeMessage(r.Context(), conn, types.ServerMessage{Type: "Error", Error: "unknown type"})
			}
		}
	}
}

func snapshotMessage(snap session.Snapshot) types.ServerMessage {
	msg := types.ServerMessage{
		Type:      "StateSnapshot",
		Version:   snap.Version,
		Loading:   snap.Loading,
		Board:     snap.Board,
		LoadError: snap.LoadErr,
	}
	if snap.Reveal != nil {
		msg.Reveal = &types.RevealPayload{
			Category: snap.Reveal.Coord.Category,
			Clue:     snap.Reveal.Coord.Clue,
			Text:     snap.Reveal.Text,
		}
	}
	return msg
}

func writeMessage(ctx context.Context, conn *websocket.Conn, msg types.ServerMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return
	}
	wctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	_ = conn.Write(wctx, websocket.MessageText, payload)
}

func randID(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}
