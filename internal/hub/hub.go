package hub

import (
	"context"

	"go.uber.org/zap"

	"github.com/jeopardize/board-backend/internal/session"
)

type HubMsg interface{ isHubMsg() }

type CreateSession struct {
	Code  string
	Reply chan *session.Session
}

type GetSession struct {
	Code  string
	Reply chan *session.Session
}

type EnsureSession struct {
	Code  string
	Reply chan *session.Session
}

type RemoveSession struct {
	Code string
}

type ShutdownHub struct{}

func (CreateSession) isHubMsg() {}
func (GetSession) isHubMsg()    {}
func (EnsureSession) isHubMsg() {}
func (RemoveSession) isHubMsg() {}
func (ShutdownHub) isHubMsg()   {}

// Hub is the registry of game sessions keyed by join code. Like the
// sessions themselves it runs as a message loop, so the map needs no lock.
type Hub struct {
	inbox    chan HubMsg
	sessions map[string]*session.Session
	loader   session.Loader
	log      *zap.Logger
	ctx      context.Context
	cancel   context.CancelFunc
}

func NewHub(parent context.Context, l session.Loader, log *zap.Logger) *Hub {
	ctx, cancel := context.WithCancel(parent)
	h := &Hub{
		inbox:    make(chan HubMsg, 64),
		sessions: make(map[string]*session.Session),
		loader:   l,
		log:      log,
		ctx:      ctx,
		cancel:   cancel,
	}
	go h.loop()
	return h
}

func (h *Hub) Inbox() chan<- HubMsg { return h.inbox }

func (h *Hub) loop() {
	for {
		select {
		case <-h.ctx.Done():
			h.shutdown()
			return

		case m := <-h.inbox:
			switch msg := m.(type) {
			case CreateSession:
				if s := h.sessions[msg.Code]; s != nil {
					msg.Reply <- s
					break
				}
				s := session.New(h.ctx, h.loader, h.log.With(zap.String("code", msg.Code)))
				h.sessions[msg.Code] = s
				msg.Reply <- s

			case GetSession:
				msg.Reply <- h.sessions[msg.Code] // May be nil

			case EnsureSession:
				if s := h.sessions[msg.Code]; s != nil {
					msg.Reply <- s
					break
				}
				s := session.New(h.ctx, h.loader, h.log.With(zap.String("code", msg.Code)))
				h.sessions[msg.Code] = s
				msg.Reply <- s

			case RemoveSession:
				delete(h.sessions, msg.Code)

			case ShutdownHub:
				h.shutdown()
				return
			}
		}
	}
}

func (h *Hub) shutdown() {
	for _, s := range h.sessions {
		s.Inbox() <- session.Shutdown{}
	}
	clear(h.sessions)
	h.cancel()
}
