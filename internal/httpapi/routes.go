package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/jeopardize/board-backend/internal/hub"
	"github.com/jeopardize/board-backend/internal/ws"
)

func SetupRoutes(h *hub.Hub, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Public routes
	r.Post("/games", CreateGame(h, log))
	r.Get("/healthz", Healthz)
	r.Get("/ws", ws.Handler(h, log))
	return r
}
