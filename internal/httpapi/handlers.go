package httpapi

import (
	"crypto/rand"
	"encoding/json"
	"math/big"
	"net/http"

	"go.uber.org/zap"

	"github.com/jeopardize/board-backend/internal/hub"
	"github.com/jeopardize/board-backend/internal/session"
)

func GenerateCode() (string, error) {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	code := make([]byte, 6)
	for i := 0; i < 6; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		code[i] = charset[num.Int64()]
	}
	return string(code), nil
}

func CreateGame(h *hub.Hub, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var code string
		for {
			c, err := GenerateCode()
			if err != nil {
				http.Error(w, "failed to generate code", http.StatusInternalServerError)
				return
			}
			reply := make(chan *session.Session, 1)
			h.Inbox() <- hub.GetSession{Code: c, Reply: reply}
			if <-reply == nil {
				code = c
				break
			}
			log.Info("collision on code, regenerating", zap.String("code", c))
		}

		reply := make(chan *session.Session, 1)
		h.Inbox() <- hub.EnsureSession{Code: code, Reply: reply}
		if <-reply == nil {
			http.Error(w, "failed to create game", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(struct {
			Code string `json:"code"`
		}{Code: code})
	}
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
