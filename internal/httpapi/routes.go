package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/DoyleJ11/lol-cooldown-tracker/internal/champion"
	"github.com/DoyleJ11/lol-cooldown-tracker/internal/hub"
	"github.com/DoyleJ11/lol-cooldown-tracker/internal/ws"
)

func SetupRoutes(h *hub.Hub, src champion.Source, log *zap.Logger, origins []string) http.Handler {
	r := chi.NewRouter()

	// Public routes
	r.Post("/sessions", CreateSession(h, log))
	r.Get("/healthz", Healthz)
	r.Get("/ws", ws.Handler(h, src, log, ws.Options{OriginPatterns: origins}))

	// Calculator and static data
	r.Get("/champions", Champions(src, log))
	r.Get("/champions/{id}", Champion(src, log))
	r.Get("/summoners", Summoners)
	r.Get("/cooldown", Cooldown)
	return r
}
