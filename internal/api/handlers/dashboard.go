package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/baharkarakas/marina-backend/internal/api/httpx"
	"github.com/baharkarakas/marina-backend/internal/repository"
	"github.com/baharkarakas/marina-backend/internal/services"
)

type DashboardHandler struct {
	svc *services.DashboardService
	log *slog.Logger
}

func NewDashboardHandler(svc *services.DashboardService, log *slog.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, log: log}
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Stats(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, d)
}

// Health reports 503 when the store does not answer a ping within two seconds.
func Health(store repository.Pinger, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			log.Warn("health check failed", slog.Any("err", err))
			httpx.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
