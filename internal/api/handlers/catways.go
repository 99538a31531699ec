package handlers

import (
	"log/slog"
	"net/http"

	"github.com/baharkarakas/marina-backend/internal/api/httpx"
	"github.com/baharkarakas/marina-backend/internal/models"
	"github.com/baharkarakas/marina-backend/internal/services"
)

type CatwayHandler struct {
	svc *services.CatwayService
	log *slog.Logger
}

func NewCatwayHandler(svc *services.CatwayService, log *slog.Logger) *CatwayHandler {
	return &CatwayHandler{svc: svc, log: log}
}

func (h *CatwayHandler) List(w http.ResponseWriter, r *http.Request) {
	cs, err := h.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, cs)
}

func (h *CatwayHandler) Get(w http.ResponseWriter, r *http.Request) {
	n, err := catwayNumberParam(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	c, err := h.svc.Get(r.Context(), n)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, c)
}

func (h *CatwayHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.Catway
	if err := httpx.DecodeJSON(w, r, &in); err != nil {
		writeBadBody(w, err)
		return
	}
	c, err := h.svc.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, c)
}

func (h *CatwayHandler) Update(w http.ResponseWriter, r *http.Request) {
	n, err := catwayNumberParam(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	var p models.CatwayPatch
	if err := httpx.DecodeJSON(w, r, &p); err != nil {
		writeBadBody(w, err)
		return
	}
	c, err := h.svc.Update(r.Context(), n, p)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, c)
}

func (h *CatwayHandler) Delete(w http.ResponseWriter, r *http.Request) {
	n, err := catwayNumberParam(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	if err := h.svc.Delete(r.Context(), n); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
