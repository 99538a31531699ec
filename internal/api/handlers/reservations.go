package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/marina-backend/internal/api/httpx"
	"github.com/baharkarakas/marina-backend/internal/services"
)

type ReservationHandler struct {
	svc *services.ReservationService
	log *slog.Logger
}

func NewReservationHandler(svc *services.ReservationService, log *slog.Logger) *ReservationHandler {
	return &ReservationHandler{svc: svc, log: log}
}

func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	rs, err := h.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, rs)
}

// ListByCatway serves both /reservations/catway/{catwayNumber} and
// /catways/{catwayNumber}/reservations.
func (h *ReservationHandler) ListByCatway(w http.ResponseWriter, r *http.Request) {
	n, err := catwayNumberParam(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	rs, err := h.svc.ListByCatway(r.Context(), n)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, rs)
}

func (h *ReservationHandler) Get(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, res)
}

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body reservationBody
	if err := httpx.DecodeJSON(w, r, &body); err != nil {
		writeBadBody(w, err)
		return
	}
	res, err := h.svc.Create(r.Context(), body.reservation())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, res)
}

func (h *ReservationHandler) Update(w http.ResponseWriter, r *http.Request) {
	var body reservationBody
	if err := httpx.DecodeJSON(w, r, &body); err != nil {
		writeBadBody(w, err)
		return
	}
	res, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), body.patch())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, res)
}

func (h *ReservationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Catway-scoped routes

func (h *ReservationHandler) CreateForCatway(w http.ResponseWriter, r *http.Request) {
	n, err := catwayNumberParam(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	var body reservationBody
	if err := httpx.DecodeJSON(w, r, &body); err != nil {
		writeBadBody(w, err)
		return
	}
	res, err := h.svc.CreateForCatway(r.Context(), n, body.reservation())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, res)
}

func (h *ReservationHandler) GetForCatway(w http.ResponseWriter, r *http.Request) {
	n, err := catwayNumberParam(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	res, err := h.svc.GetForCatway(r.Context(), n, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, res)
}

func (h *ReservationHandler) UpdateForCatway(w http.ResponseWriter, r *http.Request) {
	n, err := catwayNumberParam(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	var body reservationBody
	if err := httpx.DecodeJSON(w, r, &body); err != nil {
		writeBadBody(w, err)
		return
	}
	res, err := h.svc.UpdateForCatway(r.Context(), n, chi.URLParam(r, "id"), body.patch())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, res)
}

func (h *ReservationHandler) DeleteForCatway(w http.ResponseWriter, r *http.Request) {
	n, err := catwayNumberParam(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteForCatway(r.Context(), n, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
