package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/marina-backend/internal/api/httpx"
	"github.com/baharkarakas/marina-backend/internal/models"
	"github.com/baharkarakas/marina-backend/internal/services"
)

type UserHandler struct {
	svc *services.UserService
	log *slog.Logger
}

func NewUserHandler(svc *services.UserService, log *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: log}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in services.RegisterInput
	if err := httpx.DecodeJSON(w, r, &in); err != nil {
		writeBadBody(w, err)
		return
	}
	s, err := h.svc.Register(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, s)
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in loginReq
	if err := httpx.DecodeJSON(w, r, &in); err != nil {
		writeBadBody(w, err)
		return
	}
	s, err := h.svc.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, s)
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	us, err := h.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, us)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.Get(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, u)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var p models.UserPatch
	if err := httpx.DecodeJSON(w, r, &p); err != nil {
		writeBadBody(w, err)
		return
	}
	u, err := h.svc.Update(r.Context(), chi.URLParam(r, "key"), p)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, u)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "key")); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
