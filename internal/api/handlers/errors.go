package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/baharkarakas/marina-backend/internal/api/httpx"
	"github.com/baharkarakas/marina-backend/internal/middleware"
	"github.com/baharkarakas/marina-backend/internal/models"
	"github.com/baharkarakas/marina-backend/internal/validate"
)

// writeServiceError maps the service error taxonomy onto HTTP. Anything it
// does not recognise is logged and answered with a bare 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var verrs validate.Errs
	switch {
	case errors.As(err, &verrs):
		httpx.WriteError(w, http.StatusBadRequest, httpx.APIError{
			Message: "Données invalides",
			Error:   verrs.Error(),
			Code:    "validation_error",
			Details: verrs,
		})
	case errors.Is(err, models.ErrCatwayNotFound):
		notFound(w, "Catway non trouvé")
	case errors.Is(err, models.ErrReservationNotFound):
		notFound(w, "Réservation non trouvée")
	case errors.Is(err, models.ErrUserNotFound):
		notFound(w, "Utilisateur non trouvé")
	case errors.Is(err, models.ErrNotFound):
		notFound(w, "Ressource non trouvée")
	case errors.Is(err, models.ErrCatwayExists):
		conflict(w, "Un catway avec ce numéro existe déjà", "duplicate_key")
	case errors.Is(err, models.ErrEmailTaken):
		conflict(w, "Un utilisateur avec cet email existe déjà", "duplicate_key")
	case errors.Is(err, models.ErrDuplicateKey):
		conflict(w, "Cette ressource existe déjà", "duplicate_key")
	case errors.Is(err, models.ErrCatwayInUse):
		conflict(w, "Ce catway a des réservations en cours", "catway_in_use")
	case errors.Is(err, models.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, httpx.APIError{
			Message: "Email ou mot de passe incorrect",
			Code:    "invalid_credentials",
		})
	default:
		log.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", middleware.RequestIDFrom(r.Context())),
			slog.Any("err", err),
		)
		httpx.WriteError(w, http.StatusInternalServerError, httpx.APIError{
			Message: "Erreur interne du serveur",
			Code:    "internal_error",
		})
	}
}

func notFound(w http.ResponseWriter, msg string) {
	httpx.WriteError(w, http.StatusNotFound, httpx.APIError{Message: msg, Code: "not_found"})
}

func conflict(w http.ResponseWriter, msg, code string) {
	httpx.WriteError(w, http.StatusConflict, httpx.APIError{Message: msg, Code: code})
}

func writeBadBody(w http.ResponseWriter, err error) {
	httpx.WriteError(w, http.StatusBadRequest, httpx.APIError{
		Message: "Corps de requête invalide",
		Error:   err.Error(),
		Code:    "invalid_body",
	})
}
