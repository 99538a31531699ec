package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/baharkarakas/marina-backend/internal/api/handlers"
	"github.com/baharkarakas/marina-backend/internal/api/httpx"
	"github.com/baharkarakas/marina-backend/internal/auth"
	"github.com/baharkarakas/marina-backend/internal/config"
	"github.com/baharkarakas/marina-backend/internal/metrics"
	"github.com/baharkarakas/marina-backend/internal/middleware"
	"github.com/baharkarakas/marina-backend/internal/repository"
	"github.com/baharkarakas/marina-backend/internal/services"
)

type RouterDeps struct {
	Cfg            config.Config
	Log            *slog.Logger
	Tokens         *auth.TokenManager
	Store          repository.Pinger
	CatwaySvc      *services.CatwayService
	ReservationSvc *services.ReservationService
	UserSvc        *services.UserService
	DashboardSvc   *services.DashboardService
}

func NewRouter(d RouterDeps) http.Handler {
	users := handlers.NewUserHandler(d.UserSvc, d.Log)
	catways := handlers.NewCatwayHandler(d.CatwaySvc, d.Log)
	reservations := handlers.NewReservationHandler(d.ReservationSvc, d.Log)
	dashboard := handlers.NewDashboardHandler(d.DashboardSvc, d.Log)

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.Logging(d.Log),
		middleware.HTTPMetrics,
		// inside logging and metrics so a recovered panic is recorded as a 500
		middleware.Recover(d.Log),
		middleware.RateLimit(d.Cfg.RateRPS),
	)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: d.Cfg.CORS,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteError(w, http.StatusNotFound, httpx.APIError{Message: "Route non trouvée", Code: "not_found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteError(w, http.StatusMethodNotAllowed, httpx.APIError{Message: "Méthode non autorisée", Code: "method_not_allowed"})
	})

	r.Get("/health", handlers.Health(d.Store, d.Log))
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/users", users.Register)
		r.Post("/users/login", users.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(d.Tokens))

			r.Get("/users", users.List)
			r.Get("/users/{key}", users.Get)
			r.Put("/users/{key}", users.Update)
			r.Delete("/users/{key}", users.Delete)

			r.Route("/catways", func(r chi.Router) {
				r.Get("/", catways.List)
				r.Post("/", catways.Create)
				r.Route("/{catwayNumber}", func(r chi.Router) {
					r.Get("/", catways.Get)
					r.Put("/", catways.Update)
					r.Delete("/", catways.Delete)

					r.Get("/reservations", reservations.ListByCatway)
					r.Post("/reservations", reservations.CreateForCatway)
					r.Get("/reservations/{id}", reservations.GetForCatway)
					r.Put("/reservations/{id}", reservations.UpdateForCatway)
					r.Delete("/reservations/{id}", reservations.DeleteForCatway)
				})
			})

			r.Route("/reservations", func(r chi.Router) {
				r.Get("/", reservations.List)
				r.Post("/", reservations.Create)
				r.Get("/catway/{catwayNumber}", reservations.ListByCatway)
				r.Get("/{id}", reservations.Get)
				r.Put("/{id}", reservations.Update)
				r.Delete("/{id}", reservations.Delete)
			})

			r.Get("/dashboard", dashboard.Stats)
		})
	})

	return r
}
