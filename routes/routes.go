package routes

import (
	"log/slog"
	"net/http"

	_ "github.com/Dosada05/championship/docs"
	"github.com/Dosada05/championship/handlers"
	"github.com/Dosada05/championship/middleware"
	"github.com/Dosada05/championship/models"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	JWTSecret      []byte
	AllowedOrigins []string
	// RegisterLimiter throttles POST /api/register. Nil disables throttling.
	RegisterLimiter *middleware.IPRateLimiter
	// Logger receives admin audit entries. Nil means slog.Default().
	Logger *slog.Logger
}

func SetupRoutes(
	router *chi.Mux,
	opts Options,
	playerHandler *handlers.PlayerHandler,
	scheduleHandler *handlers.ScheduleHandler,
	authHandler *handlers.AuthHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	router.Get("/ws/roster", webSocketHandler.ServeRoster)

	router.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if opts.RegisterLimiter != nil {
				r.Use(opts.RegisterLimiter.Middleware)
			}
			r.Post("/register", playerHandler.Register)
		})

		r.Get("/players", playerHandler.ListPlayers)

		r.Get("/team-pairings", scheduleHandler.TeamPairings)
		r.Get("/team-pairings/export.xlsx", scheduleHandler.ExportPairings)
		r.Get("/knockout", scheduleHandler.Knockout)
		r.Get("/knockout/export.xlsx", scheduleHandler.ExportKnockout)
		r.Get("/playoffs", scheduleHandler.Playoffs)

		r.Post("/admin/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(opts.JWTSecret))
			r.Use(middleware.Authorize(models.RoleAdmin))
			r.Use(middleware.AuditLog(opts.Logger))

			r.Delete("/clear-all", playerHandler.ClearAll)
			r.Post("/schedules/publish", scheduleHandler.Publish)
			r.Delete("/schedules/{scheduleID}", scheduleHandler.Unpublish)
		})
	})
}
