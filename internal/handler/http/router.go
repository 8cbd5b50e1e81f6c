package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/officetrack/officeday-backend-go/internal/handler/http/middleware"
	"github.com/officetrack/officeday-backend-go/internal/pkg/jwt"
)

func NewRouter(JWTService jwt.Service, officeDayHandler OfficeDayHandler, statisticsHandler StatisticsHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "officeday-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/statistics", func(r chi.Router) {
			r.Get("/month", statisticsHandler.Month)
			r.Get("/quarter", statisticsHandler.Quarter)
			r.Get("/year", statisticsHandler.Year)
			r.Get("/range", statisticsHandler.Range)
			r.Get("/years", statisticsHandler.Years)
			r.Get("/months", statisticsHandler.Months)
		})

		r.Get("/quarter-config", statisticsHandler.GetQuarterConfig)

		r.Get("/office-days", officeDayHandler.List)
		r.Get("/office-days/today", officeDayHandler.Today)

		r.Get("/calendar/permissions", officeDayHandler.Permissions)

		// Mutating routes require a bearer token
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Post("/office-days", officeDayHandler.Log)
			r.Delete("/office-days/{id}", officeDayHandler.Delete)

			r.Put("/quarter-config", statisticsHandler.UpdateQuarterConfig)
			r.Post("/quarter-config/reset", statisticsHandler.ResetQuarterConfig)
		})
	})
	return r
}
