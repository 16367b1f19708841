package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/teampulse/standup-backend-go/internal/domain/user"
	"github.com/teampulse/standup-backend-go/internal/handler/http/middleware"
	"github.com/teampulse/standup-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	JWTService         jwt.Service
	AuthHandler        AuthHandler
	UserHandler        UserHandler
	DepartmentHandler  DepartmentHandler
	StandupHandler     StandupHandler
	LeaveHandler       LeaveHandler
	DeliverableHandler DeliverableHandler
	DashboardHandler   DashboardHandler
	EventsHandler      EventsHandler
	FrontendURL        string
	Env                string
}

func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "teampulse-standup"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Test-Mode"},
		ExposedHeaders:   []string{"Link"},
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

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", cfg.AuthHandler.Login)
			r.Post("/refresh", cfg.AuthHandler.RefreshToken)
			r.Post("/logout", cfg.AuthHandler.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", cfg.AuthHandler.LoginWithGoogle)
				r.Get("/callback/google", cfg.AuthHandler.OAuthCallbackGoogle)
			})
		})

		// Media pipeline callback, no user session
		r.Post("/webhooks/transcription", cfg.StandupHandler.TranscriptCallback)

		// SSE stream authenticates via its own short-lived token
		r.Get("/events", cfg.EventsHandler.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(cfg.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(cfg.JWTService.JWTAuth()))

			r.Get("/events/token", cfg.EventsHandler.GetSSEToken)

			r.Route("/me", func(r chi.Router) {
				r.Get("/", cfg.UserHandler.GetMe)
				r.Put("/preference", cfg.UserHandler.UpdateMyPreference)
			})

			r.Route("/standups", func(r chi.Router) {
				r.Post("/", cfg.StandupHandler.Submit)
				r.Post("/media", cfg.StandupHandler.SubmitMedia)
				r.Get("/today", cfg.StandupHandler.GetTodayStatus)
				r.Get("/my", cfg.StandupHandler.GetMyStandups)
				r.Get("/my/stats", cfg.StandupHandler.GetMyStats)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/", cfg.StandupHandler.List)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", cfg.LeaveHandler.Create)
				r.Get("/my", cfg.LeaveHandler.GetMyLeaves)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/", cfg.LeaveHandler.List)
					r.Put("/{id}/approve", cfg.LeaveHandler.Approve)
					r.Put("/{id}/reject", cfg.LeaveHandler.Reject)
				})
			})

			r.Route("/deliverables", func(r chi.Router) {
				r.Post("/", cfg.DeliverableHandler.Upsert)
				r.Get("/my", cfg.DeliverableHandler.GetMyDeliverables)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionDeliverableReport))
					r.Get("/report", cfg.DeliverableHandler.GetReport)
				})
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionDashboardView))
				r.Get("/team", cfg.DashboardHandler.GetTeamDashboard)
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", cfg.DepartmentHandler.List)
				r.Get("/{id}", cfg.DepartmentHandler.GetByID)
			})

			// Superadmin only
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.SuperadminOnly)

				r.Route("/users", func(r chi.Router) {
					r.Get("/", cfg.UserHandler.List)
					r.Post("/", cfg.UserHandler.Create)
					r.Get("/{id}", cfg.UserHandler.GetByID)
					r.Put("/{id}", cfg.UserHandler.Update)
					r.Delete("/{id}", cfg.UserHandler.Deactivate)
				})

				r.Route("/departments", func(r chi.Router) {
					r.Post("/", cfg.DepartmentHandler.Create)
					r.Put("/{id}", cfg.DepartmentHandler.Update)
					r.Delete("/{id}", cfg.DepartmentHandler.Delete)
				})
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	return r
}
