package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/srad-secure/srad-backend-go/internal/domain/auth"
	"github.com/srad-secure/srad-backend-go/internal/handler/http/middleware"
	"github.com/srad-secure/srad-backend-go/internal/pkg/jwt"
)

// RouterConfig carries the deployment values the router logs and enforces.
type RouterConfig struct {
	Env            string
	Version        string
	AllowedOrigins []string
	LogLevel       slog.Level
}

// Handlers groups every HTTP handler mounted under /api/v1.
type Handlers struct {
	Auth      AuthHandler
	Region    RegionHandler
	Guard     GuardHandler
	Post      PostHandler
	Absence   AbsenceHandler
	Dispatch  DispatchHandler
	Exception ExceptionHandler
	Incident  IncidentHandler
	Equipment EquipmentHandler
	Shift     ShiftHandler
	Settings  SettingsHandler
	Audit     AuditHandler
	Dashboard DashboardHandler
	Jobs      JobHandler
}

func NewRouter(cfg RouterConfig, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "srad-backend"),
		slog.String("version", cfg.Version),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Post("/auth/login", h.Auth.Login)

		// EventSource cannot send headers; the stream token travels in ?token=
		r.Get("/audit/stream", h.Audit.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Post("/auth/stream-token", h.Auth.StreamToken)
			r.Post("/auth/logout", h.Auth.Logout)

			r.Route("/regions", func(r chi.Router) {
				r.Get("/", h.Region.List)
				r.Get("/travel", h.Region.Travel)
				r.Get("/corridors", h.Region.Corridors)
			})

			r.Route("/guards", func(r chi.Router) {
				r.Get("/", h.Guard.List)
				r.With(middleware.RequireRoles(auth.RoleAdmin, auth.RoleHR)).Post("/", h.Guard.Admit)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Guard.Get)
					r.With(middleware.RequireRoles(auth.RoleAdmin, auth.RoleSupervisor, auth.RoleGuard)).
						Post("/check-in", h.Guard.CheckIn)
					r.With(middleware.RequireRoles(auth.RoleAdmin, auth.RoleSupervisor)).
						Post("/reassign", h.Guard.Reassign)

					// HR only
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireRoles(auth.RoleAdmin, auth.RoleHR))
						r.Patch("/status", h.Guard.UpdateStatus)
						r.Put("/documents", h.Guard.UpdateDocument)
					})
				})
			})

			r.Route("/posts", func(r chi.Router) {
				r.Get("/", h.Post.List)
				r.Get("/{id}", h.Post.Get)
				r.With(middleware.RequireRoles(auth.RoleAdmin)).Post("/", h.Post.Activate)
			})

			r.Route("/absences", func(r chi.Router) {
				r.Get("/", h.Absence.List)
				r.Get("/{id}", h.Absence.Get)
				r.Get("/{id}/candidates", h.Absence.Candidates)

				// Dispatch desk
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRoles(auth.RoleAdmin, auth.RoleSupervisor))
					r.Post("/", h.Absence.Report)
					r.Post("/{id}/cover", h.Absence.Cover)
					r.Post("/{id}/uncover", h.Absence.Uncover)
				})
			})

			r.Post("/dispatch/validate", h.Dispatch.Validate)

			r.Route("/exceptions", func(r chi.Router) {
				r.Get("/", h.Exception.List)
				r.With(middleware.RequireRoles(auth.RoleAdmin, auth.RoleSupervisor)).Post("/", h.Exception.Request)
				r.With(middleware.RequireRoles(auth.RoleAdmin)).Post("/{id}/decision", h.Exception.Decide)
			})

			r.Route("/incidents", func(r chi.Router) {
				r.Get("/", h.Incident.List)
				r.With(middleware.RequireRoles(auth.RoleAdmin, auth.RoleSupervisor, auth.RoleGuard)).Post("/", h.Incident.Register)
				r.With(middleware.RequireRoles(auth.RoleAdmin, auth.RoleSupervisor)).Patch("/{id}/status", h.Incident.UpdateStatus)
			})

			r.Route("/equipment", func(r chi.Router) {
				r.Get("/", h.Equipment.List)
				r.Get("/summary", h.Equipment.Summary)
				r.With(middleware.RequireRoles(auth.RoleAdmin)).Post("/", h.Equipment.Register)
				r.With(middleware.RequireRoles(auth.RoleAdmin)).Post("/{id}/restore", h.Equipment.Restore)

				// Armory desk
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRoles(auth.RoleAdmin, auth.RoleSupervisor))
					r.Post("/{id}/checkout", h.Equipment.CheckOut)
					r.Post("/{id}/return", h.Equipment.Return)
				})
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", h.Shift.List)
				r.Get("/current", h.Shift.Current)
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRoles(auth.RoleAdmin, auth.RoleSupervisor))
					r.Post("/", h.Shift.Start)
					r.Post("/handover", h.Shift.Handover)
				})
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", h.Settings.Get)
				r.With(middleware.RequireRoles(auth.RoleAdmin)).Patch("/", h.Settings.UpdateParameter)
			})

			r.With(middleware.RequireRoles(auth.RoleAdmin, auth.RoleAuditor)).Get("/audit", h.Audit.List)

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/readiness", h.Dashboard.Readiness)
				r.Get("/violations", h.Dashboard.Violations)
				r.Post("/simulate", h.Dashboard.Simulate)
			})

			// Admin only
			r.Route("/jobs", func(r chi.Router) {
				r.Use(middleware.RequireRoles(auth.RoleAdmin))
				r.Get("/", h.Jobs.List)
				r.Post("/{name}/run", h.Jobs.Run)
			})
		})
	})
	return r
}
