package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/worksphere/worksphere-backend-go/internal/config"
	"github.com/worksphere/worksphere-backend-go/internal/domain/session"
	"github.com/worksphere/worksphere-backend-go/internal/handler/http/middleware"
	"github.com/worksphere/worksphere-backend-go/internal/pkg/jwt"
)

// Handlers groups every route handler the router mounts.
type Handlers struct {
	Auth      AuthHandler
	Employee  EmployeeHandler
	Dashboard DashboardHandler
	Leave     LeaveHandler
	Payroll   PayrollHandler
	Profile   ProfileHandler
	Events    EventHandler
}

func logLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func NewRouter(app config.AppConfig, jwtService jwt.Service, sessionService session.SessionService, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(app.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       logLevel(app.LogLevel),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "worksphere"),
		slog.String("version", "v1.0.0"),
		slog.String("env", app.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{app.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  logLevel(app.LogLevel),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/register", h.Auth.Register)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.SessionRequired(sessionService))
				r.Post("/logout", h.Auth.Logout)
				r.Get("/me", h.Auth.Me)
			})
		})

		// Event streams may carry the token in the query string
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verify(jwtService.JWTAuth(), jwtauth.TokenFromHeader, middleware.TokenFromQuery))
			r.Use(middleware.SessionRequired(sessionService))
			r.Get("/events", h.Events.Stream)
		})

		// Requires a valid session
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.SessionRequired(sessionService))

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Route("/dashboard", func(r chi.Router) {
					r.Get("/stats", h.Dashboard.Stats)
					r.Get("/overview", h.Dashboard.Overview)
					r.Get("/departments", h.Dashboard.Departments)
					r.Get("/attendance/recent", h.Dashboard.RecentAttendance)
					r.Route("/view", func(r chi.Router) {
						r.Get("/", h.Dashboard.GetView)
						r.Put("/", h.Dashboard.UpdateView)
						r.Post("/reset", h.Dashboard.ResetView)
					})
				})

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", h.Employee.List)
					r.Post("/", h.Employee.Create)
					r.Route("/{id}", func(r chi.Router) {
						r.Get("/", h.Employee.Get)
						r.Put("/", h.Employee.Update)
						r.Get("/status", h.Employee.Status)
						r.Get("/attendance", h.Employee.Attendance)
					})
				})

				r.Route("/leave/requests", func(r chi.Router) {
					r.Get("/pending", h.Leave.ListPending)
					r.Post("/", h.Leave.Submit)
					r.Post("/{employeeID}/{date}/approve", h.Leave.Approve)
					r.Post("/{employeeID}/{date}/reject", h.Leave.Reject)
				})

				r.Route("/payroll", func(r chi.Router) {
					r.Get("/summary", h.Payroll.Summary)
					r.Get("/export", h.Payroll.Export)
					r.Get("/{employeeID}", h.Payroll.Payslip)
				})
			})

			// Employee self-service
			r.Route("/me", func(r chi.Router) {
				r.Use(middleware.RequireEmployee)
				r.Get("/profile", h.Profile.GetProfile)
				r.Put("/profile", h.Profile.UpdateProfile)
				r.Get("/leave", h.Profile.ListLeave)
				r.Post("/leave", h.Profile.SubmitLeave)
				r.Get("/payslip", h.Profile.Payslip)
			})
		})
	})
	return r
}
