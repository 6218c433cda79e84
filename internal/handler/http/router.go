package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/hrmslite/hrms-backend-go/internal/config"
	"github.com/hrmslite/hrms-backend-go/internal/handler/http/middleware"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth        AuthHandler
	Employee    EmployeeHandler
	Attendance  AttendanceHandler
	Leave       LeaveHandler
	Payroll     PayrollHandler
	Document    DocumentHandler
	Performance PerformanceHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-lite"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/logout", h.Auth.Logout)
			r.Get("/verify", h.Auth.Verify)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))
			r.Use(middleware.AdminOnly)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Post("/", h.Employee.Create)
				r.Get("/{employeeId}", h.Employee.Get)
				r.Put("/{employeeId}", h.Employee.Update)
				r.Delete("/{employeeId}", h.Employee.Delete)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", h.Attendance.List)
				r.Post("/", h.Attendance.Mark)
				r.Post("/punch-in", h.Attendance.PunchIn)
				r.Post("/punch-out", h.Attendance.PunchOut)
				r.Get("/punch-status/{employeeId}", h.Attendance.PunchStatus)
				r.Get("/stats", h.Attendance.Stats)
				r.Get("/calendar", h.Attendance.Calendar)
				r.Get("/employee/{employeeId}", h.Attendance.ListByEmployee)

				r.Route("/corrections", func(r chi.Router) {
					r.Get("/", h.Attendance.ListPendingCorrections)
					r.Post("/", h.Attendance.RequestCorrection)
					r.Put("/{id}/process", h.Attendance.ProcessCorrection)
				})

				r.Put("/{id}", h.Attendance.Update)
				r.Delete("/{id}", h.Attendance.Delete)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Route("/types", func(r chi.Router) {
					r.Get("/", h.Leave.ListLeaveTypes)
					r.Post("/", h.Leave.CreateLeaveType)
				})

				r.Route("/requests", func(r chi.Router) {
					r.Get("/", h.Leave.ListRequests)
					r.Post("/", h.Leave.Apply)
					r.Put("/{id}/process", h.Leave.Process)
					r.Put("/{id}/cancel", h.Leave.Cancel)
				})

				r.Get("/balances/{employeeId}", h.Leave.Balances)

				r.Route("/holidays", func(r chi.Router) {
					r.Get("/", h.Leave.ListHolidays)
					r.Post("/", h.Leave.CreateHoliday)
					r.Post("/initialize", h.Leave.InitializeHolidays)
					r.Put("/{id}", h.Leave.UpdateHoliday)
					r.Delete("/{id}", h.Leave.DeleteHoliday)
				})

				r.Get("/stats", h.Leave.Stats)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Route("/salary-structures", func(r chi.Router) {
					r.Get("/", h.Payroll.ListSalaryStructures)
					r.Post("/", h.Payroll.UpsertSalaryStructure)
					r.Get("/{employeeId}", h.Payroll.GetSalaryStructure)
				})

				r.Get("/", h.Payroll.List)
				r.Post("/process", h.Payroll.ProcessMonth)
				r.Post("/lock", h.Payroll.LockMonth)
				r.Put("/{id}/approve", h.Payroll.Approve)
				r.Get("/payslip/{employeeId}", h.Payroll.Payslip)

				r.Route("/bonuses", func(r chi.Router) {
					r.Get("/", h.Payroll.ListBonuses)
					r.Post("/", h.Payroll.CreateBonus)
					r.Put("/{id}/approve", h.Payroll.ApproveBonus)
				})

				r.Route("/config", func(r chi.Router) {
					r.Get("/", h.Payroll.GetConfig)
					r.Put("/", h.Payroll.UpdateConfig)
				})

				r.Get("/stats", h.Payroll.Stats)
			})

			r.Route("/documents", func(r chi.Router) {
				r.Get("/", h.Document.List)
				r.Post("/", h.Document.Upload)
				r.Get("/{id}", h.Document.Get)
				r.Get("/{id}/download", h.Document.Download)
				r.Delete("/{id}", h.Document.Delete)
			})

			r.Route("/performance", func(r chi.Router) {
				r.Route("/goals", func(r chi.Router) {
					r.Get("/", h.Performance.ListGoals)
					r.Post("/", h.Performance.CreateGoal)
					r.Put("/{id}", h.Performance.UpdateGoalProgress)
					r.Delete("/{id}", h.Performance.DeleteGoal)
				})

				r.Route("/reviews", func(r chi.Router) {
					r.Get("/", h.Performance.ListReviews)
					r.Post("/", h.Performance.CreateReview)
					r.Put("/{id}/self-review", h.Performance.SubmitSelfReview)
					r.Put("/{id}/manager-review", h.Performance.SubmitManagerReview)
					r.Put("/{id}/acknowledge", h.Performance.AcknowledgeReview)
				})

				r.Route("/promotions", func(r chi.Router) {
					r.Get("/", h.Performance.ListPromotions)
					r.Post("/", h.Performance.CreatePromotion)
					r.Put("/{id}/approve", h.Performance.ApprovePromotion)
					r.Put("/{id}/implement", h.Performance.ImplementPromotion)
				})
			})
		})
	})
	return r
}
