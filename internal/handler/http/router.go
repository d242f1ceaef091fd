package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/meridian-erp/erp-backend-go/internal/handler/http/middleware"
	"github.com/meridian-erp/erp-backend-go/internal/pkg/jwt"
)

type RouterDeps struct {
	JWTService     jwt.Service
	Auth           AuthHandler
	Employee       EmployeeHandler
	Leave          LeaveHandler
	Reconciliation ReconciliationHandler
	Payslip        PayslipHandler
	PettyCash      PettyCashHandler
	Inventory      InventoryHandler
	Document       DocumentHandler
	Settings       SettingsHandler
	Notification   NotificationHandler

	FrontendURL string
	Env         string
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "meridian-erp"),
		slog.String("version", "v1.0.0"),
		slog.String("env", deps.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{deps.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/refresh", deps.Auth.RefreshToken)
			r.Post("/logout", deps.Auth.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", deps.Auth.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", deps.Auth.Login)
				r.Post("/employee-code", deps.Auth.LoginWithEmployeeCode)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", deps.Auth.LoginWithGoogle)
				})
			})
		})

		// The SSE stream authenticates with a short-lived query token instead
		// of the Authorization header.
		r.Get("/notifications/stream", deps.Notification.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(deps.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(deps.JWTService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireApprover)
					r.Post("/", deps.Employee.Create)
					r.Get("/", deps.Employee.List)
					r.Put("/{id}", deps.Employee.Update)
					r.Post("/{id}/terminate", deps.Employee.Terminate)
					r.Post("/{id}/reactivate", deps.Employee.Reactivate)
				})
				r.Get("/{id}", deps.Employee.Get)
			})

			r.Route("/leave", func(r chi.Router) {
				r.Route("/types", func(r chi.Router) {
					r.Get("/", deps.Leave.ListTypes)
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireApprover)
						r.Post("/", deps.Leave.CreateType)
						r.Delete("/{id}", deps.Leave.DeleteType)
					})
				})

				r.Route("/groups", func(r chi.Router) {
					r.Get("/", deps.Leave.ListGroups)
					r.Get("/{id}", deps.Leave.GetGroup)
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireApprover)
						r.Post("/", deps.Leave.CreateGroup)
						r.Put("/{id}", deps.Leave.UpdateGroup)
						r.Delete("/{id}", deps.Leave.DeleteGroup)
					})
				})

				r.Route("/applications", func(r chi.Router) {
					r.Post("/", deps.Leave.CreateApplication)
					r.Get("/", deps.Leave.ListApplications)
					r.Get("/{id}", deps.Leave.GetApplication)
					r.Put("/{id}", deps.Leave.UpdateApplication)
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireApprover)
						r.Post("/{id}/approve", deps.Leave.ApproveApplication)
						r.Post("/{id}/reject", deps.Leave.RejectApplication)
						r.Delete("/{id}", deps.Leave.DeleteApplication)
					})
				})

				r.Get("/balance", deps.Leave.Balance)
			})

			r.Route("/reconciliations", func(r chi.Router) {
				r.Post("/", deps.Reconciliation.Create)
				r.Get("/", deps.Reconciliation.List)
				r.Get("/{id}", deps.Reconciliation.Get)
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireApprover)
					r.Post("/{id}/approve", deps.Reconciliation.Approve)
					r.Post("/{id}/reject", deps.Reconciliation.Reject)
				})
			})

			r.Route("/payslips", func(r chi.Router) {
				r.Get("/", deps.Payslip.List)
				r.Get("/{id}", deps.Payslip.Get)
				r.Get("/{id}/pdf", deps.Payslip.DownloadPDF)
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireApprover)
					r.Post("/", deps.Payslip.Create)
					r.Post("/{id}/pay", deps.Payslip.Pay)
					r.Delete("/{id}", deps.Payslip.Delete)
				})
			})

			r.Route("/petty-cash", func(r chi.Router) {
				r.Use(middleware.RequireApprover)
				r.Route("/accounts", func(r chi.Router) {
					r.Post("/", deps.PettyCash.CreateAccount)
					r.Get("/", deps.PettyCash.ListAccounts)
					r.Get("/{id}", deps.PettyCash.GetAccount)
					r.Post("/{id}/transactions", deps.PettyCash.RecordTransaction)
					r.Get("/{id}/transactions", deps.PettyCash.ListTransactions)
				})
			})

			r.Route("/inventory", func(r chi.Router) {
				r.Route("/factories", func(r chi.Router) {
					r.Get("/", deps.Inventory.ListFactories)
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireApprover)
						r.Post("/", deps.Inventory.CreateFactory)
						r.Delete("/{id}", deps.Inventory.DeleteFactory)
					})
				})

				r.Route("/machines", func(r chi.Router) {
					r.Get("/", deps.Inventory.ListMachines)
					r.Get("/{id}", deps.Inventory.GetMachine)
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireApprover)
						r.Post("/", deps.Inventory.CreateMachine)
						r.Put("/{id}", deps.Inventory.UpdateMachine)
					})
				})

				r.Route("/challans", func(r chi.Router) {
					r.Get("/", deps.Inventory.ListChallans)
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireApprover)
						r.Post("/", deps.Inventory.IssueChallan)
						r.Post("/{id}/return", deps.Inventory.ReturnChallan)
					})
				})

				r.Get("/warranties/expiring", deps.Inventory.ExpiringWarranties)
			})

			r.Route("/documents", func(r chi.Router) {
				r.Route("/invoices", func(r chi.Router) {
					r.Post("/", deps.Document.CreateInvoice)
					r.Get("/", deps.Document.ListInvoices)
					r.Get("/{id}", deps.Document.GetInvoice)
					r.Put("/{id}/status", deps.Document.SetInvoiceStatus)
				})

				r.Route("/orders", func(r chi.Router) {
					r.Post("/", deps.Document.CreateOrder)
					r.Get("/", deps.Document.ListOrders)
					r.Get("/{id}", deps.Document.GetOrder)
					r.Put("/{id}/status", deps.Document.SetOrderStatus)
				})

				r.Route("/delivery-challans", func(r chi.Router) {
					r.Post("/", deps.Document.CreateDeliveryChallan)
					r.Get("/", deps.Document.ListDeliveryChallans)
					r.Get("/{id}", deps.Document.GetDeliveryChallan)
					r.Post("/{id}/delivered", deps.Document.MarkChallanDelivered)
				})
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/company-profile", deps.Settings.GetCompanyProfile)
				r.Get("/financial", deps.Settings.GetFinancialSettings)
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Put("/company-profile", deps.Settings.UpsertCompanyProfile)
					r.Put("/financial", deps.Settings.UpsertFinancialSettings)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", deps.Notification.List)
				r.Get("/unread-count", deps.Notification.UnreadCount)
				r.Post("/mark-read", deps.Notification.MarkAsRead)
				r.Post("/mark-all-read", deps.Notification.MarkAllAsRead)
				r.Post("/stream-token", deps.Notification.GetStreamToken)
			})
		})
	})

	return r
}
