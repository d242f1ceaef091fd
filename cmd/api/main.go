package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/meridian-erp/erp-backend-go/internal/config"
	appHTTP "github.com/meridian-erp/erp-backend-go/internal/handler/http"
	"github.com/meridian-erp/erp-backend-go/internal/pkg/cron"
	"github.com/meridian-erp/erp-backend-go/internal/pkg/database"
	"github.com/meridian-erp/erp-backend-go/internal/pkg/jwt"
	"github.com/meridian-erp/erp-backend-go/internal/pkg/oauth"
	"github.com/meridian-erp/erp-backend-go/internal/pkg/sse"
	"github.com/meridian-erp/erp-backend-go/internal/pkg/storage"
	"github.com/meridian-erp/erp-backend-go/internal/repository/postgresql"
	authService "github.com/meridian-erp/erp-backend-go/internal/service/auth"
	documentService "github.com/meridian-erp/erp-backend-go/internal/service/document"
	employeeService "github.com/meridian-erp/erp-backend-go/internal/service/employee"
	inventoryService "github.com/meridian-erp/erp-backend-go/internal/service/inventory"
	leaveService "github.com/meridian-erp/erp-backend-go/internal/service/leave"
	notificationService "github.com/meridian-erp/erp-backend-go/internal/service/notification"
	payslipService "github.com/meridian-erp/erp-backend-go/internal/service/payslip"
	pettycashService "github.com/meridian-erp/erp-backend-go/internal/service/pettycash"
	reconciliationService "github.com/meridian-erp/erp-backend-go/internal/service/reconciliation"
	settingsService "github.com/meridian-erp/erp-backend-go/internal/service/settings"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}
	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	leaveGroupRepo := postgresql.NewLeaveGroupRepository(db)
	leaveApplicationRepo := postgresql.NewLeaveApplicationRepository(db)
	reconciliationRepo := postgresql.NewReconciliationRepository(db)
	payslipRepo := postgresql.NewPayslipRepository(db)
	accountRepo := postgresql.NewPettyCashAccountRepository(db)
	transactionRepo := postgresql.NewPettyCashTransactionRepository(db)
	factoryRepo := postgresql.NewFactoryRepository(db)
	machineRepo := postgresql.NewMachineRepository(db)
	challanRepo := postgresql.NewChallanRepository(db)
	invoiceRepo := postgresql.NewInvoiceRepository(db)
	orderRepo := postgresql.NewOrderRepository(db)
	deliveryChallanRepo := postgresql.NewDeliveryChallanRepository(db)
	companyProfileRepo := postgresql.NewCompanyProfileRepository(db)
	financialSettingsRepo := postgresql.NewFinancialSettingsRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	txManager := postgresql.NewTxManager(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var googleSvc oauth.GoogleService
	if cfg.OAuth2Google.ClientID != "" {
		googleSvc = oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	}

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	hub := sse.NewHub()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	notifSvc := notificationService.NewNotificationService(notificationRepo, userRepo, hub, logger)
	authSvc := authService.NewAuthService(userRepo, employeeRepo, jwtSvc, googleSvc)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, leaveGroupRepo)
	leaveSvc := leaveService.NewLeaveService(leaveTypeRepo, leaveGroupRepo, leaveApplicationRepo, employeeRepo, financialSettingsRepo, notifSvc)
	reconciliationSvc := reconciliationService.NewReconciliationService(reconciliationRepo, employeeRepo, notifSvc)
	payslipSvc := payslipService.NewPayslipService(payslipRepo, accountRepo, transactionRepo, employeeRepo, companyProfileRepo, txManager, notifSvc, fileStorage)
	pettyCashSvc := pettycashService.NewPettyCashService(accountRepo, transactionRepo, txManager)
	inventorySvc := inventoryService.NewInventoryService(factoryRepo, machineRepo, challanRepo, txManager)
	documentSvc := documentService.NewDocumentService(invoiceRepo, orderRepo, deliveryChallanRepo, financialSettingsRepo, txManager)
	settingsSvc := settingsService.NewSettingsService(companyProfileRepo, financialSettingsRepo)

	scheduler := cron.NewScheduler()
	scheduler.AddJob("warranty-sweep", time.Hour, cron.AtHour(8, inventoryService.WarrantySweepJob(inventorySvc, notifSvc)))
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(appHTTP.RouterDeps{
		JWTService:     jwtSvc,
		Auth:           appHTTP.NewAuthHandler(jwtSvc, authSvc, cfg.App.FrontendURL),
		Employee:       appHTTP.NewEmployeeHandler(employeeSvc),
		Leave:          appHTTP.NewLeaveHandler(leaveSvc),
		Reconciliation: appHTTP.NewReconciliationHandler(reconciliationSvc),
		Payslip:        appHTTP.NewPayslipHandler(payslipSvc),
		PettyCash:      appHTTP.NewPettyCashHandler(pettyCashSvc),
		Inventory:      appHTTP.NewInventoryHandler(inventorySvc),
		Document:       appHTTP.NewDocumentHandler(documentSvc),
		Settings:       appHTTP.NewSettingsHandler(settingsSvc),
		Notification:   appHTTP.NewNotificationHandler(notifSvc, jwtSvc, hub),
		FrontendURL:    cfg.App.FrontendURL,
		Env:            cfg.App.Env,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Forced shutdown:", err)
	}
	fmt.Println("Server stopped")
}
