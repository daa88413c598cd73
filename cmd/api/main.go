package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/worksphere/worksphere-backend-go/internal/config"
	"github.com/worksphere/worksphere-backend-go/internal/fixtures"
	appHTTP "github.com/worksphere/worksphere-backend-go/internal/handler/http"
	"github.com/worksphere/worksphere-backend-go/internal/pkg/database"
	"github.com/worksphere/worksphere-backend-go/internal/pkg/dataset"
	"github.com/worksphere/worksphere-backend-go/internal/pkg/jwt"
	"github.com/worksphere/worksphere-backend-go/internal/pkg/sse"
	"github.com/worksphere/worksphere-backend-go/internal/pkg/storage"
	"github.com/worksphere/worksphere-backend-go/internal/repository/kv"
	"github.com/worksphere/worksphere-backend-go/internal/repository/memory"
	"github.com/worksphere/worksphere-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/worksphere/worksphere-backend-go/internal/service/auth"
	dashboardService "github.com/worksphere/worksphere-backend-go/internal/service/dashboard"
	employeeService "github.com/worksphere/worksphere-backend-go/internal/service/employee"
	leaveService "github.com/worksphere/worksphere-backend-go/internal/service/leave"
	payrollService "github.com/worksphere/worksphere-backend-go/internal/service/payroll"
	sessionService "github.com/worksphere/worksphere-backend-go/internal/service/session"
	userService "github.com/worksphere/worksphere-backend-go/internal/service/user"
)

// newStore picks the key-value backend for users, the session and the view state.
func newStore(ctx context.Context, cfg *config.Config) (storage.KeyValueStore, func(), error) {
	switch cfg.Storage.Type {
	case config.StorageLocal:
		store, err := storage.NewLocalStore(cfg.Storage.BasePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize local storage: %w", err)
		}
		return store, func() {}, nil

	case config.StoragePostgres:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		store := postgresql.NewKVStore(db)
		if err := store.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to prepare kv_store table: %w", err)
		}
		return store, db.Close, nil

	default:
		return storage.NewMemoryStore(), func() {}, nil
	}
}

func newDatasetLoader(cfg config.DatasetConfig) *dataset.Loader {
	files := dataset.Files{
		Employees:  cfg.EmployeesFile,
		Attendance: cfg.AttendanceFile,
		Payroll:    cfg.PayrollFile,
	}

	var source dataset.Source
	switch cfg.Source {
	case config.DatasetHTTP:
		source = dataset.HTTPSource{BaseURL: cfg.BaseURL, Client: &http.Client{Timeout: cfg.Timeout}}
	case config.DatasetDir:
		source = dataset.DirSource{Dir: cfg.Dir}
	default:
		source = dataset.EmbeddedSource{}
	}
	return dataset.NewLoader(source, files, cfg.Timeout)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	ctx := context.Background()
	now := time.Now

	store, closeStore, err := newStore(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closeStore()

	snap, origin, err := dataset.LoadWithFallback(ctx, newDatasetLoader(cfg.Dataset))
	if err != nil {
		log.Fatal(err)
	}
	slog.Info("workforce ready", "origin", origin, "employees", len(snap.Employees))

	demoAccounts, err := fixtures.LoadDemoAccounts()
	if err != nil {
		log.Fatal("Failed to load demo accounts: ", err)
	}

	// Repositories
	workforce := memory.NewWorkforce(snap)
	employeeRepo := memory.NewEmployeeRepository(workforce)
	attendanceRepo := memory.NewAttendanceRepository(workforce)
	leaveRepo := memory.NewLeaveRepository(workforce)
	payrollRepo := memory.NewPayrollRepository(workforce)
	userRepo := kv.NewUserRepository(store)
	sessionRepo := kv.NewSessionRepository(store)
	viewStateRepo := kv.NewViewStateRepository(store)

	// Services
	hub := sse.NewHub()
	JWTService := jwt.NewJWTService(cfg.Session.Secret)
	sessionSvc := sessionService.NewSessionService(sessionRepo, cfg.Session.TTL, now)
	userSvc := userService.NewUserService(userRepo, employeeRepo, demoAccounts, now)
	if err := userSvc.SeedDemoAccounts(ctx); err != nil {
		log.Fatal("Failed to seed demo accounts: ", err)
	}
	authSvc := serviceAuth.NewAuthService(userSvc, sessionSvc, JWTService, demoAccounts, serviceAuth.Options{
		SessionTTL: cfg.Session.TTL,
		DemoMode:   cfg.App.DemoMode,
	})
	if cfg.App.DemoMode {
		slog.Warn("demo mode enabled: demo accounts accept any password")
	}
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, attendanceRepo, hub)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo, hub)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardService.Dependencies{
		Employees:      employeeRepo,
		Attendance:     attendanceRepo,
		Leave:          leaveRepo,
		Payroll:        payrollRepo,
		Views:          viewStateRepo,
		LeaveService:   leaveSvc,
		PayrollService: payrollSvc,
	})

	// Handlers
	router := appHTTP.NewRouter(cfg.App, JWTService, sessionSvc, appHTTP.Handlers{
		Auth:      appHTTP.NewAuthHandler(authSvc),
		Employee:  appHTTP.NewEmployeeHandler(employeeSvc, dashboardSvc, now),
		Dashboard: appHTTP.NewDashboardHandler(dashboardSvc, now),
		Leave:     appHTTP.NewLeaveHandler(leaveSvc),
		Payroll:   appHTTP.NewPayrollHandler(payrollSvc, now),
		Profile:   appHTTP.NewProfileHandler(userSvc, sessionSvc, leaveSvc, payrollSvc, now),
		Events:    appHTTP.NewEventHandler(hub),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("server starting", "addr", "http://localhost"+port, "storage", cfg.Storage.Type)
	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("Server error", "error", err)
	}
}
