package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/srad-secure/srad-backend-go/internal/app"
	"github.com/srad-secure/srad-backend-go/internal/config"
	"github.com/srad-secure/srad-backend-go/internal/fixtures"
	appHTTP "github.com/srad-secure/srad-backend-go/internal/handler/http"
	"github.com/srad-secure/srad-backend-go/internal/pkg/cron"
	"github.com/srad-secure/srad-backend-go/internal/pkg/jwt"
	serviceAuth "github.com/srad-secure/srad-backend-go/internal/service/auth"
)

const version = "v1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})).With(slog.String("app", "srad-backend"), slog.String("env", cfg.App.Env)))

	if err := run(cfg); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	container, err := app.NewContainer(ctx, cfg.Engine, cfg.App.SeedFixtures, time.Now().UTC())
	if err != nil {
		return err
	}
	svc := container.Services

	directory, err := fixtures.NewOperatorDirectory(cfg.Auth.DemoPassword, cfg.Auth.BcryptCost)
	if err != nil {
		return err
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	authService := serviceAuth.NewAuthService(directory, JWTService, svc.Audit)

	scheduler := cron.NewScheduler()
	cron.NewOperationsJobs(svc.Guard, svc.Absence).
		RegisterJobs(scheduler, cfg.Jobs.DocumentComplianceInterval, cfg.Jobs.AbsenceSLAInterval)

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		Env:            cfg.App.Env,
		Version:        version,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		LogLevel:       cfg.SlogLevel(),
	}, JWTService, appHTTP.Handlers{
		Auth:      appHTTP.NewAuthHandler(JWTService, authService),
		Region:    appHTTP.NewRegionHandler(),
		Guard:     appHTTP.NewGuardHandler(svc.Guard, svc.Dispatch),
		Post:      appHTTP.NewPostHandler(svc.Post),
		Absence:   appHTTP.NewAbsenceHandler(svc.Absence, svc.Dispatch),
		Dispatch:  appHTTP.NewDispatchHandler(svc.Dispatch),
		Exception: appHTTP.NewExceptionHandler(svc.Exception),
		Incident:  appHTTP.NewIncidentHandler(svc.Incident),
		Equipment: appHTTP.NewEquipmentHandler(svc.Equipment),
		Shift:     appHTTP.NewShiftHandler(svc.Shift),
		Settings:  appHTTP.NewSettingsHandler(svc.Settings),
		Audit:     appHTTP.NewAuditHandler(svc.Audit, JWTService),
		Dashboard: appHTTP.NewDashboardHandler(svc.Dashboard),
		Jobs:      appHTTP.NewJobHandler(scheduler),
	})

	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr, "version", version, "seeded", cfg.App.SeedFixtures)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
