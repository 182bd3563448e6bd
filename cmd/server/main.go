// Command server runs the location rules HTTP API.
//
// @title Location Based Series API
// @version 1.0
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	_ "lbseries/docs"
	"lbseries/internal/config"
	"lbseries/internal/fiscal"
	"lbseries/internal/gst"
	"lbseries/internal/handler"
	"lbseries/internal/location"
	"lbseries/internal/logger"
	"lbseries/internal/naming"
	"lbseries/internal/repository/postgres"
	"lbseries/internal/router"
	"lbseries/internal/service"
	"lbseries/internal/warehouse"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logr, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	locationRepo := postgres.NewLocationRepo(db)
	warehouseRepo := postgres.NewWarehouseRepo(db)
	addressRepo := postgres.NewAddressRepo(db)
	fiscalRepo := postgres.NewFiscalYearRepo(db)
	dimensionRepo := postgres.NewDimensionRepo(db)
	savedRepo := postgres.NewSavedDocumentRepo(db)
	seriesRepo := postgres.NewSeriesRepo(db)

	// Initialize rule components
	registry, err := naming.NewDefaultRegistry(cfg.Rules.NamingTemplates)
	if err != nil {
		return fmt.Errorf("failed to build naming registry: %w", err)
	}
	fiscalResolver := fiscal.NewResolver(fiscalRepo, cfg.Rules.FiscalCodeFallback, logr)
	namer := naming.NewResolver(registry, fiscalResolver, seriesRepo, cfg.Rules.LocationCodeFallback, logr)
	validator := location.NewValidator(dimensionRepo, locationRepo, addressRepo, logr)
	warehouses := warehouse.NewResolver(locationRepo, warehouseRepo, logr)
	deriver := gst.NewDeriver(cfg.Rules.HomeCountry)

	// Initialize services
	tokenSvc := service.NewTokenService(cfg.JWT)
	lifecycleSvc := service.NewLifecycleService(namer, validator, warehouses, deriver, locationRepo, savedRepo, logr)
	querySvc := service.NewQueryService(warehouses, validator, savedRepo)
	reportSvc := service.NewReportService(locationRepo, warehouseRepo, addressRepo, warehouses, deriver)

	// Initialize handlers
	errs := handler.NewErrorHandler(logr)
	r := router.Setup(tokenSvc, router.Handlers{
		Health: handler.NewHealthHandler(db),
		Hooks:  handler.NewHookHandler(lifecycleSvc, errs),
		Query:  handler.NewQueryHandler(querySvc, errs),
		Report: handler.NewReportHandler(reportSvc, errs),
	}, logr, cfg.CORS.AllowedOrigins)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logr.Infof("Server starting on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case sig := <-quit:
		logr.Infof("received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logr.Info("server stopped")
	return nil
}
