// Command locationreport writes the location coverage report to a file.
// Usage: go run ./cmd/locationreport -format xlsx -o coverage.xlsx
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"lbseries/internal/config"
	"lbseries/internal/gst"
	"lbseries/internal/logger"
	"lbseries/internal/report"
	"lbseries/internal/repository/postgres"
	"lbseries/internal/service"
	"lbseries/internal/warehouse"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	formatFlag := flag.String("format", "csv", "output format: csv or xlsx")
	outFlag := flag.String("o", "", "output file (default location_coverage_<date>.<ext>)")
	flag.Parse()

	format, ok := report.ParseFormat(*formatFlag)
	if !ok {
		return fmt.Errorf("unknown format %q", *formatFlag)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logr, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer func() { _ = db.Close() }()

	locationRepo := postgres.NewLocationRepo(db)
	warehouseRepo := postgres.NewWarehouseRepo(db)
	svc := service.NewReportService(
		locationRepo,
		warehouseRepo,
		postgres.NewAddressRepo(db),
		warehouse.NewResolver(locationRepo, warehouseRepo, logr),
		gst.NewDeriver(cfg.Rules.HomeCountry),
	)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	rows, err := svc.LocationCoverage(ctx)
	if err != nil {
		return err
	}

	path := *outFlag
	if path == "" {
		path = report.BuildFilename("location_coverage", format, time.Now())
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := report.Write(f, format, rows); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	problems := 0
	for i := range rows {
		if len(rows[i].Problems) > 0 {
			problems++
		}
	}
	log.Printf("wrote %d locations to %s (%d with problems)", len(rows), path, problems)
	return nil
}
