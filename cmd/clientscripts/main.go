// Command clientscripts installs or removes the warehouse filter form scripts
// for every transaction document type.
// Usage: go run ./cmd/clientscripts [install|uninstall|reinstall] [-publish]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"lbseries/internal/clientscript"
	"lbseries/internal/config"
	"lbseries/internal/logger"
	"lbseries/internal/repository/postgres"
	"lbseries/internal/service"
	s3storage "lbseries/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) < 2 {
		return fmt.Errorf("usage: clientscripts [install|uninstall|reinstall] [-publish]")
	}
	action := os.Args[1]

	fs := flag.NewFlagSet("clientscripts", flag.ExitOnError)
	publish := fs.Bool("publish", false, "also publish script assets to S3")
	if err := fs.Parse(os.Args[2:]); err != nil {
		return err
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

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	opts := service.ClientScriptOptions{
		Bucket:  cfg.S3.Bucket,
		Prefix:  cfg.S3.Prefix,
		Methods: clientscript.DefaultMethods(),
	}
	if *publish {
		storage, err := s3storage.NewS3Client(ctx, &cfg.S3)
		if err != nil {
			return fmt.Errorf("initializing S3 client: %w", err)
		}
		opts.Storage = storage
	}
	svc := service.NewClientScriptService(postgres.NewClientScriptRepo(db), opts, logr)

	switch action {
	case "install":
		err = svc.Install(ctx)
	case "uninstall":
		err = svc.Uninstall(ctx)
	case "reinstall":
		err = svc.Reinstall(ctx)
	default:
		return fmt.Errorf("unknown action %q", action)
	}
	if err != nil {
		return err
	}
	log.Printf("client scripts: %s complete", action)
	return nil
}
