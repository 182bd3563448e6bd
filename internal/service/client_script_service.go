package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/sirupsen/logrus"

	"lbseries/internal/clientscript"
	"lbseries/internal/domain"
	"lbseries/internal/port"
)

// ClientScriptService installs the per-doctype warehouse filter scripts.
type ClientScriptService interface {
	Install(ctx context.Context) error
	Uninstall(ctx context.Context) error
	Reinstall(ctx context.Context) error
}

// ClientScriptOptions configures where published script assets go. A nil
// Storage disables publishing.
type ClientScriptOptions struct {
	Storage port.ObjectStorage
	Bucket  string
	Prefix  string
	Methods clientscript.Methods
}

type clientScriptService struct {
	repo port.ClientScriptRepository
	opts ClientScriptOptions
	log  logrus.FieldLogger
}

// NewClientScriptService creates a new ClientScriptService implementation.
func NewClientScriptService(repo port.ClientScriptRepository, opts ClientScriptOptions, log logrus.FieldLogger) ClientScriptService {
	if opts.Methods == (clientscript.Methods{}) {
		opts.Methods = clientscript.DefaultMethods()
	}
	return &clientScriptService{repo: repo, opts: opts, log: log.WithField("component", "clientscript")}
}

func (s *clientScriptService) Install(ctx context.Context) error {
	var errs []error
	for _, dt := range domain.TransactionDocTypes() {
		if err := s.install(ctx, dt); err != nil {
			s.log.Errorf("clientscript.Install: %s: %v", dt, err)
			errs = append(errs, err)
			continue
		}
		s.log.Infof("clientscript.Install: installed script for %s", dt)
	}
	return errors.Join(errs...)
}

func (s *clientScriptService) Uninstall(ctx context.Context) error {
	var errs []error
	for _, dt := range domain.TransactionDocTypes() {
		if err := s.uninstall(ctx, dt); err != nil {
			s.log.Errorf("clientscript.Uninstall: %s: %v", dt, err)
			errs = append(errs, err)
			continue
		}
		s.log.Infof("clientscript.Uninstall: removed script for %s", dt)
	}
	return errors.Join(errs...)
}

func (s *clientScriptService) Reinstall(ctx context.Context) error {
	if err := s.Uninstall(ctx); err != nil {
		return fmt.Errorf("clientscript.Reinstall: %w", err)
	}
	return s.Install(ctx)
}

func (s *clientScriptService) install(ctx context.Context, dt domain.DocType) error {
	text, err := clientscript.Render(dt, s.opts.Methods)
	if err != nil {
		return err
	}

	script := &domain.ClientScript{
		Name:    clientscript.Name(dt),
		DocType: string(dt),
		View:    clientscript.View,
		Enabled: true,
		Script:  text,
	}

	if s.opts.Storage != nil {
		key := s.assetKey(dt)
		if _, err := s.opts.Storage.Upload(ctx, port.UploadInput{
			Bucket:       s.opts.Bucket,
			Key:          key,
			Body:         strings.NewReader(text),
			ContentType:  "application/javascript",
			CacheControl: "no-cache",
		}); err != nil {
			return fmt.Errorf("%w: %s: %v", domain.ErrUploadFailed, key, err)
		}
		script.AssetKey = key
	}

	if err := s.repo.Upsert(ctx, script); err != nil {
		return fmt.Errorf("saving script %q: %w", script.Name, err)
	}
	return nil
}

func (s *clientScriptService) uninstall(ctx context.Context, dt domain.DocType) error {
	name := clientscript.Name(dt)
	if err := s.repo.Delete(ctx, name); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("deleting script %q: %w", name, err)
	}
	if s.opts.Storage != nil {
		if err := s.opts.Storage.Delete(ctx, s.opts.Bucket, s.assetKey(dt)); err != nil {
			return fmt.Errorf("deleting asset for %q: %w", name, err)
		}
	}
	return nil
}

func (s *clientScriptService) assetKey(dt domain.DocType) string {
	return path.Join(s.opts.Prefix, clientscript.Slug(dt)+".js")
}
