// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/secure-vault/internal/config"
	"github.com/MKhiriev/secure-vault/internal/handler"
	"github.com/MKhiriev/secure-vault/internal/logger"
	"golang.org/x/sync/errgroup"
)

type server struct {
	servers         []Server
	shutdownTimeout time.Duration

	logger *logger.Logger
}

// NewServer builds a server for every handler present in handlers.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	s := &server{
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}

	if handlers.HTTP != nil {
		s.servers = append(s.servers, newHTTPServer(handlers.HTTP.Init(), cfg, logger))
	}
	if handlers.GRPC != nil {
		s.servers = append(s.servers, newGRPCServer(handlers.GRPC, cfg, logger))
	}

	if len(s.servers) == 0 {
		return nil, errNoServersAreCreated
	}

	return s, nil
}

// RunServer blocks until SIGTERM, SIGINT or SIGQUIT arrives or a transport
// fails, then shuts every transport down.
func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.Run(ctx)
}

// Run serves until ctx is cancelled or one transport fails.
func (s *server) Run(ctx context.Context) error {
	group, groupCtx := errgroup.WithContext(ctx)

	for _, srv := range s.servers {
		group.Go(srv.RunServer)
	}

	group.Go(func() error {
		<-groupCtx.Done()
		return s.shutdownWithTimeout()
	})

	err := group.Wait()
	if err == nil {
		s.logger.Info().Msg("server shutdown gracefully")
	}
	return err
}

func (s *server) shutdownWithTimeout() error {
	ctx := context.Background()
	if s.shutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.shutdownTimeout)
		defer cancel()
	}
	return s.Shutdown(ctx)
}

// Shutdown stops every transport, collecting all failures.
func (s *server) Shutdown(ctx context.Context) error {
	var errs []error
	for _, srv := range s.servers {
		if err := srv.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
