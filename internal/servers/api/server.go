package api

import (
	"context"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vysogota0399/bank_ledger/internal/config"
	"github.com/vysogota0399/bank_ledger/internal/logging"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Server struct {
	cfg *config.Config
	srv *http.Server
}

func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.cfg.Address)
	if err != nil {
		return err
	}

	go s.srv.Serve(lis)

	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func NewServer(router chi.Router, lc fx.Lifecycle, cfg *config.Config, lg *logging.ZapLogger) *Server {
	srv := &Server{cfg: cfg, srv: &http.Server{Handler: router}}

	lc.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				lg.InfoCtx(
					ctx,
					"start processing HTTP requests",
					zap.String("address", cfg.Address),
				)

				return srv.Start()
			},
			OnStop: func(ctx context.Context) error {
				return srv.Stop(ctx)
			},
		},
	)

	return srv
}
