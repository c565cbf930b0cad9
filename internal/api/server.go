package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/backedfi/fiat-bridge/internal/config"
	"github.com/backedfi/fiat-bridge/internal/observability/tracing"
	"github.com/backedfi/fiat-bridge/internal/services"
)

type Server struct {
	httpServer *http.Server
	cfg        *config.Config
	service    *services.Service
}

func New(ctx context.Context, cfg *config.Config, service *services.Service) *Server {
	srv := &Server{
		cfg:     cfg,
		service: service,
	}

	srv.httpServer = &http.Server{
		Addr:         cfg.Api.Address(),
		WriteTimeout: 30 * time.Second,
		ReadTimeout:  10 * time.Second,
		IdleTimeout:  120 * time.Second,
		Handler:      srv.setupRoutes(),
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}
	return srv
}

func (s *Server) Start() error {
	log.Info().Msgf("Starting bridge API server on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("api server failed: %w", err)
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) setupRoutes() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(tracing.Middleware)

	r.Get("/healthcheck", wrapHandler(s.healthCheck))

	r.Route("/v1", func(r chi.Router) {
		r.Route("/bridge", func(r chi.Router) {
			r.Post("/mint", wrapHandler(s.bridgeMint))
			r.Post("/mint/pass", wrapHandler(s.passBridgeMint))
			r.Post("/mint/perform", wrapHandler(s.performMint))
			r.Post("/burn", wrapHandler(s.bridgeBurn))

			r.Get("/transactions/{transactionId}", wrapHandler(s.getTransactionStatus))
			r.Get("/proposals", wrapHandler(s.getProposalVotes))
			r.Get("/params", wrapHandler(s.getBridgeParams))
			r.Get("/fee-recipients", wrapHandler(s.getFeeRecipients))
			r.Get("/accounts/{account}", wrapHandler(s.getAccountApproval))
		})
		r.Route("/admin", func(r chi.Router) {
			r.Post("/minimum-burn", wrapHandler(s.setMinimumBurn))
			r.Post("/vote-threshold", wrapHandler(s.setVoteThreshold))
			r.Post("/mint-fee", wrapHandler(s.setMintFee))
			r.Post("/burn-fee", wrapHandler(s.setBurnFee))
			r.Post("/auto-mint", wrapHandler(s.setAutoMint))
			r.Post("/fee-recipients", wrapHandler(s.setFeeRecipients))
			r.Post("/fee-recipient-shares", wrapHandler(s.setFeeRecipientShares))
			r.Post("/account-approval", wrapHandler(s.setAccountApproval))
		})
	})

	return r
}
