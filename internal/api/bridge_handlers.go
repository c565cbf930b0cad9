package api

import (
	"net/http"

	sdkmath "cosmossdk.io/math"

	"github.com/backedfi/fiat-bridge/internal/types"
)

type mintRequest struct {
	To            string      `json:"to"`
	Amount        sdkmath.Int `json:"amount"`
	TransactionID string      `json:"transaction_id"`
}

type burnRequest struct {
	Account string      `json:"account"`
	Amount  sdkmath.Int `json:"amount"`
}

type acceptedResponse struct {
	Accepted bool `json:"accepted"`
}

func (s *Server) bridgeMint(r *http.Request) (*Result, *types.Error) {
	caller, callerErr := s.resolveCaller(r)
	if callerErr != nil {
		return nil, callerErr
	}
	var req mintRequest
	if err := parseBody(r, &req); err != nil {
		return nil, err
	}

	if err := s.service.BridgeMint(r.Context(), caller, req.To, req.Amount, req.TransactionID); err != nil {
		return nil, err
	}
	return NewResult(acceptedResponse{Accepted: true}), nil
}

func (s *Server) passBridgeMint(r *http.Request) (*Result, *types.Error) {
	caller, callerErr := s.resolveCaller(r)
	if callerErr != nil {
		return nil, callerErr
	}
	var req mintRequest
	if err := parseBody(r, &req); err != nil {
		return nil, err
	}

	if err := s.service.PassBridgeMint(r.Context(), caller, req.To, req.Amount, req.TransactionID); err != nil {
		return nil, err
	}
	return NewResult(acceptedResponse{Accepted: true}), nil
}

func (s *Server) performMint(r *http.Request) (*Result, *types.Error) {
	var req mintRequest
	if err := parseBody(r, &req); err != nil {
		return nil, err
	}

	if err := s.service.PerformMint(r.Context(), req.To, req.Amount, req.TransactionID); err != nil {
		return nil, err
	}
	return NewResult(acceptedResponse{Accepted: true}), nil
}

func (s *Server) bridgeBurn(r *http.Request) (*Result, *types.Error) {
	caller, callerErr := s.resolveCaller(r)
	if callerErr != nil {
		return nil, callerErr
	}
	var req burnRequest
	if err := parseBody(r, &req); err != nil {
		return nil, err
	}

	if err := s.service.BridgeBurn(r.Context(), caller, req.Account, req.Amount); err != nil {
		return nil, err
	}
	return NewResult(acceptedResponse{Accepted: true}), nil
}

func (s *Server) healthCheck(r *http.Request) (*Result, *types.Error) {
	if err := s.service.Ping(r.Context()); err != nil {
		return nil, types.NewError(http.StatusInternalServerError, types.InternalServiceError, err)
	}
	return NewResult("server is up and running"), nil
}
