package api

import (
	"net/http"

	sdkmath "cosmossdk.io/math"
	"github.com/go-chi/chi/v5"

	"github.com/backedfi/fiat-bridge/internal/types"
)

type transactionStatusResponse struct {
	TransactionID string `json:"transaction_id"`
	Passed        bool   `json:"passed"`
	Minted        bool   `json:"minted"`
}

type accountApprovalResponse struct {
	Account  string `json:"account"`
	Approved bool   `json:"approved"`
}

func (s *Server) getTransactionStatus(r *http.Request) (*Result, *types.Error) {
	transactionID := chi.URLParam(r, "transactionId")
	if transactionID == "" {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.ValidationError, "transaction id must not be empty",
		)
	}

	passed, err := s.service.TransactionPassed(r.Context(), transactionID)
	if err != nil {
		return nil, err
	}
	minted, err := s.service.TransactionMinted(r.Context(), transactionID)
	if err != nil {
		return nil, err
	}

	return NewResult(transactionStatusResponse{
		TransactionID: transactionID,
		Passed:        passed,
		Minted:        minted,
	}), nil
}

func (s *Server) getProposalVotes(r *http.Request) (*Result, *types.Error) {
	query := r.URL.Query()
	to := query.Get("to")
	transactionID := query.Get("transaction_id")
	amount, ok := sdkmath.NewIntFromString(query.Get("amount"))
	if !ok {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.ValidationError, "invalid amount",
		)
	}

	view, err := s.service.GetProposalVotes(r.Context(), to, amount, transactionID)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, types.NewErrorWithMsg(
			http.StatusNotFound, types.NotFound, "proposal has no votes",
		)
	}
	return NewResult(view), nil
}

func (s *Server) getBridgeParams(r *http.Request) (*Result, *types.Error) {
	view, err := s.service.GetBridgeParams(r.Context())
	if err != nil {
		return nil, err
	}
	return NewResult(view), nil
}

func (s *Server) getFeeRecipients(r *http.Request) (*Result, *types.Error) {
	view, err := s.service.GetFeeRecipients(r.Context())
	if err != nil {
		return nil, err
	}
	return NewResult(view), nil
}

func (s *Server) getAccountApproval(r *http.Request) (*Result, *types.Error) {
	account := chi.URLParam(r, "account")
	if account == "" {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.ValidationError, "account must not be empty",
		)
	}

	approved, err := s.service.IsAccountApproved(r.Context(), account)
	if err != nil {
		return nil, err
	}
	return NewResult(accountApprovalResponse{Account: account, Approved: approved}), nil
}
