package api

import (
	"net/http"

	sdkmath "cosmossdk.io/math"

	"github.com/backedfi/fiat-bridge/internal/fee"
	"github.com/backedfi/fiat-bridge/internal/types"
)

type minimumBurnRequest struct {
	Minimum sdkmath.Int `json:"minimum"`
}

type voteThresholdRequest struct {
	Threshold uint64 `json:"threshold"`
}

type feeRequest struct {
	Fixed            sdkmath.Int `json:"fixed"`
	RatioNumerator   sdkmath.Int `json:"ratio_numerator"`
	RatioDenominator sdkmath.Int `json:"ratio_denominator"`
}

type autoMintRequest struct {
	AutoMint bool `json:"auto_mint"`
}

type feeRecipientPayload struct {
	Address string      `json:"address"`
	Shares  sdkmath.Int `json:"shares"`
}

type feeRecipientsRequest struct {
	Recipients []feeRecipientPayload `json:"recipients"`
}

type feeRecipientSharesRequest struct {
	Address string      `json:"address"`
	Shares  sdkmath.Int `json:"shares"`
}

type accountApprovalRequest struct {
	Accounts []string `json:"accounts"`
	Approved bool     `json:"approved"`
}

func (s *Server) setMinimumBurn(r *http.Request) (*Result, *types.Error) {
	caller, callerErr := s.resolveCaller(r)
	if callerErr != nil {
		return nil, callerErr
	}
	var req minimumBurnRequest
	if err := parseBody(r, &req); err != nil {
		return nil, err
	}

	if err := s.service.SetMinimumBurn(r.Context(), caller, req.Minimum); err != nil {
		return nil, err
	}
	return NewResult(acceptedResponse{Accepted: true}), nil
}

func (s *Server) setVoteThreshold(r *http.Request) (*Result, *types.Error) {
	caller, callerErr := s.resolveCaller(r)
	if callerErr != nil {
		return nil, callerErr
	}
	var req voteThresholdRequest
	if err := parseBody(r, &req); err != nil {
		return nil, err
	}

	if err := s.service.SetVoteThreshold(r.Context(), caller, req.Threshold); err != nil {
		return nil, err
	}
	return NewResult(acceptedResponse{Accepted: true}), nil
}

func (s *Server) setMintFee(r *http.Request) (*Result, *types.Error) {
	caller, callerErr := s.resolveCaller(r)
	if callerErr != nil {
		return nil, callerErr
	}
	var req feeRequest
	if err := parseBody(r, &req); err != nil {
		return nil, err
	}

	if err := s.service.SetMintFee(
		r.Context(), caller, req.Fixed, req.RatioNumerator, req.RatioDenominator,
	); err != nil {
		return nil, err
	}
	return NewResult(acceptedResponse{Accepted: true}), nil
}

func (s *Server) setBurnFee(r *http.Request) (*Result, *types.Error) {
	caller, callerErr := s.resolveCaller(r)
	if callerErr != nil {
		return nil, callerErr
	}
	var req feeRequest
	if err := parseBody(r, &req); err != nil {
		return nil, err
	}

	if err := s.service.SetBurnFee(
		r.Context(), caller, req.Fixed, req.RatioNumerator, req.RatioDenominator,
	); err != nil {
		return nil, err
	}
	return NewResult(acceptedResponse{Accepted: true}), nil
}

func (s *Server) setAutoMint(r *http.Request) (*Result, *types.Error) {
	caller, callerErr := s.resolveCaller(r)
	if callerErr != nil {
		return nil, callerErr
	}
	var req autoMintRequest
	if err := parseBody(r, &req); err != nil {
		return nil, err
	}

	if err := s.service.SetAutoMint(r.Context(), caller, req.AutoMint); err != nil {
		return nil, err
	}
	return NewResult(acceptedResponse{Accepted: true}), nil
}

func (s *Server) setFeeRecipients(r *http.Request) (*Result, *types.Error) {
	caller, callerErr := s.resolveCaller(r)
	if callerErr != nil {
		return nil, callerErr
	}
	var req feeRecipientsRequest
	if err := parseBody(r, &req); err != nil {
		return nil, err
	}

	recipients := make([]fee.Recipient, 0, len(req.Recipients))
	for _, entry := range req.Recipients {
		recipients = append(recipients, fee.Recipient{
			Address: entry.Address,
			Shares:  entry.Shares,
		})
	}

	if err := s.service.SetFeeRecipients(r.Context(), caller, recipients); err != nil {
		return nil, err
	}
	return NewResult(acceptedResponse{Accepted: true}), nil
}

func (s *Server) setFeeRecipientShares(r *http.Request) (*Result, *types.Error) {
	caller, callerErr := s.resolveCaller(r)
	if callerErr != nil {
		return nil, callerErr
	}
	var req feeRecipientSharesRequest
	if err := parseBody(r, &req); err != nil {
		return nil, err
	}

	if err := s.service.SetFeeRecipientShares(r.Context(), caller, req.Address, req.Shares); err != nil {
		return nil, err
	}
	return NewResult(acceptedResponse{Accepted: true}), nil
}

func (s *Server) setAccountApproval(r *http.Request) (*Result, *types.Error) {
	caller, callerErr := s.resolveCaller(r)
	if callerErr != nil {
		return nil, callerErr
	}
	var req accountApprovalRequest
	if err := parseBody(r, &req); err != nil {
		return nil, err
	}

	if err := s.service.SetAccountApproval(r.Context(), caller, req.Accounts, req.Approved); err != nil {
		return nil, err
	}
	return NewResult(acceptedResponse{Accepted: true}), nil
}
