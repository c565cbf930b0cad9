package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/backedfi/fiat-bridge/internal/types"
)

// Result is the success envelope of every API response.
type Result struct {
	Data   any `json:"data"`
	Status int `json:"-"`
}

func NewResult(data any) *Result {
	return &Result{Data: data, Status: http.StatusOK}
}

type ErrorResponse struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}

type handlerFunc func(r *http.Request) (*Result, *types.Error)

// wrapHandler adapts a typed handler into http.HandlerFunc, serializing
// results and mapping *types.Error to its HTTP status and error code.
func wrapHandler(handler handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := handler(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeResult(w, r, result)
	}
}

func writeResult(w http.ResponseWriter, r *http.Request, result *Result) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(result.Status)
	if encodeErr := json.NewEncoder(w).Encode(result); encodeErr != nil {
		log.Ctx(r.Context()).Error().Err(encodeErr).Msg("Failed to encode API response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err *types.Error) {
	if err.StatusCode >= http.StatusInternalServerError {
		log.Ctx(r.Context()).Error().Err(err.Err).
			Str("path", r.URL.Path).
			Msg("Internal error while serving request")
	} else {
		log.Ctx(r.Context()).Warn().Err(err.Err).
			Str("path", r.URL.Path).
			Str("errorCode", string(err.ErrorCode)).
			Msg("Request rejected")
	}

	message := err.Err.Error()
	if err.StatusCode >= http.StatusInternalServerError {
		// internal details stay in the logs
		message = "internal service error"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.StatusCode)
	if encodeErr := json.NewEncoder(w).Encode(&ErrorResponse{
		ErrorCode: string(err.ErrorCode),
		Message:   message,
	}); encodeErr != nil {
		log.Ctx(r.Context()).Error().Err(encodeErr).Msg("Failed to encode API error response")
	}
}

// parseBody decodes the JSON request body into payload, rejecting unknown
// fields so typos surface as 400s instead of silently ignored input.
func parseBody(r *http.Request, payload any) *types.Error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(payload); err != nil {
		return types.NewErrorWithMsg(
			http.StatusBadRequest, types.ValidationError, "invalid request payload",
		)
	}
	return nil
}
