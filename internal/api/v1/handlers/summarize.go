package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/HexaCluster/pg-summarize/internal/summarizer"
	"github.com/HexaCluster/pg-summarize/pkg/httpext"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// SummarizeRequest is the body of POST /v1/summarize
type SummarizeRequest struct {
	Text string `json:"text" validate:"required"`
}

// SummarizeResponse carries the extracted summary
type SummarizeResponse struct {
	Summary string `json:"summary"`
}

// HandleSummarize handles summarize requests
func HandleSummarize(svc *summarizer.Service, w http.ResponseWriter, r *http.Request) {
	var req SummarizeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("Client sent malformed JSON request")
		httpext.JsonError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	// use a single instance of Validate, it caches struct info
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := validate.Struct(req); err != nil {
		log.Warn().Err(err).Msg("Request validation failed")
		httpext.JsonError(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	log.Info().
		Int("text_len", len(req.Text)).
		Str("client_ip", r.RemoteAddr).
		Msg("Received summarize request")

	summary, err := svc.Summarize(r.Context(), req.Text)
	if err != nil {
		status := errorStatus(err)
		log.Error().Err(err).Int("status", status).Msg("Failed to summarize")
		httpext.JsonError(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(SummarizeResponse{Summary: summary}); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
		httpext.JsonError(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// errorStatus maps the summarizer error taxonomy onto response codes.
// Upstream rejections keep their original status inside the message, so a
// caller can still tell a 401 from a 429.
func errorStatus(err error) int {
	var apiErr *summarizer.APIError
	var transportErr *summarizer.TransportError

	switch {
	case errors.Is(err, summarizer.ErrMissingAPIKey):
		return http.StatusInternalServerError
	case errors.Is(err, summarizer.ErrMalformedResponse):
		return http.StatusBadGateway
	case errors.As(err, &apiErr):
		return http.StatusBadGateway
	case errors.As(err, &transportErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
