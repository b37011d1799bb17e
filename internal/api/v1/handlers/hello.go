package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/HexaCluster/pg-summarize/internal/summarizer"
	"github.com/rs/zerolog/log"
)

// HelloResponse carries the fixed greeting
type HelloResponse struct {
	Message string `json:"message"`
}

// HandleHello proves the integration point is wired correctly
func HandleHello(svc *summarizer.Service, w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(HelloResponse{Message: svc.Hello()}); err != nil {
		log.Error().Err(err).Msg("Failed to encode hello response")
	}
}
