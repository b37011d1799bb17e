package summarizer

import (
	"context"
	"fmt"

	"github.com/HexaCluster/pg-summarize/internal/settings"
	"github.com/rs/zerolog/log"
)

// Greeting is returned by the hello operation to prove the service is
// wired correctly.
const Greeting = "Hello, pg_summarize"

// Service composes the settings store and the chat completion client.
// Every call re-resolves configuration and makes a fresh round trip, so
// setting changes take effect immediately and concurrent calls need no
// coordination.
type Service struct {
	store  settings.Store
	client *Client
}

// NewService builds the summarize service. A nil client gets the default
// one against the public endpoint.
func NewService(store settings.Store, client *Client) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("settings store is required")
	}
	if client == nil {
		client = NewClient()
	}

	return &Service{
		store:  store,
		client: client,
	}, nil
}

// Summarize resolves configuration and asks the model for a summary of
// input. Any failure aborts the whole call; there is no retry and no
// partial result. A missing API key fails before any network activity.
func (s *Service) Summarize(ctx context.Context, input string) (string, error) {
	cfg, err := Resolve(ctx, s.store)
	if err != nil {
		return "", err
	}

	summary, err := s.client.Summarize(ctx, input, cfg)
	if err != nil {
		log.Error().Err(err).Msg("Failed to get summary")
		return "", err
	}

	log.Debug().Int("summary_len", len(summary)).Msg("Summary produced")
	return summary, nil
}

// Hello returns the fixed greeting.
func (s *Service) Hello() string {
	return Greeting
}
