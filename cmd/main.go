package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/HexaCluster/pg-summarize/internal/api/v1/handlers"
	"github.com/HexaCluster/pg-summarize/internal/api/v1/middleware"
	"github.com/HexaCluster/pg-summarize/internal/config"
	"github.com/HexaCluster/pg-summarize/internal/settings"
	"github.com/HexaCluster/pg-summarize/internal/summarizer"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found")
	}
	setLogLevel()

	ctx := context.Background()

	store, err := newSettingsStore(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not initialise settings store")
	}

	svc, err := summarizer.NewService(store, summarizer.NewClientWithBaseURL(config.GetOpenAIBaseURL()))
	if err != nil {
		log.Fatal().Err(err).Msg("Could not initialise summarizer service")
	}

	r := setupRouter(svc)

	addr := ":" + config.GetPort()
	log.Info().Str("addr", addr).Msg("Server starting")
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal().Err(err).Msg("ListenAndServe error")
	}
}

func setupRouter(svc *summarizer.Service) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	handlers.RegisterRoutes(r, svc)
	return r
}

// newSettingsStore picks the backend the pg_summarizer settings live in.
func newSettingsStore(ctx context.Context) (settings.Store, error) {
	switch backend := config.GetSettingsBackend(); backend {
	case config.SettingsBackendPostgres:
		return settings.ConnectPostgres(ctx, config.GetDatabaseURL())
	case config.SettingsBackendRedis:
		return settings.NewRedisStore(ctx, config.GetRedisURL(), config.GetRedisPassword())
	case config.SettingsBackendEnv:
		return settings.NewEnvStore(), nil
	default:
		return nil, fmt.Errorf("unknown settings backend: %q", backend)
	}
}

func setLogLevel() {
	level, err := zerolog.ParseLevel(strings.ToLower(config.GetEnvOrDefault("LOG_LEVEL", "info")))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid LOG_LEVEL, using info: %v\n", err)
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}
