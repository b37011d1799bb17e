package config

import (
	"os"

	"github.com/HexaCluster/pg-summarize/pkg/logger"
)

// GetOpenAIBaseURL returns an override for the chat completions endpoint.
// An empty value means the public OpenAI API.
func GetOpenAIBaseURL() string {
	value := os.Getenv("OPENAI_BASE_URL")
	if value != "" {
		logger.Info(logger.CONFIG, "OpenAI base URL override in effect: %s", value)
	}
	return value
}
