package settings

import (
	"context"
	"os"
	"strings"
)

// EnvStore maps setting names onto environment variables, so the service
// can run without any external store: pg_summarizer.api_key becomes
// PG_SUMMARIZER_API_KEY. An empty variable counts as unset.
type EnvStore struct{}

// NewEnvStore returns the environment-backed store.
func NewEnvStore() *EnvStore {
	return &EnvStore{}
}

// Get looks the setting up in the process environment.
func (s *EnvStore) Get(_ context.Context, name string) (string, bool, error) {
	value := os.Getenv(EnvVarName(name))
	if value == "" {
		return "", false, nil
	}
	return value, true, nil
}

// EnvVarName converts a setting name to its environment variable form.
func EnvVarName(name string) string {
	return strings.ToUpper(strings.ReplaceAll(name, ".", "_"))
}
