package settings

import (
	"context"
	"os"
	"testing"
)

func TestEnvVarName(t *testing.T) {
	tests := []struct {
		name    string
		setting string
		want    string
	}{
		{"api key", "pg_summarizer.api_key", "PG_SUMMARIZER_API_KEY"},
		{"model", "pg_summarizer.model", "PG_SUMMARIZER_MODEL"},
		{"prompt", "pg_summarizer.prompt", "PG_SUMMARIZER_PROMPT"},
		{"no namespace", "timeout", "TIMEOUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EnvVarName(tt.setting); got != tt.want {
				t.Errorf("EnvVarName(%q) = %q, want %q", tt.setting, got, tt.want)
			}
		})
	}
}

func TestEnvStoreGet(t *testing.T) {
	store := NewEnvStore()
	ctx := context.Background()

	os.Setenv("PG_SUMMARIZER_MODEL", "gpt-4o")
	defer os.Unsetenv("PG_SUMMARIZER_MODEL")
	os.Unsetenv("PG_SUMMARIZER_API_KEY")

	value, ok, err := store.Get(ctx, "pg_summarizer.model")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !ok || value != "gpt-4o" {
		t.Errorf("Get() = (%q, %v), want (%q, true)", value, ok, "gpt-4o")
	}

	_, ok, err = store.Get(ctx, "pg_summarizer.api_key")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok {
		t.Error("Get() reported an unset variable as present")
	}
}
