package summarizer

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceRequiresStore(t *testing.T) {
	_, err := NewService(nil, nil)
	assert.Error(t, err)
}

func TestServiceHello(t *testing.T) {
	svc, err := NewService(mapStore{}, nil)
	require.NoError(t, err)

	assert.Equal(t, "Hello, pg_summarize", svc.Hello())
}

func TestServiceSummarize(t *testing.T) {
	var hits atomic.Int64

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, successBody("A fox."))
	}))
	defer srv.Close()

	store := mapStore{APIKeySetting: "sk-test"}
	svc, err := NewService(store, NewClientWithBaseURL(srv.URL+"/v1"))
	require.NoError(t, err)

	summary, err := svc.Summarize(context.Background(), "The quick brown fox")

	require.NoError(t, err)
	assert.Equal(t, "A fox.", summary)
	assert.EqualValues(t, 1, hits.Load())
}

func TestServiceSummarizeMissingAPIKey(t *testing.T) {
	var hits atomic.Int64

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	svc, err := NewService(mapStore{}, NewClientWithBaseURL(srv.URL+"/v1"))
	require.NoError(t, err)

	_, err = svc.Summarize(context.Background(), "anything")

	assert.ErrorIs(t, err, ErrMissingAPIKey)
	assert.EqualValues(t, 0, hits.Load(), "no network call may happen without an API key")
}

func TestServiceSummarizeUpstreamRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	store := mapStore{APIKeySetting: "sk-expired"}
	svc, err := NewService(store, NewClientWithBaseURL(srv.URL+"/v1"))
	require.NoError(t, err)

	_, err = svc.Summarize(context.Background(), "anything")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
}

func TestServiceSummarizeMalformedUpstreamBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"unexpected":"shape"}`)
	}))
	defer srv.Close()

	store := mapStore{APIKeySetting: "sk-test"}
	svc, err := NewService(store, NewClientWithBaseURL(srv.URL+"/v1"))
	require.NoError(t, err)

	_, err = svc.Summarize(context.Background(), "anything")

	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestServiceSummarizeUsesStoredSettings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, successBody("ok"))
	}))
	defer srv.Close()

	// Settings are re-resolved on every call, so changes take effect
	// without restarting anything.
	store := mapStore{APIKeySetting: "sk-test"}
	svc, err := NewService(store, NewClientWithBaseURL(srv.URL+"/v1"))
	require.NoError(t, err)

	_, err = svc.Summarize(context.Background(), "first")
	require.NoError(t, err)

	store[ModelSetting] = "gpt-4o"
	_, err = svc.Summarize(context.Background(), "second")
	require.NoError(t, err)
}
