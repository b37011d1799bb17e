package settings

import (
	"context"
)

// Store is a read-only view of the host's configuration store. The
// summarizer looks up its three pg_summarizer.* settings through it.
type Store interface {
	// Get returns the value stored under name. ok is false when the
	// setting is absent or null. err reports a failure of the store
	// itself, not a missing setting.
	Get(ctx context.Context, name string) (value string, ok bool, err error)
}
