package config

import (
	"os"
	"sync"
)

var (
	jwtSecretMu       sync.RWMutex
	jwtSecretOverride []byte
	jwtSecretIsSet    bool
)

// GetJWTSecret returns the secret key used to verify bearer tokens on the
// summarize endpoint. Empty means auth is disabled. The environment is
// read on every call so a value loaded from .env after startup is picked
// up.
func GetJWTSecret() []byte {
	jwtSecretMu.RLock()
	defer jwtSecretMu.RUnlock()
	if jwtSecretIsSet {
		return jwtSecretOverride
	}
	return []byte(os.Getenv("JWT_SECRET"))
}

// SetJWTSecret temporarily changes the JWT secret and returns a function to restore it
// This is primarily used for testing
func SetJWTSecret(secret []byte) func() {
	jwtSecretMu.Lock()
	previous, wasSet := jwtSecretOverride, jwtSecretIsSet
	jwtSecretOverride, jwtSecretIsSet = secret, true
	jwtSecretMu.Unlock()

	return func() {
		jwtSecretMu.Lock()
		jwtSecretOverride, jwtSecretIsSet = previous, wasSet
		jwtSecretMu.Unlock()
	}
}
