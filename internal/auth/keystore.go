// Package auth stores the AI-bridge API key in the system keyring.
package auth

import (
	"os"
	"strings"

	"github.com/zalando/go-keyring"

	"github.com/holoterm/holoterm/internal/errors"
	"github.com/holoterm/holoterm/internal/logging"
)

const (
	service = "holoterm"
	user    = "bridge-api-key"

	// EnvAPIKey overrides the keyring; useful for CI and containers
	// without a secret service.
	EnvAPIKey = "HOLOTERM_API_KEY"
)

// Keyring abstracts the system keyring so tests can substitute an
// in-memory fake.
type Keyring interface {
	Set(service, user, password string) error
	Get(service, user string) (string, error)
	Delete(service, user string) error
}

// systemKeyring routes to the real platform keyring.
type systemKeyring struct{}

func (systemKeyring) Set(service, user, password string) error {
	return keyring.Set(service, user, password)
}

func (systemKeyring) Get(service, user string) (string, error) {
	return keyring.Get(service, user)
}

func (systemKeyring) Delete(service, user string) error {
	return keyring.Delete(service, user)
}

// KeyStore reads and writes the bridge API key.
type KeyStore struct {
	ring Keyring
}

// NewKeyStore returns a store backed by the system keyring.
func NewKeyStore() *KeyStore {
	return &KeyStore{ring: systemKeyring{}}
}

// NewKeyStoreWith returns a store backed by the given keyring.
func NewKeyStoreWith(ring Keyring) *KeyStore {
	return &KeyStore{ring: ring}
}

// Set stores the API key.
func (s *KeyStore) Set(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.Invalid("api key", "must not be empty")
	}

	if err := s.ring.Set(service, user, key); err != nil {
		return errors.KeyStore("set", err)
	}

	logging.Info("Stored bridge API key in system keyring")
	return nil
}

// Get returns the API key, preferring the environment override. A
// missing key is not an error; callers treat an empty key as "bridge
// disabled".
func (s *KeyStore) Get() (string, error) {
	if env := strings.TrimSpace(os.Getenv(EnvAPIKey)); env != "" {
		return env, nil
	}

	key, err := s.ring.Get(service, user)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", nil
		}
		return "", errors.KeyStore("get", err)
	}
	return key, nil
}

// Clear removes the stored API key. Clearing a key that was never set
// succeeds.
func (s *KeyStore) Clear() error {
	if err := s.ring.Delete(service, user); err != nil && err != keyring.ErrNotFound {
		return errors.KeyStore("delete", err)
	}

	logging.Info("Cleared bridge API key from system keyring")
	return nil
}
