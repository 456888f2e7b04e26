package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

// memoryKeyring is an in-memory Keyring for tests.
type memoryKeyring struct {
	entries map[string]string
}

func newMemoryKeyring() *memoryKeyring {
	return &memoryKeyring{entries: map[string]string{}}
}

func (m *memoryKeyring) Set(service, user, password string) error {
	m.entries[service+"/"+user] = password
	return nil
}

func (m *memoryKeyring) Get(service, user string) (string, error) {
	v, ok := m.entries[service+"/"+user]
	if !ok {
		return "", keyring.ErrNotFound
	}
	return v, nil
}

func (m *memoryKeyring) Delete(service, user string) error {
	key := service + "/" + user
	if _, ok := m.entries[key]; !ok {
		return keyring.ErrNotFound
	}
	delete(m.entries, key)
	return nil
}

func TestKeyStoreRoundTrip(t *testing.T) {
	s := NewKeyStoreWith(newMemoryKeyring())

	require.NoError(t, s.Set("sk-test-123"))

	key, err := s.Get()
	require.NoError(t, err)
	assert.Equal(t, "sk-test-123", key)

	require.NoError(t, s.Clear())

	key, err = s.Get()
	require.NoError(t, err)
	assert.Empty(t, key, "missing key is empty, not an error")
}

func TestKeyStoreRejectsEmptyKey(t *testing.T) {
	s := NewKeyStoreWith(newMemoryKeyring())
	assert.Error(t, s.Set("   "))
}

func TestKeyStoreClearIsIdempotent(t *testing.T) {
	s := NewKeyStoreWith(newMemoryKeyring())
	assert.NoError(t, s.Clear())
	assert.NoError(t, s.Clear())
}

func TestKeyStoreEnvOverride(t *testing.T) {
	t.Setenv(EnvAPIKey, "sk-from-env")

	s := NewKeyStoreWith(newMemoryKeyring())
	require.NoError(t, s.Set("sk-from-ring"))

	key, err := s.Get()
	require.NoError(t, err)
	assert.Equal(t, "sk-from-env", key)
}
