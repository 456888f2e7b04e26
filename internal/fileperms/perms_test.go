package fileperms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSecure(t *testing.T) {
	assert.True(t, IsSecure(ConfigFile))
	assert.False(t, IsSecure(ConfigDir))
	assert.False(t, IsSecure(LogFile))
}

func TestMakeSecure(t *testing.T) {
	assert.True(t, IsSecure(MakeSecure(LogFile)))
	assert.Equal(t, ConfigFile, MakeSecure(0o644))
}
