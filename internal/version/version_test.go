package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetChainsDirectly(t *testing.T) {
	// Info methods take value receivers so callers can chain off Get()
	// without binding the result first.
	assert.NotEmpty(t, Get().String())
	assert.Equal(t, Version, Get().Short())
}

func TestStringFormats(t *testing.T) {
	info := Info{Version: "1.2.3", Commit: "unknown", BuildDate: "today"}
	assert.Equal(t, "1.2.3 (built: today)", info.String())

	info.Commit = "abcdef0123456789"
	got := info.String()
	assert.True(t, strings.HasPrefix(got, "1.2.3 (commit: abcdef0"))
}

func TestFullMentionsPlatform(t *testing.T) {
	full := Get().Full()
	assert.Contains(t, full, "holoterm version")
	assert.Contains(t, full, "Platform:")
}
