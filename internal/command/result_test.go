package command

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holoterm/holoterm/internal/errors"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantOut string
	}{
		{
			name:    "usage error gets a usage prefix",
			err:     errors.Usage("draw <name> [--list|-l]"),
			wantOut: "Usage: draw <name> [--list|-l]",
		},
		{
			name:    "collaborator error mentions offline",
			err:     errors.Collaborator("search", fmt.Errorf("dial tcp: refused")),
			wantOut: "search service unavailable (service may be offline)",
		},
		{
			name:    "timeout error mentions offline",
			err:     errors.Timeout("computation"),
			wantOut: "computation timed out (service may be offline)",
		},
		{
			name:    "evaluation error passes the message through",
			err:     errors.Evaluation("division by zero"),
			wantOut: "division by zero",
		},
		{
			name:    "plain error is wrapped as internal",
			err:     fmt.Errorf("something odd"),
			wantOut: "internal error: something odd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := FromError(tt.err)
			assert.False(t, res.Success)
			assert.Equal(t, KindError, res.Kind)
			require.Len(t, res.Output, 1)
			assert.Equal(t, tt.wantOut, res.Output[0])
		})
	}
}

func TestFromErrorNil(t *testing.T) {
	res := FromError(nil)
	assert.True(t, res.Success)
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, KindMath, Math("4").Kind)
	assert.Equal(t, KindAscii, Ascii([]string{"art"}).Kind)
	assert.Equal(t, KindInfo, Infof("x %d", 1).Kind)
	assert.False(t, Errorf("nope").Success)
}
