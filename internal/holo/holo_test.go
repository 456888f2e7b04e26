package holo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnown(t *testing.T) {
	for _, name := range Types() {
		assert.True(t, Known(name))
	}
	assert.True(t, Known("CUBE"))
	assert.True(t, Known(" torus "))
	assert.False(t, Known("dodecahedron"))
	assert.False(t, Known(""))
}

func TestTypesSorted(t *testing.T) {
	types := Types()
	require.NotEmpty(t, types)
	assert.IsIncreasing(t, types)
	assert.Contains(t, types, "cube")
	assert.Contains(t, types, "dna")
}

func TestFrameDimensions(t *testing.T) {
	r := NewRenderer(Spec{Type: "cube"})
	rows := r.Frame(0, 40, 20)

	require.Len(t, rows, 20)
	for _, row := range rows {
		assert.LessOrEqual(t, len([]rune(row)), 40)
	}
}

func TestFrameIsDeterministic(t *testing.T) {
	r := NewRenderer(Spec{Type: "sphere", Text: "hello"})

	a := r.Frame(1.5, 50, 24)
	b := r.Frame(1.5, 50, 24)
	assert.Equal(t, a, b)
}

func TestFrameAnimates(t *testing.T) {
	r := NewRenderer(Spec{Type: "torus"})

	a := strings.Join(r.Frame(0, 50, 24), "\n")
	b := strings.Join(r.Frame(1, 50, 24), "\n")
	assert.NotEqual(t, a, b)
}

func TestFrameDrawsSomething(t *testing.T) {
	for _, name := range Types() {
		r := NewRenderer(Spec{Type: name})
		joined := strings.Join(r.Frame(0.7, 60, 24), "")
		assert.NotEqual(t, strings.Repeat(" ", len(joined)), joined,
			"shape %q rendered an empty frame", name)
	}
}

func TestFrameCaption(t *testing.T) {
	r := NewRenderer(Spec{Type: "cube", Text: "greetings"})
	rows := r.Frame(0, 40, 20)

	require.Len(t, rows, 20)
	assert.Contains(t, rows[len(rows)-1], "greetings")
}

func TestFrameTinySurface(t *testing.T) {
	r := NewRenderer(Spec{Type: "cube"})
	rows := r.Frame(0, 4, 2)
	require.Len(t, rows, 1)
}
