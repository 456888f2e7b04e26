package command

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holoterm/holoterm/internal/art"
	"github.com/holoterm/holoterm/internal/holo"
)

// fakeSession records hologram state flips.
type fakeSession struct {
	specs []holo.Spec
}

func (s *fakeSession) ShowHologram(spec holo.Spec) {
	s.specs = append(s.specs, spec)
}

// fakeComputation scripts the external computation engine.
type fakeComputation struct {
	answer string
	err    error
	calls  int
}

func (c *fakeComputation) Evaluate(_ context.Context, _ string) (string, error) {
	c.calls++
	return c.answer, c.err
}

// fakeSearcher scripts the search collaborator.
type fakeSearcher struct {
	resp SearchResponse
	err  error
	last string
}

func (s *fakeSearcher) Search(_ context.Context, query string) (SearchResponse, error) {
	s.last = query
	return s.resp, s.err
}

func run(t *testing.T, d *Dispatcher, line string) Result {
	t.Helper()
	return d.Execute(context.Background(), Parse(line), nil)
}

func TestExecuteBlankInputIsNoOp(t *testing.T) {
	d := NewDispatcher(nil, nil)

	for _, input := range []string{"", "   ", "\t"} {
		res := run(t, d, input)
		assert.True(t, res.Success)
		assert.Empty(t, res.Output)
		assert.False(t, res.ClearScreen)
	}
}

func TestExecuteUnknownCommand(t *testing.T) {
	d := NewDispatcher(nil, nil)

	res := run(t, d, "foobar now")
	assert.False(t, res.Success)
	assert.Equal(t, KindError, res.Kind)
	require.NotEmpty(t, res.Output)
	assert.Contains(t, res.Output[0], "foobar")
}

func TestExecutePanicContainment(t *testing.T) {
	d := NewDispatcher(nil, nil)
	d.register(Def{
		Name:  "boom",
		Usage: "boom", Description: "explodes",
		Handler: func(context.Context, Request) Result { panic("kaboom") },
	})

	res := run(t, d, "boom")
	assert.False(t, res.Success)
	assert.Equal(t, KindError, res.Kind)
}

func TestHelp(t *testing.T) {
	d := NewDispatcher(nil, nil)

	t.Run("summary lists every command", func(t *testing.T) {
		res := run(t, d, "help")
		require.True(t, res.Success)
		joined := strings.Join(res.Output, "\n")
		for _, def := range d.Commands() {
			assert.Contains(t, joined, def.Name)
		}
	})

	t.Run("per-topic help", func(t *testing.T) {
		res := run(t, d, "help draw")
		require.True(t, res.Success)
		assert.Contains(t, strings.Join(res.Output, "\n"), "draw <name>")
	})

	t.Run("unknown topic still succeeds", func(t *testing.T) {
		res := run(t, d, "help teleport")
		assert.True(t, res.Success)
		assert.Contains(t, res.Output[0], "No help available")
	})
}

func TestDraw(t *testing.T) {
	d := NewDispatcher(nil, nil)

	t.Run("list flag enumerates every art name", func(t *testing.T) {
		for _, line := range []string{"draw --list", "draw -l", "draw cat --list"} {
			res := run(t, d, line)
			require.True(t, res.Success, "input %q", line)
			joined := strings.Join(res.Output, "\n")
			for _, name := range art.Names() {
				assert.Contains(t, joined, name)
			}
		}
	})

	t.Run("found art comes back as ascii with a star power-up", func(t *testing.T) {
		res := run(t, d, "draw cat")
		require.True(t, res.Success)
		assert.Equal(t, KindAscii, res.Kind)
		assert.NotEmpty(t, res.Output)
		require.NotNil(t, res.PowerUp)
		assert.Equal(t, "star", res.PowerUp.Type)
	})

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		res := run(t, d, "draw CAT")
		assert.True(t, res.Success)
	})

	t.Run("unknown art", func(t *testing.T) {
		res := run(t, d, "draw nonexistent-art-xyz")
		assert.False(t, res.Success)
		assert.Equal(t, KindError, res.Kind)
		assert.Contains(t, res.Output[0], art.Names()[0])
	})

	t.Run("missing name is a usage error", func(t *testing.T) {
		res := run(t, d, "draw")
		assert.False(t, res.Success)
		assert.Contains(t, res.Output[0], "Usage")
	})
}

func TestUpload(t *testing.T) {
	d := NewDispatcher(nil, nil)

	t.Run("image", func(t *testing.T) {
		res := run(t, d, "upload image")
		require.True(t, res.Success)
		assert.Equal(t, UploadImage, res.Upload)
	})

	t.Run("video", func(t *testing.T) {
		res := run(t, d, "upload video")
		require.True(t, res.Success)
		assert.Equal(t, UploadVideo, res.Upload)
	})

	t.Run("missing type", func(t *testing.T) {
		res := run(t, d, "upload")
		assert.False(t, res.Success)
		assert.Equal(t, UploadNone, res.Upload)
	})

	t.Run("invalid type", func(t *testing.T) {
		res := run(t, d, "upload audio")
		assert.False(t, res.Success)
		assert.Equal(t, UploadNone, res.Upload)
	})
}

func TestHologram(t *testing.T) {
	d := NewDispatcher(nil, nil)

	t.Run("valid shape flips session state and grants a mushroom", func(t *testing.T) {
		session := &fakeSession{}
		res := d.Execute(context.Background(), Parse(`hologram cube "hello world"`), session)

		require.True(t, res.Success)
		require.Len(t, session.specs, 1)
		assert.Equal(t, holo.Spec{Type: "cube", Text: "hello world"}, session.specs[0])
		require.NotNil(t, res.PowerUp)
		assert.Equal(t, "mushroom", res.PowerUp.Type)
	})

	t.Run("unknown shape lists valid types", func(t *testing.T) {
		session := &fakeSession{}
		res := d.Execute(context.Background(), Parse("hologram dodecahedron"), session)

		assert.False(t, res.Success)
		assert.Empty(t, session.specs)
		assert.Contains(t, res.Output[0], "cube")
	})

	t.Run("missing type is a usage error", func(t *testing.T) {
		res := run(t, d, "hologram")
		assert.False(t, res.Success)
	})
}

func TestSolve(t *testing.T) {
	t.Run("local evaluator", func(t *testing.T) {
		d := NewDispatcher(nil, nil)

		res := run(t, d, "solve 2+2")
		require.True(t, res.Success)
		assert.Equal(t, KindMath, res.Kind)
		assert.Equal(t, []string{"4"}, res.Output)

		res = run(t, d, "solve sqrt(16)")
		assert.Equal(t, []string{"4"}, res.Output)
	})

	t.Run("disallowed input is an evaluation error not a crash", func(t *testing.T) {
		d := NewDispatcher(nil, nil)
		res := run(t, d, "solve DROP TABLE")
		assert.False(t, res.Success)
		assert.Equal(t, KindError, res.Kind)
	})

	t.Run("computation engine is consulted first", func(t *testing.T) {
		comp := &fakeComputation{answer: "42"}
		d := NewDispatcher(comp, nil)

		res := run(t, d, "solve 40+2")
		require.True(t, res.Success)
		assert.Equal(t, []string{"42"}, res.Output)
		assert.Equal(t, 1, comp.calls)
	})

	t.Run("falls back locally when the engine fails", func(t *testing.T) {
		comp := &fakeComputation{err: fmt.Errorf("connection refused")}
		d := NewDispatcher(comp, nil)

		res := run(t, d, "solve 40+2")
		require.True(t, res.Success)
		assert.Equal(t, []string{"42"}, res.Output)
	})

	t.Run("empty expression is a usage error", func(t *testing.T) {
		d := NewDispatcher(nil, nil)
		res := run(t, d, "solve")
		assert.False(t, res.Success)
	})
}

func TestPhysics(t *testing.T) {
	d := NewDispatcher(nil, nil)

	t.Run("no args prints directory", func(t *testing.T) {
		res := run(t, d, "physics")
		require.True(t, res.Success)
		assert.Contains(t, res.Output[0], "Available formulas")
	})

	t.Run("projectile", func(t *testing.T) {
		res := run(t, d, "physics projectile 20 45")
		require.True(t, res.Success)
		require.Len(t, res.Output, 3)
		assert.Equal(t, "Range: 40.77 m", res.Output[0])
	})

	t.Run("unknown formula", func(t *testing.T) {
		res := run(t, d, "physics warpdrive 9")
		assert.False(t, res.Success)
	})

	t.Run("bad argument count fails gracefully", func(t *testing.T) {
		res := run(t, d, "physics projectile 20")
		assert.False(t, res.Success)
		assert.Contains(t, res.Output[0], "Usage")
	})
}

func TestChemistry(t *testing.T) {
	d := NewDispatcher(nil, nil)

	t.Run("element lookup", func(t *testing.T) {
		res := run(t, d, "chemistry element fe")
		require.True(t, res.Success)
		joined := strings.Join(res.Output, "\n")
		assert.Contains(t, joined, "Iron")
		assert.Contains(t, joined, "Transition Metal")
	})

	t.Run("unknown element", func(t *testing.T) {
		res := run(t, d, "chemistry element Xx")
		assert.False(t, res.Success)
		assert.Contains(t, res.Output[0], "Xx")
	})

	t.Run("molar mass of water", func(t *testing.T) {
		res := run(t, d, "chemistry molar H2O")
		require.True(t, res.Success)
		assert.Equal(t, []string{"Molar mass of H2O: 18.015 g/mol"}, res.Output)
	})

	t.Run("molar with unknown symbol names it", func(t *testing.T) {
		res := run(t, d, "chemistry molar H2Qz")
		assert.False(t, res.Success)
		assert.Contains(t, res.Output[0], "Qz")
	})

	t.Run("missing subcommand", func(t *testing.T) {
		res := run(t, d, "chemistry")
		assert.False(t, res.Success)
	})

	t.Run("bad subcommand", func(t *testing.T) {
		res := run(t, d, "chemistry alchemy gold")
		assert.False(t, res.Success)
	})
}

func TestSearch(t *testing.T) {
	t.Run("empty query is a usage error", func(t *testing.T) {
		d := NewDispatcher(nil, &fakeSearcher{})
		res := run(t, d, "search")
		assert.False(t, res.Success)
	})

	t.Run("passes the joined query through", func(t *testing.T) {
		searcher := &fakeSearcher{resp: SearchResponse{Answer: []string{"42"}}}
		d := NewDispatcher(nil, searcher)

		res := run(t, d, "search meaning of life")
		require.True(t, res.Success)
		assert.Equal(t, "meaning of life", searcher.last)
		assert.Equal(t, "42", res.Output[0])
	})

	t.Run("sources are appended", func(t *testing.T) {
		searcher := &fakeSearcher{resp: SearchResponse{
			Answer:  []string{"an answer"},
			Sources: []string{"local database"},
		}}
		d := NewDispatcher(nil, searcher)

		res := run(t, d, "search anything")
		require.True(t, res.Success)
		assert.Contains(t, res.Output[len(res.Output)-1], "local database")
	})

	t.Run("collaborator failure becomes an error result", func(t *testing.T) {
		searcher := &fakeSearcher{err: fmt.Errorf("dial tcp: timeout")}
		d := NewDispatcher(nil, searcher)

		res := run(t, d, "search anything")
		assert.False(t, res.Success)
		assert.Equal(t, KindError, res.Kind)
	})

	t.Run("unconfigured searcher reports offline", func(t *testing.T) {
		d := NewDispatcher(nil, nil)
		res := run(t, d, "search anything")
		assert.False(t, res.Success)
		assert.Contains(t, res.Output[0], "offline")
	})
}

func TestClearIsIdempotent(t *testing.T) {
	d := NewDispatcher(nil, nil)

	for i := 0; i < 5; i++ {
		res := run(t, d, "clear")
		assert.True(t, res.Success)
		assert.True(t, res.ClearScreen)
		assert.Empty(t, res.Output)
	}
}

func TestExit(t *testing.T) {
	d := NewDispatcher(nil, nil)

	res := run(t, d, "exit")
	assert.True(t, res.Success)
	assert.True(t, res.ExitHologram)
}

func TestAboutAndVersion(t *testing.T) {
	d := NewDispatcher(nil, nil)

	about := run(t, d, "about")
	assert.True(t, about.Success)
	assert.NotEmpty(t, about.Output)

	ver := run(t, d, "version")
	assert.True(t, ver.Success)
	assert.Contains(t, ver.Output[0], "holoterm")
}
