package command

import (
	"context"

	"github.com/holoterm/holoterm/internal/holo"
)

// Computation is the external computation engine consumed by solve. It
// enforces its own execution timeout and reports failure through the
// error return, never by panicking.
type Computation interface {
	Evaluate(ctx context.Context, expression string) (string, error)
}

// SearchResponse is whatever the search collaborator produced for a
// query: answer lines, optional ASCII art, optional source labels.
type SearchResponse struct {
	Answer  []string
	Art     []string
	Sources []string
}

// Searcher is the AI-backed search collaborator. Implementations are
// expected to degrade gracefully (remote service, then local database)
// before returning an error.
type Searcher interface {
	Search(ctx context.Context, query string) (SearchResponse, error)
}

// Session is the host capability object injected per execution for the
// commands that must flip host state synchronously before returning.
// Only hologram uses it; every other side effect travels through the
// Result.
type Session interface {
	// ShowHologram sets the hologram spec and switches the host into
	// 3D mode before the next frame renders.
	ShowHologram(spec holo.Spec)
}
