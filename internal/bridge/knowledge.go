package bridge

import (
	"context"
	"strings"

	"github.com/holoterm/holoterm/internal/command"
	"github.com/holoterm/holoterm/internal/errors"
)

// LocalSearcher answers from the embedded knowledge base only, used
// for offline sessions with no bridge client.
type LocalSearcher struct{}

// NewLocalSearcher creates a searcher that never leaves the process.
func NewLocalSearcher() *LocalSearcher {
	return &LocalSearcher{}
}

// Search implements command.Searcher against the local database.
func (*LocalSearcher) Search(_ context.Context, query string) (command.SearchResponse, error) {
	if resp, ok := localAnswer(query); ok {
		return resp, nil
	}
	return command.SearchResponse{}, errors.Collaboratorf("search", "no local answer for %q", query)
}

// entry is one record of the embedded knowledge base consulted when
// the remote search service is unreachable.
type entry struct {
	keywords []string
	answer   []string
}

var knowledge = []entry{
	{
		keywords: []string{"speed", "light"},
		answer:   []string{"The speed of light in vacuum is 299,792,458 m/s."},
	},
	{
		keywords: []string{"gravity"},
		answer:   []string{"Standard gravity on Earth is 9.81 m/s^2."},
	},
	{
		keywords: []string{"absolute", "zero"},
		answer:   []string{"Absolute zero is 0 K, which is -273.15 degrees Celsius."},
	},
	{
		keywords: []string{"avogadro"},
		answer:   []string{"Avogadro's number is 6.022e23 particles per mole."},
	},
	{
		keywords: []string{"planck"},
		answer:   []string{"The Planck constant is 6.626e-34 J*s."},
	},
	{
		keywords: []string{"golden", "ratio"},
		answer:   []string{"The golden ratio is (1+sqrt(5))/2, approximately 1.618."},
	},
	{
		keywords: []string{"meaning", "life"},
		answer:   []string{"42."},
	},
	{
		keywords: []string{"water", "boil"},
		answer:   []string{"Water boils at 100 degrees Celsius at one atmosphere."},
	},
}

// localAnswer matches the query against the knowledge base. Every
// keyword of an entry must appear in the query.
func localAnswer(query string) (command.SearchResponse, bool) {
	q := strings.ToLower(query)
	for _, e := range knowledge {
		hit := true
		for _, kw := range e.keywords {
			if !strings.Contains(q, kw) {
				hit = false
				break
			}
		}
		if hit {
			return command.SearchResponse{
				Answer:  e.answer,
				Sources: []string{"local database"},
			}, true
		}
	}
	return command.SearchResponse{}, false
}
