package command

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueResultsArriveInSubmissionOrder(t *testing.T) {
	d := NewDispatcher(nil, nil)
	d.register(Def{
		Name:  "slow",
		Usage: "slow", Description: "sleeps briefly",
		Handler: func(context.Context, Request) Result {
			time.Sleep(30 * time.Millisecond)
			return OK("slow done")
		},
	})

	var (
		mu    sync.Mutex
		order []string
	)
	q := NewQueue(context.Background(), d, nil, func(p Parsed, _ Result) {
		mu.Lock()
		order = append(order, p.Name)
		mu.Unlock()
	})

	require.True(t, q.Submit("slow"))
	require.True(t, q.Submit("clear"))
	require.True(t, q.Submit("about"))
	q.Close()

	assert.Equal(t, []string{"slow", "clear", "about"}, order)
}

func TestQueueOneCommandInFlight(t *testing.T) {
	d := NewDispatcher(nil, nil)

	var (
		mu       sync.Mutex
		inFlight int
		maxSeen  int
	)
	d.register(Def{
		Name:  "probe",
		Usage: "probe", Description: "tracks concurrency",
		Handler: func(context.Context, Request) Result {
			mu.Lock()
			inFlight++
			if inFlight > maxSeen {
				maxSeen = inFlight
			}
			mu.Unlock()

			time.Sleep(5 * time.Millisecond)

			mu.Lock()
			inFlight--
			mu.Unlock()
			return OK()
		},
	})

	q := NewQueue(context.Background(), d, nil, func(Parsed, Result) {})
	for i := 0; i < 10; i++ {
		require.True(t, q.Submit("probe"))
	}
	q.Close()

	assert.Equal(t, 1, maxSeen, "commands must never execute concurrently")
}

func TestQueueSubmitReportsSaturation(t *testing.T) {
	d := NewDispatcher(nil, nil)
	block := make(chan struct{})
	d.register(Def{
		Name:  "stall",
		Usage: "stall", Description: "blocks until released",
		Handler: func(context.Context, Request) Result {
			<-block
			return OK()
		},
	})

	q := NewQueue(context.Background(), d, nil, func(Parsed, Result) {})
	q.Submit("stall")

	// Fill the buffer; eventually Submit must refuse instead of blocking.
	accepted := 0
	for i := 0; i < 200; i++ {
		if q.Submit("clear") {
			accepted++
		}
	}
	assert.Less(t, accepted, 200)

	close(block)
	q.Close()
}
