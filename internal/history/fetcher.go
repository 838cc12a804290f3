package history

import (
	"context"
	"sync"

	"github.com/rxtech-lab/argo-board/internal/types"
)

// Fetcher serializes overlapping history requests so only the most recently
// submitted request may deliver its result. A response arriving after a newer
// request was submitted is dropped, regardless of arrival order.
type Fetcher struct {
	client *Client

	mu  sync.Mutex
	seq uint64
}

// NewFetcher wraps a client with last-request-wins delivery.
func NewFetcher(client *Client) *Fetcher {
	return &Fetcher{
		client: client,
	}
}

// Fetch submits a history request and calls deliver with the result when it
// arrives, unless a newer Fetch was submitted in the meantime. It blocks
// until the request completes; callers wanting overlap run it in goroutines.
// Returns true when the result was delivered.
func (f *Fetcher) Fetch(ctx context.Context, params FetchParams, deliver func(types.Series, error)) bool {
	f.mu.Lock()
	f.seq++
	seq := f.seq
	f.mu.Unlock()

	series, err := f.client.GetHistory(ctx, params)

	f.mu.Lock()
	defer f.mu.Unlock()

	if seq != f.seq {
		return false
	}

	deliver(series, err)

	return true
}
