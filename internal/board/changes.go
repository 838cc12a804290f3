package board

import "sync"

// ChangeKind identifies the kind of board mutation carried by a Change.
type ChangeKind string

const (
	ChangeNodeAdded   ChangeKind = "node_added"
	ChangeNodeMoved   ChangeKind = "node_moved"
	ChangeNodePatched ChangeKind = "node_patched"
	ChangeEdgeAdded   ChangeKind = "edge_added"
	ChangeDeleted     ChangeKind = "deleted"
	ChangeReset       ChangeKind = "reset"
	ChangeLoaded      ChangeKind = "loaded"
)

// Change is a single committed board mutation, delivered to subscribers so a
// rendering layer can track the board without polling snapshots.
type Change struct {
	Kind    ChangeKind `json:"kind"`
	NodeIDs []string   `json:"nodeIds,omitempty"`
	EdgeIDs []string   `json:"edgeIds,omitempty"`
}

// subscriptionBuffer bounds the per-subscriber change queue. A subscriber
// that stops draining loses changes rather than blocking mutations.
const subscriptionBuffer = 64

// Subscription is an owned handle on the board change feed. Callers must
// release it with Unsubscribe when the consuming view is dismantled.
type Subscription struct {
	ch     chan Change
	cancel func()
	once   sync.Once
}

// Changes returns the channel delivering board changes. The channel is
// closed by Unsubscribe.
func (s *Subscription) Changes() <-chan Change {
	return s.ch
}

// Unsubscribe detaches the subscription from the store and closes the
// channel. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	s.once.Do(s.cancel)
}

// broadcaster fans committed changes out to the live subscriptions.
type broadcaster struct {
	mu   sync.Mutex
	subs map[*Subscription]struct{}
}

func newBroadcaster() *broadcaster {
	return &broadcaster{
		mu:   sync.Mutex{},
		subs: make(map[*Subscription]struct{}),
	}
}

func (b *broadcaster) subscribe() *Subscription {
	sub := &Subscription{
		ch:     make(chan Change, subscriptionBuffer),
		cancel: nil,
		once:   sync.Once{},
	}
	sub.cancel = func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		delete(b.subs, sub)
		close(sub.ch)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.subs[sub] = struct{}{}

	return sub
}

func (b *broadcaster) publish(change Change) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for sub := range b.subs {
		select {
		case sub.ch <- change:
		default:
			// Slow subscriber: drop instead of blocking the mutation path.
		}
	}
}
