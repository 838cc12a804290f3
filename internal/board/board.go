// Package board owns the in-memory strategy graph: the node and edge
// collections, every structural mutation applied to them, and the acyclicity
// gate on edge creation.
package board

import (
	"sync"

	"go.uber.org/zap"

	"github.com/rxtech-lab/argo-board/internal/logger"
	"github.com/rxtech-lab/argo-board/internal/schema"
	"github.com/rxtech-lab/argo-board/internal/types"
)

// Store is the mutation API over one strategy board. All mutations are
// synchronous and atomic; a rejected connection performs no mutation at all.
type Store interface {
	// AddNode creates a node of the given kind at the given position with
	// default data. Never fails.
	AddNode(kind types.NodeKind, position types.Position) types.Node
	// MoveNode updates a node's position. Unknown ids are a silent no-op (a
	// late UI event for an already-deleted node).
	MoveNode(id string, position types.Position)
	// PatchNodeData merges patch over the node's current data, field by
	// field. Unknown ids are a silent no-op.
	PatchNodeData(id string, patch types.NodeData)
	// AddTicker adds a symbol to the node's ticker set; duplicates are a
	// no-op.
	AddTicker(id string, symbol string)
	// RemoveTicker removes a symbol from the node's ticker set.
	RemoveTicker(id string, symbol string)
	// SetNodeSelected flags or unflags a node for DeleteSelected.
	SetNodeSelected(id string, selected bool)
	// SetEdgeSelected flags or unflags an edge for DeleteSelected.
	SetEdgeSelected(id string, selected bool)
	// Connect adds an edge from source to target if doing so keeps the
	// board acyclic. The boolean reports whether the edge was committed; a
	// rejected connection is an expected outcome, not an error.
	Connect(source, target string) (types.Edge, bool)
	// DeleteSelected removes every selected node and every selected edge,
	// plus (when cascade delete is on) edges left dangling by the removed
	// nodes.
	DeleteSelected()
	// Reset clears nodes and edges unconditionally.
	Reset()
	// Load replaces the board contents with the given snapshot.
	Load(board types.Board)
	// Snapshot returns a copy of the current board.
	Snapshot() types.Board
	// Subscribe registers a change-feed subscription. The caller owns the
	// returned handle and must Unsubscribe it.
	Subscribe() *Subscription
}

// StoreV1 is the default Store implementation.
type StoreV1 struct {
	mu      sync.RWMutex
	nodes   []types.Node
	edges   []types.Edge
	cascade bool
	logger  *logger.Logger
	feed    *broadcaster
}

// Option configures a StoreV1.
type Option func(*StoreV1)

// WithLogger attaches a logger to the store.
func WithLogger(l *logger.Logger) Option {
	return func(s *StoreV1) {
		s.logger = l
	}
}

// WithoutCascadeDelete keeps edges that reference a deleted node instead of
// removing them. The default is to cascade.
func WithoutCascadeDelete() Option {
	return func(s *StoreV1) {
		s.cascade = false
	}
}

// NewStore creates an empty board store.
func NewStore(opts ...Option) Store {
	s := &StoreV1{
		mu:      sync.RWMutex{},
		nodes:   []types.Node{},
		edges:   []types.Edge{},
		cascade: true,
		logger:  logger.NewNopLogger(),
		feed:    newBroadcaster(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// AddNode implements Store.
func (s *StoreV1) AddNode(kind types.NodeKind, position types.Position) types.Node {
	s.mu.Lock()
	node := schema.NewNode(kind, position)
	s.nodes = append(s.nodes, node)
	s.mu.Unlock()

	s.feed.publish(Change{Kind: ChangeNodeAdded, NodeIDs: []string{node.ID}})

	return node
}

// MoveNode implements Store.
func (s *StoreV1) MoveNode(id string, position types.Position) {
	s.mu.Lock()

	i := s.nodeIndex(id)
	if i < 0 {
		s.mu.Unlock()

		return
	}

	s.nodes[i].Position = position
	s.mu.Unlock()

	s.feed.publish(Change{Kind: ChangeNodeMoved, NodeIDs: []string{id}})
}

// PatchNodeData implements Store.
func (s *StoreV1) PatchNodeData(id string, patch types.NodeData) {
	s.mu.Lock()

	i := s.nodeIndex(id)
	if i < 0 {
		s.mu.Unlock()

		return
	}

	s.nodes[i].Data = s.nodes[i].Data.Merge(patch)
	s.mu.Unlock()

	s.feed.publish(Change{Kind: ChangeNodePatched, NodeIDs: []string{id}})
}

// AddTicker implements Store.
func (s *StoreV1) AddTicker(id string, symbol string) {
	s.mu.Lock()

	i := s.nodeIndex(id)
	if i < 0 {
		s.mu.Unlock()

		return
	}

	data := s.nodes[i].Data.Clone()
	changed := data.AddStock(symbol)

	if changed {
		s.nodes[i].Data = data
	}

	s.mu.Unlock()

	if changed {
		s.feed.publish(Change{Kind: ChangeNodePatched, NodeIDs: []string{id}})
	}
}

// RemoveTicker implements Store.
func (s *StoreV1) RemoveTicker(id string, symbol string) {
	s.mu.Lock()

	i := s.nodeIndex(id)
	if i < 0 {
		s.mu.Unlock()

		return
	}

	data := s.nodes[i].Data.Clone()
	changed := data.RemoveStock(symbol)

	if changed {
		s.nodes[i].Data = data
	}

	s.mu.Unlock()

	if changed {
		s.feed.publish(Change{Kind: ChangeNodePatched, NodeIDs: []string{id}})
	}
}

// SetNodeSelected implements Store.
func (s *StoreV1) SetNodeSelected(id string, selected bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.nodeIndex(id); i >= 0 {
		s.nodes[i].Selected = selected
	}
}

// SetEdgeSelected implements Store.
func (s *StoreV1) SetEdgeSelected(id string, selected bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.edges {
		if s.edges[i].ID == id {
			s.edges[i].Selected = selected

			return
		}
	}
}

// Connect implements Store. The acyclicity check always runs against the
// edge set as it is at connection time.
func (s *StoreV1) Connect(source, target string) (types.Edge, bool) {
	s.mu.Lock()

	if !CanConnect(source, target, s.edges) {
		s.mu.Unlock()
		s.logger.Debug("connection rejected",
			zap.String("source", source),
			zap.String("target", target))

		return types.Edge{}, false
	}

	edge := schema.NewEdge(source, target)
	s.edges = append(s.edges, edge)
	s.mu.Unlock()

	s.feed.publish(Change{Kind: ChangeEdgeAdded, EdgeIDs: []string{edge.ID}})

	return edge, true
}

// DeleteSelected implements Store.
func (s *StoreV1) DeleteSelected() {
	s.mu.Lock()

	deletedNodes := make(map[string]bool)
	keptNodes := s.nodes[:0:0]

	for _, n := range s.nodes {
		if n.Selected {
			deletedNodes[n.ID] = true
		} else {
			keptNodes = append(keptNodes, n)
		}
	}

	var deletedEdgeIDs []string

	keptEdges := s.edges[:0:0]

	for _, e := range s.edges {
		dangling := s.cascade && (deletedNodes[e.Source] || deletedNodes[e.Target])
		if e.Selected || dangling {
			deletedEdgeIDs = append(deletedEdgeIDs, e.ID)
		} else {
			keptEdges = append(keptEdges, e)
		}
	}

	if keptNodes == nil {
		keptNodes = []types.Node{}
	}

	if keptEdges == nil {
		keptEdges = []types.Edge{}
	}

	s.nodes = keptNodes
	s.edges = keptEdges
	s.mu.Unlock()

	deletedNodeIDs := make([]string, 0, len(deletedNodes))
	for id := range deletedNodes {
		deletedNodeIDs = append(deletedNodeIDs, id)
	}

	if len(deletedNodeIDs) > 0 || len(deletedEdgeIDs) > 0 {
		s.feed.publish(Change{Kind: ChangeDeleted, NodeIDs: deletedNodeIDs, EdgeIDs: deletedEdgeIDs})
	}
}

// Reset implements Store.
func (s *StoreV1) Reset() {
	s.mu.Lock()
	s.nodes = []types.Node{}
	s.edges = []types.Edge{}
	s.mu.Unlock()

	s.feed.publish(Change{Kind: ChangeReset})
}

// Load implements Store.
func (s *StoreV1) Load(board types.Board) {
	s.mu.Lock()

	s.nodes = make([]types.Node, len(board.Nodes))
	for i, n := range board.Nodes {
		n.Data = n.Data.Clone()
		s.nodes[i] = n
	}

	s.edges = make([]types.Edge, len(board.Edges))
	copy(s.edges, board.Edges)

	s.mu.Unlock()

	s.feed.publish(Change{Kind: ChangeLoaded})
}

// Snapshot implements Store.
func (s *StoreV1) Snapshot() types.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()

	board := types.NewBoard()

	board.Nodes = make([]types.Node, len(s.nodes))
	for i, n := range s.nodes {
		n.Data = n.Data.Clone()
		board.Nodes[i] = n
	}

	board.Edges = make([]types.Edge, len(s.edges))
	copy(board.Edges, s.edges)

	return board
}

// Subscribe implements Store.
func (s *StoreV1) Subscribe() *Subscription {
	return s.feed.subscribe()
}

// nodeIndex returns the index of a node by id, or -1. Callers must hold the
// lock.
func (s *StoreV1) nodeIndex(id string) int {
	for i := range s.nodes {
		if s.nodes[i].ID == id {
			return i
		}
	}

	return -1
}
