package types

// Board is the complete state of one strategy graph, the unit of
// persistence. Every edge's Source and Target reference a node in Nodes.
type Board struct {
	// Version is the board document format version. Stamped by the codec on
	// encode; documents with a different major version are rejected on load.
	Version string `yaml:"version,omitempty" json:"version,omitempty"`
	Nodes   []Node `yaml:"nodes" json:"nodes"`
	Edges   []Edge `yaml:"edges" json:"edges"`
}

// NewBoard returns an empty board with non-nil collections.
func NewBoard() Board {
	return Board{
		Version: "",
		Nodes:   []Node{},
		Edges:   []Edge{},
	}
}

// NodeByID returns the node with the given id.
func (b Board) NodeByID(id string) (Node, bool) {
	for _, n := range b.Nodes {
		if n.ID == id {
			return n, true
		}
	}

	return Node{}, false
}

// HasNode reports whether a node with the given id exists.
func (b Board) HasNode(id string) bool {
	_, ok := b.NodeByID(id)

	return ok
}

// EdgeByID returns the edge with the given id.
func (b Board) EdgeByID(id string) (Edge, bool) {
	for _, e := range b.Edges {
		if e.ID == id {
			return e, true
		}
	}

	return Edge{}, false
}
