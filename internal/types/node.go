package types

// NodeKind identifies the behavior of a node on the strategy board.
type NodeKind string

const (
	// NodeKindLabel is a free-text annotation with no trading semantics.
	NodeKindLabel NodeKind = "label"
	// NodeKindEvent is a market event trigger that starts a strategy path.
	NodeKindEvent NodeKind = "event"
	// NodeKindIf is a pure boolean gate between two expressions.
	NodeKindIf NodeKind = "if"
	// NodeKindBuy places a buy order when reached.
	NodeKindBuy NodeKind = "buy"
	// NodeKindSell places a sell order when reached.
	NodeKindSell NodeKind = "sell"
)

// AllNodeKinds lists every valid node kind. Used for schema generation and
// validation messages.
var AllNodeKinds = []any{
	string(NodeKindLabel),
	string(NodeKindEvent),
	string(NodeKindIf),
	string(NodeKindBuy),
	string(NodeKindSell),
}

// Valid reports whether k is a recognized node kind.
func (k NodeKind) Valid() bool {
	switch k {
	case NodeKindLabel, NodeKindEvent, NodeKindIf, NodeKindBuy, NodeKindSell:
		return true
	default:
		return false
	}
}

// Position is a 2-D coordinate on the board canvas. It is owned by the
// rendering layer but persisted with the node.
type Position struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// Node is a single unit of strategy logic on the board.
// ID is opaque and stable for the node's lifetime. Kind is immutable after
// creation; Data is mutated only through whole-record replacement with a
// merged copy (see NodeData.Merge).
type Node struct {
	ID       string   `yaml:"id" json:"id" validate:"required"`
	Kind     NodeKind `yaml:"type" json:"type" validate:"required,oneof=label event if buy sell"`
	Position Position `yaml:"position" json:"position"`
	Selected bool     `yaml:"selected,omitempty" json:"selected,omitempty"`
	Data     NodeData `yaml:"data" json:"data"`
}
