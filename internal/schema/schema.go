// Package schema defines the per-kind data schema for board nodes: which
// fields each node kind carries and the defaults a freshly created node
// starts with.
package schema

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-board/internal/types"
)

// DefaultTicker is the sentinel ticker carried by fresh buy/sell nodes. It
// means "whatever security triggered the enclosing event".
const DefaultTicker = "DEFAULT"

// DefaultData returns the default data record for a freshly created node of
// the given kind. Unknown kinds yield an empty record.
func DefaultData(kind types.NodeKind) types.NodeData {
	switch kind {
	case types.NodeKindLabel:
		return types.NodeData{
			types.DataKeyLeft: "",
		}
	case types.NodeKindIf:
		return types.NodeData{
			types.DataKeyLeft:       "",
			types.DataKeyRight:      "",
			types.DataKeyComparison: string(types.ComparisonEqual),
		}
	case types.NodeKindEvent:
		return types.NodeData{
			types.DataKeyLeft:       "",
			types.DataKeyRight:      "",
			types.DataKeyComparison: string(types.ComparisonEqual),
			types.DataKeyStocks:     []string{},
		}
	case types.NodeKindBuy, types.NodeKindSell:
		return types.NodeData{
			types.DataKeyLeft:   "",
			types.DataKeyStocks: []string{DefaultTicker},
		}
	default:
		return types.NodeData{}
	}
}

// NewNode creates a node of the given kind at the given position with a
// fresh id and kind-appropriate default data.
func NewNode(kind types.NodeKind, position types.Position) types.Node {
	return types.Node{
		ID:       fmt.Sprintf("node-%s", uuid.New().String()),
		Kind:     kind,
		Position: position,
		Selected: false,
		Data:     DefaultData(kind),
	}
}

// NewEdge creates an edge from source to target with a fresh id and the
// default visual style.
func NewEdge(source, target string) types.Edge {
	return types.Edge{
		ID:       fmt.Sprintf("edge-%s", uuid.New().String()),
		Source:   source,
		Target:   target,
		Style:    optional.Some(types.DefaultEdgeStyle()),
		Selected: false,
	}
}
