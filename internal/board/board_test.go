package board

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/argo-board/internal/types"
)

type BoardTestSuite struct {
	suite.Suite
	store Store
}

func (suite *BoardTestSuite) SetupTest() {
	suite.store = NewStore()
}

func TestBoardSuite(t *testing.T) {
	suite.Run(t, new(BoardTestSuite))
}

func (suite *BoardTestSuite) TestAddNode() {
	node := suite.store.AddNode(types.NodeKindEvent, types.Position{X: 10, Y: 20})

	suite.NotEmpty(node.ID)
	suite.Equal(types.NodeKindEvent, node.Kind)
	suite.Equal(types.Position{X: 10, Y: 20}, node.Position)

	snapshot := suite.store.Snapshot()
	suite.Len(snapshot.Nodes, 1)
	suite.Empty(snapshot.Edges)
}

func (suite *BoardTestSuite) TestMoveNode() {
	node := suite.store.AddNode(types.NodeKindLabel, types.Position{})

	suite.store.MoveNode(node.ID, types.Position{X: 5, Y: 7})

	moved, ok := suite.store.Snapshot().NodeByID(node.ID)
	suite.True(ok)
	suite.Equal(types.Position{X: 5, Y: 7}, moved.Position)
}

func (suite *BoardTestSuite) TestMoveNodeUnknownIDIsNoOp() {
	suite.store.AddNode(types.NodeKindLabel, types.Position{})

	suite.NotPanics(func() {
		suite.store.MoveNode("node-gone", types.Position{X: 1, Y: 1})
	})

	suite.Len(suite.store.Snapshot().Nodes, 1)
}

func (suite *BoardTestSuite) TestPatchNodeDataMerges() {
	node := suite.store.AddNode(types.NodeKindEvent, types.Position{})
	suite.store.PatchNodeData(node.ID, types.NodeData{
		"left":   "priceOf(AAPL, 0)",
		"stocks": []string{"AAPL"},
	})

	// Patching one field must leave siblings untouched
	suite.store.PatchNodeData(node.ID, types.NodeData{"comparison": "<"})

	patched, ok := suite.store.Snapshot().NodeByID(node.ID)
	suite.Require().True(ok)
	suite.Equal("priceOf(AAPL, 0)", patched.Data.Left())
	suite.Equal(types.ComparisonLess, patched.Data.Comparison())
	suite.Equal([]string{"AAPL"}, patched.Data.Stocks())
}

func (suite *BoardTestSuite) TestPatchNodeDataUnknownIDIsNoOp() {
	suite.NotPanics(func() {
		suite.store.PatchNodeData("node-gone", types.NodeData{"left": "x"})
	})
}

func (suite *BoardTestSuite) TestSnapshotIsolation() {
	node := suite.store.AddNode(types.NodeKindBuy, types.Position{})

	snapshot := suite.store.Snapshot()
	snapshot.Nodes[0].Data["left"] = "tampered"

	fresh, ok := suite.store.Snapshot().NodeByID(node.ID)
	suite.Require().True(ok)
	suite.Equal("", fresh.Data.Left())
}

func (suite *BoardTestSuite) TestAddTicker() {
	node := suite.store.AddNode(types.NodeKindBuy, types.Position{})

	suite.store.AddTicker(node.ID, "nvda")
	suite.store.AddTicker(node.ID, "NVDA") // duplicate, no-op

	updated, _ := suite.store.Snapshot().NodeByID(node.ID)
	suite.Equal([]string{"DEFAULT", "NVDA"}, updated.Data.Stocks())
}

func (suite *BoardTestSuite) TestRemoveTicker() {
	node := suite.store.AddNode(types.NodeKindSell, types.Position{})

	suite.store.RemoveTicker(node.ID, "default")

	updated, _ := suite.store.Snapshot().NodeByID(node.ID)
	suite.Empty(updated.Data.Stocks())
}

func (suite *BoardTestSuite) TestConnect() {
	a := suite.store.AddNode(types.NodeKindEvent, types.Position{})
	b := suite.store.AddNode(types.NodeKindBuy, types.Position{})

	edge, ok := suite.store.Connect(a.ID, b.ID)
	suite.True(ok)
	suite.Equal(a.ID, edge.Source)
	suite.Equal(b.ID, edge.Target)
	suite.True(edge.Style.IsSome())

	suite.Len(suite.store.Snapshot().Edges, 1)
}

func (suite *BoardTestSuite) TestConnectRejectsBackEdge() {
	a := suite.store.AddNode(types.NodeKindEvent, types.Position{})
	b := suite.store.AddNode(types.NodeKindBuy, types.Position{})

	_, ok := suite.store.Connect(a.ID, b.ID)
	suite.Require().True(ok)

	// Reversing the edge would close a cycle; edge set must be unchanged
	_, ok = suite.store.Connect(b.ID, a.ID)
	suite.False(ok)
	suite.Len(suite.store.Snapshot().Edges, 1)
}

func (suite *BoardTestSuite) TestConnectChainScenario() {
	a := suite.store.AddNode(types.NodeKindEvent, types.Position{})
	b := suite.store.AddNode(types.NodeKindIf, types.Position{})
	c := suite.store.AddNode(types.NodeKindBuy, types.Position{})

	_, ok := suite.store.Connect(a.ID, b.ID)
	suite.Require().True(ok)
	_, ok = suite.store.Connect(b.ID, c.ID)
	suite.Require().True(ok)

	// Ancestor two hops away
	_, ok = suite.store.Connect(c.ID, a.ID)
	suite.False(ok)
	suite.Len(suite.store.Snapshot().Edges, 2)

	// Shortcut in the same direction is fine
	_, ok = suite.store.Connect(a.ID, c.ID)
	suite.True(ok)
	suite.Len(suite.store.Snapshot().Edges, 3)
}

func (suite *BoardTestSuite) TestConnectSequencesNeverProduceCycle() {
	var ids []string
	for range 6 {
		node := suite.store.AddNode(types.NodeKindIf, types.Position{})
		ids = append(ids, node.ID)
	}

	// Attempt every ordered pair, twice, in an interleaved order. Whatever
	// subset gets accepted must stay acyclic throughout.
	for range 2 {
		for i := range ids {
			for j := range ids {
				suite.store.Connect(ids[i], ids[j])
				suite.store.Connect(ids[j], ids[i])

				snapshot := suite.store.Snapshot()
				suite.False(HasCycle(snapshot.Nodes, snapshot.Edges))
			}
		}
	}
}

func (suite *BoardTestSuite) TestDeleteSelectedCascadesDanglingEdges() {
	a := suite.store.AddNode(types.NodeKindEvent, types.Position{})
	b := suite.store.AddNode(types.NodeKindBuy, types.Position{})
	c := suite.store.AddNode(types.NodeKindSell, types.Position{})

	suite.store.Connect(a.ID, b.ID)
	suite.store.Connect(a.ID, c.ID)

	suite.store.SetNodeSelected(b.ID, true)
	suite.store.DeleteSelected()

	snapshot := suite.store.Snapshot()
	suite.Len(snapshot.Nodes, 2)
	suite.False(snapshot.HasNode(b.ID))

	// The a->b edge dangled and was cascaded away; a->c survives
	suite.Require().Len(snapshot.Edges, 1)
	suite.Equal(c.ID, snapshot.Edges[0].Target)
}

func (suite *BoardTestSuite) TestDeleteSelectedWithoutCascade() {
	store := NewStore(WithoutCascadeDelete())

	a := store.AddNode(types.NodeKindEvent, types.Position{})
	b := store.AddNode(types.NodeKindBuy, types.Position{})
	store.Connect(a.ID, b.ID)

	store.SetNodeSelected(b.ID, true)
	store.DeleteSelected()

	snapshot := store.Snapshot()
	suite.Len(snapshot.Nodes, 1)
	// The dangling edge is intentionally left behind
	suite.Len(snapshot.Edges, 1)
}

func (suite *BoardTestSuite) TestDeleteSelectedEdgesOnly() {
	a := suite.store.AddNode(types.NodeKindEvent, types.Position{})
	b := suite.store.AddNode(types.NodeKindBuy, types.Position{})
	edge, _ := suite.store.Connect(a.ID, b.ID)

	suite.store.SetEdgeSelected(edge.ID, true)
	suite.store.DeleteSelected()

	snapshot := suite.store.Snapshot()
	suite.Len(snapshot.Nodes, 2)
	suite.Empty(snapshot.Edges)
}

func (suite *BoardTestSuite) TestReset() {
	a := suite.store.AddNode(types.NodeKindEvent, types.Position{})
	b := suite.store.AddNode(types.NodeKindBuy, types.Position{})
	suite.store.Connect(a.ID, b.ID)

	suite.store.Reset()

	snapshot := suite.store.Snapshot()
	suite.Empty(snapshot.Nodes)
	suite.Empty(snapshot.Edges)
}

func (suite *BoardTestSuite) TestLoad() {
	board := types.NewBoard()
	board.Nodes = []types.Node{
		{ID: "node-1", Kind: types.NodeKindEvent, Data: types.NodeData{"left": "x"}},
		{ID: "node-2", Kind: types.NodeKindBuy, Data: types.NodeData{}},
	}
	board.Edges = []types.Edge{{ID: "edge-1", Source: "node-1", Target: "node-2"}}

	suite.store.Load(board)

	snapshot := suite.store.Snapshot()
	suite.Len(snapshot.Nodes, 2)
	suite.Len(snapshot.Edges, 1)

	// Connecting against loaded edges still enforces acyclicity
	_, ok := suite.store.Connect("node-2", "node-1")
	suite.False(ok)
}

func (suite *BoardTestSuite) TestSubscribeReceivesChanges() {
	sub := suite.store.Subscribe()
	defer sub.Unsubscribe()

	node := suite.store.AddNode(types.NodeKindEvent, types.Position{})

	select {
	case change := <-sub.Changes():
		suite.Equal(ChangeNodeAdded, change.Kind)
		suite.Equal([]string{node.ID}, change.NodeIDs)
	case <-time.After(time.Second):
		suite.Fail("no change delivered")
	}
}

func (suite *BoardTestSuite) TestUnsubscribeClosesChannel() {
	sub := suite.store.Subscribe()
	sub.Unsubscribe()

	_, open := <-sub.Changes()
	suite.False(open)

	// Safe to call twice
	suite.NotPanics(sub.Unsubscribe)

	// Mutations after unsubscribe must not panic
	suite.NotPanics(func() {
		suite.store.AddNode(types.NodeKindLabel, types.Position{})
	})
}

func (suite *BoardTestSuite) TestRejectedConnectPublishesNothing() {
	a := suite.store.AddNode(types.NodeKindEvent, types.Position{})

	sub := suite.store.Subscribe()
	defer sub.Unsubscribe()

	_, ok := suite.store.Connect(a.ID, a.ID)
	suite.False(ok)

	select {
	case change := <-sub.Changes():
		suite.Failf("unexpected change", "%+v", change)
	case <-time.After(50 * time.Millisecond):
	}
}
