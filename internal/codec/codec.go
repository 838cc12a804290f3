// Package codec serializes board snapshots to durable JSON documents and
// restores them, tolerating missing, malformed, or partially wrong data.
// Nothing in this package panics past its boundary: every bad input decodes
// to a safe empty board.
package codec

import (
	"bytes"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/rxtech-lab/argo-board/internal/logger"
	"github.com/rxtech-lab/argo-board/internal/types"
	"github.com/rxtech-lab/argo-board/internal/version"
	"github.com/rxtech-lab/argo-board/pkg/errors"
)

// Codec encodes and decodes board documents.
type Codec struct {
	logger *logger.Logger
}

// NewCodec creates a codec. A nil logger falls back to a no-op logger.
func NewCodec(l *logger.Logger) *Codec {
	if l == nil {
		l = logger.NewNopLogger()
	}

	return &Codec{
		logger: l,
	}
}

// Encode serializes the board structurally, with no transformation beyond
// stamping the current format version when the board carries none. The
// output round-trips exactly through Decode.
func (c *Codec) Encode(board types.Board) ([]byte, error) {
	if board.Version == "" {
		board.Version = version.BoardFormatVersion
	}

	if board.Nodes == nil {
		board.Nodes = []types.Node{}
	}

	if board.Edges == nil {
		board.Edges = []types.Edge{}
	}

	blob, err := json.Marshal(board)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncodeFailed, "failed to encode board", err)
	}

	return blob, nil
}

// rawDocument defers node/edge decoding so a document whose nodes or edges
// hold the wrong type degrades to empty collections instead of failing the
// whole load.
type rawDocument struct {
	Version string          `json:"version"`
	Nodes   json.RawMessage `json:"nodes"`
	Edges   json.RawMessage `json:"edges"`
}

// Decode restores a board from a persisted blob. It never fails: missing or
// empty data yields an empty board, malformed JSON yields an empty board
// with a logged warning, nodes/edges of the wrong shape are coerced to empty
// collections, and edges whose endpoints reference no loaded node are
// dropped.
func (c *Codec) Decode(blob []byte) types.Board {
	board := types.NewBoard()

	if len(bytes.TrimSpace(blob)) == 0 {
		return board
	}

	var raw rawDocument
	if err := json.Unmarshal(blob, &raw); err != nil {
		c.logger.Warn("discarding malformed board document", zap.Error(err))

		return board
	}

	if err := version.CheckFormatCompatibility(raw.Version); err != nil {
		c.logger.Warn("discarding incompatible board document",
			zap.String("documentVersion", raw.Version),
			zap.Error(err))

		return board
	}

	board.Version = raw.Version
	board.Nodes = c.decodeNodes(raw.Nodes)
	board.Edges = c.decodeEdges(raw.Edges, board)

	return board
}

func (c *Codec) decodeNodes(raw json.RawMessage) []types.Node {
	if len(raw) == 0 {
		return []types.Node{}
	}

	var nodes []types.Node
	if err := json.Unmarshal(raw, &nodes); err != nil {
		c.logger.Warn("coercing non-sequence nodes to empty", zap.Error(err))

		return []types.Node{}
	}

	if nodes == nil {
		return []types.Node{}
	}

	for i := range nodes {
		if nodes[i].Data == nil {
			nodes[i].Data = types.NodeData{}
		}
	}

	return nodes
}

func (c *Codec) decodeEdges(raw json.RawMessage, board types.Board) []types.Edge {
	if len(raw) == 0 {
		return []types.Edge{}
	}

	var edges []types.Edge
	if err := json.Unmarshal(raw, &edges); err != nil {
		c.logger.Warn("coercing non-sequence edges to empty", zap.Error(err))

		return []types.Edge{}
	}

	kept := make([]types.Edge, 0, len(edges))

	for _, e := range edges {
		if !board.HasNode(e.Source) || !board.HasNode(e.Target) {
			c.logger.Warn("dropping dangling edge",
				zap.String("edge", e.ID),
				zap.String("source", e.Source),
				zap.String("target", e.Target))

			continue
		}

		kept = append(kept, e)
	}

	return kept
}
