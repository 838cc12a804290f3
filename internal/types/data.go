package types

import "strings"

// Data field keys shared by the node kinds. NodeData is an open record so
// fields written by newer versions of the editor survive a load/save round
// trip on older versions.
const (
	DataKeyLeft       = "left"
	DataKeyRight      = "right"
	DataKeyComparison = "comparison"
	DataKeyStocks     = "stocks"
)

// NodeData is the kind-specific record carried by a node. Unknown keys are
// preserved untouched by every operation.
type NodeData map[string]any

// Clone returns a shallow copy of the record. Values are shared; callers must
// not mutate nested values in place.
func (d NodeData) Clone() NodeData {
	if d == nil {
		return NodeData{}
	}

	out := make(NodeData, len(d))
	for k, v := range d {
		out[k] = v
	}

	return out
}

// Merge overlays patch onto d field by field and returns the merged copy.
// Fields absent from patch keep their previous value, so editing one field
// can never silently drop a sibling field. Neither input is mutated.
func (d NodeData) Merge(patch NodeData) NodeData {
	out := d.Clone()
	for k, v := range patch {
		out[k] = v
	}

	return out
}

// Left returns the left expression string, or "" when unset.
func (d NodeData) Left() string {
	return d.stringField(DataKeyLeft)
}

// Right returns the right expression string, or "" when unset.
func (d NodeData) Right() string {
	return d.stringField(DataKeyRight)
}

// Comparison returns the comparison operator, or "" when unset.
func (d NodeData) Comparison() Comparison {
	return Comparison(d.stringField(DataKeyComparison))
}

// Stocks returns the node's ticker set. The underlying value may be either
// []string (set programmatically) or []any (read back from JSON); both are
// normalized to []string.
func (d NodeData) Stocks() []string {
	if d == nil {
		return nil
	}

	switch v := d[DataKeyStocks].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))

		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}

		return out
	default:
		return nil
	}
}

// HasStock reports whether symbol is already in the ticker set. Matching is
// case-insensitive since tickers are normalized to uppercase.
func (d NodeData) HasStock(symbol string) bool {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	for _, s := range d.Stocks() {
		if strings.ToUpper(s) == symbol {
			return true
		}
	}

	return false
}

// AddStock adds symbol to the ticker set, normalizing it to uppercase.
// Adding a duplicate or a blank symbol is a no-op; the return value reports
// whether the set changed.
func (d NodeData) AddStock(symbol string) bool {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" || d == nil {
		return false
	}

	if d.HasStock(symbol) {
		return false
	}

	d[DataKeyStocks] = append(d.Stocks(), symbol)

	return true
}

// RemoveStock removes symbol from the ticker set. Removing an absent symbol
// is a no-op; the return value reports whether the set changed.
func (d NodeData) RemoveStock(symbol string) bool {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if d == nil {
		return false
	}

	stocks := d.Stocks()
	out := make([]string, 0, len(stocks))

	for _, s := range stocks {
		if strings.ToUpper(s) != symbol {
			out = append(out, s)
		}
	}

	if len(out) == len(stocks) {
		return false
	}

	d[DataKeyStocks] = out

	return true
}

func (d NodeData) stringField(key string) string {
	if d == nil {
		return ""
	}

	if s, ok := d[key].(string); ok {
		return s
	}

	return ""
}
