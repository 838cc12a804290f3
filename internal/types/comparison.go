package types

// Comparison is the operator joining the left and right expressions of an
// event or if node. The literal is stored verbatim in the node data.
type Comparison string

const (
	ComparisonEqual          Comparison = "="
	ComparisonLess           Comparison = "<"
	ComparisonGreater        Comparison = ">"
	ComparisonLessOrEqual    Comparison = "<="
	ComparisonGreaterOrEqual Comparison = ">="
	ComparisonNotEqual       Comparison = "!="
)

// AllComparisons lists every valid comparison literal. Used for schema
// generation.
var AllComparisons = []any{
	string(ComparisonEqual),
	string(ComparisonLess),
	string(ComparisonGreater),
	string(ComparisonLessOrEqual),
	string(ComparisonGreaterOrEqual),
	string(ComparisonNotEqual),
}

// Valid reports whether c is a recognized comparison literal.
func (c Comparison) Valid() bool {
	switch c {
	case ComparisonEqual, ComparisonLess, ComparisonGreater,
		ComparisonLessOrEqual, ComparisonGreaterOrEqual, ComparisonNotEqual:
		return true
	default:
		return false
	}
}
