package types

import (
	"github.com/moznion/go-optional"
)

// EdgeStyle is the visual metadata carried by an edge. It has no meaning to
// the graph model and is passed through to the rendering layer untouched.
type EdgeStyle struct {
	Type        string  `yaml:"type,omitempty" json:"type,omitempty"`
	Stroke      string  `yaml:"stroke,omitempty" json:"stroke,omitempty"`
	StrokeWidth float64 `yaml:"strokeWidth,omitempty" json:"strokeWidth,omitempty"`
	Marker      string  `yaml:"marker,omitempty" json:"marker,omitempty"`
}

// DefaultEdgeStyle returns the style applied to freshly created edges.
func DefaultEdgeStyle() EdgeStyle {
	return EdgeStyle{
		Type:        "smoothstep",
		Stroke:      "#b1b1b7",
		StrokeWidth: 2,
		Marker:      "arrow",
	}
}

// Edge is a directed control-flow link between two nodes.
// Source and Target reference node ids; Source != Target always holds for
// edges admitted by the connection validator.
type Edge struct {
	ID       string                     `yaml:"id" json:"id" validate:"required"`
	Source   string                     `yaml:"source" json:"source" validate:"required"`
	Target   string                     `yaml:"target" json:"target" validate:"required"`
	Style    optional.Option[EdgeStyle] `yaml:"style,omitempty" json:"style,omitempty"`
	Selected bool                       `yaml:"selected,omitempty" json:"selected,omitempty"`
}
