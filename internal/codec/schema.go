package codec

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/moznion/go-optional"

	"github.com/rxtech-lab/argo-board/internal/types"
	"github.com/rxtech-lab/argo-board/pkg/errors"
)

// GenerateSchema generates the JSON schema for the persisted board document
// format, for editors and external tools that produce or validate board
// files.
func GenerateSchema() (*jsonschema.Schema, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true,
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			if t == reflect.TypeOf(optional.Option[types.EdgeStyle]{}) {
				return &jsonschema.Schema{
					Ref: "#/$defs/EdgeStyle",
				}
			}
			if t == reflect.TypeOf(types.NodeKind("")) {
				return &jsonschema.Schema{
					Type: "string",
					Enum: types.AllNodeKinds,
				}
			}
			if strings.Contains(t.String(), "types.NodeData") {
				return &jsonschema.Schema{
					Type: "object",
				}
			}
			return nil
		},
	}

	schema := reflector.Reflect(&types.Board{})

	schema.Title = "strategy-board"
	schema.Description = "Persisted strategy board document: nodes and directed edges"
	schema.Version = "http://json-schema.org/draft-07/schema#"

	return schema, nil
}

// SchemaJSON returns the board document schema as a JSON string.
func SchemaJSON() (string, error) {
	schema, err := GenerateSchema()
	if err != nil {
		return "", err
	}

	blob, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeSchemaGeneration, "failed to marshal board schema", err)
	}

	return string(blob), nil
}
