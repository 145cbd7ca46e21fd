package schema

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

var ErrInvalidDocument = errors.New("invalid document")

// Schema validates JSON documents against a compiled json schema.
type Schema struct {
	schema *gojsonschema.Schema
}

//go:embed info.json
var infoSchema json.RawMessage
var infoSchemaLoader = gojsonschema.NewBytesLoader(infoSchema)

// NewInfoSchema compiles the schema of the replica info payload.
func NewInfoSchema() (*Schema, error) {
	schema, err := gojsonschema.NewSchema(infoSchemaLoader)
	if err != nil {
		return nil, err
	}

	return &Schema{schema: schema}, nil
}

// Validate validates the raw json document. Validation failures are
// reported as ErrInvalidDocument, listing every violation.
func (s *Schema) Validate(document []byte) error {
	res, err := s.schema.Validate(gojsonschema.NewBytesLoader(document))
	if err != nil {
		return err
	}

	if res.Valid() {
		return nil
	}

	violations := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		violations = append(violations, e.String())
	}

	return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(violations, "; "))
}
