package schema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed rules.schema.json
var metaSchema []byte

const metaSchemaURL = "rules.schema.json"

var compileMeta = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(metaSchema))
	if err != nil {
		return nil, err
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(metaSchemaURL, doc); err != nil {
		return nil, err
	}
	return c.Compile(metaSchemaURL)
})

// checkShape validates the whole document against the embedded JSON Schema.
func checkShape(entries []entry) error {
	meta, err := compileMeta()
	if err != nil {
		return fmt.Errorf("compile rules schema: %w", err)
	}

	doc := make(map[string]any, len(entries))
	for _, e := range entries {
		doc[e.key] = e.value
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	if err := meta.Validate(inst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return nil
}
