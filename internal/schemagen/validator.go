package schemagen

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"strings"

	jsv "github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/rshade/ileap/pkg/ileap"
)

type constError string

func (e constError) Error() string { return string(e) }

// Validation errors.
var (
	// ErrUnknownSchema indicates a schema name outside the published set.
	ErrUnknownSchema = constError("unknown schema")

	// ErrSchemaViolation indicates a document the schema rejects.
	ErrSchemaViolation = constError("document violates schema")
)

// Validator checks JSON documents against the compiled schema set.
type Validator struct {
	schemas map[string]*jsv.Schema
}

// NewValidator compiles every document of the published set. Each schema
// is registered under its published URL.
func NewValidator() (*Validator, error) {
	c := jsv.NewCompiler()
	c.DefaultDraft(jsv.Draft7)

	docs := Documents()
	for _, doc := range docs {
		raw, err := Encode(doc.Schema)
		if err != nil {
			return nil, err
		}
		parsed, err := jsv.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", doc.Name, err)
		}
		if err := c.AddResource(ileap.DataSchemaURL(doc.Name), parsed); err != nil {
			return nil, fmt.Errorf("adding %s: %w", doc.Name, err)
		}
	}

	v := &Validator{schemas: make(map[string]*jsv.Schema, len(docs))}
	for _, doc := range docs {
		compiled, err := c.Compile(ileap.DataSchemaURL(doc.Name))
		if err != nil {
			return nil, fmt.Errorf("compiling %s: %w", doc.Name, err)
		}
		v.schemas[doc.Name] = compiled
	}
	return v, nil
}

// Names lists the schemas the validator knows, sorted.
func (v *Validator) Names() []string {
	names := make([]string, 0, len(v.schemas))
	for name := range v.schemas {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Validate checks data against the named schema. The name may carry the
// ".json" extension.
func (v *Validator) Validate(name string, data []byte) error {
	name = strings.TrimSuffix(name, fileExt)
	schema, ok := v.schemas[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSchema, name)
	}
	doc, err := jsv.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		var ve *jsv.ValidationError
		if errors.As(err, &ve) {
			return fmt.Errorf("%w %s: %w", ErrSchemaViolation, name, ve)
		}
		return err
	}
	return nil
}
