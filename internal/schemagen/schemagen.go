// Package schemagen builds the published JSON Schema set of the data model:
// one schema per iLEAP record type, one ProductFootprint schema per record
// type carried as a data model extension, and the plain PACT footprint
// schema.
package schemagen

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/rshade/ileap/pkg/ileap"
	"github.com/rshade/ileap/pkg/jsonschema"
	"github.com/rshade/ileap/pkg/pact"
)

// DataModelSchema is the name of the plain PACT footprint schema.
const DataModelSchema = "data-model-schema"

const (
	pcfPrefix = "pcf-"
	fileExt   = ".json"
	dirPerm   = 0o755
	filePerm  = 0o644
)

// Type is an iLEAP record type with a published schema.
type Type struct {
	// Name is the definition name, e.g. "TOC".
	Name string
	// File is the schema name without extension, e.g. "toc".
	File string

	payload   func() *jsonschema.Schema
	footprint func() *jsonschema.Schema
}

// Schema returns the standalone schema of the record type.
func (t Type) Schema() *jsonschema.Schema { return t.payload() }

// FootprintSchema returns the schema of a ProductFootprint carrying the
// record type as its extension data.
func (t Type) FootprintSchema() *jsonschema.Schema { return t.footprint() }

func typeOf[T any](file string) Type {
	name := jsonschema.DefinitionName(reflect.TypeFor[T]())
	return Type{
		Name: name,
		File: file,
		payload: func() *jsonschema.Schema {
			return jsonschema.Root[T](jsonschema.NewReflector(), "")
		},
		footprint: func() *jsonschema.Schema {
			s := jsonschema.Root[pact.ProductFootprint[T]](jsonschema.NewReflector(),
				"ProductFootprint_with_"+name+"_Extension")
			s.Description = fmt.Sprintf(
				"Data Type \"ProductFootprint\" of PACT Tech Spec Version 2 with %s as a DataModelExtension", name)
			return s
		},
	}
}

// Types lists the record types in publishing order.
func Types() []Type {
	return []Type{
		typeOf[ileap.ShipmentFootprint]("shipment-footprint"),
		typeOf[ileap.Toc]("toc"),
		typeOf[ileap.Hoc]("hoc"),
		typeOf[ileap.Tad]("tad"),
	}
}

// Document is one schema file of the published set.
type Document struct {
	Name   string
	Schema *jsonschema.Schema
}

// FileName returns the name the document is written under.
func (d Document) FileName() string { return d.Name + fileExt }

// DataModel returns the footprint schema with untyped extension data.
func DataModel() *jsonschema.Schema {
	return jsonschema.Root[pact.ProductFootprint[any]](jsonschema.NewReflector(), "ProductFootprint")
}

// Documents builds the whole schema set: for every type its own schema
// followed by its footprint schema, then the data model schema.
func Documents() []Document {
	types := Types()
	docs := make([]Document, 0, 2*len(types)+1)
	for _, t := range types {
		docs = append(docs,
			Document{Name: t.File, Schema: t.Schema()},
			Document{Name: pcfPrefix + t.File, Schema: t.FootprintSchema()},
		)
	}
	return append(docs, Document{Name: DataModelSchema, Schema: DataModel()})
}

// Encode renders a schema the way it is published: two-space indentation
// and a trailing newline.
func Encode(s *jsonschema.Schema) ([]byte, error) {
	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding schema: %w", err)
	}
	return append(out, '\n'), nil
}

// WriteAll writes every document to dir, creating it when needed, and
// returns the paths written in document order.
func WriteAll(ctx context.Context, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("creating schema directory: %w", err)
	}

	docs := Documents()
	paths := make([]string, len(docs))
	g, gCtx := errgroup.WithContext(ctx)
	for i, doc := range docs {
		paths[i] = filepath.Join(dir, doc.FileName())
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			data, err := Encode(doc.Schema)
			if err != nil {
				return fmt.Errorf("%s: %w", doc.Name, err)
			}
			//nolint:gosec // schemas are public documents
			if err := os.WriteFile(paths[i], data, filePerm); err != nil {
				return fmt.Errorf("writing %s: %w", paths[i], err)
			}
			log.Debug().Str("path", paths[i]).Int("bytes", len(data)).Msg("schema written")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
