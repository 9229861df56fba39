package jsonschema

import (
	"reflect"
	"strings"
	"time"
)

//nolint:gochecknoglobals // reflect.Type lookups are immutable.
var (
	timeType    = reflect.TypeFor[time.Time]()
	schemerType = reflect.TypeFor[Schemer]()
	namerType   = reflect.TypeFor[Namer]()
	extType     = reflect.TypeFor[Extender]()
)

// Reflector derives schemas from Go types and collects the named
// definitions they reference. A Reflector is not safe for concurrent use.
type Reflector struct {
	definitions map[string]*Schema
	order       []string
}

// NewReflector returns an empty Reflector.
func NewReflector() *Reflector {
	return &Reflector{definitions: make(map[string]*Schema)}
}

// Definitions returns the definitions collected so far, keyed by name.
func (r *Reflector) Definitions() map[string]*Schema {
	return r.definitions
}

// Define registers a named definition built by build, unless one with that
// name already exists, and returns a reference to it.
func (r *Reflector) Define(name string, build func() *Schema) *Schema {
	if _, ok := r.definitions[name]; !ok {
		// placeholder first so recursive types terminate
		r.definitions[name] = &Schema{}
		r.order = append(r.order, name)
		*r.definitions[name] = *build()
	}
	return RefTo(name)
}

// SetDefinition replaces (or adds) a named definition.
func (r *Reflector) SetDefinition(name string, s *Schema) {
	if _, ok := r.definitions[name]; !ok {
		r.order = append(r.order, name)
	}
	r.definitions[name] = s
}

// Reflect returns the schema for the dynamic type of v.
func (r *Reflector) Reflect(v any) *Schema {
	return r.ReflectType(reflect.TypeOf(v))
}

// For returns the schema for type T.
func For[T any](r *Reflector) *Schema {
	return r.ReflectType(reflect.TypeFor[T]())
}

// Root builds a standalone document for T: the type's own definition is
// inlined at the top level and every other definition it references is
// attached under "definitions".
func Root[T any](r *Reflector, title string) *Schema {
	t := reflect.TypeFor[T]()
	s := r.ReflectType(t)
	name := DefinitionName(t)

	root := s
	if def, ok := r.definitions[name]; ok && s.Ref != "" {
		copied := *def
		root = &copied
		delete(r.definitions, name)
	}
	root.Version = Draft07
	if title != "" {
		root.Title = title
	} else if root.Title == "" {
		root.Title = name
	}
	if len(r.definitions) > 0 {
		root.Definitions = r.definitions
	}
	return root
}

// DefinitionName returns the name a type is registered under, or "" when
// the type is described inline.
func DefinitionName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() == reflect.Interface {
		return ""
	}
	if t.Implements(namerType) {
		return reflect.Zero(t).Interface().(Namer).JSONSchemaName()
	}
	if reflect.PointerTo(t).Implements(namerType) {
		return reflect.New(t).Interface().(Namer).JSONSchemaName()
	}
	name := t.Name()
	if t.PkgPath() == "" || strings.Contains(name, "[") {
		return ""
	}
	return name
}

// ReflectType returns the schema for t, registering definitions as needed.
func (r *Reflector) ReflectType(t reflect.Type) *Schema {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == timeType {
		return &Schema{Type: TypeList{TypeString}, Format: "date-time"}
	}

	if schemer, ok := schemerFor(t); ok {
		if name := DefinitionName(t); name != "" {
			return r.Define(name, func() *Schema { return schemer.JSONSchema(r) })
		}
		return schemer.JSONSchema(r)
	}

	if t.Kind() == reflect.Struct {
		if name := DefinitionName(t); name != "" {
			return r.Define(name, func() *Schema { return r.reflectStruct(t) })
		}
		return r.reflectStruct(t)
	}

	return r.reflectKind(t)
}

func schemerFor(t reflect.Type) (Schemer, bool) {
	if t.Kind() == reflect.Interface {
		return nil, false
	}
	if t.Implements(schemerType) {
		return reflect.Zero(t).Interface().(Schemer), true
	}
	if reflect.PointerTo(t).Implements(schemerType) {
		return reflect.New(t).Interface().(Schemer), true
	}
	return nil, false
}

func (r *Reflector) reflectKind(t reflect.Type) *Schema {
	//nolint:exhaustive // remaining kinds have no JSON encoding
	switch t.Kind() {
	case reflect.String:
		return &Schema{Type: TypeList{TypeString}}
	case reflect.Bool:
		return &Schema{Type: TypeList{TypeBoolean}}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return &Schema{Type: TypeList{TypeInteger}}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Schema{Type: TypeList{TypeInteger}, Minimum: Ptr(0.0)}
	case reflect.Float32, reflect.Float64:
		return &Schema{Type: TypeList{TypeNumber}}
	case reflect.Slice, reflect.Array:
		return &Schema{Type: TypeList{TypeArray}, Items: r.ReflectType(t.Elem())}
	case reflect.Map:
		return &Schema{Type: TypeList{TypeObject}, AdditionalProperties: r.ReflectType(t.Elem())}
	default:
		// interfaces and anything else accept every instance
		return &Schema{}
	}
}

func (r *Reflector) reflectStruct(t reflect.Type) *Schema {
	s := &Schema{
		Type:       TypeList{TypeObject},
		Properties: make(map[string]*Schema),
	}
	r.addFields(s, t)

	if t.Implements(extType) {
		reflect.Zero(t).Interface().(Extender).ExtendJSONSchema(r, s)
	} else if reflect.PointerTo(t).Implements(extType) {
		reflect.New(t).Interface().(Extender).ExtendJSONSchema(r, s)
	}
	return s
}

func (r *Reflector) addFields(s *Schema, t reflect.Type) {
	for i := range t.NumField() {
		f := t.Field(i)
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")

		if f.Anonymous && name == "" {
			ft := f.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				r.addFields(s, ft)
				continue
			}
		}
		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}

		prop := r.ReflectType(f.Type)
		schemaOpts := f.Tag.Get("jsonschema")
		nullable := hasOption(schemaOpts, "nullable")
		if nullable {
			prop = Nullable(prop)
		}
		if desc := f.Tag.Get("description"); desc != "" {
			if prop.Ref != "" {
				prop = &Schema{AllOf: []*Schema{prop}}
			}
			prop.Description = desc
		}
		s.Properties[name] = prop

		optional := hasOption(opts, "omitempty") || hasOption(opts, "omitzero") ||
			f.Type.Kind() == reflect.Pointer || nullable || hasOption(schemaOpts, "optional")
		if !optional {
			s.Require(name)
		}
	}
}

func hasOption(opts, want string) bool {
	for opts != "" {
		var o string
		o, opts, _ = strings.Cut(opts, ",")
		if o == want {
			return true
		}
	}
	return false
}
