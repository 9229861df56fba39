package jsonschema

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type code string

func (code) JSONSchema(*Reflector) *Schema { return String(`^[A-Z]{3}$`) }

type renamed struct {
	Value int `json:"value"`
}

func (renamed) JSONSchemaName() string { return "Renamed" }

type extended struct {
	Known string `json:"known"`
}

func (*extended) ExtendJSONSchema(_ *Reflector, s *Schema) {
	s.Properties["flattened"] = &Schema{Type: TypeList{TypeString}}
}

type base struct {
	Shared string `json:"shared"`
}

type sample struct {
	base
	Name      string     `json:"name"`
	Code      code       `json:"code"`
	Optional  *string    `json:"optional,omitempty"`
	Count     uint       `json:"count,omitempty"`
	When      time.Time  `json:"when"`
	Tags      []string   `json:"tags"`
	Nested    renamed    `json:"nested"`
	Ext       extended   `json:"ext"`
	Rules     []string   `json:"rules" jsonschema:"nullable"`
	Hidden    string     `json:"-"`
	Described string     `json:"described,omitempty" description:"free text"`
	Later     *time.Time `json:"later,omitempty"`
}

func TestRoot(t *testing.T) {
	r := NewReflector()
	s := Root[sample](r, "Sample")

	assert.Equal(t, Draft07, s.Version)
	assert.Equal(t, "Sample", s.Title)
	assert.ElementsMatch(t, []string{"shared", "name", "code", "when", "tags", "nested", "ext"}, s.Required)
	assert.NotContains(t, s.Properties, "Hidden")
	assert.NotContains(t, s.Definitions, "sample")

	assert.Equal(t, "#/definitions/code", s.Properties["code"].Ref)
	assert.Equal(t, `^[A-Z]{3}$`, s.Definitions["code"].Pattern)
	assert.Equal(t, "#/definitions/Renamed", s.Properties["nested"].Ref)
	assert.Equal(t, "date-time", s.Properties["when"].Format)
	assert.Equal(t, "date-time", s.Properties["later"].Format)
	assert.Equal(t, 0.0, *s.Properties["count"].Minimum)
	assert.Equal(t, "free text", s.Properties["described"].Description)
	assert.Equal(t, TypeList{TypeArray, TypeNull}, s.Properties["rules"].Type)

	require.Contains(t, s.Definitions, "extended")
	assert.Contains(t, s.Definitions["extended"].Properties, "flattened")
}

func TestSchemaMarshal(t *testing.T) {
	s := &Schema{
		Type: TypeList{TypeObject},
		Properties: map[string]*Schema{
			"never": False(),
			"maybe": Nullable(RefTo("Thing")),
		},
	}
	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "object",
		"properties": {
			"never": false,
			"maybe": {"anyOf": [{"$ref": "#/definitions/Thing"}, {"type": "null"}]}
		}
	}`, string(out))
}

func TestEnum(t *testing.T) {
	type color string
	s := Enum([]color{"red", "green"})
	assert.Equal(t, []any{"red", "green"}, s.Enum)
}

func TestDefine_Idempotent(t *testing.T) {
	r := NewReflector()
	calls := 0
	build := func() *Schema {
		calls++
		return String("")
	}
	r.Define("X", build)
	r.Define("X", build)
	assert.Equal(t, 1, calls)
	assert.Len(t, r.Definitions(), 1)
}
