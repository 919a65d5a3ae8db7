package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

const schemaRef = "https://json-schema.org/draft/2020-12/schema"

// JSONSchema represents a JSON Schema document
type JSONSchema struct {
	Schema      string                 `json:"$schema,omitempty"`
	ID          string                 `json:"$id,omitempty"`
	Title       string                 `json:"title,omitempty"`
	Description string                 `json:"description,omitempty"`
	Type        string                 `json:"type"`
	Format      string                 `json:"format,omitempty"`
	Required    []string               `json:"required,omitempty"`
	Properties  map[string]*JSONSchema `json:"properties,omitempty"`
	Items       *JSONSchema            `json:"items,omitempty"`
	Enum        []string               `json:"enum,omitempty"`
}

// Generator builds JSON schemas from Go types. Required fields, enums and
// formats are read from the go-playground/validator `validate` tags so the
// schema and the runtime validation never drift apart.
type Generator struct {
	baseID string
}

func NewGenerator(baseID string) *Generator {
	return &Generator{baseID: strings.TrimSuffix(baseID, "/")}
}

// Generate returns the root schema for v. The title and $id come from name.
func (g *Generator) Generate(name string, v any) (*JSONSchema, error) {
	s, err := g.forType(reflect.TypeOf(v))
	if err != nil {
		return nil, err
	}
	s.Schema = schemaRef
	s.Title = name
	if g.baseID != "" {
		s.ID = fmt.Sprintf("%s/%s.json", g.baseID, strings.ToLower(name))
	}
	return s, nil
}

// GenerateJSON is Generate followed by indented JSON encoding.
func (g *Generator) GenerateJSON(name string, v any) ([]byte, error) {
	s, err := g.Generate(name, v)
	if err != nil {
		return nil, err
	}
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return b, nil
}

func (g *Generator) forType(t reflect.Type) (*JSONSchema, error) {
	if t == nil {
		return nil, fmt.Errorf("cannot generate schema for nil")
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Struct:
		return g.forStruct(t)
	case reflect.Slice, reflect.Array:
		items, err := g.forType(t.Elem())
		if err != nil {
			return nil, fmt.Errorf("array items: %w", err)
		}
		return &JSONSchema{Type: "array", Items: items}, nil
	case reflect.String:
		return &JSONSchema{Type: "string"}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &JSONSchema{Type: "integer"}, nil
	case reflect.Float32, reflect.Float64:
		return &JSONSchema{Type: "number"}, nil
	case reflect.Bool:
		return &JSONSchema{Type: "boolean"}, nil
	default:
		return nil, fmt.Errorf("unsupported type: %s", t.Kind())
	}
}

func (g *Generator) forStruct(t reflect.Type) (*JSONSchema, error) {
	s := &JSONSchema{
		Type:       "object",
		Properties: make(map[string]*JSONSchema),
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name := fieldName(field)
		if name == "" {
			continue
		}

		fs, err := g.forType(field.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}
		if desc := field.Tag.Get("description"); desc != "" {
			fs.Description = desc
		}

		rules := parseValidateTag(field.Tag.Get("validate"))
		if rules.required {
			s.Required = append(s.Required, name)
		}
		if len(rules.oneOf) > 0 {
			fs.Enum = rules.oneOf
		}
		if rules.format != "" {
			fs.Format = rules.format
		}

		s.Properties[name] = fs
	}

	return s, nil
}

func fieldName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return field.Name
	}
	return name
}

type validateRules struct {
	required bool
	oneOf    []string
	format   string
}

// parseValidateTag understands the subset of validator tags that have a
// JSON Schema counterpart. Rules after `dive` apply to elements and are skipped.
func parseValidateTag(tag string) validateRules {
	var r validateRules
	for _, part := range strings.Split(tag, ",") {
		part = strings.TrimSpace(part)
		switch {
		case part == "dive":
			return r
		case part == "required":
			r.required = true
		case strings.HasPrefix(part, "oneof="):
			r.oneOf = strings.Fields(strings.TrimPrefix(part, "oneof="))
		case part == "url":
			r.format = "uri"
		case part == "email":
			r.format = "email"
		}
	}
	return r
}
