package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type child struct {
	Name string `json:"name" validate:"required"`
	Home string `json:"home,omitempty" validate:"omitempty,url"`
}

type sample struct {
	ID       int      `json:"_id" validate:"required"`
	Kind     string   `json:"kind" validate:"required,oneof=a b c"`
	Tags     []string `json:"tags,omitempty" description:"free form labels"`
	Children []child  `json:"children,omitempty" validate:"dive"`
	Score    float64  `json:"score"`
	Hidden   string   `json:"-"`
	internal string
}

func TestGenerator_Generate(t *testing.T) {
	s, err := NewGenerator("https://schemas.example.com/").Generate("Sample", []sample{})
	require.NoError(t, err)

	assert.Equal(t, schemaRef, s.Schema)
	assert.Equal(t, "https://schemas.example.com/sample.json", s.ID)
	assert.Equal(t, "array", s.Type)
	require.NotNil(t, s.Items)

	item := s.Items
	assert.Equal(t, "object", item.Type)
	assert.Equal(t, []string{"_id", "kind"}, item.Required)
	assert.NotContains(t, item.Properties, "Hidden")
	assert.NotContains(t, item.Properties, "internal")

	assert.Equal(t, "integer", item.Properties["_id"].Type)
	assert.Equal(t, []string{"a", "b", "c"}, item.Properties["kind"].Enum)
	assert.Equal(t, "number", item.Properties["score"].Type)
	assert.Equal(t, "free form labels", item.Properties["tags"].Description)

	children := item.Properties["children"]
	require.NotNil(t, children.Items)
	assert.Equal(t, []string{"name"}, children.Items.Required)
	assert.Equal(t, "uri", children.Items.Properties["home"].Format)
}

func TestGenerator_GenerateJSON(t *testing.T) {
	b, err := NewGenerator("").GenerateJSON("Child", child{})
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(b, &doc))
	assert.Equal(t, "Child", doc["title"])
	assert.NotContains(t, doc, "$id")
}

func TestGenerator_Unsupported(t *testing.T) {
	_, err := NewGenerator("").Generate("Map", map[string]int{})
	assert.Error(t, err)
}

func TestParseValidateTag(t *testing.T) {
	tests := []struct {
		tag  string
		want validateRules
	}{
		{tag: "", want: validateRules{}},
		{tag: "required", want: validateRules{required: true}},
		{tag: "omitempty,email", want: validateRules{format: "email"}},
		{tag: "required,dive,required", want: validateRules{required: true}},
		{tag: "oneof=x y", want: validateRules{oneOf: []string{"x", "y"}}},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.want, parseValidateTag(tt.tag))
		})
	}
}
