package ai

import (
	"github.com/sashabaranov/go-openai/jsonschema"
	"google.golang.org/genai"
)

// schemaName labels the structured output for providers that require one
const schemaName = "monster"

var requiredFields = []string{"name", "title", "description", "elements", "weaknesses"}

type field struct {
	name        string
	kind        string // string, integer, number, object, array
	description string
	items       *field
	properties  []field
}

// monsterFields is the single source for both provider schemas
var monsterFields = []field{
	{name: "name", kind: "string", description: "The official Japanese name of the monster"},
	{name: "title", kind: "string", description: "The title like '火竜' or 'King of the Skies' in Japanese"},
	{name: "species", kind: "string", description: "Species classification (e.g., Flying Wyvern)"},
	{name: "description", kind: "string", description: "A rich, atmospheric description of the monster, roughly 100-200 characters."},
	{name: "elements", kind: "array", items: &field{kind: "string"}},
	{name: "ailments", kind: "array", items: &field{kind: "string"}},
	{name: "weaknesses", kind: "array", items: &field{kind: "object", properties: []field{
		{name: "element", kind: "string"},
		{name: "stars", kind: "integer", description: "Effectiveness from 1 (low) to 3 (high)"},
	}}},
	{name: "habitats", kind: "array", items: &field{kind: "string"}},
	{name: "threatLevel", kind: "integer", description: "Threat level from 1 to 10"},
	{name: "size", kind: "object", properties: []field{
		{name: "min", kind: "number", description: "Small crown size in cm"},
		{name: "max", kind: "number", description: "King crown size in cm"},
	}},
	{name: "keyDrops", kind: "array", items: &field{kind: "object", properties: []field{
		{name: "name", kind: "string"},
		{name: "rarity", kind: "integer"},
	}}},
	{name: "tips", kind: "array", items: &field{kind: "string"}, description: "3 strategic hunting tips"},
}

// GeminiSchema returns the monster schema in genai form
func GeminiSchema() *genai.Schema {
	s := geminiObject(monsterFields)
	s.Required = append([]string(nil), requiredFields...)
	return s
}

func geminiObject(fields []field) *genai.Schema {
	props := make(map[string]*genai.Schema, len(fields))
	order := make([]string, 0, len(fields))
	for _, f := range fields {
		props[f.name] = geminiField(f)
		order = append(order, f.name)
	}
	return &genai.Schema{
		Type:             genai.TypeObject,
		Properties:       props,
		PropertyOrdering: order,
	}
}

func geminiField(f field) *genai.Schema {
	var s *genai.Schema
	switch f.kind {
	case "object":
		s = geminiObject(f.properties)
	case "array":
		s = &genai.Schema{Type: genai.TypeArray, Items: geminiField(*f.items)}
	case "integer":
		s = &genai.Schema{Type: genai.TypeInteger}
	case "number":
		s = &genai.Schema{Type: genai.TypeNumber}
	default:
		s = &genai.Schema{Type: genai.TypeString}
	}
	s.Description = f.description
	return s
}

// OpenAISchema returns the monster schema as a JSON Schema definition
func OpenAISchema() *jsonschema.Definition {
	d := openAIObject(monsterFields)
	d.Required = append([]string(nil), requiredFields...)
	return &d
}

func openAIObject(fields []field) jsonschema.Definition {
	props := make(map[string]jsonschema.Definition, len(fields))
	for _, f := range fields {
		props[f.name] = openAIField(f)
	}
	return jsonschema.Definition{Type: jsonschema.Object, Properties: props}
}

func openAIField(f field) jsonschema.Definition {
	var d jsonschema.Definition
	switch f.kind {
	case "object":
		d = openAIObject(f.properties)
	case "array":
		items := openAIField(*f.items)
		d = jsonschema.Definition{Type: jsonschema.Array, Items: &items}
	case "integer":
		d = jsonschema.Definition{Type: jsonschema.Integer}
	case "number":
		d = jsonschema.Definition{Type: jsonschema.Number}
	default:
		d = jsonschema.Definition{Type: jsonschema.String}
	}
	d.Description = f.description
	return d
}
