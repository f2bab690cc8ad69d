package schema

import (
	"encoding/json"

	"momentclass/internal/category"
)

// Property describes one field of a schema object.
type Property struct {
	Type        string   `json:"type"`
	Description string   `json:"description,omitempty"`
	Enum        []string `json:"enum,omitempty"`
}

// Object is a minimal JSON Schema object description. It models only
// what the classification prompt needs: a titled object with typed,
// required properties.
type Object struct {
	Title      string              `json:"title"`
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required"`
}

// ClassificationResult describes the JSON object the model is asked to
// return: an explanation plus a classification restricted to the
// category set. The enum is derived from the category package so the
// two can never drift apart.
func ClassificationResult() Object {
	return Object{
		Title: "MomentClassification",
		Type:  "object",
		Properties: map[string]Property{
			"explanation": {
				Type:        "string",
				Description: "An explanation of the classification decision.",
			},
			"classification": {
				Type: "string",
				Enum: category.Strings(),
			},
		},
		Required: []string{"explanation", "classification"},
	}
}

// JSON serializes the schema as indented JSON.
func (o Object) JSON() (string, error) {
	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
