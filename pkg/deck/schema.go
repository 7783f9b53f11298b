package deck

import (
	"encoding/json"

	"github.com/lessonlabs/slidekit/pkg/provider"

	"github.com/google/jsonschema-go/jsonschema"
)

// Schema returns the response schema handed to the completer. The
// backend is asked for strict JSON matching this shape, so Parse can
// fail hard on anything that does not.
func Schema() *provider.Schema {
	kinds := make([]any, 0, len(Kinds))

	for _, k := range Kinds {
		kinds = append(kinds, string(k))
	}

	slide := &jsonschema.Schema{
		Type: "object",

		Properties: map[string]*jsonschema.Schema{
			"kind": {
				Type: "string",
				Enum: kinds,
			},
			"title": {
				Type: "string",
			},
			"content": {
				Type:        "string",
				Description: "Slide body text. Exactly three sentences, no bullet points.",
			},
			"narrationScript": {
				Type:        "string",
				Description: "Spoken narration for the slide, 50 to 100 words, no symbols or markup.",
			},
			"narrationDurationEstimate": {
				Type:        "number",
				Description: "Estimated narration length in seconds.",
			},
			"visualPrompt": {
				Type:        "string",
				Description: "Image prompt. Only for deep-dive slides that need a visual.",
			},
			"vocabulary": {
				Type: "array",
				Items: &jsonschema.Schema{
					Type: "object",
					Properties: map[string]*jsonschema.Schema{
						"term":       {Type: "string"},
						"definition": {Type: "string"},
					},
					Required: []string{"term", "definition"},
				},
			},
			"quiz": {
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"question": {Type: "string"},
					"options": {
						Type:  "array",
						Items: &jsonschema.Schema{Type: "string"},
					},
					"correctIndex": {Type: "integer"},
				},
				Required: []string{"question", "options", "correctIndex"},
			},
		},

		Required: []string{"kind", "title", "content", "narrationScript", "narrationDurationEstimate"},
	}

	root := &jsonschema.Schema{
		Type: "object",

		Properties: map[string]*jsonschema.Schema{
			"topic": {
				Type: "string",
			},
			"slides": {
				Type:  "array",
				Items: slide,
			},
		},

		Required: []string{"topic", "slides"},
	}

	return &provider.Schema{
		Name:        "lesson_deck",
		Description: "A structured lesson deck of slides",

		Schema: toMap(root),
	}
}

func toMap(schema *jsonschema.Schema) map[string]any {
	data, err := json.Marshal(schema)

	if err != nil {
		panic(err)
	}

	var result map[string]any

	if err := json.Unmarshal(data, &result); err != nil {
		panic(err)
	}

	return result
}
