package google

import (
	"context"

	"github.com/lessonlabs/slidekit/pkg/provider"

	"github.com/google/uuid"
	"google.golang.org/genai"
)

var _ provider.Completer = (*Completer)(nil)

type Completer struct {
	*Config
}

func NewCompleter(model string, options ...Option) (*Completer, error) {
	cfg := &Config{
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Completer{
		Config: cfg,
	}, nil
}

func (c *Completer) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	if options == nil {
		options = new(provider.CompleteOptions)
	}

	client, err := c.newClient(ctx)

	if err != nil {
		return nil, err
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: convertSystem(messages),
	}

	if options.MaxTokens != nil {
		config.MaxOutputTokens = int32(*options.MaxTokens)
	}

	if options.Temperature != nil {
		config.Temperature = options.Temperature
	}

	if options.Format == provider.CompletionFormatJSON || options.Schema != nil {
		config.ResponseMIMEType = "application/json"

		if options.Schema != nil {
			config.ResponseSchema = convertSchema(options.Schema.Schema)
		}
	}

	contents := convertContents(messages)

	resp, err := client.Models.GenerateContent(ctx, c.model, contents, config)

	if err != nil {
		return nil, convertError(err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, errNoContent
	}

	return &provider.Completion{
		ID:    uuid.NewString(),
		Model: c.model,

		Message: &provider.Message{
			Role:    provider.MessageRoleAssistant,
			Content: toContent(resp.Candidates[0].Content),
		},

		Usage: toUsage(resp.UsageMetadata),
	}, nil
}

func convertSystem(messages []provider.Message) *genai.Content {
	var parts []*genai.Part

	for _, m := range messages {
		if m.Role != provider.MessageRoleSystem {
			continue
		}

		for _, c := range m.Content {
			if c.Text != "" {
				parts = append(parts, genai.NewPartFromText(c.Text))
			}
		}
	}

	if len(parts) == 0 {
		return nil
	}

	return &genai.Content{
		Parts: parts,
	}
}

func convertContents(messages []provider.Message) []*genai.Content {
	var result []*genai.Content

	for _, m := range messages {
		var role genai.Role

		switch m.Role {
		case provider.MessageRoleUser:
			role = genai.RoleUser

		case provider.MessageRoleAssistant:
			role = genai.RoleModel

		default:
			continue
		}

		var parts []*genai.Part

		for _, c := range m.Content {
			if c.Text != "" {
				parts = append(parts, genai.NewPartFromText(c.Text))
			}

			if c.File != nil {
				parts = append(parts, &genai.Part{
					InlineData: &genai.Blob{
						MIMEType: c.File.ContentType,
						Data:     c.File.Content,
					},
				})
			}
		}

		if len(parts) == 0 {
			continue
		}

		result = append(result, genai.NewContentFromParts(parts, role))
	}

	return result
}

func convertSchema(parameters map[string]any) *genai.Schema {
	if len(parameters) == 0 {
		return nil
	}

	schema := &genai.Schema{
		Type: genai.TypeObject,
	}

	if val, ok := parameters["type"].(string); ok {
		switch val {
		case "string":
			schema.Type = genai.TypeString
		case "number":
			schema.Type = genai.TypeNumber
		case "integer":
			schema.Type = genai.TypeInteger
		case "boolean":
			schema.Type = genai.TypeBoolean
		case "array":
			schema.Type = genai.TypeArray
		case "object":
			schema.Type = genai.TypeObject
		}
	}

	if val, ok := parameters["description"].(string); ok {
		schema.Description = val
	}

	if val, ok := parameters["enum"].([]string); ok {
		schema.Enum = val
	}

	if val, ok := parameters["enum"].([]any); ok {
		for _, e := range val {
			if s, ok := e.(string); ok {
				schema.Enum = append(schema.Enum, s)
			}
		}
	}

	if val, ok := parameters["items"].(map[string]any); ok {
		schema.Items = convertSchema(val)
	}

	if val, ok := parameters["properties"].(map[string]any); ok {
		schema.Properties = make(map[string]*genai.Schema)

		for key, value := range val {
			parameters, ok := value.(map[string]any)

			if ok {
				schema.Properties[key] = convertSchema(parameters)
			}
		}
	}

	if val, ok := parameters["required"].([]string); ok {
		schema.Required = val
	}

	if val, ok := parameters["required"].([]any); ok {
		for _, r := range val {
			if s, ok := r.(string); ok {
				schema.Required = append(schema.Required, s)
			}
		}
	}

	return schema
}

func toContent(content *genai.Content) []provider.Content {
	var parts []provider.Content

	for _, p := range content.Parts {
		if p.Text != "" {
			parts = append(parts, provider.TextContent(p.Text))
		}
	}

	return parts
}

func toUsage(metadata *genai.GenerateContentResponseUsageMetadata) *provider.Usage {
	if metadata == nil {
		return nil
	}

	return &provider.Usage{
		InputTokens:  int(metadata.PromptTokenCount),
		OutputTokens: int(metadata.CandidatesTokenCount),
	}
}
