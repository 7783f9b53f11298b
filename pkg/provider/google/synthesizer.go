package google

import (
	"context"

	"github.com/lessonlabs/slidekit/pkg/provider"

	"github.com/google/uuid"
	"google.golang.org/genai"
)

var _ provider.Synthesizer = (*Synthesizer)(nil)

type Synthesizer struct {
	*Config
}

func NewSynthesizer(model string, options ...Option) (*Synthesizer, error) {
	cfg := &Config{
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Synthesizer{
		Config: cfg,
	}, nil
}

func (s *Synthesizer) Synthesize(ctx context.Context, input string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	if options == nil {
		options = new(provider.SynthesizeOptions)
	}

	client, err := s.newClient(ctx)

	if err != nil {
		return nil, err
	}

	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
	}

	if options.Voice != "" {
		config.SpeechConfig = &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{
					VoiceName: options.Voice,
				},
			},
		}
	}

	text := input

	if options.Instructions != "" {
		text = options.Instructions + "\n\n" + input
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{genai.NewPartFromText(text)}, genai.RoleUser),
	}

	resp, err := client.Models.GenerateContent(ctx, s.model, contents, config)

	if err != nil {
		return nil, convertError(err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, errNoContent
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if part.InlineData == nil {
			continue
		}

		// Gemini TTS models return raw 16-bit PCM at 24 kHz.
		return &provider.Synthesis{
			ID:    uuid.NewString(),
			Model: s.model,

			Content:     part.InlineData.Data,
			ContentType: provider.ContentTypePCM,
		}, nil
	}

	return nil, errNoContent
}
