package openai

import (
	"context"
	"io"

	"github.com/lessonlabs/slidekit/pkg/provider"

	"github.com/google/uuid"
	"github.com/openai/openai-go/v3"
)

var _ provider.Synthesizer = (*Synthesizer)(nil)

type Synthesizer struct {
	*Config
	speech openai.AudioSpeechService
}

func NewSynthesizer(url, model string, options ...Option) (*Synthesizer, error) {
	cfg := &Config{
		url:   url,
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Synthesizer{
		Config: cfg,
		speech: openai.NewAudioSpeechService(cfg.Options()...),
	}, nil
}

func (s *Synthesizer) Synthesize(ctx context.Context, input string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	if options == nil {
		options = new(provider.SynthesizeOptions)
	}

	voice := options.Voice

	if voice == "" {
		voice = string(openai.AudioSpeechNewParamsVoiceStringAlloy)
	}

	req := openai.AudioSpeechNewParams{
		Model: s.model,
		Input: input,

		Voice: openai.AudioSpeechNewParamsVoiceUnion{OfString: openai.String(voice)},

		// pcm is 16-bit little-endian, 24 kHz, mono - the raw sample
		// format callers wrap into a container themselves.
		ResponseFormat: openai.AudioSpeechNewParamsResponseFormatPCM,
	}

	if options.Instructions != "" {
		req.Instructions = openai.String(options.Instructions)
	}

	result, err := s.speech.New(ctx, req)

	if err != nil {
		return nil, convertError(err)
	}

	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)

	if err != nil {
		return nil, err
	}

	return &provider.Synthesis{
		ID:    uuid.NewString(),
		Model: s.model,

		Content:     data,
		ContentType: provider.ContentTypePCM,
	}, nil
}
