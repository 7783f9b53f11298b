package config

import (
	"errors"
	"strings"

	"github.com/lessonlabs/slidekit/pkg/limiter"
	"github.com/lessonlabs/slidekit/pkg/otel"
	"github.com/lessonlabs/slidekit/pkg/provider"
	"github.com/lessonlabs/slidekit/pkg/provider/google"
	"github.com/lessonlabs/slidekit/pkg/provider/openai"
)

func (cfg *Config) RegisterSynthesizer(name, id string, p provider.Synthesizer, model modelContext) {
	cfg.RegisterModel(id)

	if cfg.synthesizer == nil {
		cfg.synthesizer = make(map[string]provider.Synthesizer)
	}

	p = otel.NewSynthesizer(name, id, p)

	if model.Limiter != nil {
		p = limiter.NewSynthesizer(model.Limiter, p)
	}

	cfg.synthesizer[id] = p
}

func (cfg *Config) Synthesizer(id string) (provider.Synthesizer, error) {
	if cfg.synthesizer != nil {
		if s, ok := cfg.synthesizer[id]; ok {
			return s, nil
		}
	}

	return nil, errors.New("synthesizer not found: " + id)
}

func createSynthesizer(cfg providerConfig, model modelContext) (provider.Synthesizer, error) {
	switch strings.ToLower(cfg.Type) {
	case "google", "gemini":
		return googleSynthesizer(cfg, model)

	case "openai", "openai-compatible":
		return openaiSynthesizer(cfg, model)

	default:
		return nil, errors.New("invalid synthesizer type: " + cfg.Type)
	}
}

func googleSynthesizer(cfg providerConfig, model modelContext) (provider.Synthesizer, error) {
	var options []google.Option

	if cfg.Token != "" {
		options = append(options, google.WithToken(cfg.Token))
	}

	if model.Client != nil {
		options = append(options, google.WithClient(model.Client))
	}

	return google.NewSynthesizer(model.ID, options...)
}

func openaiSynthesizer(cfg providerConfig, model modelContext) (provider.Synthesizer, error) {
	var options []openai.Option

	if cfg.Token != "" {
		options = append(options, openai.WithToken(cfg.Token))
	}

	if model.Client != nil {
		options = append(options, openai.WithClient(model.Client))
	}

	return openai.NewSynthesizer(cfg.URL, model.ID, options...)
}
