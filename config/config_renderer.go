package config

import (
	"errors"
	"strings"

	"github.com/lessonlabs/slidekit/pkg/limiter"
	"github.com/lessonlabs/slidekit/pkg/otel"
	"github.com/lessonlabs/slidekit/pkg/provider"
	"github.com/lessonlabs/slidekit/pkg/provider/google"
	"github.com/lessonlabs/slidekit/pkg/provider/openai"
	"github.com/lessonlabs/slidekit/pkg/provider/replicate"
	"github.com/lessonlabs/slidekit/pkg/provider/replicate/flux"
)

func (cfg *Config) RegisterRenderer(name, id string, p provider.Renderer, model modelContext) {
	cfg.RegisterModel(id)

	if cfg.renderer == nil {
		cfg.renderer = make(map[string]provider.Renderer)
	}

	p = otel.NewRenderer(name, id, p)

	if model.Limiter != nil {
		p = limiter.NewRenderer(model.Limiter, p)
	}

	cfg.renderer[id] = p
}

func (cfg *Config) Renderer(id string) (provider.Renderer, error) {
	if cfg.renderer != nil {
		if r, ok := cfg.renderer[id]; ok {
			return r, nil
		}
	}

	return nil, errors.New("renderer not found: " + id)
}

func createRenderer(cfg providerConfig, model modelContext) (provider.Renderer, error) {
	switch strings.ToLower(cfg.Type) {
	case "google", "gemini":
		return googleRenderer(cfg, model)

	case "openai", "openai-compatible":
		return openaiRenderer(cfg, model)

	case "replicate":
		return replicateRenderer(cfg, model)

	default:
		return nil, errors.New("invalid renderer type: " + cfg.Type)
	}
}

func googleRenderer(cfg providerConfig, model modelContext) (provider.Renderer, error) {
	var options []google.Option

	if cfg.Token != "" {
		options = append(options, google.WithToken(cfg.Token))
	}

	if model.Client != nil {
		options = append(options, google.WithClient(model.Client))
	}

	return google.NewRenderer(model.ID, options...)
}

func openaiRenderer(cfg providerConfig, model modelContext) (provider.Renderer, error) {
	var options []openai.Option

	if cfg.Token != "" {
		options = append(options, openai.WithToken(cfg.Token))
	}

	if model.Client != nil {
		options = append(options, openai.WithClient(model.Client))
	}

	return openai.NewRenderer(cfg.URL, model.ID, options...)
}

func replicateRenderer(cfg providerConfig, model modelContext) (provider.Renderer, error) {
	var options []replicate.Option

	if cfg.Token != "" {
		options = append(options, replicate.WithToken(cfg.Token))
	}

	if model.Client != nil {
		options = append(options, replicate.WithClient(model.Client))
	}

	return flux.NewRenderer(model.ID, options...)
}
