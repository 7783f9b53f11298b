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

func (cfg *Config) RegisterCompleter(name, id string, p provider.Completer, model modelContext) {
	cfg.RegisterModel(id)

	if cfg.completer == nil {
		cfg.completer = make(map[string]provider.Completer)
	}

	p = otel.NewCompleter(name, id, p)

	if model.Limiter != nil {
		p = limiter.NewCompleter(model.Limiter, p)
	}

	cfg.completer[id] = p
}

func (cfg *Config) Completer(id string) (provider.Completer, error) {
	if cfg.completer != nil {
		if c, ok := cfg.completer[id]; ok {
			return c, nil
		}
	}

	return nil, errors.New("completer not found: " + id)
}

func createCompleter(cfg providerConfig, model modelContext) (provider.Completer, error) {
	switch strings.ToLower(cfg.Type) {
	case "google", "gemini":
		return googleCompleter(cfg, model)

	case "openai", "openai-compatible":
		return openaiCompleter(cfg, model)

	default:
		return nil, errors.New("invalid completer type: " + cfg.Type)
	}
}

func googleCompleter(cfg providerConfig, model modelContext) (provider.Completer, error) {
	var options []google.Option

	if cfg.Token != "" {
		options = append(options, google.WithToken(cfg.Token))
	}

	if model.Client != nil {
		options = append(options, google.WithClient(model.Client))
	}

	return google.NewCompleter(model.ID, options...)
}

func openaiCompleter(cfg providerConfig, model modelContext) (provider.Completer, error) {
	var options []openai.Option

	if cfg.Token != "" {
		options = append(options, openai.WithToken(cfg.Token))
	}

	if model.Client != nil {
		options = append(options, openai.WithClient(model.Client))
	}

	return openai.NewCompleter(cfg.URL, model.ID, options...)
}
