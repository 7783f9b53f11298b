package config

import (
	"errors"
)

func (cfg *Config) registerProviders(file *configFile) error {
	for _, p := range file.Providers {
		for id, m := range p.Models {
			context := modelContext{
				ID: m.ID,

				Limiter: createLimiter(m.Limit),
			}

			if context.ID == "" {
				context.ID = id
			}

			if p.Proxy != nil {
				client, err := p.Proxy.proxyClient()

				if err != nil {
					return err
				}

				context.Client = client
			}

			switch m.Type {
			case "completer":
				completer, err := createCompleter(p, context)

				if err != nil {
					return err
				}

				cfg.RegisterCompleter(p.Type, id, completer, context)

			case "renderer":
				renderer, err := createRenderer(p, context)

				if err != nil {
					return err
				}

				cfg.RegisterRenderer(p.Type, id, renderer, context)

			case "synthesizer":
				synthesizer, err := createSynthesizer(p, context)

				if err != nil {
					return err
				}

				cfg.RegisterSynthesizer(p.Type, id, synthesizer, context)

			default:
				return errors.New("invalid model type: " + m.Type)
			}
		}
	}

	return nil
}
