package config

import (
	"errors"

	"github.com/lessonlabs/slidekit/pkg/generator"
)

type lessonConfig struct {
	Completer   string `yaml:"completer"`
	Synthesizer string `yaml:"synthesizer"`

	Renderers map[string]string `yaml:"renderers"`

	Style string `yaml:"style"`
}

func (cfg *Config) registerLesson(file *configFile) error {
	cfg.lesson = file.Lesson

	if cfg.lesson.Completer == "" {
		return errors.New("lesson: completer is required")
	}

	if _, err := cfg.Completer(cfg.lesson.Completer); err != nil {
		return err
	}

	if cfg.lesson.Synthesizer != "" {
		if _, err := cfg.Synthesizer(cfg.lesson.Synthesizer); err != nil {
			return err
		}
	}

	for _, id := range cfg.lesson.Renderers {
		if _, err := cfg.Renderer(id); err != nil {
			return err
		}
	}

	return nil
}

// Generator assembles the lesson pipeline from the configured models.
func (cfg *Config) Generator() (*generator.Generator, error) {
	completer, err := cfg.Completer(cfg.lesson.Completer)

	if err != nil {
		return nil, err
	}

	var options []generator.Option

	if cfg.lesson.Style != "" {
		options = append(options, generator.WithStyle(cfg.lesson.Style))
	}

	for quality, id := range cfg.lesson.Renderers {
		renderer, err := cfg.Renderer(id)

		if err != nil {
			return nil, err
		}

		options = append(options, generator.WithRenderer(generator.Quality(quality), renderer))
	}

	if cfg.lesson.Synthesizer != "" {
		s, err := cfg.Synthesizer(cfg.lesson.Synthesizer)

		if err != nil {
			return nil, err
		}

		return generator.New(completer, s, options...), nil
	}

	return generator.New(completer, nil, options...), nil
}
