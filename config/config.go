package config

import (
	"bytes"
	"net/http"
	"os"

	"github.com/lessonlabs/slidekit/pkg/provider"

	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Address string

	models map[string]provider.Model

	completer   map[string]provider.Completer
	renderer    map[string]provider.Renderer
	synthesizer map[string]provider.Synthesizer

	lesson lessonConfig
}

func Parse(path string) (*Config, error) {
	file, err := parseFile(path)

	if err != nil {
		return nil, err
	}

	c := &Config{
		Address: ":8080",
	}

	if file.Address != "" {
		c.Address = file.Address
	}

	if err := c.registerProviders(file); err != nil {
		return nil, err
	}

	if err := c.registerLesson(file); err != nil {
		return nil, err
	}

	return c, nil
}

type configFile struct {
	Address string `yaml:"address"`

	Providers []providerConfig `yaml:"providers"`

	Lesson lessonConfig `yaml:"lesson"`
}

type providerConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Token string `yaml:"token"`

	Proxy *proxyConfig `yaml:"proxy"`

	Models map[string]modelConfig `yaml:"models"`
}

type modelConfig struct {
	ID string `yaml:"id"`

	Type string `yaml:"type"`

	Limit *int `yaml:"limit"`
}

type modelContext struct {
	ID string

	Client *http.Client

	Limiter *rate.Limiter
}

func parseFile(path string) (*configFile, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	data = []byte(os.ExpandEnv(string(data)))

	var config configFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func (cfg *Config) RegisterModel(id string) {
	if cfg.models == nil {
		cfg.models = make(map[string]provider.Model)
	}

	cfg.models[id] = provider.Model{
		ID: id,
	}
}

func (cfg *Config) Models() []provider.Model {
	var result []provider.Model

	for _, m := range cfg.models {
		result = append(result, m)
	}

	return result
}

func createLimiter(limit *int) *rate.Limiter {
	if limit == nil {
		return nil
	}

	return rate.NewLimiter(rate.Limit(*limit), *limit)
}
