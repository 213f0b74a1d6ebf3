package config

import (
	"errors"
	"strings"

	"github.com/adrianliechti/voicegate/pkg/otel"
	"github.com/adrianliechti/voicegate/pkg/provider"
	"github.com/adrianliechti/voicegate/pkg/provider/edge"
	"github.com/adrianliechti/voicegate/pkg/provider/openai"
)

func (cfg *Config) RegisterSynthesizer(id string, p provider.Synthesizer) {
	cfg.RegisterModel(id)

	if cfg.synthesizer == nil {
		cfg.synthesizer = make(map[string]provider.Synthesizer)
	}

	if _, ok := cfg.synthesizer[""]; !ok {
		cfg.synthesizer[""] = p
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

func (cfg *Config) registerSynthesizer(file *configFile) error {
	c := file.Synthesizer

	if c == nil {
		return nil
	}

	p, err := createSynthesizer(*c)

	if err != nil {
		return err
	}

	id := c.Model

	if id == "" {
		id = c.Type
	}

	cfg.RegisterSynthesizer(id, otel.NewSynthesizer(c.Type, id, p))

	return nil
}

func createSynthesizer(cfg providerConfig) (provider.Synthesizer, error) {
	switch strings.ToLower(cfg.Type) {
	case "edge":
		return edgeSynthesizer(cfg)

	case "openai", "openai-compatible":
		return openaiSynthesizer(cfg)

	default:
		return nil, errors.New("invalid synthesizer type: " + cfg.Type)
	}
}

func edgeSynthesizer(cfg providerConfig) (provider.Synthesizer, error) {
	var options []edge.Option

	if cfg.URL != "" {
		options = append(options, edge.WithURL(cfg.URL))
	}

	return edge.NewSynthesizer(options...)
}

func openaiSynthesizer(cfg providerConfig) (provider.Synthesizer, error) {
	var options []openai.Option

	if cfg.Token != "" {
		options = append(options, openai.WithToken(cfg.Token))
	}

	return openai.NewSynthesizer(cfg.URL, cfg.Model, options...)
}
