package config

import (
	"errors"
	"strings"

	"github.com/adrianliechti/voicegate/pkg/otel"
	"github.com/adrianliechti/voicegate/pkg/provider"
	"github.com/adrianliechti/voicegate/pkg/provider/openai"
	"github.com/adrianliechti/voicegate/pkg/provider/replicate"
	"github.com/adrianliechti/voicegate/pkg/provider/replicate/whisper"
)

func (cfg *Config) RegisterTranscriber(id string, p provider.Transcriber) {
	cfg.RegisterModel(id)

	if cfg.transcriber == nil {
		cfg.transcriber = make(map[string]provider.Transcriber)
	}

	if _, ok := cfg.transcriber[""]; !ok {
		cfg.transcriber[""] = p
	}

	cfg.transcriber[id] = p
}

func (cfg *Config) Transcriber(id string) (provider.Transcriber, error) {
	if cfg.transcriber != nil {
		if t, ok := cfg.transcriber[id]; ok {
			return t, nil
		}
	}

	return nil, errors.New("transcriber not found: " + id)
}

func (cfg *Config) registerTranscriber(file *configFile) error {
	c := file.Transcriber

	if c == nil {
		return nil
	}

	p, err := createTranscriber(*c)

	if err != nil {
		return err
	}

	id := c.Model

	if id == "" {
		id = whisper.DefaultModel
	}

	cfg.RegisterTranscriber(id, otel.NewTranscriber(c.Type, id, p))

	return nil
}

func createTranscriber(cfg providerConfig) (provider.Transcriber, error) {
	switch strings.ToLower(cfg.Type) {
	case "replicate", "whisper":
		return replicateTranscriber(cfg)

	case "openai", "openai-compatible":
		return openaiTranscriber(cfg)

	default:
		return nil, errors.New("invalid transcriber type: " + cfg.Type)
	}
}

func replicateTranscriber(cfg providerConfig) (provider.Transcriber, error) {
	var options []replicate.Option

	if cfg.Token != "" {
		options = append(options, replicate.WithToken(cfg.Token))
	}

	if cfg.URL != "" {
		options = append(options, replicate.WithURL(cfg.URL))
	}

	return whisper.NewTranscriber(cfg.Model, options...)
}

func openaiTranscriber(cfg providerConfig) (provider.Transcriber, error) {
	var options []openai.Option

	if cfg.Token != "" {
		options = append(options, openai.WithToken(cfg.Token))
	}

	return openai.NewTranscriber(cfg.URL, cfg.Model, options...)
}
