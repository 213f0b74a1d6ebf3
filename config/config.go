package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/adrianliechti/voicegate/pkg/broker"
	"github.com/adrianliechti/voicegate/pkg/catalog"
	"github.com/adrianliechti/voicegate/pkg/provider"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Address string
	Origins []string

	// Timeout caps every backend call; expiry surfaces as an upstream fault.
	Timeout time.Duration

	Broker  *broker.Broker
	Catalog *catalog.Catalog

	models map[string]provider.Model

	synthesizer map[string]provider.Synthesizer
	transcriber map[string]provider.Transcriber
}

// Parse loads the yaml config at path. A missing file yields a config with
// defaults and no registered providers.
func Parse(path string) (*Config, error) {
	file, err := parseFile(path)

	if err != nil {
		return nil, err
	}

	c := &Config{
		Address: ":5100",

		Origins: []string{
			"http://localhost:8080",
			"http://localhost:5173",
		},

		Timeout: 60 * time.Second,
	}

	if file.Address != "" {
		c.Address = file.Address
	}

	if len(file.Origins) > 0 {
		c.Origins = file.Origins
	}

	if file.Timeout != "" {
		timeout, err := time.ParseDuration(file.Timeout)

		if err != nil {
			return nil, errors.New("invalid timeout: " + file.Timeout)
		}

		c.Timeout = timeout
	}

	b, err := broker.New(file.Broker.Dir)

	if err != nil {
		return nil, err
	}

	c.Broker = b

	if err := c.registerCatalog(file); err != nil {
		return nil, err
	}

	if err := c.registerTranscriber(file); err != nil {
		return nil, err
	}

	if err := c.registerSynthesizer(file); err != nil {
		return nil, err
	}

	return c, nil
}

func (cfg *Config) RegisterModel(id string) {
	if cfg.models == nil {
		cfg.models = make(map[string]provider.Model)
	}

	cfg.models[id] = provider.Model{
		ID: id,
	}
}

type configFile struct {
	Address string   `yaml:"address"`
	Origins []string `yaml:"origins"`
	Timeout string   `yaml:"timeout"`

	Broker brokerConfig `yaml:"broker"`

	Transcriber *providerConfig `yaml:"transcriber"`
	Synthesizer *providerConfig `yaml:"synthesizer"`

	Catalog catalogConfig `yaml:"catalog"`
}

type brokerConfig struct {
	Dir string `yaml:"dir"`
}

type providerConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Token string `yaml:"token"`
	Model string `yaml:"model"`
}

func parseFile(path string) (*configFile, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &configFile{}, nil
		}

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
