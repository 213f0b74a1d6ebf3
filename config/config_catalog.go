package config

import (
	"github.com/adrianliechti/voicegate/pkg/catalog"
)

type catalogConfig struct {
	Default string `yaml:"default"`

	Languages map[string][]speakerConfig `yaml:"languages"`
}

type speakerConfig struct {
	Name  string `yaml:"name"`
	Voice string `yaml:"voice"`
}

func (cfg *Config) registerCatalog(file *configFile) error {
	if len(file.Catalog.Languages) == 0 {
		cfg.Catalog = catalog.Default()
		return nil
	}

	fallback := file.Catalog.Default

	if fallback == "" {
		fallback = "English"
	}

	languages := make(map[string][]catalog.Speaker, len(file.Catalog.Languages))

	for name, speakers := range file.Catalog.Languages {
		list := make([]catalog.Speaker, 0, len(speakers))

		for _, s := range speakers {
			list = append(list, catalog.Speaker{
				Name:  s.Name,
				Voice: s.Voice,
			})
		}

		languages[name] = list
	}

	c, err := catalog.New(fallback, languages)

	if err != nil {
		return err
	}

	cfg.Catalog = c

	return nil
}
