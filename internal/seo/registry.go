package seo

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed registry.yaml
var registryYAML []byte

// Registry maps SEO plugin families to the meta keys they own. The keys
// are an opaque contract with each plugin; only the shapes differ (key
// pair vs merged settings blob).
type Registry struct {
	Plugins map[string]KeyPair `yaml:"plugins"`
	AIOSEO4 SettingsBlob       `yaml:"aioseo_v4"`
}

type KeyPair struct {
	TitleKey       string `yaml:"title_key"`
	DescriptionKey string `yaml:"description_key"`
}

type SettingsBlob struct {
	SettingsKey      string `yaml:"settings_key"`
	TitleField       string `yaml:"title_field"`
	DescriptionField string `yaml:"description_field"`
}

var (
	registryOnce sync.Once
	registry     *Registry
	registryErr  error
)

func loadRegistry() (*Registry, error) {
	registryOnce.Do(func() {
		var r Registry
		if err := yaml.Unmarshal(registryYAML, &r); err != nil {
			registryErr = fmt.Errorf("parse seo registry: %w", err)
			return
		}
		registry = &r
	})
	return registry, registryErr
}
