// Package languages exposes the catalog of selectable languages.
package languages

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed languages.yaml
var catalogYAML []byte

type Language struct {
	Code       string `yaml:"code" json:"code"`
	Name       string `yaml:"name" json:"name"`
	SourceOnly bool   `yaml:"source_only,omitempty" json:"source_only,omitempty"`
}

var loadCatalog = sync.OnceValues(func() ([]Language, error) {
	return parse(catalogYAML)
})

func parse(data []byte) ([]Language, error) {
	var langs []Language
	if err := yaml.Unmarshal(data, &langs); err != nil {
		return nil, fmt.Errorf("parse language catalog: %w", err)
	}
	seen := make(map[string]bool, len(langs))
	for _, l := range langs {
		if l.Code == "" || l.Name == "" {
			return nil, fmt.Errorf("language catalog: entry %+v is incomplete", l)
		}
		if seen[l.Code] {
			return nil, fmt.Errorf("language catalog: duplicate code %q", l.Code)
		}
		seen[l.Code] = true
	}
	return langs, nil
}

// Sources lists the languages accepted as a translation source, "auto" first.
func Sources() ([]Language, error) {
	return loadCatalog()
}

// Targets lists the languages text can be translated into.
func Targets() ([]Language, error) {
	all, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	targets := make([]Language, 0, len(all))
	for _, l := range all {
		if !l.SourceOnly {
			targets = append(targets, l)
		}
	}
	return targets, nil
}
