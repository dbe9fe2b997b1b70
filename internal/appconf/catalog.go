// Package appconf holds configuration loaded at startup, most notably the
// catalog of gas datasets the dashboard offers.
package appconf

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Gas is one selectable dataset. ID is the lowercase name used to build the
// backing file path (data/<id>.csv); Label is what the dropdown shows.
type Gas struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

// Catalog is the ordered list of gases offered by the dashboard.
type Catalog struct {
	Gases []Gas `yaml:"gases"`
}

// DefaultCatalog returns the built-in catalog used when no catalog file is
// configured. CO2 is currently the only gas with a backing dataset.
func DefaultCatalog() Catalog {
	return Catalog{
		Gases: []Gas{
			{ID: "co2", Label: "CO2"},
		},
	}
}

// LoadCatalog reads a YAML catalog file.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("reading catalog %s: %w", path, err)
	}

	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return Catalog{}, fmt.Errorf("parsing catalog %s: %w", path, err)
	}

	for i := range catalog.Gases {
		catalog.Gases[i].ID = strings.ToLower(strings.TrimSpace(catalog.Gases[i].ID))
	}

	return catalog, nil
}

// Contains reports whether the catalog offers a gas with the given ID.
func (c Catalog) Contains(id string) bool {
	for _, gas := range c.Gases {
		if gas.ID == id {
			return true
		}
	}
	return false
}
