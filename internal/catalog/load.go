package catalog

import (
	"fmt"
	"os"

	"github.com/baditaflorin/go_text_quality/internal/core/domain"
	"gopkg.in/yaml.v3"
)

type recordsFile struct {
	Records []domain.Record `yaml:"records"`
}

// LoadRecords reads a catalog from a YAML file of the form:
//
//	records:
//	  - name: Marty
//	    species: Zebra
//	    description: ...
func LoadRecords(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseRecords(data)
}

// ParseRecords decodes a YAML record list. Every record needs a name.
func ParseRecords(data []byte) (*Catalog, error) {
	var f recordsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse records: %w", err)
	}
	for i, r := range f.Records {
		if r.Name == "" {
			return nil, fmt.Errorf("record %d: name is required", i)
		}
	}
	return &Catalog{records: f.Records}, nil
}
