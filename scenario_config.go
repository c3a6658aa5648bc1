package xfin

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// scenarioFile is the on-disk shape of a scenario catalog override.
type scenarioFile struct {
	Scenarios yaml.Node `yaml:"scenarios"`
}

// LoadCatalog reads a YAML scenario catalog. The file lists scenarios
// under a top-level "scenarios" mapping; mapping order becomes catalog
// order. Every scenario needs a name and at least one factor, and factors
// must lie in [-1, 1].
func LoadCatalog(r io.Reader) (*Catalog, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading scenario catalog: %w", err)
	}

	var file scenarioFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parsing scenario catalog: %w", err)
	}
	if file.Scenarios.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("scenario catalog: missing scenarios mapping")
	}

	var order []string
	scenarios := make(map[string]Scenario)
	// Mapping nodes alternate key, value.
	for i := 0; i+1 < len(file.Scenarios.Content); i += 2 {
		key := file.Scenarios.Content[i].Value
		var s Scenario
		if err := file.Scenarios.Content[i+1].Decode(&s); err != nil {
			return nil, fmt.Errorf("scenario %q: %w", key, err)
		}
		if err := validateScenario(key, s); err != nil {
			return nil, err
		}
		order = append(order, key)
		scenarios[key] = s
	}
	if len(order) == 0 {
		return nil, fmt.Errorf("scenario catalog: no scenarios defined")
	}
	return NewCatalog(order, scenarios), nil
}

// LoadCatalogFile reads a YAML scenario catalog from path.
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scenario catalog: %w", err)
	}
	defer f.Close()
	return LoadCatalog(f)
}

func validateScenario(key string, s Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("scenario %q: name is required", key)
	}
	if len(s.Factors) == 0 {
		return fmt.Errorf("scenario %q: at least one factor is required", key)
	}
	for cat, f := range s.Factors {
		if f < -1 || f > 1 {
			return fmt.Errorf("scenario %q: factor %s=%v out of range [-1, 1]", key, cat, f)
		}
	}
	return nil
}
