// internal/defs/loader.go
package defs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/olivia-tucker23/bevy-space-rts/pkg/logger"
)

//go:embed units.json
var builtinUnits []byte

// DefaultCatalogue returns the catalogue shipped with the binary.
func DefaultCatalogue() (*Catalogue, error) {
	c, err := ParseCatalogue(builtinUnits)
	if err != nil {
		return nil, fmt.Errorf("built-in unit definitions: %w", err)
	}
	return c, nil
}

// LoadCatalogue reads unit definitions from a JSON file.
func LoadCatalogue(path string) (*Catalogue, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read unit definitions file: %w", err)
	}
	c, err := ParseCatalogue(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Log.Infof("Loaded %d unit definitions from %s", c.Len(), path)
	return c, nil
}

// ParseCatalogue decodes a JSON array of unit descriptors.
func ParseCatalogue(data []byte) (*Catalogue, error) {
	var unitDefs []UnitDescriptor
	if err := json.Unmarshal(data, &unitDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal unit definitions: %w", err)
	}
	return NewCatalogue(unitDefs)
}
