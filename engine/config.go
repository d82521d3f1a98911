// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package engine

import (
	"fmt"

	"sigs.k8s.io/yaml"
)

// Config carries the few knobs a fresh Vm needs. A nil *Config passed
// to NewVM means DefaultConfig.
type Config struct {
	// MaxProcDepth caps how many nested "{" scopes may be open at
	// once before Exec refuses to open another. Zero means
	// unlimited.
	MaxProcDepth int `json:"maxProcDepth,omitempty"`

	// DictCapacity is the initial bucket sizing hint for the base
	// dict built by NewVM.
	DictCapacity int `json:"dictCapacity,omitempty"`
}

// DefaultConfig returns the configuration NewVM uses when given nil.
func DefaultConfig() *Config {
	return &Config{DictCapacity: 64}
}

// LoadConfig parses a YAML document into a Config, the way the corpus
// loads a definition.yaml side file via sigs.k8s.io/yaml.
func LoadConfig(doc []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(doc, cfg); err != nil {
		return nil, fmt.Errorf("engine: parsing config: %w", err)
	}
	return cfg, nil
}
