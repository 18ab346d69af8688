// seehuhn.de/go/density - 2D density-map clustering
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package clusterconfig decodes density.Options from a YAML or JSON
// document on top of the package's built-in defaults, the way
// internal/config in the pack's AICrawler decodes its own YAML
// configuration on top of an embedded default.yaml.
package clusterconfig

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/density"
)

//go:embed default.yaml
var defaultYAML []byte

// LoadYAML reads a YAML options document from path and unmarshals it
// onto density.DefaultOptions(), so fields absent from the document
// keep their default values. Unknown fields are ignored.
func LoadYAML(path string) (density.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return density.Options{}, fmt.Errorf("reading options file: %w", err)
	}
	return parseYAML(data)
}

// LoadJSON reads a JSON options document from path, for compatibility
// with the original implementation's --options flag which took an
// inline JSON document.
func LoadJSON(path string) (density.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return density.Options{}, fmt.Errorf("reading options file: %w", err)
	}
	opts := density.DefaultOptions()
	if err := json.Unmarshal(data, &opts); err != nil {
		return density.Options{}, fmt.Errorf("parsing options JSON: %w", err)
	}
	return opts, nil
}

// Default returns the package's built-in default options, decoded from
// the embedded default.yaml (kept in sync with density.DefaultOptions
// so the two can never drift silently).
func Default() (density.Options, error) {
	return parseYAML(defaultYAML)
}

func parseYAML(data []byte) (density.Options, error) {
	opts := density.DefaultOptions()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return density.Options{}, fmt.Errorf("parsing options YAML: %w", err)
	}
	return opts, nil
}
