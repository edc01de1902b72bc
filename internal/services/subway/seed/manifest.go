// Package seed applies a YAML network manifest through the subway gRPC API.
//
// Seeding is idempotent by name: stations that already exist are reused and
// lines that already exist are left untouched.
package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manifest declares stations and lines to create.
type Manifest struct {
	Name     string         `yaml:"name"`
	Stations []string       `yaml:"stations"`
	Lines    []ManifestLine `yaml:"lines"`
}

// ManifestLine declares one line and its sections in path order.
type ManifestLine struct {
	Name     string            `yaml:"name"`
	Color    string            `yaml:"color"`
	Sections []ManifestSection `yaml:"sections"`
}

// ManifestSection declares one directed edge by station name.
type ManifestSection struct {
	Up       string `yaml:"up"`
	Down     string `yaml:"down"`
	Distance int64  `yaml:"distance"`
}

// LoadManifest reads and parses a manifest file.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("read manifest %s: %w", path, err)
	}
	manifest, err := ParseManifest(bytes.NewReader(data))
	if err != nil {
		return Manifest{}, fmt.Errorf("manifest %s: %w", path, err)
	}
	return manifest, nil
}

// ParseManifest decodes a manifest, rejecting unknown fields.
func ParseManifest(r io.Reader) (Manifest, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	var manifest Manifest
	if err := decoder.Decode(&manifest); err != nil {
		if errors.Is(err, io.EOF) {
			return Manifest{}, errors.New("manifest is empty")
		}
		return Manifest{}, fmt.Errorf("decode manifest: %w", err)
	}
	return manifest, nil
}

// ValidateManifest checks that every line is a connected chain of sections
// with positive distances that never revisits a station.
func ValidateManifest(manifest Manifest) error {
	lineNames := make(map[string]struct{}, len(manifest.Lines))
	for i, line := range manifest.Lines {
		name := strings.TrimSpace(line.Name)
		if name == "" {
			return fmt.Errorf("lines[%d]: name is required", i)
		}
		if _, dup := lineNames[name]; dup {
			return fmt.Errorf("line %q is declared twice", name)
		}
		lineNames[name] = struct{}{}
		if strings.TrimSpace(line.Color) == "" {
			return fmt.Errorf("line %q: color is required", name)
		}
		if len(line.Sections) == 0 {
			return fmt.Errorf("line %q: at least one section is required", name)
		}
		visited := make(map[string]struct{}, len(line.Sections)+1)
		for j, section := range line.Sections {
			up := strings.TrimSpace(section.Up)
			down := strings.TrimSpace(section.Down)
			if up == "" || down == "" {
				return fmt.Errorf("line %q: sections[%d]: up and down are required", name, j)
			}
			if section.Distance <= 0 {
				return fmt.Errorf("line %q: sections[%d]: distance must be greater than zero", name, j)
			}
			if j > 0 && up != strings.TrimSpace(line.Sections[j-1].Down) {
				return fmt.Errorf("line %q: sections[%d] must start at %q", name, j, line.Sections[j-1].Down)
			}
			if j == 0 {
				visited[up] = struct{}{}
			}
			// A line is a simple path: no station appears twice.
			if _, seen := visited[down]; seen {
				return fmt.Errorf("line %q: sections[%d]: station %q appears twice", name, j, down)
			}
			visited[down] = struct{}{}
		}
	}
	return nil
}

// stationNames returns every station the manifest mentions, declared
// stations first, without duplicates.
func (m Manifest) stationNames() []string {
	seen := make(map[string]struct{})
	var names []string
	add := func(name string) {
		name = strings.TrimSpace(name)
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	for _, name := range m.Stations {
		add(name)
	}
	for _, line := range m.Lines {
		for _, section := range line.Sections {
			add(section.Up)
			add(section.Down)
		}
	}
	return names
}
