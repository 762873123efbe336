// © 2026 UIED technology team. All rights reserved.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE.md file.

// Package config holds the annotator's directory-group table, header
// templates and marker list.
//
// Configuration is a txtar archive. The archive can contain the following
// files:
//
//   - groups.yaml: the directory groups (dir, description, extensions),
//     the excluded directory names and the marker search window.
//   - markers.json: a JSON array of substrings that identify an existing
//     header.
//   - exclusions.json: a JSON array of path suffixes to exclude from
//     processing.
//   - template.{ext}: the header template for a specific file extension
//     (e.g. template.css). template.default applies to every extension
//     without its own template.
//
// Defaults matching the UIED project layout are embedded into the binary;
// an archive given to [Load] overrides only the files it contains.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/tools/txtar"
	"gopkg.in/yaml.v3"

	"go.fsuied.com/annotate/syncx"
	"go.fsuied.com/annotate/unwrap"
)

//go:embed default.txtar
var defaultArchive []byte

// Group is a directory group: one annotated project subtree.
type Group struct {
	Dir         string   `yaml:"dir" validate:"required"`
	Description string   `yaml:"description" validate:"required"`
	Extensions  []string `yaml:"extensions" validate:"required,min=1,dive,startswith=."`
}

// Match reports whether a file name ends with one of the group's accepted
// extensions.
func (g Group) Match(name string) bool {
	for _, ext := range g.Extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// Config is the complete, immutable configuration of a run.
// Construct it with [Default] or [Load] and treat it as read-only.
type Config struct {
	// Window bounds the marker search to the first Window bytes of a file.
	Window int `validate:"gt=0"`
	// ExcludeDirs are directory names whose subtrees are never visited.
	ExcludeDirs []string
	// Groups are the directory groups, visited in order.
	Groups []Group `validate:"min=1,dive"`
	// Markers identify an already annotated file.
	Markers []string `validate:"min=1"`
	// Exclusions are path suffixes that are never processed.
	Exclusions []string
	// Templates maps a file extension (".css") to its header template.
	// The ".default" entry is the fallback.
	Templates map[string]string `validate:"min=1"`
}

// Template returns the header template for the given file extension,
// falling back to the default template.
func (c *Config) Template(ext string) string {
	if tmpl, ok := c.Templates[ext]; ok {
		return tmpl
	}
	return c.Templates[".default"]
}

// IsExcluded reports whether a path matches the exclusion list.
func (c *Config) IsExcluded(path string) bool {
	for _, ex := range c.Exclusions {
		if strings.HasSuffix(path, ex) {
			return true
		}
	}
	return false
}

// IsExcludedDir reports whether a directory name belongs to a pruned
// subtree.
func (c *Config) IsExcludedDir(name string) bool {
	return slices.Contains(c.ExcludeDirs, name)
}

var defaults syncx.Lazy[*Config]

// Default returns the embedded configuration. It panics when the embedded
// archive is malformed, which only a bad build can cause.
func Default() *Config {
	return unwrap.Value(defaults.GetErr(func() (*Config, error) {
		cfg := &Config{Templates: make(map[string]string)}
		if err := apply(cfg, txtar.Parse(defaultArchive)); err != nil {
			return nil, err
		}
		return cfg, validate(cfg)
	}))
}

// Load reads a configuration archive from path. Archive members override
// the embedded defaults; absent members keep them.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}
	cfg := clone(Default())
	if err := apply(cfg, txtar.Parse(data)); err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: validate %q: %w", path, err)
	}
	return cfg, nil
}

// fileConfig mirrors the groups.yaml member.
type fileConfig struct {
	Window      int      `yaml:"window"`
	ExcludeDirs []string `yaml:"exclude_dirs"`
	Groups      []Group  `yaml:"groups"`
}

func apply(cfg *Config, ar *txtar.Archive) error {
	for _, f := range ar.Files {
		switch {
		case f.Name == "groups.yaml":
			var fc fileConfig
			dec := yaml.NewDecoder(bytes.NewReader(f.Data))
			dec.KnownFields(true) // reject unknown fields
			if err := dec.Decode(&fc); err != nil {
				return fmt.Errorf("groups.yaml: %w", err)
			}
			if fc.Window != 0 {
				cfg.Window = fc.Window
			}
			if fc.ExcludeDirs != nil {
				cfg.ExcludeDirs = fc.ExcludeDirs
			}
			if fc.Groups != nil {
				cfg.Groups = fc.Groups
			}
		case f.Name == "markers.json":
			if err := json.Unmarshal(f.Data, &cfg.Markers); err != nil {
				return fmt.Errorf("markers.json: %w", err)
			}
		case f.Name == "exclusions.json":
			if err := json.Unmarshal(f.Data, &cfg.Exclusions); err != nil {
				return fmt.Errorf("exclusions.json: %w", err)
			}
		case strings.HasPrefix(f.Name, "template."):
			cfg.Templates[filepath.Ext(f.Name)] = string(f.Data)
		}
	}
	return nil
}

func clone(c *Config) *Config {
	out := *c
	out.ExcludeDirs = slices.Clone(c.ExcludeDirs)
	out.Groups = slices.Clone(c.Groups)
	out.Markers = slices.Clone(c.Markers)
	out.Exclusions = slices.Clone(c.Exclusions)
	out.Templates = maps.Clone(c.Templates)
	return &out
}
