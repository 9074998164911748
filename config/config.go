// Package config loads named recipes from a project's .jrf.yaml file,
// so the CLI (and a future embedder) can run a refactor described
// declaratively instead of writing Go. The Load/LoadFrom split is the
// usual pattern for this: Load assumes the current directory,
// LoadFrom takes an explicit root so tests and the CLI's --config-dir flag
// can point elsewhere.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the recipe file Load/LoadFrom look for.
const FileName = ".jrf.yaml"

// Recipe names one staged refactor: a method-invocation signature to
// search for (matcher.ParseSignature's grammar) paired with a built-in
// refactor and its arguments.
type Recipe struct {
	Name      string            `yaml:"name"`
	Signature string            `yaml:"signature"`
	Refactor  string            `yaml:"refactor"` // one of: changeMethodName, changeType, changeLiteral, addImport, removeImport
	Args      map[string]string `yaml:"args"`
}

// Config is the parsed contents of a .jrf.yaml file: the named
// recipes a project makes available to `jrf apply <recipe>`.
type Config struct {
	Recipes []Recipe `yaml:"recipes"`
}

// Load reads .jrf.yaml from the current directory.
func Load() (*Config, error) {
	return LoadFrom(".")
}

// LoadFrom reads .jrf.yaml from rootDir.
func LoadFrom(rootDir string) (*Config, error) {
	path := filepath.Join(rootDir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	for i, r := range cfg.Recipes {
		if r.Name == "" {
			return nil, fmt.Errorf("%s: recipe %d has no name", path, i)
		}
		if r.Signature == "" {
			return nil, fmt.Errorf("%s: recipe %q has no signature", path, r.Name)
		}
		if r.Refactor == "" {
			return nil, fmt.Errorf("%s: recipe %q has no refactor", path, r.Name)
		}
	}

	return &cfg, nil
}

// Recipe looks up a named recipe, or nil if cfg has none by that name.
func (cfg *Config) Recipe(name string) *Recipe {
	for i := range cfg.Recipes {
		if cfg.Recipes[i].Name == name {
			return &cfg.Recipes[i]
		}
	}
	return nil
}
