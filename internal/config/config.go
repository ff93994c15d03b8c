// Package config loads the YAML configuration file that bounds and tunes
// a proof search.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gnoswap-labs/boolproof/internal/rules"
)

const defaultConfigPath = ".boolproof.yaml"

// Config is the on-disk shape of .boolproof.yaml.
type Config struct {
	Name               string   `yaml:"name"`
	MaxDepth           int      `yaml:"maxDepth"`
	MaxTransformations int      `yaml:"maxTransformations"`
	DisabledLaws       []string `yaml:"disabledLaws"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Name:               "boolproof",
		MaxDepth:           10,
		MaxTransformations: 10000,
	}
}

// Load reads and parses a configuration file. If path is empty,
// ".boolproof.yaml" is used. A missing file is not an error: Load returns
// Default() unchanged.
func Load(path string) (Config, error) {
	if path == "" {
		path = defaultConfigPath
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, err
	}
	defer f.Close()

	config := Default()
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&config); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Write marshals cfg to path, creating or truncating the file.
func Write(path string, cfg Config) error {
	if path == "" {
		path = defaultConfigPath
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// DisabledLawSet resolves the configured law names (matched against
// rules.NameOf, case-sensitive) into a lookup set. Unknown names are
// ignored; the caller is expected to have validated names at load time if
// stricter behavior is wanted.
func (c Config) DisabledLawSet() map[rules.LogicLaw]bool {
	byName := make(map[string]rules.LogicLaw, rules.Count())
	for _, entry := range rules.All() {
		byName[rules.NameOf(entry.Law)] = entry.Law
	}

	out := make(map[rules.LogicLaw]bool, len(c.DisabledLaws))
	for _, name := range c.DisabledLaws {
		if law, ok := byName[name]; ok {
			out[law] = true
		}
	}
	return out
}
