// Package fixture supplies the seed data: the built-in set, or an alternate
// YAML file named by seed.fixturesPath.
package fixture

import (
	"strings"

	"ctf/config"
	"ctf/internal/domain/entity"
	"ctf/internal/errors"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// New selects the fixtures for the configured run.
func New(cfg *config.Config) (*entity.Fixtures, error) {
	if cfg == nil || cfg.Seed == nil {
		return Default(), nil
	}

	return Load(cfg.Seed.FixturesPath)
}

// Load reads fixtures from a YAML file. An empty path returns Default().
func Load(path string) (*entity.Fixtures, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}

	// Titles and flags may contain dots; use a delimiter they never will.
	k := koanf.New("::")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read fixtures %s failed", path)
	}

	fixtures := &entity.Fixtures{}
	if err := k.UnmarshalWithConf("", fixtures, koanf.UnmarshalConf{Tag: "yaml"}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal fixtures %s failed", path)
	}

	return fixtures, nil
}
