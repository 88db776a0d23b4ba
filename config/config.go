package config

import (
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath        = "."
	defaultSQLitePath  = "ctf.db"
	defaultBusyTimeout = 5 * time.Second
	defaultBcryptCost  = 12
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	SQLite *SQLiteConfig `json:"sqlite" yaml:"sqlite"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Seed configuration for the fixture data applied by cmd/seed
	Seed *SeedConfig `json:"seed" yaml:"seed"`
}

// SQLiteConfig describes the local database file.
type SQLiteConfig struct {
	Path        string        `json:"path" yaml:"path"`
	BusyTimeout time.Duration `json:"busyTimeout" yaml:"busyTimeout"`
	ForeignKeys bool          `json:"foreignKeys" yaml:"foreignKeys"`
}

// AuthConfig defines hashing-related configuration
type AuthConfig struct {
	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`
}

// SeedConfig points the seeder at an alternate fixture file.
// An empty FixturesPath selects the built-in fixtures.
type SeedConfig struct {
	FixturesPath string `json:"fixturesPath" yaml:"fixturesPath"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DSN builds the go-sqlite3 connection string for the configured file.
func (c *SQLiteConfig) DSN() string {
	params := url.Values{}
	if c.ForeignKeys {
		params.Set("_foreign_keys", "on")
	}
	if c.BusyTimeout > 0 {
		params.Set("_busy_timeout", strconv.FormatInt(c.BusyTimeout.Milliseconds(), 10))
	}

	if len(params) == 0 {
		return c.Path
	}

	return c.Path + "?" + params.Encode()
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	cfg := &Config{
		SQLite: &SQLiteConfig{
			Path:        defaultSQLitePath,
			BusyTimeout: defaultBusyTimeout,
			ForeignKeys: true,
		},
		Auth: &AuthConfig{
			BcryptCost: defaultBcryptCost,
		},
		Seed: &SeedConfig{},
	}
	cfg.Env.Env = "local"
	cfg.Env.ServiceName = "ctf-seed"
	cfg.Env.Log = Log{Pretty: true, Level: "info"}

	return cfg
}

// LoadWithEnv layers <currEnv>.yaml and environment variables on top of base.
// A missing config file is not an error: base and the environment are used as-is.
func LoadWithEnv[T any](base *T, currEnv string, configPath ...string) (*T, error) {
	cfg := base
	if cfg == nil {
		cfg = new(T)
	}
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	if configFile, found := findConfigFile(currEnv, searchPaths); found {
		if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "read %s config failed", currEnv)
		}
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// SQLITE_BUSYTIMEOUT -> sqlite.busyTimeout
			key := canonicalizeEnvKey(k, existingConfigMap)
			if !strings.Contains(key, ".") {
				// Every setting is nested; skip HOME, PATH, ENV and friends.
				return "", nil
			}

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		Tag: "yaml",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv(Default(), "config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.SQLite.Path) == "" {
		cfg.SQLite.Path = defaultSQLitePath
	}

	return cfg, nil
}

func findConfigFile(currEnv string, searchPaths []string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
