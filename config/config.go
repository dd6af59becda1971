// Package config loads server settings from an optional YAML file overlaid with
// SHOPADMIN_ environment variables.
package config

import (
	"os"
	"reflect"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	// EnvPrefix marks the environment variables read as overrides.
	EnvPrefix = "SHOPADMIN_"

	// DefaultPath is where the server looks for its YAML file.
	DefaultPath = "config/config.yaml"
)

type Config struct {
	HTTP    HTTP    `json:"http" yaml:"http"`
	Log     Log     `json:"log" yaml:"log"`
	Store   Store   `json:"store" yaml:"store"`
	Auth    Auth    `json:"auth" yaml:"auth"`
	Reports Reports `json:"reports" yaml:"reports"`
	Audit   Audit   `json:"audit" yaml:"audit"`
}

type HTTP struct {
	Port            int           `json:"port" yaml:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `json:"readTimeout" yaml:"readTimeout" validate:"gt=0"`
	WriteTimeout    time.Duration `json:"writeTimeout" yaml:"writeTimeout" validate:"gt=0"`
	IdleTimeout     time.Duration `json:"idleTimeout" yaml:"idleTimeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `json:"shutdownTimeout" yaml:"shutdownTimeout" validate:"gt=0"`
}

type Log struct {
	Level       string `json:"level" yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `json:"development" yaml:"development"`
}

// Store configures the record store.
type Store struct {
	// EnforceUnique rejects repeated usernames, emails and order codes
	EnforceUnique bool `json:"enforceUnique" yaml:"enforceUnique"`

	// SeedDemo loads the dashboard sample data at start
	SeedDemo bool `json:"seedDemo" yaml:"seedDemo"`
}

type Auth struct {
	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost" validate:"min=4,max=31"`
}

type Reports struct {
	LowStockThreshold int `json:"lowStockThreshold" yaml:"lowStockThreshold" validate:"min=1"`
}

type Audit struct {
	Enabled bool `json:"enabled" yaml:"enabled"`

	// CompressThreshold is the change payload size in bytes above which entries are zstd-compressed
	CompressThreshold int `json:"compressThreshold" yaml:"compressThreshold" validate:"min=0"`
}

// Default returns the settings used when neither file nor environment says otherwise.
func Default() Config {
	return Config{
		HTTP: HTTP{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Log: Log{
			Level: "info",
		},
		Auth: Auth{
			BcryptCost: 10,
		},
		Reports: Reports{
			LowStockThreshold: 10,
		},
		Audit: Audit{
			Enabled:           true,
			CompressThreshold: 10 * 1024,
		},
	}
}

// Load reads path (skipped when empty or missing), applies environment overrides on top
// and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	koanfInstance := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := koanfInstance.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, errors.Wrapf(err, "read config %s failed", path)
			}
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "stat config %s", path)
		}
	}

	known := knownKeys(reflect.TypeOf(cfg), "")

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(k, v string) (string, any) {
			// SHOPADMIN_HTTP_READTIMEOUT and SHOPADMIN_HTTP_READ_TIMEOUT both -> http.readTimeout.
			// Unknown variables map to "" and are dropped.
			return known[normalizeToken(strings.TrimPrefix(k, EnvPrefix))], v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrap(err, "unmarshal config failed")
	}

	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))

	if err := validator.New().Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &cfg, nil
}

// knownKeys maps every normalized leaf path ("httpreadtimeout") to its koanf key ("http.readTimeout").
func knownKeys(t reflect.Type, prefix string) map[string]string {
	keys := make(map[string]string)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}

		path := name
		if prefix != "" {
			path = prefix + "." + name
		}

		if field.Type.Kind() == reflect.Struct {
			for k, v := range knownKeys(field.Type, path) {
				keys[k] = v
			}
			continue
		}
		keys[normalizeToken(path)] = path
	}
	return keys
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
