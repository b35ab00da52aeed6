package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix used by all service settings.
const envPrefix = "LEGALAID"

// configKeys lists every settable key.  Viper only feeds environment values
// into Unmarshal for keys it knows about, so each key must be bound
// explicitly; AutomaticEnv alone covers keys already present in a file.
var configKeys = []string{
	"server.port",
	"server.mode",
	"server.read_timeout",
	"server.write_timeout",
	"server.max_body_size",
	"server.shutdown_timeout",

	"redis.addr",
	"redis.password",
	"redis.db",
	"redis.pool_size",
	"redis.min_idle_conns",
	"redis.dial_timeout",
	"redis.read_timeout",
	"redis.write_timeout",
	"redis.key_prefix",

	"cache.enabled",
	"cache.triage_ttl",
	"cache.match_ttl",
	"cache.doc_ttl",

	"log.level",
	"log.format",
	"log.output",
	"log.enable_caller",
	"log.enable_stacktrace",

	"intelligence.max_matches",
	"intelligence.max_document_bytes",
	"intelligence.analysis_timeout",
	"intelligence.max_narrative_bytes",
	"intelligence.pattern_min_case_size",
}

// newViper builds a pre-configured Viper instance with the service's standard
// settings: YAML file type, LEGALAID_ env prefix, explicit env binding for
// every config key, and a key replacer that maps "." to "_" so that nested
// keys like "redis.addr" resolve to "LEGALAID_REDIS_ADDR".
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range configKeys {
		_ = v.BindEnv(key)
	}
	return v
}

// Load reads the YAML file at configPath, merges any LEGALAID_* environment
// variable overrides, applies service defaults for unset fields, and
// validates the result.  It returns a fully-populated *Config or a
// descriptive error.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
	}

	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config entirely from LEGALAID_* environment variables,
// with no config file required.  This is the preferred loading strategy for
// containerised deployments.
//
// Environment variable naming convention:
//
//	LEGALAID_<SECTION>_<FIELD>   e.g.  LEGALAID_SERVER_PORT, LEGALAID_REDIS_ADDR
func LoadFromEnv() (*Config, error) {
	v := newViper()
	return unmarshalAndFinalize(v)
}

func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}

// Watch monitors configPath for changes and invokes onChange with the newly
// parsed Config whenever the file is modified on disk.  It is intended for
// hot-reloading non-critical settings such as log level and cache TTLs;
// callers are responsible for applying only the safe subset of changes at
// runtime.
//
// Watch is non-blocking; it starts a background goroutine managed by viper.
// If the changed file fails to parse or validate, onChange is NOT called.
func Watch(configPath string, onChange func(*Config)) {
	v := newViper()
	v.SetConfigFile(configPath)

	// Initial read; callers should call Load first for error reporting.
	_ = v.ReadInConfig()

	v.WatchConfig()
	v.OnConfigChange(func(_ fsnotify.Event) {
		cfg, err := unmarshalAndFinalize(v)
		if err != nil {
			return
		}
		onChange(cfg)
	})
}

// MustLoad is a convenience wrapper around Load that panics on any error.
// It is intended for use in main() where a config-load failure is always fatal.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("config: MustLoad failed: %v", err))
	}
	return cfg
}
