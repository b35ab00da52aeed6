// Package config defines all configuration structures for the
// LegalAid-Intelligence service.  No I/O or parsing logic lives here, only
// plain data types and validation.
package config

import (
	"fmt"
	"time"
)

// ServerConfig holds HTTP server tunables.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // "debug" | "release" | "test"
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	MaxBodySize     int64         `mapstructure:"max_body_size"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// RedisConfig holds Redis connection parameters.  Redis backs the optional
// result cache; the service degrades to uncached operation when unreachable.
type RedisConfig struct {
	Addr         string        `mapstructure:"addr"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	PoolSize     int           `mapstructure:"pool_size"`
	MinIdleConns int           `mapstructure:"min_idle_conns"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	KeyPrefix    string        `mapstructure:"key_prefix"`
}

// CacheConfig controls the read-through result cache in front of the
// analysis services.
type CacheConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	TriageTTL time.Duration `mapstructure:"triage_ttl"`
	MatchTTL  time.Duration `mapstructure:"match_ttl"`
	DocTTL    time.Duration `mapstructure:"doc_ttl"`
}

// LogConfig holds structured-logging parameters.
type LogConfig struct {
	Level            string `mapstructure:"level"`  // "debug" | "info" | "warn" | "error"
	Format           string `mapstructure:"format"` // "json" | "console"
	Output           string `mapstructure:"output"`
	EnableCaller     bool   `mapstructure:"enable_caller"`
	EnableStacktrace bool   `mapstructure:"enable_stacktrace"`
}

// IntelligenceConfig holds analysis-engine tunables.
type IntelligenceConfig struct {
	MaxMatches         int           `mapstructure:"max_matches"`
	MaxDocumentBytes   int           `mapstructure:"max_document_bytes"`
	AnalysisTimeout    time.Duration `mapstructure:"analysis_timeout"`
	MaxNarrativeBytes  int           `mapstructure:"max_narrative_bytes"`
	PatternMinCaseSize int           `mapstructure:"pattern_min_case_size"`
}

// Config is the root configuration structure for the entire service.
// Every infrastructure component and application service reads its settings
// from the relevant sub-struct.
type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Redis        RedisConfig        `mapstructure:"redis"`
	Cache        CacheConfig        `mapstructure:"cache"`
	Log          LogConfig          `mapstructure:"log"`
	Intelligence IntelligenceConfig `mapstructure:"intelligence"`
}

// Validate performs semantic validation of the fully-populated Config.
// It returns the first error encountered; callers should treat any error as
// fatal and refuse to start the application.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d is out of range [1, 65535]", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("config: server.mode %q is invalid; expected debug|release|test", c.Server.Mode)
	}

	if c.Cache.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("config: redis.addr is required when cache.enabled is true")
	}
	if c.Redis.DB < 0 {
		return fmt.Errorf("config: redis.db must be >= 0, got %d", c.Redis.DB)
	}

	if c.Intelligence.MaxMatches < 1 {
		return fmt.Errorf("config: intelligence.max_matches must be >= 1, got %d", c.Intelligence.MaxMatches)
	}
	if c.Intelligence.MaxDocumentBytes < 1 {
		return fmt.Errorf("config: intelligence.max_document_bytes must be >= 1, got %d", c.Intelligence.MaxDocumentBytes)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|console", c.Log.Format)
	}

	return nil
}
