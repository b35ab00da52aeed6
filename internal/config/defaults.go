package config

import "time"

const (
	DefaultServerPort      = 8080
	DefaultServerMode      = "release"
	DefaultShutdownTimeout = 10 * time.Second

	DefaultRedisAddr      = "localhost:6379"
	DefaultRedisKeyPrefix = "legalaid:"

	DefaultTriageTTL = 1 * time.Hour
	DefaultMatchTTL  = 15 * time.Minute
	DefaultDocTTL    = 6 * time.Hour

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	DefaultMaxMatches        = 5
	DefaultMaxDocumentBytes  = 1 << 20 // 1 MiB
	DefaultMaxNarrativeBytes = 64 << 10
	DefaultAnalysisTimeout   = 10 * time.Second
)

// ApplyDefaults fills every zero-value field in cfg with the service default.
// Fields that have already been set by the caller (non-zero values) are left
// unchanged so that explicit configuration always wins.  It must be called
// after unmarshalling raw config data and before Validate().
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = DefaultServerMode
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15 * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15 * time.Second
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = DefaultRedisAddr
	}
	if cfg.Redis.KeyPrefix == "" {
		cfg.Redis.KeyPrefix = DefaultRedisKeyPrefix
	}
	if cfg.Redis.DialTimeout == 0 {
		cfg.Redis.DialTimeout = 5 * time.Second
	}
	if cfg.Redis.ReadTimeout == 0 {
		cfg.Redis.ReadTimeout = 3 * time.Second
	}
	if cfg.Redis.WriteTimeout == 0 {
		cfg.Redis.WriteTimeout = 3 * time.Second
	}

	if cfg.Cache.TriageTTL == 0 {
		cfg.Cache.TriageTTL = DefaultTriageTTL
	}
	if cfg.Cache.MatchTTL == 0 {
		cfg.Cache.MatchTTL = DefaultMatchTTL
	}
	if cfg.Cache.DocTTL == 0 {
		cfg.Cache.DocTTL = DefaultDocTTL
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}

	if cfg.Intelligence.MaxMatches == 0 {
		cfg.Intelligence.MaxMatches = DefaultMaxMatches
	}
	if cfg.Intelligence.MaxDocumentBytes == 0 {
		cfg.Intelligence.MaxDocumentBytes = DefaultMaxDocumentBytes
	}
	if cfg.Intelligence.MaxNarrativeBytes == 0 {
		cfg.Intelligence.MaxNarrativeBytes = DefaultMaxNarrativeBytes
	}
	if cfg.Intelligence.AnalysisTimeout == 0 {
		cfg.Intelligence.AnalysisTimeout = DefaultAnalysisTimeout
	}
}
