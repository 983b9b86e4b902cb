package config

import "time"

// Defaults applied by applyDefaults for values absent from every source.
const (
	DefaultHTTPAddress    = "0.0.0.0:8080"
	DefaultMLBaseURL      = "http://ml-service:8000"
	DefaultMLTimeout      = 15 * time.Second
	DefaultSyncInterval   = 6 * time.Hour
	DefaultRequestTimeout = 30 * time.Second
)

// applyDefaults fills in defaults for fields that stayed zero after all
// sources were merged. The sync interval default matters: the reconciliation
// schedule must run even in an otherwise unconfigured deployment.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout <= 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Adapter.BaseURL == "" {
		cfg.Adapter.BaseURL = DefaultMLBaseURL
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = DefaultMLTimeout
	}
	if cfg.Workers.SyncInterval <= 0 {
		cfg.Workers.SyncInterval = DefaultSyncInterval
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.Catalog.Path == "" {
		return ErrInvalidCatalogConfigs
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
