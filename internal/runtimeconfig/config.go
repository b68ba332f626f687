package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrThemesFeatureRequired indicates inconsistent theme configuration.
var ErrThemesFeatureRequired = errors.New("studio config: themes feature must be enabled to configure a theme")

// ErrLibraryFeatureRequired ensures the library loader only builds behind its flag.
var ErrLibraryFeatureRequired = errors.New("studio config: library feature must be enabled to configure the library")
var ErrLibraryContentDirRequired = errors.New("studio config: library content directory is required when the library is enabled")
var ErrStorageProviderUnknown = errors.New("studio config: storage provider is invalid")
var ErrStorageDSNRequired = errors.New("studio config: storage DSN is required for the sqlite provider")
var ErrCacheRequiresEnabledCache = errors.New("studio config: repository cache requires cache to be enabled")
var ErrLoggingProviderRequired = errors.New("studio config: logging provider is required when the logger feature is enabled")
var ErrLoggingProviderUnknown = errors.New("studio config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("studio config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("studio config: logging format is invalid")

// Config aggregates feature flags and adapter bindings for the studio module.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	Enabled  bool
	Storage  StorageConfig
	Cache    CacheConfig
	Theme    ThemeConfig
	Library  LibraryConfig
	Commands CommandsConfig
	Features Features
	Logging  LoggingConfig
}

// StorageConfig selects the repository backend for containers and units.
type StorageConfig struct {
	Provider string
	DSN      string
}

// CacheConfig captures cache behaviour toggles for the repository layer.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// ThemeConfig selects the manifest that restyles the publish-state palette.
type ThemeConfig struct {
	Path string
	Name string
}

// LibraryConfig captures filesystem behaviour for the shared content library.
type LibraryConfig struct {
	Enabled    bool
	ContentDir string
	Pattern    string
}

// CommandsConfig captures optional command-layer behaviour.
type CommandsConfig struct {
	Enabled bool
	Timeout time.Duration
}

// Features toggles module functionality.
type Features struct {
	Themes          bool
	Library         bool
	RepositoryCache bool
	Logger          bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns opinionated defaults for an in-memory studio.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Storage: StorageConfig{
			Provider: "memory",
		},
		Cache: CacheConfig{
			Enabled:    true,
			DefaultTTL: time.Minute,
		},
		Theme: ThemeConfig{},
		Library: LibraryConfig{
			ContentDir: "library",
			Pattern:    "*.md",
		},
		Commands: CommandsConfig{},
		Features: Features{},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
			Format:   "",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if !cfg.Features.Themes {
		if strings.TrimSpace(cfg.Theme.Path) != "" || strings.TrimSpace(cfg.Theme.Name) != "" {
			return ErrThemesFeatureRequired
		}
	}
	if cfg.Library.Enabled {
		if !cfg.Features.Library {
			return ErrLibraryFeatureRequired
		}
		if strings.TrimSpace(cfg.Library.ContentDir) == "" {
			return ErrLibraryContentDirRequired
		}
	}
	if cfg.Features.RepositoryCache && !cfg.Cache.Enabled {
		return ErrCacheRequiresEnabledCache
	}

	provider := normalizeProvider(cfg.Storage.Provider)
	if provider != "" && !isSupportedStorageProvider(provider) {
		return fmt.Errorf("%w: %s", ErrStorageProviderUnknown, provider)
	}
	if provider == "sqlite" && strings.TrimSpace(cfg.Storage.DSN) == "" {
		return ErrStorageDSNRequired
	}

	if cfg.Features.Logger {
		logProvider := normalizeProvider(cfg.Logging.Provider)
		if logProvider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedLoggingProvider(logProvider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, logProvider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if logProvider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedStorageProvider(provider string) bool {
	switch provider {
	case "memory", "sqlite":
		return true
	default:
		return false
	}
}

func isSupportedLoggingProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
