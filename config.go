package studio

import "github.com/goliatone/go-studio/internal/runtimeconfig"

var (
	ErrThemesFeatureRequired     = runtimeconfig.ErrThemesFeatureRequired
	ErrLibraryFeatureRequired    = runtimeconfig.ErrLibraryFeatureRequired
	ErrLibraryContentDirRequired = runtimeconfig.ErrLibraryContentDirRequired
	ErrStorageProviderUnknown    = runtimeconfig.ErrStorageProviderUnknown
	ErrStorageDSNRequired        = runtimeconfig.ErrStorageDSNRequired
	ErrCacheRequiresEnabledCache = runtimeconfig.ErrCacheRequiresEnabledCache
	ErrLoggingProviderRequired   = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown    = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid       = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid      = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config         = runtimeconfig.Config
	StorageConfig  = runtimeconfig.StorageConfig
	CacheConfig    = runtimeconfig.CacheConfig
	ThemeConfig    = runtimeconfig.ThemeConfig
	LibraryConfig  = runtimeconfig.LibraryConfig
	CommandsConfig = runtimeconfig.CommandsConfig
	Features       = runtimeconfig.Features
	LoggingConfig  = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
