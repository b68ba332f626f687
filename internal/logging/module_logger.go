package logging

import (
	"context"

	"github.com/goliatone/go-studio/pkg/interfaces"
)

const (
	rootModule      = "studio"
	containerModule = "studio.container"
	themeModule     = "studio.theme"
	libraryModule   = "studio.library"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// ContainerLogger returns the logger namespace reserved for the container view service.
func ContainerLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, containerModule)
}

// ThemeLogger returns the logger namespace reserved for the theme renderer.
func ThemeLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, themeModule)
}

// LibraryLogger returns the logger namespace reserved for the library loader.
func LibraryLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, libraryModule)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
