package studio

import (
	"context"
	"database/sql"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/goliatone/go-studio/container"
	"github.com/goliatone/go-studio/internal/di"
	"github.com/goliatone/go-studio/library"
	"github.com/goliatone/go-studio/pkg/interfaces"
	"github.com/goliatone/go-studio/theme"
)

// ContainerService exports the container view service contract for consumers
// of the studio package.
type ContainerService = container.Service

// LibraryLoader exports the shared library loader.
type LibraryLoader = library.Loader

// Option re-exports the dependency override hooks accepted by New.
type Option = di.Option

// WithBunDB binds an externally managed relational backend.
var WithBunDB = di.WithBunDB

// WithLoggerProvider overrides the runtime logger provider.
var WithLoggerProvider = di.WithLoggerProvider

// WithLibraryFS overrides the filesystem the library loader reads from.
var WithLibraryFS = di.WithLibraryFS

// Module represents the top level studio runtime façade.
type Module struct {
	container *di.Container
	ownedDB   *bun.DB
}

// New constructs a studio module using the provided configuration and optional
// dependency overrides. With the sqlite storage provider the module opens and
// owns its database; Close releases it.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var ownedDB *bun.DB
	if strings.EqualFold(strings.TrimSpace(cfg.Storage.Provider), "sqlite") {
		db, err := openSQLite(cfg.Storage.DSN)
		if err != nil {
			return nil, err
		}
		ownedDB = db
		opts = append([]Option{di.WithBunDB(db)}, opts...)
	}

	c, err := di.NewContainer(cfg, opts...)
	if err != nil {
		if ownedDB != nil {
			ownedDB.Close()
		}
		return nil, err
	}

	return &Module{container: c, ownedDB: ownedDB}, nil
}

// Container exposes the underlying dependency container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Containers returns the configured container view service.
func (m *Module) Containers() ContainerService {
	return m.container.ContainerService()
}

// Renderer returns the bar-module renderer shared by the container service.
func (m *Module) Renderer() *theme.Renderer {
	return m.container.Renderer()
}

// Library returns the shared library loader. Nil when the library is disabled.
func (m *Module) Library() *LibraryLoader {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.LibraryLoader()
}

// Commands returns the command-layer handlers. Nil when commands are disabled.
func (m *Module) Commands() *di.CommandHandlers {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Commands()
}

// Logger returns a named logger from the configured provider.
func (m *Module) Logger(name string) interfaces.Logger {
	if m == nil || m.container == nil || m.container.LoggerProvider() == nil {
		return nil
	}
	return m.container.LoggerProvider().GetLogger(name)
}

// InitSchema creates the container and unit tables when the module owns a
// relational backend. No-op for memory storage.
func (m *Module) InitSchema(ctx context.Context) error {
	if m.ownedDB == nil {
		return nil
	}
	models := []any{
		(*container.Container)(nil),
		(*container.Unit)(nil),
	}
	for _, model := range models {
		if _, err := m.ownedDB.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the module-owned database, if any.
func (m *Module) Close() error {
	if m == nil || m.ownedDB == nil {
		return nil
	}
	return m.ownedDB.Close()
}

func openSQLite(dsn string) (*bun.DB, error) {
	sqlDB, err := sql.Open("sqlite3", strings.TrimSpace(dsn))
	if err != nil {
		return nil, err
	}
	return bun.NewDB(sqlDB, sqlitedialect.New()), nil
}
