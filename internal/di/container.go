package di

import (
	"io/fs"
	"os"
	"strings"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-studio/container"
	"github.com/goliatone/go-studio/internal/commands"
	"github.com/goliatone/go-studio/internal/commands/containercmd"
	"github.com/goliatone/go-studio/internal/logging"
	"github.com/goliatone/go-studio/internal/logging/gologger"
	"github.com/goliatone/go-studio/internal/runtimeconfig"
	"github.com/goliatone/go-studio/library"
	"github.com/goliatone/go-studio/pkg/interfaces"
	"github.com/goliatone/go-studio/theme"
)

// Container wires module dependencies for the studio runtime.
type Container struct {
	Config runtimeconfig.Config

	bunDB         *bun.DB
	cacheTTL      time.Duration
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer

	loggerProvider interfaces.LoggerProvider

	containerRepo container.ContainerRepository
	unitRepo      container.UnitRepository

	palette  *theme.Palette
	renderer *theme.Renderer

	libraryFS fs.FS

	containerSvc  container.Service
	libraryLoader *library.Loader

	commandHandlers *CommandHandlers
}

// CommandHandlers groups the command-layer entry points built behind the
// commands flag.
type CommandHandlers struct {
	RefreshContainer *containercmd.RefreshContainerHandler
	UpdateUnitFlags  *containercmd.UpdateUnitFlagsHandler
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithBunDB binds the relational backend used for container and unit storage.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithCache overrides the repository cache bindings.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithLoggerProvider overrides the default logger provider binding.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithContainerService overrides the default container service binding.
func WithContainerService(svc container.Service) Option {
	return func(c *Container) {
		c.containerSvc = svc
	}
}

// WithLibraryFS overrides the filesystem the library loader reads from.
// Defaults to the configured content directory on the host filesystem.
func WithLibraryFS(fsys fs.FS) Option {
	return func(c *Container) {
		c.libraryFS = fsys
	}
}

// WithPalette overrides the default palette binding.
func WithPalette(palette *theme.Palette) Option {
	return func(c *Container) {
		c.palette = palette
	}
}

// NewContainer creates a container with the provided configuration.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cacheTTL := cfg.Cache.DefaultTTL
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}

	c := &Container{
		Config:        cfg,
		cacheTTL:      cacheTTL,
		containerRepo: container.NewMemoryContainerRepository(),
		unitRepo:      container.NewMemoryUnitRepository(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.configureLogging(); err != nil {
		return nil, err
	}
	c.configureCacheDefaults()
	c.configureRepositories()
	c.configureTheme()

	if c.containerSvc == nil {
		c.containerSvc = container.NewService(
			c.containerRepo,
			c.unitRepo,
			container.WithRenderer(c.renderer),
			container.WithLogger(logging.ContainerLogger(c.loggerProvider)),
		)
	}

	c.configureCommands()

	if err := c.configureLibrary(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Container) configureLogging() error {
	if c.loggerProvider != nil {
		return nil
	}
	if !c.Config.Features.Logger {
		return nil
	}

	provider := strings.ToLower(strings.TrimSpace(c.Config.Logging.Provider))
	if provider != "gologger" {
		return nil
	}

	built, err := gologger.NewProvider(gologger.Config{
		Level:     c.Config.Logging.Level,
		Format:    c.Config.Logging.Format,
		AddSource: c.Config.Logging.AddSource,
		Focus:     c.Config.Logging.Focus,
	})
	if err != nil {
		return err
	}
	c.loggerProvider = built
	return nil
}

func (c *Container) configureCacheDefaults() {
	if !c.Config.Cache.Enabled {
		return
	}

	if c.cacheService == nil {
		cfg := repocache.DefaultConfig()
		if c.cacheTTL > 0 {
			cfg.TTL = c.cacheTTL
		}
		service, err := repocache.NewCacheService(cfg)
		if err == nil {
			c.cacheService = service
		}
	}

	if c.cacheService != nil && c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
}

func (c *Container) configureRepositories() {
	if c.bunDB == nil {
		return
	}
	c.containerRepo = container.NewBunContainerRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
	c.unitRepo = container.NewBunUnitRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
}

func (c *Container) configureCommands() {
	if !c.Config.Commands.Enabled {
		return
	}

	logger := logging.ModuleLogger(c.loggerProvider, "studio.commands")

	refreshOpts := []commands.HandlerOption[containercmd.RefreshContainerCommand]{}
	flagOpts := []commands.HandlerOption[containercmd.UpdateUnitFlagsCommand]{}
	if c.Config.Commands.Timeout > 0 {
		refreshOpts = append(refreshOpts, commands.WithTimeout[containercmd.RefreshContainerCommand](c.Config.Commands.Timeout))
		flagOpts = append(flagOpts, commands.WithTimeout[containercmd.UpdateUnitFlagsCommand](c.Config.Commands.Timeout))
	}

	c.commandHandlers = &CommandHandlers{
		RefreshContainer: containercmd.NewRefreshContainerHandler(c.containerSvc, logger, refreshOpts...),
		UpdateUnitFlags:  containercmd.NewUpdateUnitFlagsHandler(c.containerSvc, logger, flagOpts...),
	}
}

func (c *Container) configureTheme() {
	if c.palette == nil && c.Config.Features.Themes {
		c.palette = theme.NewPalette(theme.PaletteConfig{
			Path: c.Config.Theme.Path,
			Name: c.Config.Theme.Name,
		}, nil)
	}

	rendererOpts := []theme.RendererOption{
		theme.WithLogger(logging.ThemeLogger(c.loggerProvider)),
	}
	if c.palette != nil {
		rendererOpts = append(rendererOpts, theme.WithPalette(c.palette))
	}
	c.renderer = theme.NewRenderer(rendererOpts...)
}

func (c *Container) configureLibrary() error {
	if !c.Config.Library.Enabled {
		return nil
	}

	fsys := c.libraryFS
	if fsys == nil {
		dir := strings.TrimSpace(c.Config.Library.ContentDir)
		if _, err := os.Stat(dir); err != nil {
			return err
		}
		fsys = os.DirFS(dir)
	}

	c.libraryLoader = library.NewLoader(
		fsys,
		library.WithPattern(c.Config.Library.Pattern),
		library.WithLogger(logging.LibraryLogger(c.loggerProvider)),
	)
	return nil
}

// ContainerRepository exposes the configured container repository.
func (c *Container) ContainerRepository() container.ContainerRepository {
	return c.containerRepo
}

// UnitRepository exposes the configured unit repository.
func (c *Container) UnitRepository() container.UnitRepository {
	return c.unitRepo
}

// ContainerService returns the configured container service.
func (c *Container) ContainerService() container.Service {
	return c.containerSvc
}

// Renderer returns the configured bar-module renderer.
func (c *Container) Renderer() *theme.Renderer {
	return c.renderer
}

// Palette returns the configured palette, nil when themes are disabled.
func (c *Container) Palette() *theme.Palette {
	return c.palette
}

// LibraryLoader returns the configured library loader, nil when the library is disabled.
func (c *Container) LibraryLoader() *library.Loader {
	return c.libraryLoader
}

// Commands returns the command-layer handlers, nil when commands are disabled.
func (c *Container) Commands() *CommandHandlers {
	return c.commandHandlers
}

// LoggerProvider exposes the configured logger provider, nil when logging is disabled.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}
