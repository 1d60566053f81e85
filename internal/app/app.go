package app

import (
	"io"
	"log/slog"

	"github.com/vk/declargo/internal/composite"
	"github.com/vk/declargo/internal/hclload"
	"github.com/vk/declargo/internal/registry"
	"github.com/vk/declargo/internal/runtime"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	cfg       *Config
	registry  *registry.Registry
	loader    *hclload.Loader
	converter *runtime.Converter
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
// Resources are emitted on outW; logs go to errW so structured output stays
// clean.
func NewApp(outW, errW io.Writer, cfg *Config, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All builtin type modules registered.", "count", len(modules), "types", reg.Types())

	return &App{
		outW:      outW,
		logger:    logger,
		cfg:       cfg,
		registry:  reg,
		loader:    hclload.NewLoader(),
		converter: runtime.New(reg, composite.Build),
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
