package compat

import (
	"fmt"
	"sync"

	"github.com/lixenwraith/tinylog"
)

// Builder creates gnet, fasthttp and Fiber adapters around one shared logger.
// It uses an existing *tinylog.Logger or builds one from a *tinylog.Config.
type Builder struct {
	logger *tinylog.Logger
	logCfg *tinylog.Config
	lock   sync.Locker
	err    error
}

// NewBuilder creates a new adapter builder
func NewBuilder() *Builder {
	return &Builder{lock: &sync.Mutex{}}
}

// WithLogger specifies an existing logger to use for the adapters.
// If this is set WithConfig is ignored.
func (b *Builder) WithLogger(l *tinylog.Logger) *Builder {
	if l == nil {
		b.err = fmt.Errorf("tinylog/compat: provided logger cannot be nil")
		return b
	}
	b.logger = l
	return b
}

// WithLocker replaces the lock the built adapters share, for applications
// that also log through the same logger from other goroutines
func (b *Builder) WithLocker(lock sync.Locker) *Builder {
	if lock != nil {
		b.lock = lock
	}
	return b
}

// WithConfig provides a configuration for a new logger instance.
// Without WithLogger or WithConfig a default-configured logger is created.
func (b *Builder) WithConfig(cfg *tinylog.Config) *Builder {
	b.logCfg = cfg
	return b
}

// getLogger resolves the logger to be used, creating one if necessary
func (b *Builder) getLogger() (*tinylog.Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.logger != nil {
		return b.logger, nil
	}

	cfg := b.logCfg
	if cfg == nil {
		cfg = tinylog.DefaultConfig()
	}

	l, err := tinylog.NewFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	// Cache for subsequent builds so all adapters share one logger
	b.logger = l
	return l, nil
}

// BuildGnet creates a gnet adapter
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewGnetAdapter(l, append([]GnetOption{WithGnetLocker(b.lock)}, opts...)...), nil
}

// BuildFastHTTP creates a fasthttp adapter
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPAdapter(l, append([]FastHTTPOption{WithFastHTTPLocker(b.lock)}, opts...)...), nil
}

// BuildFiber creates a Fiber adapter
func (b *Builder) BuildFiber(opts ...FiberOption) (*FiberAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewFiberAdapter(l, append([]FiberOption{WithFiberLocker(b.lock)}, opts...)...), nil
}

// GetLogger returns the underlying logger, creating it if needed
func (b *Builder) GetLogger() (*tinylog.Logger, error) {
	return b.getLogger()
}

// --- Example Usage ---
//
//	appLogger, _ := tinylog.NewBuilder().Name("edge").LevelString("debug").Build()
//	builder := compat.NewBuilder().WithLogger(appLogger)
//
//	gnetLogger, _ := builder.BuildGnet()
//	go gnet.Run(events, "tcp://:9000", gnet.WithLogger(gnetLogger))
//
//	fasthttpLogger, _ := builder.BuildFastHTTP()
//	server := &fasthttp.Server{Handler: handler, Logger: fasthttpLogger}
//	go server.ListenAndServe(":8080")
//
//	fiberLogger, _ := builder.BuildFiber()
//	log.SetLogger(fiberLogger) // github.com/gofiber/fiber/v2/log
