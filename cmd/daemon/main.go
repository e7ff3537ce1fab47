package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/genricoloni/nowplaying/internal/artwork"
	"github.com/genricoloni/nowplaying/internal/config"
	"github.com/genricoloni/nowplaying/internal/display"
	"github.com/genricoloni/nowplaying/internal/domain"
	"github.com/genricoloni/nowplaying/internal/engine"
	"github.com/genricoloni/nowplaying/internal/playback"
	"github.com/genricoloni/nowplaying/internal/render"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// AppOptions is the full dependency graph of the daemon
var AppOptions = fx.Options(
	// Logger configuration
	fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: log}
	}),

	// Provide dependencies
	fx.Provide(
		newLogger,
		fx.Annotate(config.NewAppConfig, fx.As(new(domain.Config))),
		fx.Annotate(config.NewPreferences, fx.As(new(domain.Preferences))),
		newLabels,

		fx.Annotate(engine.NewEngine, fx.As(fx.Self()), fx.As(new(domain.Dispatcher))),

		playback.NewSource,
		func(s playback.Source) domain.PlaybackService { return s },
		func(s playback.Source) domain.QueueQuery { return s },

		fx.Annotate(artwork.NewURLResolver, fx.As(new(domain.ArtworkResolver))),
		artwork.NewImageCache,
		fx.Annotate(artwork.NewDiskCache, fx.As(fx.Self()), fx.As(new(artwork.BlobStore))),
		fx.Annotate(artwork.NewHTTPFetcher, fx.As(new(artwork.Fetcher))),
		artwork.NewScaler,
		fx.Annotate(artwork.NewLoader, fx.As(new(domain.ImageLoader))),

		fx.Annotate(render.NewFileRenderer, fx.As(new(domain.Renderer))),
		fx.Annotate(render.NewLogNavigator, fx.As(new(domain.Navigator))),

		display.NewSynchronizer,
	),

	// Lifecycle hooks
	fx.Invoke(registerHooks),
)

func main() {
	app := fx.New(AppOptions)

	// Handle graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Start the application
	if err := app.Start(ctx); err != nil {
		panic(err)
	}

	// Wait for interrupt signal
	<-ctx.Done()

	// Stop the application gracefully
	if err := app.Stop(context.Background()); err != nil {
		panic(err)
	}
}

// newLogger creates a new zap logger instance
func newLogger() (*zap.Logger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return logger, nil
}

func newLabels(cfg domain.Config) *display.Labels {
	return display.NewLabels(cfg.Language())
}

type hookParams struct {
	fx.In

	Lifecycle    fx.Lifecycle
	Logger       *zap.Logger
	Engine       *engine.Engine
	Source       playback.Source
	Memory       *artwork.ImageCache
	Disk         *artwork.DiskCache
	Synchronizer *display.Synchronizer
}

// registerHooks sets up application lifecycle hooks
func registerHooks(p hookParams) {
	evictCtx, stopEviction := context.WithCancel(context.Background())

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := p.Engine.Start(ctx); err != nil {
				return err
			}
			p.Memory.Init(evictCtx, artwork.DefaultEvictionInterval)
			if _, err := p.Disk.Prune(); err != nil {
				p.Logger.Warn("Failed to prune artwork cache", zap.Error(err))
			}

			if err := p.Source.Start(ctx); err != nil {
				return err
			}

			if err := p.Engine.Call(ctx, func() {
				p.Synchronizer.Resume()
				p.Synchronizer.Refresh()
			}); err != nil {
				return err
			}

			p.Logger.Info("Now Playing Daemon Started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Logger.Info("Shutting down")

			var err error
			err = multierr.Append(err, p.Engine.Call(ctx, func() {
				p.Synchronizer.Pause()
				p.Synchronizer.Hide()
			}))
			err = multierr.Append(err, p.Engine.Stop(ctx))
			stopEviction()
			err = multierr.Append(err, p.Source.Close())
			err = multierr.Append(err, p.Disk.Close())
			return err
		},
	})
}
