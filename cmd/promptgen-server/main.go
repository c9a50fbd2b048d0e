package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/goliatone/go-promptgen/components/promptviewer"
	"github.com/goliatone/go-promptgen/internal/config"
	"github.com/goliatone/go-promptgen/internal/logging"
	"github.com/goliatone/go-promptgen/pkg/apispec"
	"github.com/goliatone/go-promptgen/pkg/prompts"
	"github.com/goliatone/go-promptgen/pkg/session"
	"github.com/goliatone/go-promptgen/pkg/theme"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Environ(), os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "promptgen-server: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args, environ []string, stderr io.Writer) error {
	cfg, err := config.Load("promptgen-server", args, environ, stderr)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogMode)
	if err != nil {
		return err
	}
	defer logger.Sync()

	app, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	listener, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Addr, err)
	}
	return serve(ctx, listener, app.handler, cfg.ShutdownTimeout, logger)
}

type app struct {
	handler http.Handler
	closers []func() error
}

func (a *app) Close() error {
	var errs []error
	for _, fn := range a.closers {
		errs = append(errs, fn())
	}
	return errors.Join(errs...)
}

// dialRedis opens a client and checks the server answers. Tests replace it.
var dialRedis = func(ctx context.Context, cfg config.RedisConfig) (session.RedisClient, func() error, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return client, client.Close, nil
}

// newApp wires the prompt set, session store, theme and viewer into one
// handler wrapped in request logging and panic recovery. Resources opened
// before a failure are closed.
func newApp(ctx context.Context, cfg config.Config, logger *logging.Logger) (_ *app, err error) {
	a := &app{}
	defer func() {
		if err != nil {
			if cerr := a.Close(); cerr != nil {
				logger.Warn("cleanup after failed start", "error", cerr)
			}
		}
	}()

	set, err := loadPrompts(cfg.Prompts)
	if err != nil {
		return nil, err
	}

	var store session.Store
	if cfg.Redis.Addr != "" {
		client, closeClient, err := dialRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, closeClient)
		store = session.NewRedisStore(client, cfg.Redis.Prefix, cfg.Redis.TTL)
		logger.Info("session store", "kind", "redis", "addr", cfg.Redis.Addr, "db", cfg.Redis.DB)
	} else {
		store = session.NewMemoryStore()
		logger.Info("session store", "kind", "memory")
	}
	sessions := session.NewManager(store,
		session.WithCookieName(cfg.Session.CookieName),
		session.WithSecureCookie(cfg.Session.SecureCookie),
	)

	selector, err := theme.NewSelector(theme.Default())
	if err != nil {
		return nil, err
	}
	themeCfg, err := theme.Select(selector, cfg.Theme, cfg.Variant)
	if err != nil {
		return nil, err
	}

	viewer, err := promptviewer.New(
		promptviewer.WithTemplates(set),
		promptviewer.WithSessions(sessions),
		promptviewer.WithTheme(themeCfg),
		promptviewer.WithErrorHandler(logger.ReportError),
	)
	if err != nil {
		return nil, err
	}

	spec, err := apispec.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := promptviewer.VerifyOperations(viewer.Routes("/"), apispec.Operations(spec)); err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mounted, err := viewer.RegisterRoutes(mux, cfg.BasePath)
	if err != nil {
		return nil, err
	}
	for _, route := range mounted {
		logger.Debug("route mounted", "id", route.ID, "method", route.Method, "path", route.Path)
	}
	logger.Debug("renderers registered", "names", viewer.Options().Renderers.Names())
	logger.Info("prompts loaded", "title", set.EventTitle, "count", set.Len(),
		"theme", themeCfg.Theme, "variant", themeCfg.Variant)

	a.handler = logging.RequestLogger(logger, logging.Recovery(logger, mux))
	return a, nil
}

func loadPrompts(path string) (prompts.TemplateSet, error) {
	if path == "" {
		return prompts.Default()
	}
	return prompts.Load(path)
}

// serve runs until ctx is done, then drains in-flight requests for at most
// timeout.
func serve(ctx context.Context, listener net.Listener, handler http.Handler, timeout time.Duration, logger *logging.Logger) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", listener.Addr().String())
		errCh <- srv.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down", "timeout", timeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
