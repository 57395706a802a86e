// Command userhabitat runs the UserHabitat HTTP API: CRUD over users and
// their houses, persisted as flat JSON documents on local disk.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/dropDatabas3/userhabitat/internal/config"
	"github.com/dropDatabas3/userhabitat/internal/domain"
	"github.com/dropDatabas3/userhabitat/internal/httpapi"
	"github.com/dropDatabas3/userhabitat/internal/observability/logger"
	"github.com/dropDatabas3/userhabitat/internal/repository"
	"github.com/dropDatabas3/userhabitat/internal/storage/jsonfile"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	flag.StringVar(&cfgPath, "config", envOr("CONFIG_PATH", ""), "path to config.yaml (optional)")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.S().Fatalf("load config: %v", err)
	}

	logger.Init(logger.Config{
		Env:         cfg.App.Env,
		Level:       cfg.Log.Level,
		ServiceName: "userhabitat",
	})
	defer func() { _ = logger.Sync() }()

	usersStore := jsonfile.New[domain.User](filepath.Join(cfg.Storage.DataDir, "dbUsers.json"), "users")
	housesStore := jsonfile.New[domain.House](filepath.Join(cfg.Storage.DataDir, "dbHouses.json"), "houses")

	users := repository.NewUsers(usersStore, repository.NewGuard(housesStore))
	houses := repository.NewHouses(housesStore, users)

	handler, err := httpapi.NewRouter(httpapi.Deps{
		Users:              users,
		Houses:             houses,
		AuthToken:          cfg.Auth.Token,
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
		MetricsEnabled:     cfg.Metrics.Enabled,
	})
	if err != nil {
		logger.S().Fatalf("build router: %v", err)
	}

	srv := &http.Server{Addr: cfg.Server.Addr, Handler: handler}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.L().Info("server listening",
			logger.String("addr", cfg.Server.Addr),
			logger.String("data_dir", cfg.Storage.DataDir),
			logger.String("env", cfg.App.Env),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.S().Fatalf("server error: %v", err)
	}
	logger.L().Info("server stopped")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
