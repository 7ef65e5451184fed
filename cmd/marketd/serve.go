package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/baharkarakas/freelancer-backend/internal/api"
	"github.com/baharkarakas/freelancer-backend/internal/auth"
	"github.com/baharkarakas/freelancer-backend/internal/config"
	"github.com/baharkarakas/freelancer-backend/internal/db"
	"github.com/baharkarakas/freelancer-backend/internal/logger"
	"github.com/baharkarakas/freelancer-backend/internal/metrics"
	repo "github.com/baharkarakas/freelancer-backend/internal/repository"
	"github.com/baharkarakas/freelancer-backend/internal/repository/memory"
	"github.com/baharkarakas/freelancer-backend/internal/repository/postgres"
	"github.com/baharkarakas/freelancer-backend/internal/services"
	"github.com/baharkarakas/freelancer-backend/internal/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server (default)",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

type stores struct {
	users    repo.Users
	tasks    repo.Tasks
	offers   repo.Offers
	messages repo.Messages
	ping     func(context.Context) error
	close    func()
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer st.close()

	sessStore, closeSessions := openSessionStore(cfg)
	defer closeSessions()
	sessions := session.NewManager(sessStore, auth.NewCookieSigner(cfg.SessionSecret, cfg.SessionTTL), session.Options{
		CookieName: cfg.SessionCookie,
		TTL:        cfg.SessionTTL,
		Secure:     cfg.CookieSecure,
	})

	identity := services.NewIdentityService(st.users)

	metrics.Init()
	r := api.NewRouter(api.Deps{
		Log:       log,
		Identity:  identity,
		Tasks:     services.NewTaskService(st.tasks),
		Offers:    services.NewOfferService(st.offers),
		Messages:  services.NewMessageService(identity, st.messages),
		Sessions:  sessions,
		StaticDir: cfg.StaticDir,
		Checks: map[string]func(context.Context) error{
			"store":    st.ping,
			"sessions": sessions.Ping,
		},
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "store", cfg.StoreBackend, "sessions", cfg.SessionStore)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openStores picks the repository backend. An unreachable database is
// logged and the server still starts; queries fail until it comes back.
func openStores(ctx context.Context, cfg config.Config, log *slog.Logger) (stores, error) {
	switch cfg.StoreBackend {
	case "memory":
		m := memory.New()
		return stores{
			users: m.Users(), tasks: m.Tasks(), offers: m.Offers(), messages: m.Messages(),
			ping:  m.Ping,
			close: func() {},
		}, nil
	case "postgres", "":
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return stores{}, fmt.Errorf("db pool: %w", err)
		}
		if err := db.Ping(ctx, pool); err != nil {
			log.Error("db connect", "err", err)
		} else if cfg.Migrate {
			if err := db.RunMigrations(ctx, pool); err != nil {
				pool.Close()
				return stores{}, fmt.Errorf("migrations: %w", err)
			}
		}
		repos := postgres.NewRepositories(pool)
		return stores{
			users: repos.Users, tasks: repos.Tasks, offers: repos.Offers, messages: repos.Messages,
			ping:  func(ctx context.Context) error { return db.Ping(ctx, pool) },
			close: pool.Close,
		}, nil
	default:
		return stores{}, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}
}

func openSessionStore(cfg config.Config) (session.Store, func()) {
	if cfg.SessionStore == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return session.NewRedisStore(client, "sess:"), func() { _ = client.Close() }
	}
	return session.NewMemoryStore(), func() {}
}
