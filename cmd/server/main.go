package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	genmodule "github.com/jonathanbrink/swayleo-app-sub000/modules/generation"
	"github.com/jonathanbrink/swayleo-app-sub000/pkg/brand"
	"github.com/jonathanbrink/swayleo-app-sub000/pkg/config"
	"github.com/jonathanbrink/swayleo-app-sub000/pkg/generation"
	"github.com/jonathanbrink/swayleo-app-sub000/pkg/genlimit"
	"github.com/jonathanbrink/swayleo-app-sub000/pkg/httpserver"
	"github.com/jonathanbrink/swayleo-app-sub000/pkg/llm"
	"github.com/jonathanbrink/swayleo-app-sub000/pkg/logger"
	"github.com/jonathanbrink/swayleo-app-sub000/pkg/mailer"
	"github.com/jonathanbrink/swayleo-app-sub000/pkg/pg"
	"github.com/jonathanbrink/swayleo-app-sub000/pkg/redis"
)

type appConfig struct {
	Environment       string        `env:"APP_ENV" envDefault:"development"`
	GenerationTimeout time.Duration `env:"GENERATION_TIMEOUT" envDefault:"60s"`
	DevOutboxDir      string        `env:"DEV_OUTBOX_DIR" envDefault:"./outbox"`
}

func main() {
	ctx := context.Background()

	var (
		app      appConfig
		pgCfg    pg.Config
		redisCfg redis.Config
		httpCfg  httpserver.Config
		limitCfg genlimit.Config
		creds    llm.Credentials
	)
	config.MustLoad(&app)
	config.MustLoad(&pgCfg)
	config.MustLoad(&redisCfg)
	config.MustLoad(&httpCfg)
	config.MustLoad(&limitCfg)
	config.MustLoad(&creds)

	var log *slog.Logger
	if app.Environment == "production" {
		log = logger.New(logger.WithProduction("swayleo"))
	} else {
		log = logger.New(logger.WithDevelopment("swayleo"))
	}
	slog.SetDefault(log)

	pool, err := pg.Connect(ctx, pgCfg)
	if err != nil {
		log.Error("postgres connection failed", logger.Error(err))
		os.Exit(1)
	}
	defer pool.Close()

	rdb, err := redis.Connect(ctx, redisCfg)
	if err != nil {
		log.Error("redis connection failed", logger.Error(err))
		os.Exit(1)
	}
	defer func() { _ = rdb.Close() }()

	store, err := brand.NewPGStore(pool)
	if err != nil {
		log.Error("store init failed", logger.Error(err))
		os.Exit(1)
	}
	recorder, err := generation.NewPGRecorder(pool)
	if err != nil {
		log.Error("recorder init failed", logger.Error(err))
		os.Exit(1)
	}

	svc := generation.New(creds,
		generation.WithTimeout(app.GenerationTimeout),
		generation.WithRecorder(recorder),
		generation.WithLogger(log),
	)

	var sender mailer.Sender
	var mailCfg mailer.Config
	if err := config.Load(&mailCfg); err == nil && mailCfg.PostmarkServerToken != "" {
		sender = mailer.MustNewPostmark(mailCfg)
	} else {
		sender = mailer.NewDevSender(app.DevOutboxDir)
		log.Warn("postmark not configured, test sends go to disk",
			slog.String("dir", app.DevOutboxDir))
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", httpserver.HealthCheckHandler(log))
	r.Get("/ready", httpserver.HealthCheckHandler(log,
		pg.Healthcheck(pool),
		redis.Healthcheck(rdb),
	))

	r.Mount("/api/generation", genmodule.Router(genmodule.RouterOptions{
		Generator:   svc,
		Brands:      store,
		Knowledge:   store,
		SavedEmails: store,
		Limiter:     genlimit.New(rdb, limitCfg),
		Sender:      sender,
		Logger:      log,
	}))

	if err := httpserver.New(httpCfg, log).Run(ctx, r); err != nil {
		log.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}
