package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	server "kenyastay/internal/adapters/http_server"
	"kenyastay/internal/adapters/mailer"
	"kenyastay/internal/adapters/observability"
	redisad "kenyastay/internal/adapters/redis"
	"kenyastay/internal/app"
	"kenyastay/internal/shared"
	"kenyastay/internal/storage/memory"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// deps
	catalog := memory.New()
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	mail := mailer.New(mailer.Config{
		Host:    cfg.EmailHost,
		Port:    cfg.EmailPort,
		User:    cfg.EmailUser,
		Pass:    cfg.EmailPass,
		From:    cfg.EmailFrom,
		Timeout: cfg.EmailTimeout,
		RPS:     cfg.EmailRPS,
	})
	q := app.NewCatalogService(catalog, cache, cfg.CacheTTL)
	b := app.NewBookingService(catalog, mail)

	// http
	srv := server.New(cfg.CORSOrigin)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Q:             q,
		B:             b,
		Mail:          mail,
		FallbackEmail: cfg.EmailUser,
	})

	log.Info().
		Str("addr", cfg.HTTPAddr).
		Int("hotels", len(catalog.All())).
		Bool("email", mail.Enabled()).
		Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
