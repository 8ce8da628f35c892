package main

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"hotel_booking/internal/adapters/catalog"
	"hotel_booking/internal/adapters/firebaseauth"
	server "hotel_booking/internal/adapters/http_server"
	"hotel_booking/internal/adapters/observability"
	redisad "hotel_booking/internal/adapters/redis"
	"hotel_booking/internal/adapters/weather"
	"hotel_booking/internal/app"
	"hotel_booking/internal/shared"
	mysqlrepo "hotel_booking/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	verifier, err := firebaseauth.New(ctx, cfg.FirebaseCredentials, cfg.FirebaseProjectID)
	if err != nil {
		log.Fatal().Err(err).Msg("firebase auth init failed")
	}

	// deps
	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cache.Ping(ctx); err != nil {
		// the cache is optional for correctness; every read falls through to upstream
		log.Warn().Err(err).Msg("redis unreachable")
	}
	clk := clockwork.NewRealClock()

	catalogSvc := app.NewCatalogService(catalog.New(cfg.CatalogBase, cfg.UpstreamTimeout, cfg.UpstreamRPS), cache, cfg.CacheTTL)
	weatherSvc := app.NewWeatherService(weather.New(cfg.WeatherBase, cfg.WeatherKey, cfg.UpstreamTimeout, cfg.UpstreamRPS), cache, cfg.WeatherTTL)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Catalog:  catalogSvc,
		Weather:  weatherSvc,
		Bookings: app.NewBookingService(catalogSvc, repo, clk),
		Reviews:  app.NewReviewService(catalogSvc, repo, clk),
		Auth:     verifier,
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
