package main

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	server "hotels_api/internal/adapters/http_server"
	"hotels_api/internal/adapters/observability"
	redisad "hotels_api/internal/adapters/redis"
	"hotels_api/internal/adapters/uploads"
	"hotels_api/internal/app"
	"hotels_api/internal/shared"
	mongorepo "hotels_api/internal/storage/mongo"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve(cfg.MetricsAddr)

	// db
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal().Err(err).Msg("mongo.Connect failed")
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatal().Err(err).Msg("mongo ping failed")
	}
	defer func() { _ = client.Disconnect(ctx) }()
	log.Info().Msg("database connection ok")

	// deps
	uow := mongorepo.NewUnitOfWork(client.Database(cfg.MongoDB))
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	hotels := app.NewHotelService(uow, cache, cfg.CacheTTL)
	rates := app.NewRateService(uow, cache, nil)
	imports := app.NewImportService(uow, uploads.New(cfg.UploadDir))

	// http
	srv := server.New(cfg.RateLimit)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Hotels: hotels, Rates: rates, Imports: imports})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
