package main

import (
	"context"
	"os"
	"sync"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"golang.org/x/sync/semaphore"

	"hotels_api/internal/adapters/observability"
	"hotels_api/internal/adapters/uploads"
	"hotels_api/internal/app"
	"hotels_api/internal/shared"
	mongorepo "hotels_api/internal/storage/mongo"
)

// importer loads hotel bundle files straight into the store, bypassing the
// HTTP surface: ./importer file1.json file2.json ...
func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	paths := os.Args[1:]
	if len(paths) == 0 {
		log.Fatal().Msg("no input files; usage: importer <file.json> [...]")
	}
	log.Info().Int("files", len(paths)).Int("workers", cfg.Workers).Msg("importer starting")

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal().Err(err).Msg("mongo.Connect failed")
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatal().Err(err).Msg("mongo ping failed")
	}
	defer func() { _ = client.Disconnect(ctx) }()

	uow := mongorepo.NewUnitOfWork(client.Database(cfg.MongoDB))
	imp := app.NewImportService(uow, uploads.New(cfg.UploadDir))

	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup

	for _, path := range paths {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			defer sem.Release(1)

			n, err := imp.ImportFile(ctx, path)
			if err != nil {
				observability.ObserveImport("failed", n)
				log.Warn().Str("file", path).Int("imported", n).Err(err).Msg("import failed")
				return
			}
			observability.ObserveImport("ok", n)
			log.Info().Str("file", path).Int("imported", n).Msg("import ok")
		}(path)
	}

	wg.Wait()
	log.Info().Msg("import completed")
}
