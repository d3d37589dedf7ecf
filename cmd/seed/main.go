package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/Brendin-DP/IMD-accelerator-sub000/common/id"
	"github.com/Brendin-DP/IMD-accelerator-sub000/common/logger"
	"github.com/Brendin-DP/IMD-accelerator-sub000/core/config"
	"github.com/Brendin-DP/IMD-accelerator-sub000/core/db"
	"github.com/Brendin-DP/IMD-accelerator-sub000/core/db/sqlc"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/catalog/seed"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/store"
)

func main() {
	ctx := context.Background()

	path := flag.String("file", "config/question_sets.yaml", "question set seed file")
	dryRun := flag.Bool("dry-run", false, "validate the seed file without writing")
	flag.Parse()

	cfg, err := config.Load(config.ServiceTypeSeed)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}
	logger.Setup(cfg)

	file, err := seed.LoadFile(*path)
	if err != nil {
		slog.ErrorContext(ctx, "invalid seed file", "path", *path, "error", err)
		os.Exit(1)
	}
	slog.InfoContext(ctx, "seed file loaded", "path", *path, "question_sets", len(file.QuestionSets))

	if *dryRun {
		return
	}

	if err := id.Init(id.NodeSeed); err != nil {
		slog.ErrorContext(ctx, "failed to initialize id generator", "error", err)
		os.Exit(1)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	var result *seed.Result
	err = database.WithTx(ctx, func(q *sqlc.Queries) error {
		result, err = seed.Apply(ctx, store.NewStores(q).Catalog(), file)
		return err
	})
	if err != nil {
		slog.ErrorContext(ctx, "seeding failed", "error", err)
		os.Exit(1)
	}

	slog.InfoContext(ctx, "seeding complete", "created", len(result.Created), "skipped", len(result.Skipped))
}
