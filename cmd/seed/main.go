// Command main runs the database seeder for postboard.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"postboard/internal/config"
	"postboard/internal/database"
	"postboard/internal/middleware"
	"postboard/internal/observability"
	"postboard/internal/seed"
)

func main() {
	preset := flag.String("preset", seed.PresetScenario, "Seeder preset: scenario or random")
	numAccounts := flag.Int("accounts", 10, "Number of accounts for the random preset")
	postsPerAccount := flag.Int("posts", 3, "Posts per account for the random preset")
	shouldClean := flag.Bool("clean", false, "Delete all accounts and posts before seeding")
	fakeSeed := flag.Int64("seed", 0, "Fake data seed (0 picks one from the clock)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		middleware.Logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger := middleware.ConfigureLogger(os.Stdout, cfg.Env, cfg.LogLevel)
	observability.Config.EnableRepoLogging = cfg.RepoLogging

	opts := seed.Options{
		NumAccounts:     *numAccounts,
		PostsPerAccount: *postsPerAccount,
		Seed:            *fakeSeed,
	}

	if err := run(context.Background(), cfg, opts, *preset, *shouldClean); err != nil {
		logger.Error("Seeding failed", "preset", *preset, "error", err)
		os.Exit(1)
	}
	logger.Info("Seeding complete")
}

func run(ctx context.Context, cfg *config.Config, opts seed.Options, preset string, clean bool) error {
	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer func() { _ = database.Close(db) }()

	s := seed.NewSeeder(db, opts)
	if clean {
		if err := s.ClearAll(ctx); err != nil {
			return fmt.Errorf("cleanup: %w", err)
		}
	}

	middleware.Logger.InfoContext(ctx, "Applying preset", "preset", preset)
	return s.ApplyPreset(ctx, preset)
}
