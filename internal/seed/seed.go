package seed

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"postboard/internal/middleware"
	"postboard/internal/models"
	"postboard/internal/repository"
	"postboard/internal/service"

	"gorm.io/gorm"
)

// Preset names accepted by ApplyPreset.
const (
	PresetScenario = "scenario"
	PresetRandom   = "random"
)

// Options configuration for the seeder
type Options struct {
	NumAccounts     int
	PostsPerAccount int
	// Seed fixes the fake data generator; zero picks one from the clock.
	Seed int64
	// HashCost overrides the bcrypt cost. Zero keeps the service default.
	HashCost int
}

// Seeder populates a database through the same services the HTTP layer uses.
type Seeder struct {
	db       *gorm.DB
	accounts *service.AccountService
	posts    *service.PostService
	factory  *Factory
	opts     Options
	log      *slog.Logger
}

// NewSeeder binds a Seeder to db.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	accountRepo := repository.NewAccountRepository(db)
	postRepo := repository.NewPostRepository(db)

	accounts := service.NewAccountService(accountRepo, postRepo)
	if opts.HashCost > 0 {
		accounts.WithHashCost(opts.HashCost)
	}
	posts := service.NewPostService(postRepo)

	return &Seeder{
		db:       db,
		accounts: accounts,
		posts:    posts,
		factory:  NewFactory(accounts, posts, opts.Seed),
		opts:     opts,
		log:      middleware.Logger,
	}
}

// ClearAll removes every post and account.
func (s *Seeder) ClearAll(ctx context.Context) error {
	s.log.InfoContext(ctx, "Clearing existing data")
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		global := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := global.Delete(&models.Post{}).Error; err != nil {
			return fmt.Errorf("clear posts: %w", err)
		}
		if err := global.Delete(&models.Account{}).Error; err != nil {
			return fmt.Errorf("clear accounts: %w", err)
		}
		return nil
	})
}

// ApplyPreset runs the named preset.
func (s *Seeder) ApplyPreset(ctx context.Context, name string) error {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case PresetScenario:
		_, err := s.Scenario(ctx)
		return err
	case PresetRandom:
		_, err := s.Random(ctx)
		return err
	default:
		return fmt.Errorf("unknown seed preset %q (want %s or %s)", name, PresetScenario, PresetRandom)
	}
}

// Random creates NumAccounts fake accounts with PostsPerAccount posts each.
func (s *Seeder) Random(ctx context.Context) ([]models.Account, error) {
	created := make([]models.Account, 0, s.opts.NumAccounts)
	posts := 0
	for i := 0; i < s.opts.NumAccounts; i++ {
		account, err := s.factory.CreateAccount(ctx)
		if err != nil {
			return created, fmt.Errorf("create account: %w", err)
		}
		for j := 0; j < s.opts.PostsPerAccount; j++ {
			if _, err := s.factory.CreatePost(ctx, account); err != nil {
				return created, fmt.Errorf("create post for account %d: %w", account.ID, err)
			}
			posts++
		}
		created = append(created, *account)
	}
	s.log.InfoContext(ctx, "Random seed complete", "accounts", len(created), "posts", posts)
	return created, nil
}
