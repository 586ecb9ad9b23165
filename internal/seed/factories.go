// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"context"
	"fmt"
	"time"

	"postboard/internal/models"
	"postboard/internal/service"

	"github.com/brianvoe/gofakeit/v6"
)

// DefaultSecret is the password given to every generated account.
const DefaultSecret = "password123"

// Factory builds accounts and posts with fake content and persists them
// through the service layer, so secrets are hashed as in production.
type Factory struct {
	accounts *service.AccountService
	posts    *service.PostService
	faker    *gofakeit.Faker
	seq      int
}

// NewFactory creates a Factory. A zero seed picks one from the clock.
func NewFactory(accounts *service.AccountService, posts *service.PostService, seed int64) *Factory {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Factory{accounts: accounts, posts: posts, faker: gofakeit.New(seed)}
}

// CreateAccount constructs and persists a fake account.
// Optional override functions may modify the input before saving.
func (f *Factory) CreateAccount(ctx context.Context, overrides ...func(*service.CreateAccountInput)) (*models.Account, error) {
	f.seq++
	in := service.CreateAccountInput{
		Name:   fmt.Sprintf("%s%d", f.faker.Username(), f.seq),
		Email:  fmt.Sprintf("%d.%s", f.seq, f.faker.Email()),
		Secret: DefaultSecret,
	}
	for _, override := range overrides {
		override(&in)
	}
	return f.accounts.CreateAccount(ctx, in)
}

// CreatePost constructs and persists a fake post owned by account.
func (f *Factory) CreatePost(ctx context.Context, account *models.Account, overrides ...func(*service.CreatePostInput)) (*models.Post, error) {
	in := service.CreatePostInput{
		Title:   f.faker.Sentence(5),
		Content: f.faker.Paragraph(1, 3, 8, "\n"),
		OwnerID: account.ID,
	}
	for _, override := range overrides {
		override(&in)
	}
	return f.posts.CreatePost(ctx, in)
}
