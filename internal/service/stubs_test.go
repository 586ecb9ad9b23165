package service

import (
	"context"
	"testing"

	"postboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type accountRepoStub struct {
	createFn      func(ctx context.Context, account *models.Account) error
	getByIDFn     func(ctx context.Context, id uint) (*models.Account, error)
	listFn        func(ctx context.Context) ([]models.Account, error)
	updateEmailFn func(ctx context.Context, id uint, email string) (*models.Account, error)
	deleteFn      func(ctx context.Context, id uint) error
}

func (s *accountRepoStub) Create(ctx context.Context, account *models.Account) error {
	return s.createFn(ctx, account)
}

func (s *accountRepoStub) GetByID(ctx context.Context, id uint) (*models.Account, error) {
	return s.getByIDFn(ctx, id)
}

func (s *accountRepoStub) List(ctx context.Context) ([]models.Account, error) {
	return s.listFn(ctx)
}

func (s *accountRepoStub) UpdateEmail(ctx context.Context, id uint, email string) (*models.Account, error) {
	return s.updateEmailFn(ctx, id, email)
}

func (s *accountRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopAccountRepo() *accountRepoStub {
	return &accountRepoStub{
		createFn: func(_ context.Context, a *models.Account) error {
			a.ID = 1
			return nil
		},
		getByIDFn: func(_ context.Context, id uint) (*models.Account, error) {
			return nil, models.NewNotFoundError("Account", id)
		},
		listFn: func(context.Context) ([]models.Account, error) { return nil, nil },
		updateEmailFn: func(_ context.Context, id uint, _ string) (*models.Account, error) {
			return nil, models.NewNotFoundError("Account", id)
		},
		deleteFn: func(_ context.Context, id uint) error { return models.NewNotFoundError("Account", id) },
	}
}

type postRepoStub struct {
	createFn        func(ctx context.Context, post *models.Post) error
	getByIDFn       func(ctx context.Context, id uint) (*models.Post, error)
	listFn          func(ctx context.Context) ([]models.Post, error)
	listByOwnerFn   func(ctx context.Context, ownerID uint) ([]models.Post, error)
	updateContentFn func(ctx context.Context, id uint, content string) (*models.Post, error)
	deleteFn        func(ctx context.Context, id uint) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}

func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}

func (s *postRepoStub) List(ctx context.Context) ([]models.Post, error) {
	return s.listFn(ctx)
}

func (s *postRepoStub) ListByOwner(ctx context.Context, ownerID uint) ([]models.Post, error) {
	return s.listByOwnerFn(ctx, ownerID)
}

func (s *postRepoStub) UpdateContent(ctx context.Context, id uint, content string) (*models.Post, error) {
	return s.updateContentFn(ctx, id, content)
}

func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn: func(_ context.Context, p *models.Post) error {
			p.ID = 1
			return nil
		},
		getByIDFn: func(_ context.Context, id uint) (*models.Post, error) {
			return nil, models.NewNotFoundError("Post", id)
		},
		listFn:        func(context.Context) ([]models.Post, error) { return nil, nil },
		listByOwnerFn: func(context.Context, uint) ([]models.Post, error) { return nil, nil },
		updateContentFn: func(_ context.Context, id uint, _ string) (*models.Post, error) {
			return nil, models.NewNotFoundError("Post", id)
		},
		deleteFn: func(_ context.Context, id uint) error { return models.NewNotFoundError("Post", id) },
	}
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, models.CodeValidation, models.ErrorCode(err))
}
