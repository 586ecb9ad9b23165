// Package service holds input validation between the HTTP handlers and the repositories.
package service

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"strings"

	"postboard/internal/models"
	"postboard/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type AccountService struct {
	accountRepo repository.AccountRepository
	postRepo    repository.PostRepository
	hashCost    int
}

type CreateAccountInput struct {
	Name   string
	Email  string
	Secret string
}

func NewAccountService(accountRepo repository.AccountRepository, postRepo repository.PostRepository) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		postRepo:    postRepo,
		hashCost:    bcrypt.DefaultCost,
	}
}

// WithHashCost sets the bcrypt cost used for new secrets.
func (s *AccountService) WithHashCost(cost int) *AccountService {
	s.hashCost = cost
	return s
}

func (s *AccountService) ListAccounts(ctx context.Context) ([]models.Account, error) {
	return s.accountRepo.List(ctx)
}

func (s *AccountService) GetAccount(ctx context.Context, id uint) (*models.Account, error) {
	return s.accountRepo.GetByID(ctx, id)
}

// CreateAccount stores a new account with a bcrypt hash of in.Secret.
// Secrets of any length are accepted.
func (s *AccountService) CreateAccount(ctx context.Context, in CreateAccountInput) (*models.Account, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, models.NewValidationError("Name is required")
	}
	if strings.TrimSpace(in.Email) == "" {
		return nil, models.NewValidationError("Email is required")
	}
	if in.Secret == "" {
		return nil, models.NewValidationError("Password is required")
	}

	hash, err := bcrypt.GenerateFromPassword(secretDigest(in.Secret), s.hashCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	account := &models.Account{
		Name:   in.Name,
		Email:  in.Email,
		Secret: string(hash),
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// UpdateEmail replaces the account's email. A missing account is reported
// before a blank email.
func (s *AccountService) UpdateEmail(ctx context.Context, id uint, email string) (*models.Account, error) {
	if strings.TrimSpace(email) == "" {
		if _, err := s.accountRepo.GetByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, models.NewValidationError("Email is required")
	}
	return s.accountRepo.UpdateEmail(ctx, id, email)
}

// DeleteAccount removes the account together with every post it owns.
func (s *AccountService) DeleteAccount(ctx context.Context, id uint) error {
	return s.accountRepo.Delete(ctx, id)
}

// ListAccountPosts returns the account and the posts it owns.
func (s *AccountService) ListAccountPosts(ctx context.Context, id uint) (*models.Account, []models.Post, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	posts, err := s.postRepo.ListByOwner(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return account, posts, nil
}

// secretDigest maps a secret of any length into bcrypt's 72-byte input limit.
func secretDigest(secret string) []byte {
	sum := sha256.Sum256([]byte(secret))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}

// checkSecret reports whether secret matches the account's stored hash.
func checkSecret(account *models.Account, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(account.Secret), secretDigest(secret)) == nil
}
