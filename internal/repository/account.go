package repository

import (
	"context"
	"errors"

	"postboard/internal/models"
	"postboard/internal/observability"

	"gorm.io/gorm"
)

const accountsTable = "accounts"

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id uint) (*models.Account, error)
	List(ctx context.Context) ([]models.Account, error)
	UpdateEmail(ctx context.Context, id uint, email string) (*models.Account, error)
	Delete(ctx context.Context, id uint) error
}

type accountRepository struct {
	db  *gorm.DB
	log *observability.RepoLogger
}

// NewAccountRepository returns a new AccountRepository implementation.
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db, log: observability.NewRepoLogger(accountsTable)}
}

func (r *accountRepository) Create(ctx context.Context, account *models.Account) (err error) {
	ctx, end := observability.StartRepositorySpan(ctx, "create", accountsTable)
	defer func() { end(err) }()

	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewValidationError("Account with this name or email already exists")
		}
		r.log.LogError(ctx, err, "create")
		return storageError(err)
	}
	r.log.LogCreate(ctx, map[string]interface{}{"id": account.ID, "name": account.Name})
	return nil
}

func (r *accountRepository) GetByID(ctx context.Context, id uint) (_ *models.Account, err error) {
	ctx, end := observability.StartRepositorySpan(ctx, "get", accountsTable)
	defer func() { end(err) }()

	var account models.Account
	if err := r.db.WithContext(ctx).First(&account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Account", id)
		}
		return nil, storageError(err)
	}
	r.log.LogRead(ctx, map[string]interface{}{"id": id})
	return &account, nil
}

func (r *accountRepository) List(ctx context.Context) (_ []models.Account, err error) {
	ctx, end := observability.StartRepositorySpan(ctx, "list", accountsTable)
	defer func() { end(err) }()

	var accounts []models.Account
	if err := r.db.WithContext(ctx).Order("id").Find(&accounts).Error; err != nil {
		return nil, storageError(err)
	}
	return accounts, nil
}

// UpdateEmail changes only the email column and returns the refreshed row.
func (r *accountRepository) UpdateEmail(ctx context.Context, id uint, email string) (_ *models.Account, err error) {
	ctx, end := observability.StartRepositorySpan(ctx, "update_email", accountsTable)
	defer func() { end(err) }()

	var account models.Account
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&account, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&account).Update("email", email).Error; err != nil {
			return err
		}
		return tx.First(&account, id).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, models.NewNotFoundError("Account", id)
		case isUniqueConstraintError(err):
			return nil, models.NewValidationError("Email is already in use")
		}
		r.log.LogError(ctx, err, "update")
		return nil, storageError(err)
	}
	r.log.LogUpdate(ctx, map[string]interface{}{"id": id, "field": "email"})
	return &account, nil
}

// Delete removes the account's posts and then the account in one transaction.
func (r *accountRepository) Delete(ctx context.Context, id uint) (err error) {
	ctx, end := observability.StartRepositorySpan(ctx, "delete", accountsTable)
	defer func() { end(err) }()

	var postsDeleted int64
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var account models.Account
		if err := tx.Select("id").First(&account, id).Error; err != nil {
			return err
		}
		res := tx.Where("owner_id = ?", id).Delete(&models.Post{})
		if res.Error != nil {
			return res.Error
		}
		postsDeleted = res.RowsAffected
		res = tx.Delete(&models.Account{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Account", id)
		}
		r.log.LogError(ctx, err, "delete")
		return storageError(err)
	}

	observability.RecordsDeleted.WithLabelValues(accountsTable).Inc()
	observability.RecordsDeleted.WithLabelValues(postsTable).Add(float64(postsDeleted))
	r.log.LogDelete(ctx, map[string]interface{}{"id": id, "posts_deleted": postsDeleted})
	return nil
}
