package repository

import (
	"context"
	"errors"

	"postboard/internal/models"
	"postboard/internal/observability"

	"gorm.io/gorm"
)

const postsTable = "posts"

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context) ([]models.Post, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]models.Post, error)
	UpdateContent(ctx context.Context, id uint, content string) (*models.Post, error)
	Delete(ctx context.Context, id uint) error
}

// postRepository implements PostRepository
type postRepository struct {
	db  *gorm.DB
	log *observability.RepoLogger
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db, log: observability.NewRepoLogger(postsTable)}
}

// Create inserts post. A missing owner is reported as a validation error
// when the store enforces the foreign key; otherwise the row is stored with
// a dangling owner_id.
func (r *postRepository) Create(ctx context.Context, post *models.Post) (err error) {
	ctx, end := observability.StartRepositorySpan(ctx, "create", postsTable)
	defer func() { end(err) }()

	if err := r.db.WithContext(ctx).Omit("Owner").Create(post).Error; err != nil {
		if isForeignKeyError(err) {
			return models.NewValidationError("Owner account does not exist")
		}
		r.log.LogError(ctx, err, "create")
		return storageError(err)
	}
	r.log.LogCreate(ctx, map[string]interface{}{"id": post.ID, "owner_id": post.OwnerID})
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (_ *models.Post, err error) {
	ctx, end := observability.StartRepositorySpan(ctx, "get", postsTable)
	defer func() { end(err) }()

	var post models.Post
	if err := r.db.WithContext(ctx).Preload("Owner").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, storageError(err)
	}
	r.log.LogRead(ctx, map[string]interface{}{"id": id})
	return &post, nil
}

// List returns every post with its owner preloaded.
func (r *postRepository) List(ctx context.Context) (_ []models.Post, err error) {
	ctx, end := observability.StartRepositorySpan(ctx, "list", postsTable)
	defer func() { end(err) }()

	var posts []models.Post
	if err := r.db.WithContext(ctx).Preload("Owner").Order("id").Find(&posts).Error; err != nil {
		return nil, storageError(err)
	}
	return posts, nil
}

func (r *postRepository) ListByOwner(ctx context.Context, ownerID uint) (_ []models.Post, err error) {
	ctx, end := observability.StartRepositorySpan(ctx, "list_by_owner", postsTable)
	defer func() { end(err) }()

	var posts []models.Post
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id").
		Find(&posts).Error; err != nil {
		return nil, storageError(err)
	}
	return posts, nil
}

// UpdateContent changes only the content column and returns the refreshed row.
func (r *postRepository) UpdateContent(ctx context.Context, id uint, content string) (_ *models.Post, err error) {
	ctx, end := observability.StartRepositorySpan(ctx, "update_content", postsTable)
	defer func() { end(err) }()

	var post models.Post
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&post, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&post).Update("content", content).Error; err != nil {
			return err
		}
		return tx.Preload("Owner").First(&post, id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		r.log.LogError(ctx, err, "update")
		return nil, storageError(err)
	}
	r.log.LogUpdate(ctx, map[string]interface{}{"id": id, "field": "content"})
	return &post, nil
}

func (r *postRepository) Delete(ctx context.Context, id uint) (err error) {
	ctx, end := observability.StartRepositorySpan(ctx, "delete", postsTable)
	defer func() { end(err) }()

	res := r.db.WithContext(ctx).Delete(&models.Post{}, id)
	if res.Error != nil {
		r.log.LogError(ctx, res.Error, "delete")
		return storageError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Post", id)
	}
	observability.RecordsDeleted.WithLabelValues(postsTable).Inc()
	r.log.LogDelete(ctx, map[string]interface{}{"id": id})
	return nil
}
