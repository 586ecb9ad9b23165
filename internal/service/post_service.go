package service

import (
	"context"
	"strings"

	"postboard/internal/models"
	"postboard/internal/repository"
)

type PostService struct {
	postRepo repository.PostRepository
}

type CreatePostInput struct {
	Title   string
	Content string
	OwnerID uint
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

func (s *PostService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return s.postRepo.List(ctx)
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if in.OwnerID == 0 {
		return nil, models.NewValidationError("Owner is required")
	}

	post := &models.Post{
		Title:   in.Title,
		Content: in.Content,
		OwnerID: in.OwnerID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// UpdateContent replaces the post body. Empty content is allowed.
func (s *PostService) UpdateContent(ctx context.Context, id uint, content string) (*models.Post, error) {
	return s.postRepo.UpdateContent(ctx, id, content)
}

func (s *PostService) DeletePost(ctx context.Context, id uint) error {
	return s.postRepo.Delete(ctx, id)
}
