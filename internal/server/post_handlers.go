package server

import (
	"postboard/internal/models"
	"postboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

type postForm struct {
	Title   *string `form:"title"`
	Content *string `form:"content"`
	UserID  *int    `form:"user_id"`
}

func (f postForm) missing() string {
	switch {
	case f.Title == nil:
		return "title"
	case f.Content == nil:
		return "content"
	case f.UserID == nil:
		return "user_id"
	}
	return ""
}

type contentForm struct {
	Content *string `form:"content"`
}

// ListPosts handles GET /posts
func (s *Server) ListPosts(c *fiber.Ctx) error {
	ctx, cancel := s.requestContext(c)
	defer cancel()

	posts, err := s.postService.ListPosts(ctx)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Render("posts/list", fiber.Map{
		"Title": "Posts",
		"Posts": posts,
	})
}

// AddPostForm handles GET /add_post_form. The form offers every account as owner.
func (s *Server) AddPostForm(c *fiber.Ctx) error {
	ctx, cancel := s.requestContext(c)
	defer cancel()

	accounts, err := s.accountService.ListAccounts(ctx)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Render("posts/add_form", fiber.Map{
		"Title":    "Add Post",
		"Accounts": accounts,
	})
}

// CreatePost handles POST /posts/add
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var form postForm
	if err := s.parseForm(c, &form); err != nil {
		return nil
	}
	if name := form.missing(); name != "" {
		return missingField(c, name)
	}
	if *form.UserID <= 0 {
		return models.RespondWithError(c, fiber.StatusUnprocessableEntity,
			models.NewMalformedInputError("Invalid user_id: must be a positive integer"))
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	post, err := s.postService.CreatePost(ctx, service.CreatePostInput{
		Title:   *form.Title,
		Content: *form.Content,
		OwnerID: uint(*form.UserID),
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Render("posts/added", fiber.Map{
		"Title": "Post Added",
		"Post":  post,
	})
}

// EditPostForm handles GET /posts/:id/edit_form
func (s *Server) EditPostForm(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	post, err := s.postService.GetPost(ctx, id)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Render("posts/edit_form", fiber.Map{
		"Title": "Edit Post",
		"Post":  post,
	})
}

// UpdatePost handles POST /posts/:id/edit
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	var form contentForm
	if err := s.parseForm(c, &form); err != nil {
		return nil
	}
	if form.Content == nil {
		return missingField(c, "content")
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	post, err := s.postService.UpdateContent(ctx, id, *form.Content)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Render("posts/updated", fiber.Map{
		"Title": "Post Updated",
		"Post":  post,
	})
}

// DeletePostForm handles GET /posts/:id/delete_form
func (s *Server) DeletePostForm(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	post, err := s.postService.GetPost(ctx, id)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Render("posts/delete_form", fiber.Map{
		"Title": "Delete Post",
		"Post":  post,
	})
}

// DeletePost handles POST /posts/:id/delete
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	if err := s.postService.DeletePost(ctx, id); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Render("posts/deleted", fiber.Map{
		"Title": "Post Deleted",
		"ID":    id,
	})
}
