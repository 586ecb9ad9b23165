package server

import (
	"postboard/internal/models"
	"postboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

// accountForm carries the fields of the add-user form. Pointer fields stay
// nil when the field is absent from the body.
type accountForm struct {
	Username *string `form:"username"`
	Email    *string `form:"email"`
	Password *string `form:"password"`
}

func (f accountForm) missing() string {
	switch {
	case f.Username == nil:
		return "username"
	case f.Email == nil:
		return "email"
	case f.Password == nil:
		return "password"
	}
	return ""
}

type emailForm struct {
	Email *string `form:"email"`
}

// ListAccounts handles GET /users
func (s *Server) ListAccounts(c *fiber.Ctx) error {
	ctx, cancel := s.requestContext(c)
	defer cancel()

	accounts, err := s.accountService.ListAccounts(ctx)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Render("users/list", fiber.Map{
		"Title":    "Users",
		"Accounts": accounts,
	})
}

// AddAccountForm handles GET /add_user_form
func (s *Server) AddAccountForm(c *fiber.Ctx) error {
	return c.Render("users/add_form", fiber.Map{"Title": "Add User"})
}

// CreateAccount handles POST /users/add
func (s *Server) CreateAccount(c *fiber.Ctx) error {
	var form accountForm
	if err := s.parseForm(c, &form); err != nil {
		return nil
	}
	if name := form.missing(); name != "" {
		return missingField(c, name)
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	account, err := s.accountService.CreateAccount(ctx, service.CreateAccountInput{
		Name:   *form.Username,
		Email:  *form.Email,
		Secret: *form.Password,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Render("users/added", fiber.Map{
		"Title":   "User Added",
		"Account": account,
	})
}

// EditAccountForm handles GET /users/:id/edit_form
func (s *Server) EditAccountForm(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	account, err := s.accountService.GetAccount(ctx, id)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Render("users/edit_form", fiber.Map{
		"Title":   "Edit User",
		"Account": account,
	})
}

// UpdateAccount handles POST /users/:id/edit
func (s *Server) UpdateAccount(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	var form emailForm
	if err := s.parseForm(c, &form); err != nil {
		return nil
	}
	if form.Email == nil {
		return missingField(c, "email")
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	account, err := s.accountService.UpdateEmail(ctx, id, *form.Email)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Render("users/updated", fiber.Map{
		"Title":   "User Updated",
		"Account": account,
	})
}

// DeleteAccountForm handles GET /users/:id/delete_form
func (s *Server) DeleteAccountForm(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	account, err := s.accountService.GetAccount(ctx, id)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Render("users/delete_form", fiber.Map{
		"Title":   "Delete User",
		"Account": account,
	})
}

// DeleteAccount handles POST /users/:id/delete
func (s *Server) DeleteAccount(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	if err := s.accountService.DeleteAccount(ctx, id); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Render("users/deleted", fiber.Map{
		"Title": "User Deleted",
		"ID":    id,
	})
}

// ListAccountPosts handles GET /users/:id/posts
func (s *Server) ListAccountPosts(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	account, posts, err := s.accountService.ListAccountPosts(ctx, id)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Render("users/posts", fiber.Map{
		"Title":   "Posts by " + account.Name,
		"Account": account,
		"Posts":   posts,
	})
}
