package server

import "github.com/gofiber/fiber/v2"

// Home handles GET /
func (s *Server) Home(c *fiber.Ctx) error {
	return c.Render("home", fiber.Map{"Title": "Home"})
}
