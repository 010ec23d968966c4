package auth

import (
	"database/sql"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/auth")
	api.Post("/login", func(c *fiber.Ctx) error { return LoginAPI(c, db) })
	api.Post("/register", func(c *fiber.Ctx) error { return RegisterAPI(c, db) })
}

// AuthMiddleware validates the bearer token and sets user context.
func AuthMiddleware(c *fiber.Ctx) error {
	var tokenString string
	if auth := c.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		tokenString = strings.TrimPrefix(auth, "Bearer ")
	}
	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"error": "No token found"})
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
	}

	c.Locals("user_id", claims.UserID)
	c.Locals("user_email", claims.Email)
	c.Locals("user_role", claims.Role)
	c.Locals("school_id", claims.SchoolID)

	return c.Next()
}

// RoleMiddleware checks if the user holds one of the allowed roles.
func RoleMiddleware(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("user_role").(string)
		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}
		return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
	}
}
