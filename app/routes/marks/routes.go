package marks

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/JORO-NIMO/rms/app/routes/auth"
	"github.com/JORO-NIMO/rms/app/uploads"
)

func SetupMarksRoutes(app *fiber.App, db *sql.DB, store *uploads.Store) {
	api := app.Group("/api/marks")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error { return GetMarksAPI(c, db) })
	api.Post("/", func(c *fiber.Ctx) error { return CreateMarkAPI(c, db) })
	api.Post("/bulk", func(c *fiber.Ctx) error { return BulkCreateMarksAPI(c, db) })
	api.Post("/import", auth.RoleMiddleware("admin", "teacher"), func(c *fiber.Ctx) error {
		return ImportMarksAPI(c, db, store)
	})
	api.Put("/:id", func(c *fiber.Ctx) error { return UpdateMarkAPI(c, db) })
}
