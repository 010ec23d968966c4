package students

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/JORO-NIMO/rms/app/routes/auth"
	"github.com/JORO-NIMO/rms/app/uploads"
)

func SetupStudentsRoutes(app *fiber.App, db *sql.DB, store *uploads.Store) {
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error { return GetStudentsAPI(c, db) })
	api.Post("/", func(c *fiber.Ctx) error { return CreateStudentAPI(c, db) })
	api.Post("/import", auth.RoleMiddleware("admin", "teacher"), func(c *fiber.Ctx) error {
		return ImportStudentsAPI(c, db, store)
	})
	api.Get("/:id", func(c *fiber.Ctx) error { return GetStudentByIDAPI(c, db) })
	api.Put("/:id", func(c *fiber.Ctx) error { return UpdateStudentAPI(c, db) })
	api.Delete("/:id", func(c *fiber.Ctx) error { return DeleteStudentAPI(c, db) })
}
