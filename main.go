package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/JORO-NIMO/rms/app/config"
	"github.com/JORO-NIMO/rms/app/database"
	"github.com/JORO-NIMO/rms/app/routes/auth"
	"github.com/JORO-NIMO/rms/app/routes/marks"
	"github.com/JORO-NIMO/rms/app/routes/students"
	"github.com/JORO-NIMO/rms/app/uploads"
)

// customErrorHandler converts unhandled errors into JSON responses
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}

func main() {
	config.Init()
	db := config.GetDB()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	store, err := uploads.NewStore(config.AppConfig.UploadDir)
	if err != nil {
		log.Fatal("Failed to initialize upload store: ", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      "RMS",
		ErrorHandler: customErrorHandler,
		BodyLimit:    10 * 1024 * 1024, // spreadsheet uploads
	})

	app.Use(logger.New())
	app.Use(cors.New())

	// Setup auth routes
	auth.SetupAuthRoutes(app, db)

	// Setup students routes
	students.SetupStudentsRoutes(app, db, store)

	// Setup marks routes
	marks.SetupMarksRoutes(app, db, store)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	log.Println("Server starting on :" + config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
