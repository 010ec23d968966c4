package auth

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/JORO-NIMO/rms/app/database"
	"github.com/JORO-NIMO/rms/app/models"
)

var validate = validator.New()

type loginRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	SchoolCode string `json:"school_code" validate:"required,len=4"`
}

type registerRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	Name       string `json:"name" validate:"required"`
	SchoolCode string `json:"school_code" validate:"required,len=4"`
}

func LoginAPI(c *fiber.Ctx, db *sql.DB) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	school, err := database.GetSchoolByCode(db, req.SchoolCode)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid school code", "code": "AUTH_FAILED"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	user, err := database.GetUserByEmail(db, req.Email, school.ID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials", "code": "AUTH_FAILED"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if !user.IsActive || !CheckPasswordHash(req.Password, user.Password) {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials", "code": "AUTH_FAILED"})
	}

	token, err := GenerateJWT(user.ID, user.Email, user.Name, user.Role, school.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
	}

	if err := database.UpdateLastLogin(db, user.ID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

func RegisterAPI(c *fiber.Ctx, db *sql.DB) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	school, err := database.GetSchoolByCode(db, req.SchoolCode)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid school code", "code": "INVALID_SCHOOL"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	if _, err := database.GetUserByEmail(db, req.Email, school.ID); err == nil {
		return c.Status(400).JSON(fiber.Map{"error": "User already exists", "code": "USER_EXISTS"})
	} else if err != sql.ErrNoRows {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	user := &models.User{
		Email:    req.Email,
		Password: hashed,
		Name:     req.Name,
		Role:     string(models.TeacherRole),
		SchoolID: school.ID,
	}
	if err := database.CreateUser(db, user); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create user"})
	}

	return c.Status(201).JSON(fiber.Map{
		"user": fiber.Map{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}
