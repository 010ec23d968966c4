package students

import (
	"database/sql"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/JORO-NIMO/rms/app/database"
	"github.com/JORO-NIMO/rms/app/imports"
	"github.com/JORO-NIMO/rms/app/models"
	"github.com/JORO-NIMO/rms/app/spreadsheet"
	"github.com/JORO-NIMO/rms/app/uploads"
)

var validate = validator.New()

type studentRequest struct {
	AdmissionNo   string `json:"admission_no"`
	FirstName     string `json:"first_name" validate:"required"`
	LastName      string `json:"last_name"`
	Gender        string `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	DOB           string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	ClassID       string `json:"class_id" validate:"omitempty,uuid"`
	ParentContact string `json:"parent_contact"`
	ParentEmail   string `json:"parent_email" validate:"omitempty,email"`
}

func (r *studentRequest) toModel() *models.Student {
	student := &models.Student{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Gender:        models.Gender(r.Gender),
		ParentContact: r.ParentContact,
		ParentEmail:   r.ParentEmail,
	}
	if r.AdmissionNo != "" {
		admissionNo := r.AdmissionNo
		student.AdmissionNo = &admissionNo
	}
	if r.ClassID != "" {
		classID := r.ClassID
		student.ClassID = &classID
	}
	if r.DOB != "" {
		if dob, err := time.Parse("2006-01-02", r.DOB); err == nil {
			student.DOB = &dob
		}
	}
	return student
}

func GetStudentsAPI(c *fiber.Ctx, db *sql.DB) error {
	filters := database.StudentFilters{
		ClassID: c.Query("class_id"),
		Name:    c.Query("name"),
		Limit:   c.QueryInt("limit", 10),
		Offset:  c.QueryInt("offset", 0),
	}

	students, total, err := database.GetStudents(db, filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	return c.JSON(fiber.Map{
		"students":    students,
		"count":       len(students),
		"total_count": total,
	})
}

func GetStudentByIDAPI(c *fiber.Ctx, db *sql.DB) error {
	student, err := database.GetStudentByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}
	return c.JSON(fiber.Map{"student": student})
}

func CreateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	student := req.toModel()
	if err := database.NewStore(db).CreateStudent(c.Context(), student); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create student"})
	}
	return c.Status(201).JSON(fiber.Map{"student": student})
}

func UpdateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	student, err := database.GetStudentByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}

	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	updated := req.toModel()
	updated.ID = student.ID
	if err := database.UpdateStudent(db, updated); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update student"})
	}
	return c.JSON(fiber.Map{"student": updated})
}

func DeleteStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.DeleteStudent(db, c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete student"})
	}
	return c.JSON(fiber.Map{"message": "Student deleted"})
}

// ImportStudentsAPI ingests an uploaded spreadsheet of student rows. Row
// failures are reported in the body; only an unreadable file fails the
// whole request.
func ImportStudentsAPI(c *fiber.Ctx, db *sql.DB, store *uploads.Store) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "No file uploaded", "code": "NO_FILE"})
	}

	artifact, err := store.Save(fileHeader)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to store upload"})
	}

	rows, err := spreadsheet.Decode(artifact.Path())
	if err != nil {
		artifact.Release()
		return c.Status(400).JSON(fiber.Map{"error": "Could not read spreadsheet", "code": "UNREADABLE_FILE"})
	}

	report := imports.NewIngester(database.NewStore(db)).Ingest(c.Context(), rows, imports.ModeStudents, artifact)

	return c.JSON(fiber.Map{
		"successes": report.Successes,
		"errors":    report.Errors,
		"details":   report.Details,
	})
}
