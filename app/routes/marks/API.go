package marks

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/JORO-NIMO/rms/app/database"
	"github.com/JORO-NIMO/rms/app/grading"
	"github.com/JORO-NIMO/rms/app/imports"
	"github.com/JORO-NIMO/rms/app/models"
	"github.com/JORO-NIMO/rms/app/spreadsheet"
	"github.com/JORO-NIMO/rms/app/uploads"
)

var validate = validator.New()

type markRequest struct {
	StudentID    string   `json:"student_id" validate:"required,uuid"`
	SubjectID    string   `json:"subject_id" validate:"required,uuid"`
	AssessmentID string   `json:"assessment_id" validate:"required,uuid"`
	Score        *float64 `json:"score" validate:"required,gte=0,lte=100"`
	Comment      string   `json:"comment"`
}

// toModel builds the mark with its grade recomputed from the score. A grade
// supplied by the caller is never trusted.
func (r *markRequest) toModel() *models.Mark {
	return &models.Mark{
		StudentID:    r.StudentID,
		SubjectID:    r.SubjectID,
		AssessmentID: r.AssessmentID,
		Score:        *r.Score,
		Grade:        grading.GradeDefault(*r.Score),
		Comment:      r.Comment,
	}
}

func GetMarksAPI(c *fiber.Ctx, db *sql.DB) error {
	filters := database.MarkFilters{
		ClassID:      c.Query("class_id"),
		SubjectID:    c.Query("subject_id"),
		AssessmentID: c.Query("assessment_id"),
	}

	marks, err := database.GetMarks(db, filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch marks"})
	}
	return c.JSON(fiber.Map{"marks": marks, "count": len(marks)})
}

func CreateMarkAPI(c *fiber.Ctx, db *sql.DB) error {
	var req markRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	mark := req.toModel()
	if err := database.NewStore(db).CreateMark(c.Context(), mark); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create mark"})
	}
	return c.Status(201).JSON(fiber.Map{"mark": mark})
}

func BulkCreateMarksAPI(c *fiber.Ctx, db *sql.DB) error {
	var reqs []markRequest
	if err := c.BodyParser(&reqs); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	for i := range reqs {
		if err := validate.Struct(&reqs[i]); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
	}

	store := database.NewStore(db)
	created := make([]*models.Mark, 0, len(reqs))
	for i := range reqs {
		mark := reqs[i].toModel()
		if err := store.CreateMark(c.Context(), mark); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to create mark"})
		}
		created = append(created, mark)
	}
	return c.Status(201).JSON(fiber.Map{"marks": created, "count": len(created)})
}

func UpdateMarkAPI(c *fiber.Ctx, db *sql.DB) error {
	mark, err := database.GetMarkByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Mark not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch mark"})
	}

	var req struct {
		Score   *float64 `json:"score" validate:"omitempty,gte=0,lte=100"`
		Comment *string  `json:"comment"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if req.Score != nil {
		mark.Score = *req.Score
		mark.Grade = grading.GradeDefault(*req.Score)
	}
	if req.Comment != nil {
		mark.Comment = *req.Comment
	}

	if err := database.UpdateMark(db, mark); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update mark"})
	}
	return c.JSON(fiber.Map{"mark": mark})
}

// ImportMarksAPI ingests an uploaded spreadsheet of mark rows. Each row must
// reference an existing student, subject and assessment; failures are
// reported per row without aborting the batch.
func ImportMarksAPI(c *fiber.Ctx, db *sql.DB, store *uploads.Store) error {
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

	report := imports.NewIngester(database.NewStore(db)).Ingest(c.Context(), rows, imports.ModeMarks, artifact)

	return c.JSON(fiber.Map{
		"successes": report.Successes,
		"errors":    report.Errors,
		"details":   report.Details,
	})
}
