package imports

import (
	"context"
	"errors"

	"github.com/JORO-NIMO/rms/app/models"
)

// ErrNotFound is returned by repository lookups when no record matches the
// given key. The Postgres store maps sql.ErrNoRows to it.
var ErrNotFound = errors.New("record not found")

// Repository is the persistence surface the ingestion pipeline consumes.
// Lookups are by natural key; creates are unconditional (no upsert).
type Repository interface {
	FindClassByName(ctx context.Context, name string) (*models.Class, error)
	CreateClass(ctx context.Context, class *models.Class) error

	FindStudentByAdmissionNo(ctx context.Context, admissionNo string) (*models.Student, error)
	CreateStudent(ctx context.Context, student *models.Student) error

	FindSubjectByCode(ctx context.Context, code string) (*models.Subject, error)
	FindAssessment(ctx context.Context, name, term, classID string) (*models.Assessment, error)

	CreateMark(ctx context.Context, mark *models.Mark) error
}

// Artifact is a temporary upload owned by the orchestrator for the duration
// of one batch. Release must be safe to call more than once.
type Artifact interface {
	Release() error
}
