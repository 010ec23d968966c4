package imports

import (
	"context"
	"errors"

	"github.com/JORO-NIMO/rms/app/models"
)

// Resolution reports which branch of a find-or-create lookup fired.
type Resolution int

const (
	ResolvedExisting Resolution = iota
	ResolvedCreated
)

// Resolver turns the references carried by a normalized row into persisted
// records. Subjects, assessments and students (during mark import) must
// already exist; classes are created on first use during student import.
type Resolver struct {
	repo Repository
}

func NewResolver(repo Repository) *Resolver {
	return &Resolver{repo: repo}
}

// ResolveClass looks a class up by exact name and creates it when absent.
// The create is not rolled back if the rest of the row later fails.
func (r *Resolver) ResolveClass(ctx context.Context, name string) (*models.Class, Resolution, error) {
	class, err := r.repo.FindClassByName(ctx, name)
	if err == nil {
		return class, ResolvedExisting, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, ResolvedExisting, err
	}

	class = &models.Class{Name: name}
	if err := r.repo.CreateClass(ctx, class); err != nil {
		return nil, ResolvedExisting, err
	}
	return class, ResolvedCreated, nil
}

// MarkRefs carries the resolved references for one mark row.
type MarkRefs struct {
	Student    *models.Student
	Subject    *models.Subject
	Assessment *models.Assessment
}

// ResolveMarkRefs resolves student, then subject, then assessment. The order
// matters: the assessment lookup is scoped by the resolved student's class,
// never by anything on the row itself.
func (r *Resolver) ResolveMarkRefs(ctx context.Context, row *MarkRow) (*MarkRefs, error) {
	student, err := r.repo.FindStudentByAdmissionNo(ctx, row.AdmissionNo)
	if err != nil {
		return nil, mustExist(err, "Student not found")
	}

	subject, err := r.repo.FindSubjectByCode(ctx, row.SubjectCode)
	if err != nil {
		return nil, mustExist(err, "Subject not found")
	}

	classID := ""
	if student.ClassID != nil {
		classID = *student.ClassID
	}
	assessment, err := r.repo.FindAssessment(ctx, row.AssessmentName, row.Term, classID)
	if err != nil {
		return nil, mustExist(err, "Assessment not found")
	}

	return &MarkRefs{Student: student, Subject: subject, Assessment: assessment}, nil
}

// mustExist converts a not-found lookup into the row-facing message and
// passes any other repository error through unchanged.
func mustExist(err error, msg string) error {
	if errors.Is(err, ErrNotFound) {
		return errors.New(msg)
	}
	return err
}
