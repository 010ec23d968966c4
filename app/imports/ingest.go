package imports

import (
	"context"
	"fmt"
	"log"

	"github.com/JORO-NIMO/rms/app/grading"
	"github.com/JORO-NIMO/rms/app/models"
)

// Ingester drives the row-by-row import pipeline: normalize, resolve
// references, grade (for marks), persist. Each row is attempted exactly
// once and failures are isolated to the row that caused them.
type Ingester struct {
	repo     Repository
	resolver *Resolver
	scale    grading.Scale
}

func NewIngester(repo Repository) *Ingester {
	return &Ingester{
		repo:     repo,
		resolver: NewResolver(repo),
		scale:    grading.DefaultScale,
	}
}

// Ingest processes the dataset strictly in input order and returns the batch
// report. The artifact is released exactly once on every path, including an
// empty dataset; a release failure is logged and never masks row results.
func (ing *Ingester) Ingest(ctx context.Context, rows []RawRow, mode Mode, artifact Artifact) *Report {
	defer func() {
		if artifact == nil {
			return
		}
		if err := artifact.Release(); err != nil {
			log.Printf("Failed to release import artifact: %v", err)
		}
	}()

	var created []any
	var failures []RowFailure

	for i, raw := range rows {
		record, err := ing.processRow(ctx, raw, mode)
		if err != nil {
			failures = append(failures, RowFailure{Row: i + 2, Error: err.Error()})
			continue
		}
		created = append(created, record)
	}

	return Summarize(created, failures)
}

func (ing *Ingester) processRow(ctx context.Context, raw RawRow, mode Mode) (any, error) {
	switch mode {
	case ModeStudents:
		return ing.processStudentRow(ctx, raw)
	case ModeMarks:
		return ing.processMarkRow(ctx, raw)
	default:
		return nil, fmt.Errorf("unknown import mode %q", mode)
	}
}

func (ing *Ingester) processStudentRow(ctx context.Context, raw RawRow) (any, error) {
	row, err := NormalizeStudent(raw)
	if err != nil {
		return nil, err
	}

	class, _, err := ing.resolver.ResolveClass(ctx, row.ClassName)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		FirstName:     row.FirstName,
		LastName:      row.LastName,
		Gender:        models.Gender(row.Gender),
		DOB:           row.DOB,
		ClassID:       &class.ID,
		ParentContact: row.ParentContact,
		ParentEmail:   row.ParentEmail,
	}
	if row.AdmissionNo != "" {
		admissionNo := row.AdmissionNo
		student.AdmissionNo = &admissionNo
	}

	if err := ing.repo.CreateStudent(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

func (ing *Ingester) processMarkRow(ctx context.Context, raw RawRow) (any, error) {
	row, err := NormalizeMark(raw)
	if err != nil {
		return nil, err
	}

	refs, err := ing.resolver.ResolveMarkRefs(ctx, row)
	if err != nil {
		return nil, err
	}

	mark := &models.Mark{
		StudentID:    refs.Student.ID,
		SubjectID:    refs.Subject.ID,
		AssessmentID: refs.Assessment.ID,
		Score:        row.Score,
		Grade:        grading.Grade(row.Score, ing.scale),
		Comment:      row.Comment,
	}

	if err := ing.repo.CreateMark(ctx, mark); err != nil {
		return nil, err
	}
	return mark, nil
}
