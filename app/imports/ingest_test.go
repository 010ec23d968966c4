package imports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JORO-NIMO/rms/app/models"
)

func studentRows() []RawRow {
	return []RawRow{
		{"first_name": "Aisha", "last_name": "Nakato", "class_name": "S1 East", "admission_no": "ADM-001"},
		{"first_name": "Brian", "class_name": "S1 East", "admission_no": "ADM-003"},
		{"last_name": "Okello", "class_name": "S1 East"},
	}
}

func TestIngestStudentsIsolatesRowFailures(t *testing.T) {
	repo := &memRepo{}
	art := &spyArtifact{}

	report := NewIngester(repo).Ingest(context.Background(), studentRows(), ModeStudents, art)

	assert.Equal(t, 2, report.Successes)
	require.Len(t, report.Errors, 1)
	// The row at zero-indexed position 2 is spreadsheet line 4 (header row
	// plus 1-indexing).
	assert.Equal(t, RowFailure{Row: 4, Error: "First name required"}, report.Errors[0])
	assert.Equal(t, 3, report.Successes+len(report.Errors))
	assert.Equal(t, 1, art.releases)
}

func TestIngestStudentsSharesLazilyCreatedClass(t *testing.T) {
	repo := &memRepo{}

	report := NewIngester(repo).Ingest(context.Background(), []RawRow{
		{"first_name": "Aisha", "class_name": "S4 West"},
		{"first_name": "Brian", "class_name": "S4 West"},
	}, ModeStudents, &spyArtifact{})

	assert.Equal(t, 2, report.Successes)
	require.Len(t, repo.classes, 1)
	for _, s := range repo.students {
		require.NotNil(t, s.ClassID)
		assert.Equal(t, repo.classes[0].ID, *s.ClassID)
	}
}

func TestIngestIsNotIdempotent(t *testing.T) {
	// No upsert: the same dataset imported twice creates duplicates.
	repo := &memRepo{}
	ing := NewIngester(repo)
	rows := []RawRow{
		{"first_name": "Aisha", "class_name": "S1"},
		{"first_name": "Brian", "class_name": "S1"},
	}

	first := ing.Ingest(context.Background(), rows, ModeStudents, &spyArtifact{})
	second := ing.Ingest(context.Background(), rows, ModeStudents, &spyArtifact{})

	assert.Equal(t, 2, first.Successes)
	assert.Equal(t, 2, second.Successes)
	assert.Len(t, repo.students, 4)
	assert.Len(t, repo.classes, 1)
}

func TestIngestMarksComputesGrade(t *testing.T) {
	repo := markFixture()
	art := &spyArtifact{}

	report := NewIngester(repo).Ingest(context.Background(), []RawRow{
		{"admission_no": "ADM-010", "subject_code": "MTC", "assessment_name": "Mid Term", "term": "Term 1", "score": "82"},
	}, ModeMarks, art)

	assert.Equal(t, 1, report.Successes)
	require.Len(t, repo.marks, 1)
	assert.Equal(t, "C3", repo.marks[0].Grade)
	assert.Equal(t, 82.0, repo.marks[0].Score)
	assert.Equal(t, "student-1", repo.marks[0].StudentID)
	assert.Equal(t, 1, art.releases)
}

func TestIngestMarksSubjectNotFoundCreatesNoMark(t *testing.T) {
	repo := markFixture()

	report := NewIngester(repo).Ingest(context.Background(), []RawRow{
		{"admission_no": "ADM-010", "subject_code": "NOPE", "assessment_name": "Mid Term", "term": "Term 1", "score": "60"},
	}, ModeMarks, &spyArtifact{})

	assert.Equal(t, 0, report.Successes)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0].Error, "Subject not found")
	assert.Empty(t, repo.marks)
}

func TestIngestMarksGradeNeverTrustedFromInput(t *testing.T) {
	repo := markFixture()

	NewIngester(repo).Ingest(context.Background(), []RawRow{
		{"admission_no": "ADM-010", "subject_code": "MTC", "assessment_name": "Mid Term", "term": "Term 1", "score": "40", "grade": "D1"},
	}, ModeMarks, &spyArtifact{})

	require.Len(t, repo.marks, 1)
	assert.Equal(t, "F9", repo.marks[0].Grade)
}

func TestIngestEmptyDatasetReleasesArtifactOnce(t *testing.T) {
	art := &spyArtifact{}

	report := NewIngester(&memRepo{}).Ingest(context.Background(), nil, ModeStudents, art)

	assert.Equal(t, 0, report.Successes)
	assert.Empty(t, report.Errors)
	assert.Equal(t, 1, art.releases)
}

func TestIngestReleaseFailureDoesNotMaskResults(t *testing.T) {
	art := &spyArtifact{err: assert.AnError}

	report := NewIngester(&memRepo{}).Ingest(context.Background(), []RawRow{
		{"first_name": "Aisha", "class_name": "S1"},
	}, ModeStudents, art)

	assert.Equal(t, 1, report.Successes)
	assert.Equal(t, 1, art.releases)
}

func TestIngestNilArtifact(t *testing.T) {
	report := NewIngester(&memRepo{}).Ingest(context.Background(), []RawRow{
		{"first_name": "Aisha", "class_name": "S1"},
	}, ModeStudents, nil)

	assert.Equal(t, 1, report.Successes)
}

func TestIngestDuplicateAdmissionNoIsRowScoped(t *testing.T) {
	repo := &memRepo{}

	report := NewIngester(repo).Ingest(context.Background(), []RawRow{
		{"first_name": "Aisha", "class_name": "S1", "admission_no": "ADM-001"},
		{"first_name": "Brian", "class_name": "S1", "admission_no": "ADM-001"},
		{"first_name": "Joan", "class_name": "S1", "admission_no": "ADM-002"},
	}, ModeStudents, &spyArtifact{})

	assert.Equal(t, 2, report.Successes)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, 3, report.Errors[0].Row)
}

func TestIngestReportDetailsCarryCreatedRecords(t *testing.T) {
	repo := &memRepo{}

	report := NewIngester(repo).Ingest(context.Background(), []RawRow{
		{"first_name": "Aisha", "class_name": "S1", "gender": "Female"},
	}, ModeStudents, &spyArtifact{})

	require.Len(t, report.Details.Successes, 1)
	student, ok := report.Details.Successes[0].(*models.Student)
	require.True(t, ok)
	assert.Equal(t, "Aisha", student.FirstName)
	assert.Equal(t, models.Female, student.Gender)
}

func TestIngestUnknownMode(t *testing.T) {
	report := NewIngester(&memRepo{}).Ingest(context.Background(), []RawRow{
		{"first_name": "Aisha", "class_name": "S1"},
	}, Mode("exams"), &spyArtifact{})

	assert.Equal(t, 0, report.Successes)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0].Error, "unknown import mode")
}
