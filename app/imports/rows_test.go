package imports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeStudentAliases(t *testing.T) {
	row, err := NormalizeStudent(RawRow{
		"First Name":   "Aisha",
		"Surname":      "Nakato",
		"Class":        "S1 East",
		"AdmNo":        "ADM-001",
		"Gender":       "Female",
		"Parent Phone": "0700123456",
		"ParentEmail":  "parent@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Aisha", row.FirstName)
	assert.Equal(t, "Nakato", row.LastName)
	assert.Equal(t, "S1 East", row.ClassName)
	assert.Equal(t, "ADM-001", row.AdmissionNo)
	assert.Equal(t, "Female", row.Gender)
	assert.Equal(t, "0700123456", row.ParentContact)
	assert.Equal(t, "parent@example.com", row.ParentEmail)
}

func TestNormalizeStudentAliasPriority(t *testing.T) {
	// snake_case wins over the spreadsheet-style header when both are set.
	row, err := NormalizeStudent(RawRow{
		"admission_no": "A-1",
		"Admission No": "A-2",
		"first_name":   "Brian",
		"class_name":   "S2",
	})
	require.NoError(t, err)
	assert.Equal(t, "A-1", row.AdmissionNo)
}

func TestNormalizeStudentMissingFirstName(t *testing.T) {
	_, err := NormalizeStudent(RawRow{"class_name": "S1"})
	require.EqualError(t, err, "First name required")
}

func TestNormalizeStudentMissingClass(t *testing.T) {
	_, err := NormalizeStudent(RawRow{"first_name": "Brian"})
	require.EqualError(t, err, "Class required")
}

func TestNormalizeStudentDOB(t *testing.T) {
	row, err := NormalizeStudent(RawRow{
		"first_name": "Joan",
		"class_name": "S3",
		"dob":        "2010-04-17",
	})
	require.NoError(t, err)
	require.NotNil(t, row.DOB)
	assert.Equal(t, time.Date(2010, 4, 17, 0, 0, 0, 0, time.UTC), *row.DOB)

	_, err = NormalizeStudent(RawRow{
		"first_name": "Joan",
		"class_name": "S3",
		"dob":        "April seventeenth",
	})
	require.EqualError(t, err, "Invalid date of birth")
}

func TestNormalizeMark(t *testing.T) {
	row, err := NormalizeMark(RawRow{
		"AdmissionNo":     "ADM-002",
		"Subject":         "MTC",
		"assessment_name": "Mid Term",
		"Score":           "82",
		"term":            "Term 1",
		"comment":         "steady",
	})
	require.NoError(t, err)
	assert.Equal(t, "ADM-002", row.AdmissionNo)
	assert.Equal(t, "MTC", row.SubjectCode)
	assert.Equal(t, "Mid Term", row.AssessmentName)
	assert.Equal(t, 82.0, row.Score)
	assert.Equal(t, "Term 1", row.Term)
	assert.Equal(t, "steady", row.Comment)
}

func TestNormalizeMarkZeroScoreIsPresent(t *testing.T) {
	// A present-but-zero score is valid and distinct from a missing one.
	row, err := NormalizeMark(RawRow{
		"admission_no":    "ADM-002",
		"subject_code":    "MTC",
		"assessment_name": "Mid Term",
		"score":           float64(0),
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, row.Score)
}

func TestNormalizeMarkMissingFields(t *testing.T) {
	_, err := NormalizeMark(RawRow{
		"admission_no":    "ADM-002",
		"assessment_name": "Mid Term",
		"score":           "50",
	})
	require.EqualError(t, err, "Missing required fields")

	_, err = NormalizeMark(RawRow{
		"admission_no":    "ADM-002",
		"subject_code":    "MTC",
		"assessment_name": "Mid Term",
	})
	require.EqualError(t, err, "Missing required fields")
}

func TestNormalizeMarkInvalidScore(t *testing.T) {
	_, err := NormalizeMark(RawRow{
		"admission_no":    "ADM-002",
		"subject_code":    "MTC",
		"assessment_name": "Mid Term",
		"score":           "eighty",
	})
	require.EqualError(t, err, "Invalid score")
}

func TestNormalizeMarkNumericCell(t *testing.T) {
	row, err := NormalizeMark(RawRow{
		"admission_no":    "ADM-002",
		"subject_code":    "MTC",
		"assessment_name": "Mid Term",
		"score":           76.5,
	})
	require.NoError(t, err)
	assert.Equal(t, 76.5, row.Score)
}
