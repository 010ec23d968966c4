package imports

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Mode selects which field set an import batch carries.
type Mode string

const (
	ModeStudents Mode = "students"
	ModeMarks    Mode = "marks"
)

// RawRow is a decoded spreadsheet row keyed by column header. Values are
// whatever the decoder produced, typically strings or numbers.
type RawRow map[string]any

// Accepted column headers per canonical field, tried in order. Header
// matching is case-sensitive.
var (
	studentAdmissionAliases = []string{"admission_no", "Admission No", "AdmNo"}
	firstNameAliases        = []string{"first_name", "FirstName", "First Name"}
	lastNameAliases         = []string{"last_name", "LastName", "Surname"}
	dobAliases              = []string{"dob", "DOB"}
	genderAliases           = []string{"gender", "Gender"}
	classNameAliases        = []string{"class_name", "ClassName", "Class"}
	parentContactAliases    = []string{"parent_contact", "ParentContact", "Parent Phone"}
	parentEmailAliases      = []string{"parent_email", "ParentEmail"}

	markAdmissionAliases = []string{"admission_no", "AdmissionNo"}
	subjectCodeAliases   = []string{"subject_code", "SubjectCode", "Subject"}
	assessmentAliases    = []string{"assessment_name", "AssessmentName"}
	scoreAliases         = []string{"score", "Score"}
	termAliases          = []string{"term", "Term"}
	yearAliases          = []string{"year", "Year"}
	commentAliases       = []string{"comment", "Comment"}
)

var dobLayouts = []string{"2006-01-02", "02/01/2006", "2006/01/02"}

// StudentRow is a normalized student-import row.
type StudentRow struct {
	AdmissionNo   string
	FirstName     string
	LastName      string
	Gender        string
	DOB           *time.Time
	ClassName     string
	ParentContact string
	ParentEmail   string
}

// MarkRow is a normalized mark-import row.
type MarkRow struct {
	AdmissionNo    string
	SubjectCode    string
	AssessmentName string
	Term           string
	Year           string
	Score          float64
	Comment        string
}

// NormalizeStudent extracts a StudentRow from a raw row. First name and a
// class reference are mandatory; everything else is optional.
func NormalizeStudent(raw RawRow) (*StudentRow, error) {
	row := &StudentRow{
		AdmissionNo:   stringField(raw, studentAdmissionAliases),
		FirstName:     stringField(raw, firstNameAliases),
		LastName:      stringField(raw, lastNameAliases),
		Gender:        stringField(raw, genderAliases),
		ClassName:     stringField(raw, classNameAliases),
		ParentContact: stringField(raw, parentContactAliases),
		ParentEmail:   stringField(raw, parentEmailAliases),
	}

	if row.FirstName == "" {
		return nil, errors.New("First name required")
	}
	if row.ClassName == "" {
		return nil, errors.New("Class required")
	}

	if s := stringField(raw, dobAliases); s != "" {
		dob, err := parseDate(s)
		if err != nil {
			return nil, errors.New("Invalid date of birth")
		}
		row.DOB = &dob
	}

	return row, nil
}

// NormalizeMark extracts a MarkRow from a raw row. Admission number, subject,
// assessment name and score are mandatory. A present-but-zero score is valid
// and distinct from a missing one.
func NormalizeMark(raw RawRow) (*MarkRow, error) {
	row := &MarkRow{
		AdmissionNo:    stringField(raw, markAdmissionAliases),
		SubjectCode:    stringField(raw, subjectCodeAliases),
		AssessmentName: stringField(raw, assessmentAliases),
		Term:           stringField(raw, termAliases),
		Year:           stringField(raw, yearAliases),
		Comment:        stringField(raw, commentAliases),
	}

	rawScore := stringField(raw, scoreAliases)
	if row.AdmissionNo == "" || row.SubjectCode == "" || row.AssessmentName == "" || rawScore == "" {
		return nil, errors.New("Missing required fields")
	}

	score, err := strconv.ParseFloat(rawScore, 64)
	if err != nil {
		return nil, errors.New("Invalid score")
	}
	row.Score = score

	return row, nil
}

// stringField returns the first non-empty value among the aliases, as a
// trimmed string. Numeric cell values are rendered without an exponent, so a
// numeric zero survives as "0".
func stringField(raw RawRow, aliases []string) string {
	for _, key := range aliases {
		v, ok := raw[key]
		if !ok {
			continue
		}
		if s := asString(v); s != "" {
			return s
		}
	}
	return ""
}

func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", t))
	}
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dobLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
