package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/JORO-NIMO/rms/app/imports"
	"github.com/JORO-NIMO/rms/app/models"
)

// Store is the Postgres-backed repository consumed by the import pipeline.
type Store struct {
	DB *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{DB: db}
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return imports.ErrNotFound
	}
	return err
}

func (s *Store) FindClassByName(ctx context.Context, name string) (*models.Class, error) {
	c := &models.Class{}
	query := `SELECT id, name, created_at, updated_at FROM classes WHERE name = $1`

	err := s.DB.QueryRowContext(ctx, query, name).Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return c, nil
}

func (s *Store) CreateClass(ctx context.Context, class *models.Class) error {
	query := `INSERT INTO classes (name) VALUES ($1) RETURNING id, created_at, updated_at`
	return s.DB.QueryRowContext(ctx, query, class.Name).Scan(&class.ID, &class.CreatedAt, &class.UpdatedAt)
}

func (s *Store) FindStudentByAdmissionNo(ctx context.Context, admissionNo string) (*models.Student, error) {
	st := &models.Student{}
	query := `SELECT id, admission_no, first_name, last_name, gender, dob, class_id,
			  parent_contact, parent_email, created_at, updated_at
			  FROM students WHERE admission_no = $1`

	var lastName, gender, parentContact, parentEmail sql.NullString
	err := s.DB.QueryRowContext(ctx, query, admissionNo).Scan(
		&st.ID, &st.AdmissionNo, &st.FirstName, &lastName, &gender,
		&st.DOB, &st.ClassID, &parentContact, &parentEmail,
		&st.CreatedAt, &st.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	st.LastName = lastName.String
	st.Gender = models.Gender(gender.String)
	st.ParentContact = parentContact.String
	st.ParentEmail = parentEmail.String
	return st, nil
}

func (s *Store) CreateStudent(ctx context.Context, student *models.Student) error {
	query := `INSERT INTO students
			  (admission_no, first_name, last_name, gender, dob, class_id, parent_contact, parent_email)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id, created_at, updated_at`

	return s.DB.QueryRowContext(ctx, query,
		student.AdmissionNo, student.FirstName, nullable(student.LastName),
		nullable(string(student.Gender)), student.DOB, student.ClassID,
		nullable(student.ParentContact), nullable(student.ParentEmail),
	).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
}

// FindSubjectByCode also accepts the subject name as a fallback key.
func (s *Store) FindSubjectByCode(ctx context.Context, code string) (*models.Subject, error) {
	sub := &models.Subject{}
	query := `SELECT id, code, name, created_at, updated_at FROM subjects
			  WHERE code = $1 OR name = $1 LIMIT 1`

	err := s.DB.QueryRowContext(ctx, query, code).Scan(&sub.ID, &sub.Code, &sub.Name, &sub.CreatedAt, &sub.UpdatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return sub, nil
}

func (s *Store) FindAssessment(ctx context.Context, name, term, classID string) (*models.Assessment, error) {
	a := &models.Assessment{}
	query := `SELECT id, name, term, class_id, created_at, updated_at FROM assessments
			  WHERE name = $1 AND term = $2 AND class_id = $3 LIMIT 1`

	err := s.DB.QueryRowContext(ctx, query, name, term, nullable(classID)).Scan(
		&a.ID, &a.Name, &a.Term, &a.ClassID, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return a, nil
}

func (s *Store) CreateMark(ctx context.Context, mark *models.Mark) error {
	query := `INSERT INTO marks (student_id, subject_id, assessment_id, score, grade, comment)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at, updated_at`

	return s.DB.QueryRowContext(ctx, query,
		mark.StudentID, mark.SubjectID, mark.AssessmentID,
		mark.Score, mark.Grade, nullable(mark.Comment),
	).Scan(&mark.ID, &mark.CreatedAt, &mark.UpdatedAt)
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
