package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/JORO-NIMO/rms/app/models"
)

// StudentFilters represents filtering options for student listings.
type StudentFilters struct {
	ClassID string
	Name    string
	Limit   int
	Offset  int
}

// MarkFilters represents filtering options for mark listings.
type MarkFilters struct {
	ClassID      string
	SubjectID    string
	AssessmentID string
}

func GetSchoolByCode(db *sql.DB, code string) (*models.School, error) {
	school := &models.School{}
	query := `SELECT id, code, name, created_at, updated_at FROM schools WHERE code = $1`

	err := db.QueryRow(query, code).Scan(&school.ID, &school.Code, &school.Name, &school.CreatedAt, &school.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return school, nil
}

func CreateSchool(db *sql.DB, school *models.School) error {
	query := `INSERT INTO schools (code, name) VALUES ($1, $2) RETURNING id, created_at, updated_at`
	return db.QueryRow(query, school.Code, school.Name).Scan(&school.ID, &school.CreatedAt, &school.UpdatedAt)
}

func GetUserByEmail(db *sql.DB, email, schoolID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, name, role, school_id, is_active, last_login, created_at, updated_at
			  FROM users WHERE email = $1 AND school_id = $2`

	err := db.QueryRow(query, email, schoolID).Scan(
		&user.ID, &user.Email, &user.Password, &user.Name, &user.Role,
		&user.SchoolID, &user.IsActive, &user.LastLogin, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func CreateUser(db *sql.DB, user *models.User) error {
	query := `INSERT INTO users (email, password, name, role, school_id)
			  VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at`
	return db.QueryRow(query, user.Email, user.Password, user.Name, user.Role, user.SchoolID).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func UpdateLastLogin(db *sql.DB, userID string) error {
	_, err := db.Exec(`UPDATE users SET last_login = NOW(), updated_at = NOW() WHERE id = $1`, userID)
	return err
}

// GetStudents returns a filtered page of students plus the total count for
// the filter.
func GetStudents(db *sql.DB, filters StudentFilters) ([]*models.Student, int, error) {
	where := []string{"1=1"}
	args := []interface{}{}

	if filters.ClassID != "" {
		args = append(args, filters.ClassID)
		where = append(where, fmt.Sprintf("s.class_id = $%d", len(args)))
	}
	if filters.Name != "" {
		args = append(args, "%"+filters.Name+"%")
		where = append(where, fmt.Sprintf("(s.first_name ILIKE $%d OR s.last_name ILIKE $%d)", len(args), len(args)))
	}
	whereClause := strings.Join(where, " AND ")

	var total int
	countQuery := `SELECT COUNT(*) FROM students s WHERE ` + whereClause
	if err := db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT s.id, s.admission_no, s.first_name, s.last_name, s.gender, s.dob, s.class_id,
			  s.parent_contact, s.parent_email, s.created_at, s.updated_at, c.name
			  FROM students s LEFT JOIN classes c ON s.class_id = c.id
			  WHERE ` + whereClause + ` ORDER BY s.first_name, s.last_name`
	if filters.Limit > 0 {
		args = append(args, filters.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, filters.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		st := &models.Student{}
		var lastName, gender, parentContact, parentEmail, className sql.NullString
		if err := rows.Scan(
			&st.ID, &st.AdmissionNo, &st.FirstName, &lastName, &gender, &st.DOB, &st.ClassID,
			&parentContact, &parentEmail, &st.CreatedAt, &st.UpdatedAt, &className,
		); err != nil {
			return nil, 0, err
		}
		st.LastName = lastName.String
		st.Gender = models.Gender(gender.String)
		st.ParentContact = parentContact.String
		st.ParentEmail = parentEmail.String
		if st.ClassID != nil {
			st.Class = &models.Class{ID: *st.ClassID, Name: className.String}
		}
		students = append(students, st)
	}
	return students, total, rows.Err()
}

func GetStudentByID(db *sql.DB, id string) (*models.Student, error) {
	st := &models.Student{}
	query := `SELECT s.id, s.admission_no, s.first_name, s.last_name, s.gender, s.dob, s.class_id,
			  s.parent_contact, s.parent_email, s.created_at, s.updated_at, c.name
			  FROM students s LEFT JOIN classes c ON s.class_id = c.id
			  WHERE s.id = $1`

	var lastName, gender, parentContact, parentEmail, className sql.NullString
	err := db.QueryRow(query, id).Scan(
		&st.ID, &st.AdmissionNo, &st.FirstName, &lastName, &gender, &st.DOB, &st.ClassID,
		&parentContact, &parentEmail, &st.CreatedAt, &st.UpdatedAt, &className,
	)
	if err != nil {
		return nil, err
	}
	st.LastName = lastName.String
	st.Gender = models.Gender(gender.String)
	st.ParentContact = parentContact.String
	st.ParentEmail = parentEmail.String
	if st.ClassID != nil {
		st.Class = &models.Class{ID: *st.ClassID, Name: className.String}
	}
	return st, nil
}

func UpdateStudent(db *sql.DB, student *models.Student) error {
	query := `UPDATE students SET admission_no = $1, first_name = $2, last_name = $3, gender = $4,
			  dob = $5, class_id = $6, parent_contact = $7, parent_email = $8, updated_at = NOW()
			  WHERE id = $9 RETURNING updated_at`

	return db.QueryRow(query,
		student.AdmissionNo, student.FirstName, nullable(student.LastName), nullable(string(student.Gender)),
		student.DOB, student.ClassID, nullable(student.ParentContact), nullable(student.ParentEmail),
		student.ID,
	).Scan(&student.UpdatedAt)
}

func DeleteStudent(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func GetMarks(db *sql.DB, filters MarkFilters) ([]*models.Mark, error) {
	where := []string{"1=1"}
	args := []interface{}{}

	if filters.ClassID != "" {
		args = append(args, filters.ClassID)
		where = append(where, fmt.Sprintf("s.class_id = $%d", len(args)))
	}
	if filters.SubjectID != "" {
		args = append(args, filters.SubjectID)
		where = append(where, fmt.Sprintf("m.subject_id = $%d", len(args)))
	}
	if filters.AssessmentID != "" {
		args = append(args, filters.AssessmentID)
		where = append(where, fmt.Sprintf("m.assessment_id = $%d", len(args)))
	}

	query := `SELECT m.id, m.student_id, m.subject_id, m.assessment_id, m.score, m.grade, m.comment,
			  m.created_at, m.updated_at, s.first_name, s.last_name, sub.code, sub.name, a.name, a.term
			  FROM marks m
			  JOIN students s ON m.student_id = s.id
			  JOIN subjects sub ON m.subject_id = sub.id
			  JOIN assessments a ON m.assessment_id = a.id
			  WHERE ` + strings.Join(where, " AND ") + ` ORDER BY m.created_at DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var marks []*models.Mark
	for rows.Next() {
		m := &models.Mark{Student: &models.Student{}, Subject: &models.Subject{}, Assessment: &models.Assessment{}}
		var comment, lastName sql.NullString
		if err := rows.Scan(
			&m.ID, &m.StudentID, &m.SubjectID, &m.AssessmentID, &m.Score, &m.Grade, &comment,
			&m.CreatedAt, &m.UpdatedAt, &m.Student.FirstName, &lastName,
			&m.Subject.Code, &m.Subject.Name, &m.Assessment.Name, &m.Assessment.Term,
		); err != nil {
			return nil, err
		}
		m.Comment = comment.String
		m.Student.LastName = lastName.String
		m.Student.ID = m.StudentID
		m.Subject.ID = m.SubjectID
		m.Assessment.ID = m.AssessmentID
		marks = append(marks, m)
	}
	return marks, rows.Err()
}

func GetMarkByID(db *sql.DB, id string) (*models.Mark, error) {
	m := &models.Mark{}
	query := `SELECT id, student_id, subject_id, assessment_id, score, grade, comment, created_at, updated_at
			  FROM marks WHERE id = $1`

	var comment sql.NullString
	err := db.QueryRow(query, id).Scan(
		&m.ID, &m.StudentID, &m.SubjectID, &m.AssessmentID, &m.Score, &m.Grade, &comment,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	m.Comment = comment.String
	return m, nil
}

func UpdateMark(db *sql.DB, mark *models.Mark) error {
	query := `UPDATE marks SET score = $1, grade = $2, comment = $3, updated_at = NOW()
			  WHERE id = $4 RETURNING updated_at`
	return db.QueryRow(query, mark.Score, mark.Grade, nullable(mark.Comment), mark.ID).Scan(&mark.UpdatedAt)
}
