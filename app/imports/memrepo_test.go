package imports

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/JORO-NIMO/rms/app/models"
)

// memRepo is an in-memory Repository used by the pipeline tests.
type memRepo struct {
	classes     []*models.Class
	students    []*models.Student
	subjects    []*models.Subject
	assessments []*models.Assessment
	marks       []*models.Mark
}

func (m *memRepo) FindClassByName(_ context.Context, name string) (*models.Class, error) {
	for _, c := range m.classes {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memRepo) CreateClass(_ context.Context, class *models.Class) error {
	class.ID = uuid.New().String()
	m.classes = append(m.classes, class)
	return nil
}

func (m *memRepo) FindStudentByAdmissionNo(_ context.Context, admissionNo string) (*models.Student, error) {
	for _, s := range m.students {
		if s.AdmissionNo != nil && *s.AdmissionNo == admissionNo {
			return s, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memRepo) CreateStudent(_ context.Context, student *models.Student) error {
	if student.AdmissionNo != nil {
		for _, s := range m.students {
			if s.AdmissionNo != nil && *s.AdmissionNo == *student.AdmissionNo {
				return fmt.Errorf("duplicate admission number %s", *student.AdmissionNo)
			}
		}
	}
	student.ID = uuid.New().String()
	m.students = append(m.students, student)
	return nil
}

func (m *memRepo) FindSubjectByCode(_ context.Context, code string) (*models.Subject, error) {
	for _, s := range m.subjects {
		if s.Code == code || s.Name == code {
			return s, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memRepo) FindAssessment(_ context.Context, name, term, classID string) (*models.Assessment, error) {
	for _, a := range m.assessments {
		if a.Name == name && a.Term == term && a.ClassID == classID {
			return a, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memRepo) CreateMark(_ context.Context, mark *models.Mark) error {
	mark.ID = uuid.New().String()
	m.marks = append(m.marks, mark)
	return nil
}

// spyArtifact counts Release calls and can simulate a release failure.
type spyArtifact struct {
	releases int
	err      error
}

func (a *spyArtifact) Release() error {
	a.releases++
	return a.err
}
