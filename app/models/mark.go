package models

import "time"

// Mark stores a student's score for a subject in an assessment. Grade is
// derived from the score on the server and never taken from input.
type Mark struct {
	ID           string      `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID    string      `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	SubjectID    string      `json:"subject_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	AssessmentID string      `json:"assessment_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Score        float64     `json:"score" gorm:"not null;type:decimal(5,2)" validate:"gte=0,lte=100"`
	Grade        string      `json:"grade" gorm:"not null"`
	Comment      string      `json:"comment,omitempty"`
	CreatedAt    time.Time   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time   `json:"updated_at" gorm:"autoUpdateTime"`
	Student      *Student    `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
	Subject      *Subject    `json:"subject,omitempty" gorm:"foreignKey:SubjectID;references:ID"`
	Assessment   *Assessment `json:"assessment,omitempty" gorm:"foreignKey:AssessmentID;references:ID"`
}
