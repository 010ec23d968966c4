package models

import "time"

type Student struct {
	ID            string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	AdmissionNo   *string    `json:"admission_no,omitempty" gorm:"uniqueIndex" validate:"omitempty"`
	FirstName     string     `json:"first_name" gorm:"not null" validate:"required"`
	LastName      string     `json:"last_name,omitempty"`
	Gender        Gender     `json:"gender,omitempty" validate:"omitempty,oneof=Male Female Other"`
	DOB           *time.Time `json:"dob,omitempty"`
	ClassID       *string    `json:"class_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	ParentContact string     `json:"parent_contact,omitempty"`
	ParentEmail   string     `json:"parent_email,omitempty" validate:"omitempty,email"`
	CreatedAt     time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	Class         *Class     `json:"class,omitempty" gorm:"foreignKey:ClassID;references:ID"`
	Marks         []*Mark    `json:"marks,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}
