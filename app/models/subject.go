package models

import "time"

// Subject is reference data: the import pipeline looks subjects up by code
// (or name) and never creates them.
type Subject struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Code      string    `json:"code" gorm:"uniqueIndex;not null" validate:"required"`
	Name      string    `json:"name" gorm:"not null" validate:"required"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
