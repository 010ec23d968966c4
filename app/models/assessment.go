package models

import "time"

// Assessment identifies an exam sitting. The natural key is the triple
// (name, term, class_id).
type Assessment struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name      string    `json:"name" gorm:"not null;index" validate:"required"`
	Term      string    `json:"term" gorm:"not null" validate:"required"`
	ClassID   string    `json:"class_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
	Class     *Class    `json:"class,omitempty" gorm:"foreignKey:ClassID;references:ID"`
}
