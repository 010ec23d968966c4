package models

import "time"

type User struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Email     string     `json:"email" gorm:"not null;index" validate:"required,email"`
	Password  string     `json:"-" gorm:"not null" validate:"required,min=6"`
	Name      string     `json:"name" gorm:"not null" validate:"required"`
	Role      string     `json:"role" gorm:"not null;default:'teacher'" validate:"oneof=admin teacher"`
	SchoolID  string     `json:"school_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	IsActive  bool       `json:"is_active" gorm:"default:true"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	School    *School    `json:"school,omitempty" gorm:"foreignKey:SchoolID;references:ID"`
}
