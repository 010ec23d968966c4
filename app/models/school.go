package models

import "time"

// School is the root of the multi-tenant scope. The 4-character code is the
// lookup key at login time.
type School struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Code      string    `json:"code" gorm:"uniqueIndex;not null;type:varchar(4)" validate:"required,len=4"`
	Name      string    `json:"name" gorm:"not null" validate:"required"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
