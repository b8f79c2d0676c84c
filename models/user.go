package models

import (
	"time"
)

// User represents a dashboard login credential. The table is provisioned by
// auto-migration but no exposed operation reads or writes it yet.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
