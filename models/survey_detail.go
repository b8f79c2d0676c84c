package models

import (
	"time"
)

// SurveyDetail represents one per-room insulation finding attached to a Survey.
// survey_id is a weak reference: the cascade on survey deletion is an explicit
// transaction in the repository, not a database foreign-key constraint.
type SurveyDetail struct {
	ID                      string    `json:"id" gorm:"primaryKey"`
	SurveyID                string    `json:"survey_id" gorm:"index;not null"`
	RoomName                string    `json:"room_name"`
	RoomType                string    `json:"room_type"`
	CurrentInsulation       string    `json:"current_insulation"`
	RecommendedImprovements string    `json:"recommended_improvements"`
	EstimatedCost           *float64  `json:"estimated_cost"`
	PotentialSavings        *float64  `json:"potential_savings"`
	CreatedAt               time.Time `json:"created_at"`
}
