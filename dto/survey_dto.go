package dto

import (
	"github.com/eco4-survey-crm/models"
)

// CreateSurveyRequest represents the request payload for creating a new survey.
// Status and timestamps are server-assigned and not accepted from the client.
type CreateSurveyRequest struct {
	CustomerName         string `json:"customer_name" binding:"required"`
	CustomerEmail        string `json:"customer_email"`
	CustomerPhone        string `json:"customer_phone"`
	PropertyAddress      string `json:"property_address" binding:"required"`
	PropertyType         string `json:"property_type" binding:"omitempty,oneof=detached semi-detached terraced flat bungalow"`
	CurrentHeatingSystem string `json:"current_heating_system" binding:"omitempty,oneof=gas-boiler oil-boiler electric heat-pump storage-heaters"`
	SurveyDate           string `json:"survey_date"`
	SurveyorName         string `json:"surveyor_name"`
	Notes                string `json:"notes"`
}

// UpdateSurveyRequest represents the request payload for updating an existing
// survey. All mutable fields are overwritten unconditionally: an omitted field
// is written back as empty, there are no partial-patch semantics.
type UpdateSurveyRequest struct {
	CustomerName         string              `json:"customer_name" binding:"required"`
	CustomerEmail        string              `json:"customer_email"`
	CustomerPhone        string              `json:"customer_phone"`
	PropertyAddress      string              `json:"property_address" binding:"required"`
	PropertyType         string              `json:"property_type" binding:"omitempty,oneof=detached semi-detached terraced flat bungalow"`
	CurrentHeatingSystem string              `json:"current_heating_system" binding:"omitempty,oneof=gas-boiler oil-boiler electric heat-pump storage-heaters"`
	SurveyDate           string              `json:"survey_date"`
	SurveyorName         string              `json:"surveyor_name"`
	Status               models.SurveyStatus `json:"status" binding:"required,oneof=pending in-progress completed cancelled"`
	Notes                string              `json:"notes"`
}

// AddSurveyDetailRequest represents the request payload for attaching a
// per-room finding to a survey
type AddSurveyDetailRequest struct {
	RoomName                string   `json:"room_name"`
	RoomType                string   `json:"room_type"`
	CurrentInsulation       string   `json:"current_insulation"`
	RecommendedImprovements string   `json:"recommended_improvements"`
	EstimatedCost           *float64 `json:"estimated_cost"`
	PotentialSavings        *float64 `json:"potential_savings"`
}

// SurveyWithDetails is the response for a single-survey fetch
type SurveyWithDetails struct {
	Survey  models.Survey         `json:"survey"`
	Details []models.SurveyDetail `json:"details"`
}

// CreatedResponse is returned by mutating endpoints that allocate an id
type CreatedResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// MessageResponse is returned by mutating endpoints without a payload
type MessageResponse struct {
	Message string `json:"message"`
}
