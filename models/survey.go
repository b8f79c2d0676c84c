package models

import (
	"time"
)

// SurveyStatus represents the lifecycle state of a survey
type SurveyStatus string

const (
	StatusPending    SurveyStatus = "pending"
	StatusInProgress SurveyStatus = "in-progress"
	StatusCompleted  SurveyStatus = "completed"
	StatusCancelled  SurveyStatus = "cancelled"
)

// Survey represents one energy-efficiency assessment record for a customer/property
type Survey struct {
	ID                   string       `json:"id" gorm:"primaryKey"`
	CustomerName         string       `json:"customer_name" gorm:"not null"`
	CustomerEmail        string       `json:"customer_email"`
	CustomerPhone        string       `json:"customer_phone"`
	PropertyAddress      string       `json:"property_address" gorm:"not null"`
	PropertyType         string       `json:"property_type"`
	CurrentHeatingSystem string       `json:"current_heating_system"`
	SurveyDate           string       `json:"survey_date"`
	SurveyorName         string       `json:"surveyor_name"`
	Status               SurveyStatus `json:"status" gorm:"type:varchar(20);default:'pending'"`
	Notes                string       `json:"notes"`
	CreatedAt            time.Time    `json:"created_at"`
	UpdatedAt            time.Time    `json:"updated_at"`
}
