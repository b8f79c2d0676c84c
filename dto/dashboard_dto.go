package dto

import (
	"github.com/eco4-survey-crm/models"
)

// StatusCount is one row of the surveys-by-status breakdown. Only statuses
// present in the data appear.
type StatusCount struct {
	Status models.SurveyStatus `json:"status"`
	Count  int64               `json:"count"`
}

// DashboardStats represents the dashboard statistics view
type DashboardStats struct {
	TotalSurveys  int64           `json:"totalSurveys"`
	ByStatus      []StatusCount   `json:"byStatus"`
	RecentSurveys []models.Survey `json:"recentSurveys"`
}
