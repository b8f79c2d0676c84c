package services

import (
	"github.com/eco4-survey-crm/dto"
	"github.com/eco4-survey-crm/models"
	"github.com/eco4-survey-crm/repositories"
)

// recentSurveyLimit is how many of the newest surveys the dashboard shows
const recentSurveyLimit = 5

// DashboardService assembles the aggregate statistics view
type DashboardService struct {
	surveyRepo *repositories.SurveyRepository
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(surveyRepo *repositories.SurveyRepository) *DashboardService {
	return &DashboardService{surveyRepo: surveyRepo}
}

// GetStats returns the total survey count, the per-status breakdown and the
// most recently created surveys
func (s *DashboardService) GetStats() (dto.DashboardStats, error) {
	var stats dto.DashboardStats

	total, err := s.surveyRepo.Count()
	if err != nil {
		return stats, err
	}
	stats.TotalSurveys = total

	byStatus, err := s.surveyRepo.CountByStatus()
	if err != nil {
		return stats, err
	}
	if byStatus == nil {
		byStatus = []dto.StatusCount{}
	}
	stats.ByStatus = byStatus

	recent, err := s.surveyRepo.FindRecent(recentSurveyLimit)
	if err != nil {
		return stats, err
	}
	if recent == nil {
		recent = []models.Survey{}
	}
	stats.RecentSurveys = recent

	return stats, nil
}
