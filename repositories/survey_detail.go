package repositories

import (
	"github.com/eco4-survey-crm/models"
	"gorm.io/gorm"
)

// SurveyDetailRepository handles database operations for per-room survey details
type SurveyDetailRepository struct {
	db *gorm.DB
}

// NewSurveyDetailRepository creates a new survey detail repository over the given store handle
func NewSurveyDetailRepository(db *gorm.DB) *SurveyDetailRepository {
	return &SurveyDetailRepository{db: db}
}

// FindBySurveyID retrieves all detail rows belonging to a survey
func (r *SurveyDetailRepository) FindBySurveyID(surveyID string) ([]models.SurveyDetail, error) {
	var details []models.SurveyDetail
	result := r.db.Where("survey_id = ?", surveyID).Find(&details)
	return details, result.Error
}

// Create inserts a new detail row into the database
func (r *SurveyDetailRepository) Create(detail models.SurveyDetail) (models.SurveyDetail, error) {
	result := r.db.Create(&detail)
	return detail, result.Error
}

// CountBySurveyID counts detail rows belonging to a survey
func (r *SurveyDetailRepository) CountBySurveyID(surveyID string) (int64, error) {
	var count int64
	result := r.db.Model(&models.SurveyDetail{}).Where("survey_id = ?", surveyID).Count(&count)
	return count, result.Error
}
