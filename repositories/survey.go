package repositories

import (
	"github.com/eco4-survey-crm/dto"
	"github.com/eco4-survey-crm/models"
	"gorm.io/gorm"
)

// SurveyRepository handles database operations for surveys
type SurveyRepository struct {
	db *gorm.DB
}

// NewSurveyRepository creates a new survey repository over the given store handle
func NewSurveyRepository(db *gorm.DB) *SurveyRepository {
	return &SurveyRepository{db: db}
}

// FindAll retrieves all surveys, newest first
func (r *SurveyRepository) FindAll() ([]models.Survey, error) {
	var surveys []models.Survey
	result := r.db.Order("created_at DESC").Find(&surveys)
	return surveys, result.Error
}

// FindByID retrieves a survey by its ID
func (r *SurveyRepository) FindByID(id string) (models.Survey, error) {
	var survey models.Survey
	result := r.db.First(&survey, "id = ?", id)
	return survey, result.Error
}

// Create inserts a new survey into the database
func (r *SurveyRepository) Create(survey models.Survey) (models.Survey, error) {
	result := r.db.Create(&survey)
	return survey, result.Error
}

// Update overwrites an existing survey
func (r *SurveyRepository) Update(survey models.Survey) error {
	result := r.db.Save(&survey)
	return result.Error
}

// Delete removes a survey together with its detail rows. Both deletes run in
// one transaction so a failure cannot strand orphaned details.
func (r *SurveyRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("survey_id = ?", id).Delete(&models.SurveyDetail{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Survey{}, "id = ?", id)
		return result.Error
	})
}

// Exists checks whether a survey with the given ID is present
func (r *SurveyRepository) Exists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Survey{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Count returns the total number of surveys
func (r *SurveyRepository) Count() (int64, error) {
	var count int64
	result := r.db.Model(&models.Survey{}).Count(&count)
	return count, result.Error
}

// CountByStatus groups surveys by status. Statuses with no surveys do not appear.
func (r *SurveyRepository) CountByStatus() ([]dto.StatusCount, error) {
	var counts []dto.StatusCount
	result := r.db.Model(&models.Survey{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Find(&counts)
	return counts, result.Error
}

// FindRecent retrieves the most recently created surveys, newest first
func (r *SurveyRepository) FindRecent(limit int) ([]models.Survey, error) {
	var surveys []models.Survey
	result := r.db.Order("created_at DESC").Limit(limit).Find(&surveys)
	return surveys, result.Error
}
