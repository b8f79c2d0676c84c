package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/eco4-survey-crm/dto"
	"github.com/eco4-survey-crm/lib/realtime"
	"github.com/eco4-survey-crm/models"
	"github.com/eco4-survey-crm/repositories"
)

// ErrSurveyNotFound is returned when the requested survey id does not exist
var ErrSurveyNotFound = errors.New("survey not found")

// SurveyService handles business logic for surveys. Every successful mutation
// broadcasts an invalidation event; the broadcast never blocks and never
// affects the outcome returned to the caller.
type SurveyService struct {
	surveyRepo *repositories.SurveyRepository
	detailRepo *repositories.SurveyDetailRepository
	hub        *realtime.Hub
}

// NewSurveyService creates a new survey service instance
func NewSurveyService(surveyRepo *repositories.SurveyRepository, detailRepo *repositories.SurveyDetailRepository, hub *realtime.Hub) *SurveyService {
	return &SurveyService{
		surveyRepo: surveyRepo,
		detailRepo: detailRepo,
		hub:        hub,
	}
}

// ListSurveys retrieves all surveys, newest first
func (s *SurveyService) ListSurveys() ([]models.Survey, error) {
	surveys, err := s.surveyRepo.FindAll()
	if err != nil {
		return nil, err
	}
	if surveys == nil {
		surveys = []models.Survey{}
	}
	return surveys, nil
}

// GetSurvey retrieves a survey by ID together with all its detail rows
func (s *SurveyService) GetSurvey(id string) (dto.SurveyWithDetails, error) {
	survey, err := s.surveyRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.SurveyWithDetails{}, ErrSurveyNotFound
		}
		return dto.SurveyWithDetails{}, err
	}

	details, err := s.detailRepo.FindBySurveyID(id)
	if err != nil {
		return dto.SurveyWithDetails{}, err
	}
	if details == nil {
		details = []models.SurveyDetail{}
	}

	return dto.SurveyWithDetails{
		Survey:  survey,
		Details: details,
	}, nil
}

// CreateSurvey stores a new survey with a fresh id, pending status and equal
// creation/update timestamps, and returns the generated id
func (s *SurveyService) CreateSurvey(req dto.CreateSurveyRequest) (string, error) {
	now := time.Now()
	survey := models.Survey{
		ID:                   uuid.NewString(),
		CustomerName:         req.CustomerName,
		CustomerEmail:        req.CustomerEmail,
		CustomerPhone:        req.CustomerPhone,
		PropertyAddress:      req.PropertyAddress,
		PropertyType:         req.PropertyType,
		CurrentHeatingSystem: req.CurrentHeatingSystem,
		SurveyDate:           req.SurveyDate,
		SurveyorName:         req.SurveyorName,
		Status:               models.StatusPending,
		Notes:                req.Notes,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	created, err := s.surveyRepo.Create(survey)
	if err != nil {
		return "", err
	}

	s.hub.Broadcast(realtime.Event{
		Name:    realtime.EventSurveyCreated,
		ID:      created.ID,
		Message: "New survey created",
	})

	return created.ID, nil
}

// UpdateSurvey overwrites all mutable fields of an existing survey. Fields
// omitted from the request are written back as empty.
func (s *SurveyService) UpdateSurvey(id string, req dto.UpdateSurveyRequest) error {
	survey, err := s.surveyRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSurveyNotFound
		}
		return err
	}

	survey.CustomerName = req.CustomerName
	survey.CustomerEmail = req.CustomerEmail
	survey.CustomerPhone = req.CustomerPhone
	survey.PropertyAddress = req.PropertyAddress
	survey.PropertyType = req.PropertyType
	survey.CurrentHeatingSystem = req.CurrentHeatingSystem
	survey.SurveyDate = req.SurveyDate
	survey.SurveyorName = req.SurveyorName
	survey.Status = req.Status
	survey.Notes = req.Notes
	survey.UpdatedAt = time.Now()

	if err := s.surveyRepo.Update(survey); err != nil {
		return err
	}

	s.hub.Broadcast(realtime.Event{
		Name:    realtime.EventSurveyUpdated,
		ID:      id,
		Message: "Survey updated",
	})

	return nil
}

// DeleteSurvey removes a survey and all its detail rows in one transaction
func (s *SurveyService) DeleteSurvey(id string) error {
	exists, err := s.surveyRepo.Exists(id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrSurveyNotFound
	}

	if err := s.surveyRepo.Delete(id); err != nil {
		return err
	}

	s.hub.Broadcast(realtime.Event{
		Name:    realtime.EventSurveyDeleted,
		ID:      id,
		Message: "Survey deleted",
	})

	return nil
}

// AddSurveyDetail attaches a per-room finding to an existing survey and
// returns the generated detail id
func (s *SurveyService) AddSurveyDetail(surveyID string, req dto.AddSurveyDetailRequest) (string, error) {
	exists, err := s.surveyRepo.Exists(surveyID)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", ErrSurveyNotFound
	}

	detail := models.SurveyDetail{
		ID:                      uuid.NewString(),
		SurveyID:                surveyID,
		RoomName:                req.RoomName,
		RoomType:                req.RoomType,
		CurrentInsulation:       req.CurrentInsulation,
		RecommendedImprovements: req.RecommendedImprovements,
		EstimatedCost:           req.EstimatedCost,
		PotentialSavings:        req.PotentialSavings,
		CreatedAt:               time.Now(),
	}

	created, err := s.detailRepo.Create(detail)
	if err != nil {
		return "", err
	}

	s.hub.Broadcast(realtime.Event{
		Name:     realtime.EventSurveyDetailAdded,
		ID:       created.ID,
		SurveyID: surveyID,
		Message:  "Survey detail added",
	})

	return created.ID, nil
}
