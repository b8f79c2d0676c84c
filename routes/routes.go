package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/eco4-survey-crm/controllers"
	"github.com/eco4-survey-crm/lib/realtime"
	"github.com/eco4-survey-crm/repositories"
	"github.com/eco4-survey-crm/services"
)

// SetupRoutes wires the repositories, services and controllers over the given
// store handle and hub, and registers all API routes
func SetupRoutes(router *gin.Engine, db *gorm.DB, hub *realtime.Hub) {
	surveyRepo := repositories.NewSurveyRepository(db)
	detailRepo := repositories.NewSurveyDetailRepository(db)

	surveyService := services.NewSurveyService(surveyRepo, detailRepo, hub)
	dashboardService := services.NewDashboardService(surveyRepo)

	surveyController := controllers.NewSurveyController(surveyService)
	dashboardController := controllers.NewDashboardController(dashboardService)
	eventsController := controllers.NewEventsController(hub)

	api := router.Group("/api")
	{
		surveys := api.Group("/surveys")
		{
			surveys.GET("", surveyController.GetSurveys)
			surveys.POST("", surveyController.CreateSurvey)
			surveys.GET("/:id", surveyController.GetSurvey)
			surveys.PUT("/:id", surveyController.UpdateSurvey)
			surveys.DELETE("/:id", surveyController.DeleteSurvey)
			surveys.POST("/:id/details", surveyController.AddSurveyDetail)
		}

		api.GET("/dashboard", dashboardController.GetStats)
		api.GET("/events", eventsController.Stream)
		api.GET("/health", controllers.HealthCheck)
	}
}
