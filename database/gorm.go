package database

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/eco4-survey-crm/models"
)

// Connect opens the survey store and migrates its schema. A non-empty dbURL
// selects Postgres; otherwise the embedded sqlite file at sqlitePath is used.
// The returned handle is owned by the caller and released with Close.
func Connect(dbURL, sqlitePath string) (*gorm.DB, error) {
	// Configure GORM logger
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  true,
		},
	)

	var dialector gorm.Dialector
	if dbURL != "" {
		dialector = postgres.Open(dbURL)
	} else {
		dialector = sqlite.Open(sqlitePath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		return nil, err
	}

	// Get and configure the underlying SQL DB
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	if dbURL != "" {
		log.Println("✅ Connected to Postgres survey store")
	} else {
		log.Printf("✅ Connected to sqlite survey store at %s", sqlitePath)
	}

	return db, nil
}

// Migrate creates or updates the surveys, survey_details and users tables
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Survey{},
		&models.SurveyDetail{},
		&models.User{},
	)
}

// Close releases the underlying database connection
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
