package database

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"coursehub/config"
	"coursehub/models"
)

// Connect opens the configured store and runs migrations. Postgres is
// used when DB_HOST is set, otherwise a local sqlite file.
func Connect() *gorm.DB {
	cfg := config.AppConfig

	var dialector gorm.Dialector
	if cfg.DBHost != "" {
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
		)
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(cfg.DBName)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get database instance")
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	if err := Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}

	if err := Seed(db); err != nil {
		log.Warn().Err(err).Msg("Sample data seeding failed")
	}

	return db
}

// Migrate performs database migrations
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Course{},
		&models.Student{},
		&models.Enrollment{},
		&models.CourseRating{},
		&models.AnalyticsEvent{},
	)
}

// Seed inserts showcase courses when the catalog is empty.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Course{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	samples := []models.Course{
		{
			Title:            "Executive Leadership Mastery",
			Description:      "Comprehensive program for senior leaders focusing on strategic thinking, team management, and organizational transformation.",
			Duration:         "6 months",
			Instructor:       "Dr. Sarah Johnson",
			Category:         "Leadership",
			Price:            2999.0,
			Capacity:         25,
			Enrolled:         18,
			Status:           models.StatusActive,
			Rating:           4.8,
			TotalRatings:     12,
			Prerequisites:    "Management experience required",
			LearningOutcomes: "Strategic thinking, Team leadership, Change management",
			DifficultyLevel:  "advanced",
		},
		{
			Title:            "Women in Leadership Certification",
			Description:      "Empowering women professionals with leadership skills, confidence building, and career advancement strategies.",
			Duration:         "3 months",
			Instructor:       "Michelle Rodriguez",
			Category:         "Leadership",
			Price:            1999.0,
			Capacity:         30,
			Enrolled:         22,
			Status:           models.StatusActive,
			Rating:           4.9,
			TotalRatings:     18,
			Prerequisites:    "None",
			LearningOutcomes: "Leadership confidence, Career planning, Network building",
			DifficultyLevel:  "intermediate",
		},
		{
			Title:            "Digital Transformation Strategy",
			Description:      "Learn to lead digital initiatives and transform organizations in the digital age.",
			Duration:         "4 weeks",
			Instructor:       "Alex Chen",
			Category:         "Technical",
			Price:            1499.0,
			Capacity:         20,
			Enrolled:         15,
			Status:           models.StatusActive,
			Rating:           4.7,
			TotalRatings:     8,
			Prerequisites:    "Basic technology understanding",
			LearningOutcomes: "Digital strategy, Technology leadership, Innovation management",
			DifficultyLevel:  "intermediate",
		},
	}

	return db.Create(&samples).Error
}
