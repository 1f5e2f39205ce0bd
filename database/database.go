package database

import (
	"fmt"
	"log"
	"time"

	"greenstech/config"
	"greenstech/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes a connection to MySQL. A failed connection is retried
// with a fixed delay instead of exiting, so the service can start ahead of the
// database container.
func ConnectDb() {
	cfg := config.AppConfig

	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local&tls=%s",
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
		cfg.DBTLS,
	)

	var db *gorm.DB
	var err error
	for {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		log.Printf("Failed to connect to MySQL: %v. Retrying in 5s...", err)
		time.Sleep(5 * time.Second)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	// Run database migrations
	runMigrations(db)

	// Save database instance globally
	Database = DbInstance{Db: db}
}

// runMigrations performs database migrations
func runMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.Admin{},
		&models.Hero{},
		&models.Domain{},
		&models.Course{},
		&models.About{},
		&models.TrainerAbout{},
		&models.CareerImpact{},
		&models.Certificate{},
		&models.EnrollCard{},
		&models.EnrollmentRequest{},
		&models.FAQChat{},
		&models.Module{},
		&models.ModuleTopic{},
		&models.Project{},
		&models.ProjectTech{},
		&models.StudentSuccess{},
		&models.StudyMaterial{},
		&models.TechStack{},
		&models.Testimonial{},
		&models.VideoTestimonial{},
		&models.YouTubeShort{},
		&models.Contact{},
		&models.Notice{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}
