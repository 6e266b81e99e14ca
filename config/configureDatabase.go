package config

import (
	"fmt"
	"log"

	"dealership-backend/db/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// allModels defines all models that should be migrated.
// This is the only place you need to add new models.
var allModels = []interface{}{
	&models.User{},
	&models.Product{},
	&models.Lead{},
	&models.InternalCosting{},
	&models.Quotation{},
	&models.ServiceBooking{},
	&models.MediaDocument{},

	// Legacy enquiry rows, readable until the importer retires them
	&models.Enquiry{},
}

func ConfigureDatabase() *gorm.DB {
	host := GetEnv("DB_HOST")
	user := GetEnv("POSTGRES_USER")
	password := GetEnv("POSTGRES_PASSWORD")
	dbname := GetEnv("POSTGRES_DB")
	port := GetEnv("DB_PORT")
	timezone := GetEnvOr("DB_TIMEZONE", "Asia/Kolkata")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=%s",
		host, user, password, dbname, port, timezone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("[DB-CONNECT] Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(allModels...); err != nil {
		log.Fatalf("[DB-MIGRATE] AutoMigrate failed: %v", err)
	}

	return db
}
