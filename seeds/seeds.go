package seeds

import (
	"errors"
	"fmt"

	"dealership-backend/config"
	"dealership-backend/db/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func stringPtr(s string) *string {
	return &s
}

// SeedAdminUser creates the bootstrap admin account if no admin exists.
// Credentials come from the environment so nothing secret lives in the
// binary.
func SeedAdminUser(db *gorm.DB) error {
	email := config.GetEnvOr("SEED_ADMIN_EMAIL", "admin@dealership.local")
	password := config.GetEnv("SEED_ADMIN_PASSWORD")
	if password == "" {
		config.Logger.Warn("SEED_ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var existing models.User
	err := db.Where("role = ?", models.AdminRole).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for existing admin: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := models.User{
		FirstName: "System",
		LastName:  "Administrator",
		Email:     email,
		Phone:     config.GetEnvOr("SEED_ADMIN_PHONE", "0000000000"),
		Password:  string(hashed),
		Role:      models.AdminRole,
		Active:    true,
		CreatedBy: "system",
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	config.Logger.Info("Seeded admin user", zap.String("email", email))
	return nil
}

// SeedCatalog loads a starter vehicle lineup when the catalog is empty,
// so a fresh install has something to quote against.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	products := []models.Product{
		{
			ModelName:       "Altura",
			Variant:         stringPtr("ZX Plus"),
			FuelType:        models.FuelPetrol,
			Seating:         5,
			ExShowroomPrice: models.AmountFromInt(750000),
			Description:     stringPtr("Mid-size hatchback, top trim"),
			IsActive:        true,
			CreatedBy:       "system",
		},
		{
			ModelName:       "Altura",
			Variant:         stringPtr("LX"),
			FuelType:        models.FuelPetrol,
			Seating:         5,
			ExShowroomPrice: models.AmountFromInt(620000),
			Description:     stringPtr("Mid-size hatchback, base trim"),
			IsActive:        true,
			CreatedBy:       "system",
		},
		{
			ModelName:       "Terrano 7",
			Variant:         stringPtr("Diesel AT"),
			FuelType:        models.FuelDiesel,
			Seating:         7,
			ExShowroomPrice: models.AmountFromInt(1450000),
			Description:     stringPtr("Three-row SUV with automatic transmission"),
			IsActive:        true,
			CreatedBy:       "system",
		},
		{
			ModelName:       "Volt E",
			FuelType:        models.FuelElectric,
			Seating:         5,
			ExShowroomPrice: models.AmountFromInt(1150000),
			Description:     stringPtr("Compact electric crossover"),
			IsActive:        true,
			CreatedBy:       "system",
		},
	}

	for _, product := range products {
		if err := db.Create(&product).Error; err != nil {
			return fmt.Errorf("failed to seed product %s: %w", product.ModelName, err)
		}
	}

	config.Logger.Info("Seeded vehicle catalog", zap.Int("count", len(products)))
	return nil
}

// SeedAll runs every seeder. Each one is idempotent.
func SeedAll(db *gorm.DB) error {
	if err := SeedAdminUser(db); err != nil {
		return err
	}
	return SeedCatalog(db)
}
