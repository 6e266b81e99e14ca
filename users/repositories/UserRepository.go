package repositories

import (
	"errors"
	"fmt"
	"strings"

	"dealership-backend/apperrors"
	"dealership-backend/db/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(user *models.User) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByPhoneNumber(phone string) (*models.User, error)
	UpdateUser(user *models.User) (*models.User, error)
	DeleteUser(id string) error
	GetAllUsers() ([]models.User, error)
	GetFilteredUsers(pageSize int, offset int, filters map[string]string) ([]models.User, int64, error)
	VerifyPassword(user *models.User, password string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(user *models.User) (*models.User, error) {
	// Duplicate email/phone must come back as a conflict, not a raw
	// driver error.
	var count int64
	if err := r.db.Model(&models.User{}).
		Where("email = ? OR phone = ?", user.Email, user.Phone).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}
	if count > 0 {
		return nil, fmt.Errorf("email or phone already registered: %w", apperrors.ErrConflict)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashed)

	if err := r.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (r *userRepository) GetUserByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("user %s: %w", id, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("LOWER(email) = ?", strings.ToLower(email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("user %s: %w", email, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByPhoneNumber(phone string) (*models.User, error) {
	var user models.User
	err := r.db.Where("phone = ?", phone).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("user %s: %w", phone, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateUser(user *models.User) (*models.User, error) {
	if err := r.db.Save(user).Error; err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

func (r *userRepository) DeleteUser(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.User{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

func (r *userRepository) GetAllUsers() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *userRepository) GetFilteredUsers(pageSize int, offset int, filters map[string]string) ([]models.User, int64, error) {
	query := r.db.Model(&models.User{})

	if role, ok := filters["role"]; ok && role != "" {
		query = query.Where("role = ?", role)
	}
	if branch, ok := filters["branch"]; ok && branch != "" {
		query = query.Where("branch = ?", branch)
	}
	if active, ok := filters["active"]; ok && active != "" {
		query = query.Where("active = ?", active == "true")
	}
	if q, ok := filters["q"]; ok && q != "" {
		like := "%" + strings.ToLower(q) + "%"
		query = query.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ? OR phone LIKE ?",
			like, like, like, like,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	err := query.Order("created_at DESC").Limit(pageSize).Offset(offset).Find(&users).Error
	return users, total, err
}

func (r *userRepository) VerifyPassword(user *models.User, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return fmt.Errorf("invalid credentials: %w", apperrors.ErrForbidden)
	}
	return nil
}
