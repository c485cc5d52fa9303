package services

import (
	"errors"
	"strings"
	"time"

	"backend/apperror"
	"backend/config"
	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

// RegisterUser creates an account with a bcrypt-hashed password. The email is
// normalized to lowercase before the uniqueness check.
func RegisterUser(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, apperror.Validation("email", "email and password required")
	}

	var existing models.User
	err := config.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, apperror.Validation("email", "Email already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.Upstream("check email", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, apperror.Upstream("hash password", err)
	}
	user := models.User{Email: email, PasswordHash: hash}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, apperror.Upstream("create user", err)
	}
	return &user, nil
}

// AuthenticateUser verifies credentials and mints a session token. Unknown
// email and wrong password return the same error, so callers cannot probe
// which accounts exist.
func AuthenticateUser(email, password string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	err := config.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", apperror.Unauthorized("Invalid credentials")
	}
	if err != nil {
		return nil, "", apperror.Upstream("load user", err)
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", apperror.Unauthorized("Invalid credentials")
	}

	token, err := utils.GenerateJWT(user.ID)
	if err != nil {
		return nil, "", apperror.Upstream("sign token", err)
	}
	return &user, token, nil
}

func EmailExists(email string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var count int64
	err := config.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, apperror.Upstream("check email", err)
	}
	return count > 0, nil
}

type Measurements struct {
	Weight    string     `json:"weight"`
	BodyFat   string     `json:"bodyFat"`
	Other     string     `json:"other"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

func GetMeasurements(userID uint) (*Measurements, error) {
	var user models.User
	err := config.DB.First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("user")
	}
	if err != nil {
		return nil, apperror.Upstream("load user", err)
	}
	return &Measurements{
		Weight:    user.Weight,
		BodyFat:   user.BodyFat,
		Other:     user.MeasurementNotes,
		UpdatedAt: user.MeasurementsUpdatedAt,
	}, nil
}

func SaveMeasurements(userID uint, m Measurements) (*Measurements, error) {
	var user models.User
	err := config.DB.First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("user")
	}
	if err != nil {
		return nil, apperror.Upstream("load user", err)
	}

	now := time.Now()
	updates := map[string]any{
		"weight":                  m.Weight,
		"body_fat":                m.BodyFat,
		"measurement_notes":       m.Other,
		"measurements_updated_at": now,
	}
	if err := config.DB.Model(&user).Updates(updates).Error; err != nil {
		return nil, apperror.Upstream("save measurements", err)
	}
	m.UpdatedAt = &now
	return &m, nil
}
