package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`

	// Body measurements, stored as the free-form strings the user typed.
	Weight                string
	BodyFat               string
	MeasurementNotes      string
	MeasurementsUpdatedAt *time.Time
}
