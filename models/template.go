package models

import "time"

type WorkoutTemplate struct {
	ID        uint               `gorm:"primarykey" json:"id"`
	UserID    uint               `gorm:"index;not null" json:"-"`
	Name      string             `gorm:"not null" json:"name"`
	Exercises []TemplateExercise `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE" json:"exercises"`
	CreatedAt time.Time          `json:"createdAt"`
}

type TemplateExercise struct {
	ID         uint     `gorm:"primarykey" json:"-"`
	TemplateID uint     `gorm:"index;not null" json:"-"`
	Name       string   `gorm:"not null" json:"name"`
	Sets       int      `gorm:"not null" json:"sets"`
	Reps       int      `gorm:"not null" json:"reps"`
	Weight     *float64 `json:"weight,omitempty"`
}
