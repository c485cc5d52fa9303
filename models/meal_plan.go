package models

import "time"

type MealPlan struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"-"`
	Title       string    `gorm:"not null" json:"title"`
	Date        time.Time `gorm:"index" json:"date"`
	Plan        string    `gorm:"type:text;not null" json:"plan"`
	Calories    *float64  `json:"calories,omitempty"`
	MealsPerDay *int      `json:"mealsPerDay,omitempty"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
