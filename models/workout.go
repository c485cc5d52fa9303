package models

import "time"

type Workout struct {
	ID        uint       `gorm:"primarykey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"-"`
	Title     string     `gorm:"not null" json:"title"`
	Date      time.Time  `gorm:"index" json:"date"`
	Notes     string     `json:"notes,omitempty"`
	Exercise  []Exercise `gorm:"foreignKey:WorkoutID;constraint:OnDelete:CASCADE" json:"exercise"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type Exercise struct {
	ID        uint     `gorm:"primarykey" json:"-"`
	WorkoutID uint     `gorm:"index;not null" json:"-"`
	Name      string   `gorm:"not null" json:"name"`
	Sets      int      `gorm:"not null" json:"sets"`
	Reps      int      `gorm:"not null" json:"reps"`
	Weight    *float64 `json:"weight,omitempty"`
}
