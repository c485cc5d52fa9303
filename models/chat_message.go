package models

import "time"

type ChatMessage struct {
	ID        uint      `gorm:"primarykey" json:"-"`
	UserID    uint      `gorm:"index;not null" json:"-"`
	MessageID string    `json:"id"`
	Role      string    `gorm:"not null" json:"role"` // "user" or "assistant"
	Content   string    `gorm:"type:text" json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
