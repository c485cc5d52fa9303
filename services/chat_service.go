package services

import (
	"time"

	"backend/apperror"
	"backend/models"

	"gorm.io/gorm"
)

// The stored transcript is capped at the most recent 100 messages. This is
// an intentional truncation policy: oldest messages are dropped first.
const chatHistoryLimit = 100

type ChatService struct {
	db *gorm.DB
}

func NewChatService(db *gorm.DB) *ChatService {
	return &ChatService{db: db}
}

// TrimHistory keeps the last max messages of a transcript.
func TrimHistory(msgs []models.ChatMessage, max int) []models.ChatMessage {
	if len(msgs) <= max {
		return msgs
	}
	return msgs[len(msgs)-max:]
}

func ValidateMessages(msgs []models.ChatMessage) error {
	for _, m := range msgs {
		if m.Role != "user" && m.Role != "assistant" {
			return apperror.Validation("role", "role must be 'user' or 'assistant'")
		}
	}
	return nil
}

func (s *ChatService) History(userID uint) ([]models.ChatMessage, error) {
	var msgs []models.ChatMessage
	err := s.db.Where("user_id = ?", userID).Order("id ASC").Find(&msgs).Error
	if err != nil {
		return nil, apperror.Upstream("load chat history", err)
	}
	return msgs, nil
}

// ReplaceHistory swaps the stored transcript for the submitted one, capped
// to the last 100 messages. The delete and insert run in one transaction;
// a failure leaves the previous transcript untouched.
func (s *ChatService) ReplaceHistory(userID uint, msgs []models.ChatMessage) ([]models.ChatMessage, error) {
	if err := ValidateMessages(msgs); err != nil {
		return nil, err
	}
	msgs = TrimHistory(msgs, chatHistoryLimit)

	now := time.Now()
	for i := range msgs {
		msgs[i].ID = 0
		msgs[i].UserID = userID
		if msgs[i].Timestamp.IsZero() {
			msgs[i].Timestamp = now
		}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.ChatMessage{}).Error; err != nil {
			return err
		}
		if len(msgs) == 0 {
			return nil
		}
		return tx.Create(&msgs).Error
	})
	if err != nil {
		return nil, apperror.Upstream("save chat history", err)
	}
	return msgs, nil
}

func (s *ChatService) ClearHistory(userID uint) error {
	err := s.db.Where("user_id = ?", userID).Delete(&models.ChatMessage{}).Error
	if err != nil {
		return apperror.Upstream("clear chat history", err)
	}
	return nil
}
