package services

import (
	"errors"
	"fmt"
	"testing"

	"backend/apperror"
	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrimHistory(t *testing.T) {
	msgs := make([]models.ChatMessage, 0, 150)
	for i := 0; i < 150; i++ {
		msgs = append(msgs, models.ChatMessage{MessageID: fmt.Sprintf("m%d", i)})
	}

	trimmed := TrimHistory(msgs, 100)
	require.Len(t, trimmed, 100)
	assert.Equal(t, "m50", trimmed[0].MessageID, "oldest messages are dropped first")
	assert.Equal(t, "m149", trimmed[99].MessageID)

	short := msgs[:10]
	assert.Equal(t, short, TrimHistory(short, 100))
	assert.Empty(t, TrimHistory(nil, 100))
}

func TestValidateMessages(t *testing.T) {
	ok := []models.ChatMessage{
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello"},
	}
	assert.NoError(t, ValidateMessages(ok))

	bad := []models.ChatMessage{{Role: "system", Content: "nope"}}
	assert.True(t, errors.Is(ValidateMessages(bad), apperror.ErrValidation))
}
