package controllers

import (
	"net/http"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	Chat *services.ChatService
}

func NewChatController(chat *services.ChatService) *ChatController {
	return &ChatController{Chat: chat}
}

func (cc *ChatController) GetHistory(c *gin.Context) {
	userID := c.GetUint("userID")

	msgs, err := cc.Chat.History(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"chatHistory": msgs})
}

type chatHistoryInput struct {
	ChatHistory []models.ChatMessage `json:"chatHistory"`
}

func (cc *ChatController) SaveHistory(c *gin.Context) {
	userID := c.GetUint("userID")

	var input chatHistoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msgs, err := cc.Chat.ReplaceHistory(userID, input.ChatHistory)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"chatHistory": msgs})
}

func (cc *ChatController) ClearHistory(c *gin.Context) {
	userID := c.GetUint("userID")

	if err := cc.Chat.ClearHistory(userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Chat history cleared"})
}
