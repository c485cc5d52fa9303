package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type AssistantController struct {
	Assistant *services.AssistantService
}

func NewAssistantController(assistant *services.AssistantService) *AssistantController {
	return &AssistantController{Assistant: assistant}
}

type assistantInput struct {
	Message string `json:"message"`
}

// Ask works for anonymous callers too; a valid token just adds workout
// context to the prompt.
func (ac *AssistantController) Ask(c *gin.Context) {
	userID := c.GetUint("userID")

	var input assistantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := ac.Assistant.Reply(c.Request.Context(), userID, input.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
