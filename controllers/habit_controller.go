package controllers

import (
	"net/http"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type HabitController struct {
	Habits *services.HabitService
}

func NewHabitController(habits *services.HabitService) *HabitController {
	return &HabitController{Habits: habits}
}

func (hc *HabitController) GetLogs(c *gin.Context) {
	userID := c.GetUint("userID")

	logs, err := hc.Habits.ListLogs(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

func (hc *HabitController) SaveLog(c *gin.Context) {
	userID := c.GetUint("userID")

	var entry models.HabitLog
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logs, err := hc.Habits.SaveLog(userID, entry)
	if err != nil {
		respondError(c, err)
		return
	}

	services.EmitEvent(userID, "habit.logged", gin.H{
		"habitId":   entry.HabitID,
		"date":      entry.Date,
		"completed": entry.Completed,
	})
	c.JSON(http.StatusOK, gin.H{"message": "Habit log saved", "logs": logs})
}
