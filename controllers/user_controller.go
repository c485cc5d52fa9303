package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

func GetMeasurements(c *gin.Context) {
	userID := c.GetUint("userID")

	m, err := services.GetMeasurements(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"measurements": m})
}

func SaveMeasurements(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.Measurements
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := services.SaveMeasurements(userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"measurements": m})
}
