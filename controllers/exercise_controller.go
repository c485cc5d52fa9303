package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

// ListExercises serves the static exercise library with optional search and
// difficulty filters. No auth; the library is the same for everyone.
func ListExercises(c *gin.Context) {
	exercises := services.SearchExercises(c.Query("search"), c.Query("difficulty"))
	c.JSON(http.StatusOK, gin.H{"exercises": exercises, "total": len(exercises)})
}
