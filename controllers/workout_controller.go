package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type WorkoutController struct {
	Workouts *services.WorkoutService
}

func NewWorkoutController(workouts *services.WorkoutService) *WorkoutController {
	return &WorkoutController{Workouts: workouts}
}

func (wc *WorkoutController) List(c *gin.Context) {
	userID := c.GetUint("userID")

	workouts, err := wc.Workouts.List(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"workouts": workouts})
}

func (wc *WorkoutController) Create(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.WorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workout, err := wc.Workouts.Create(userID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	services.EmitEvent(userID, "workout.created", gin.H{
		"id":    workout.ID,
		"title": workout.Title,
		"date":  workout.Date,
	})
	c.JSON(http.StatusCreated, gin.H{"workout": workout})
}

func (wc *WorkoutController) Get(c *gin.Context) {
	userID := c.GetUint("userID")
	id, ok := pathID(c)
	if !ok {
		return
	}

	workout, err := wc.Workouts.Get(userID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"workout": workout})
}

func (wc *WorkoutController) Update(c *gin.Context) {
	userID := c.GetUint("userID")
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input services.WorkoutUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workout, err := wc.Workouts.Update(userID, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"workout": workout})
}

func (wc *WorkoutController) Delete(c *gin.Context) {
	userID := c.GetUint("userID")
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := wc.Workouts.Delete(userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
