package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type MealPlanController struct {
	Meals *services.MealPlanService
}

func NewMealPlanController(meals *services.MealPlanService) *MealPlanController {
	return &MealPlanController{Meals: meals}
}

func (mc *MealPlanController) List(c *gin.Context) {
	userID := c.GetUint("userID")

	plans, err := mc.Meals.List(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mealPlans": plans})
}

func (mc *MealPlanController) Create(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.MealPlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := mc.Meals.Create(userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"mealPlan": plan})
}

func (mc *MealPlanController) Update(c *gin.Context) {
	userID := c.GetUint("userID")
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input services.MealPlanUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := mc.Meals.Update(userID, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mealPlan": plan})
}

func (mc *MealPlanController) Delete(c *gin.Context) {
	userID := c.GetUint("userID")
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := mc.Meals.Delete(userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
