package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type TemplateController struct {
	Templates *services.TemplateService
}

func NewTemplateController(templates *services.TemplateService) *TemplateController {
	return &TemplateController{Templates: templates}
}

func (tc *TemplateController) List(c *gin.Context) {
	userID := c.GetUint("userID")

	templates, err := tc.Templates.List(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": templates})
}

func (tc *TemplateController) Save(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.TemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tpl, err := tc.Templates.Save(userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"template": tpl})
}

func (tc *TemplateController) Delete(c *gin.Context) {
	userID := c.GetUint("userID")
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := tc.Templates.Delete(userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Template deleted"})
}
