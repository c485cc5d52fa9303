package services

import (
	"errors"
	"strings"

	"backend/apperror"
	"backend/models"

	"gorm.io/gorm"
)

type TemplateService struct {
	db *gorm.DB
}

func NewTemplateService(db *gorm.DB) *TemplateService {
	return &TemplateService{db: db}
}

type TemplateInput struct {
	Name      string          `json:"name"`
	Exercises []ExerciseInput `json:"exercises"`
}

func (s *TemplateService) List(userID uint) ([]models.WorkoutTemplate, error) {
	var templates []models.WorkoutTemplate
	err := s.db.
		Preload("Exercises").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&templates).Error
	if err != nil {
		return nil, apperror.Upstream("list templates", err)
	}
	return templates, nil
}

func (s *TemplateService) Save(userID uint, in TemplateInput) (*models.WorkoutTemplate, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperror.Validation("name", "Missing required fields")
	}
	exercises, err := ValidateExercises(in.Exercises)
	if err != nil {
		return nil, err
	}

	tpl := models.WorkoutTemplate{UserID: userID, Name: name}
	for _, ex := range exercises {
		tpl.Exercises = append(tpl.Exercises, models.TemplateExercise{
			Name:   ex.Name,
			Sets:   ex.Sets,
			Reps:   ex.Reps,
			Weight: ex.Weight,
		})
	}
	if err := s.db.Create(&tpl).Error; err != nil {
		return nil, apperror.Upstream("save template", err)
	}
	return &tpl, nil
}

func (s *TemplateService) Delete(userID, id uint) error {
	var tpl models.WorkoutTemplate
	err := s.db.First(&tpl, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound("template")
	}
	if err != nil {
		return apperror.Upstream("load template", err)
	}
	if err := checkOwner(tpl.UserID, userID); err != nil {
		return err
	}
	if err := s.db.Select("Exercises").Delete(&tpl).Error; err != nil {
		return apperror.Upstream("delete template", err)
	}
	return nil
}
