package services

import (
	"errors"
	"strings"
	"time"

	"backend/apperror"
	"backend/models"

	"gorm.io/gorm"
)

type MealPlanService struct {
	db *gorm.DB
}

func NewMealPlanService(db *gorm.DB) *MealPlanService {
	return &MealPlanService{db: db}
}

type MealPlanInput struct {
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Plan        string   `json:"plan"`
	Calories    *float64 `json:"calories"`
	MealsPerDay *int     `json:"mealsPerDay"`
}

type MealPlanUpdate struct {
	Title       *string  `json:"title"`
	Date        *string  `json:"date"`
	Plan        *string  `json:"plan"`
	Calories    *float64 `json:"calories"`
	MealsPerDay *int     `json:"mealsPerDay"`
}

func (s *MealPlanService) List(userID uint) ([]models.MealPlan, error) {
	var plans []models.MealPlan
	err := s.db.
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&plans).Error
	if err != nil {
		return nil, apperror.Upstream("list meal plans", err)
	}
	return plans, nil
}

func (s *MealPlanService) Create(userID uint, in MealPlanInput) (*models.MealPlan, error) {
	title := strings.TrimSpace(in.Title)
	planText := strings.TrimSpace(in.Plan)
	if title == "" || planText == "" {
		return nil, apperror.Validation("title", "title and plan required")
	}
	date, err := ParseDate(in.Date, time.Now())
	if err != nil {
		return nil, err
	}

	plan := models.MealPlan{
		UserID:      userID,
		Title:       title,
		Date:        date,
		Plan:        planText,
		Calories:    in.Calories,
		MealsPerDay: in.MealsPerDay,
	}
	if err := s.db.Create(&plan).Error; err != nil {
		return nil, apperror.Upstream("create meal plan", err)
	}
	return &plan, nil
}

func (s *MealPlanService) Get(userID, id uint) (*models.MealPlan, error) {
	var plan models.MealPlan
	err := s.db.First(&plan, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("meal plan")
	}
	if err != nil {
		return nil, apperror.Upstream("load meal plan", err)
	}
	if err := checkOwner(plan.UserID, userID); err != nil {
		return nil, err
	}
	return &plan, nil
}

// Update applies only whitelisted fields: title, date, plan text, calories,
// mealsPerDay.
func (s *MealPlanService) Update(userID, id uint, in MealPlanUpdate) (*models.MealPlan, error) {
	plan, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, apperror.Validation("title", "title required")
		}
		plan.Title = title
	}
	if in.Date != nil {
		date, err := ParseDate(*in.Date, time.Now())
		if err != nil {
			return nil, err
		}
		plan.Date = date
	}
	if in.Plan != nil {
		planText := strings.TrimSpace(*in.Plan)
		if planText == "" {
			return nil, apperror.Validation("plan", "plan required")
		}
		plan.Plan = planText
	}
	if in.Calories != nil {
		plan.Calories = in.Calories
	}
	if in.MealsPerDay != nil {
		plan.MealsPerDay = in.MealsPerDay
	}

	if err := s.db.Save(plan).Error; err != nil {
		return nil, apperror.Upstream("update meal plan", err)
	}
	return plan, nil
}

func (s *MealPlanService) Delete(userID, id uint) error {
	plan, err := s.Get(userID, id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(plan).Error; err != nil {
		return apperror.Upstream("delete meal plan", err)
	}
	return nil
}
