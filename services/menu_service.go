package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Anky1388/SFIRN/config"
	"github.com/Anky1388/SFIRN/models"

	"gorm.io/gorm"
)

type MenuService struct{}

func NewMenuService() *MenuService { return &MenuService{} }

type MenuItemRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
}

type MenuRequest struct {
	Date     time.Time         `json:"date"`
	MealType string            `json:"meal_type"`
	Items    []MenuItemRequest `json:"items"`
}

// UpsertMenu replaces the dish list for a meal slot. The suggested
// quantity is refreshed from the forecast for that date when one exists.
func (s *MenuService) UpsertMenu(ownerID uint, req MenuRequest) (*models.Menu, error) {
	if !models.ValidMealType(req.MealType) {
		return nil, fmt.Errorf("invalid meal type %q", req.MealType)
	}
	if len(req.Items) == 0 {
		return nil, errors.New("menu needs at least one item")
	}

	date := dayStart(req.Date)
	var menu models.Menu
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("date = ? AND meal_type = ?", date, req.MealType).First(&menu).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			menu = models.Menu{Date: date, MealType: req.MealType, MessOwnerID: ownerID}
			if err := tx.Create(&menu).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		} else {
			if err := tx.Where("menu_id = ?", menu.ID).Delete(&models.MenuItem{}).Error; err != nil {
				return err
			}
		}

		for _, it := range req.Items {
			item := models.MenuItem{MenuID: menu.ID, Name: it.Name, Category: it.Category}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}

		if kg, ok := s.suggestedQuantity(tx, date, req.MealType); ok {
			menu.SuggestedQuantityKg = kg
			return tx.Save(&menu).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetMenu(date, req.MealType)
}

func (s *MenuService) suggestedQuantity(tx *gorm.DB, date time.Time, mealType string) (float64, bool) {
	var pred models.Prediction
	if err := tx.Where("target_date = ?", date).First(&pred).Error; err != nil {
		return 0, false
	}
	switch mealType {
	case models.MealBreakfast:
		return pred.BreakfastSurplusKg, true
	case models.MealLunch:
		return pred.LunchSurplusKg, true
	case models.MealDinner:
		return pred.DinnerSurplusKg, true
	}
	return 0, false
}

func (s *MenuService) GetMenu(date time.Time, mealType string) (*models.Menu, error) {
	var menu models.Menu
	err := config.DB.Preload("Items").
		Where("date = ? AND meal_type = ?", dayStart(date), mealType).
		First(&menu).Error
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

func (s *MenuService) ListMenus(from, to time.Time) ([]models.Menu, error) {
	var menus []models.Menu
	err := config.DB.Preload("Items").
		Where("date BETWEEN ? AND ?", dayStart(from), dayEnd(to)).
		Order("date ASC").
		Find(&menus).Error
	return menus, err
}
