package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Anky1388/SFIRN/config"
	"github.com/Anky1388/SFIRN/models"

	"gorm.io/gorm"
)

type RedistributionService struct{}

func NewRedistributionService() *RedistributionService { return &RedistributionService{} }

var ErrPickupNotPending = errors.New("pickup is not pending")

// ConfirmPickup marks a pending pickup as collected and credits the NGO's
// running total in the same transaction. TotalReceivedKg only ever grows,
// and only through this path.
func (s *RedistributionService) ConfirmPickup(reference string, pickupTime time.Time) (*models.RedistributionLog, error) {
	var pickup models.RedistributionLog
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("reference = ?", reference).First(&pickup).Error; err != nil {
			return err
		}
		if pickup.Status != models.PickupPending {
			return ErrPickupNotPending
		}
		pickup.Status = models.PickupConfirmed
		pickup.PickupTime = &pickupTime
		if err := tx.Save(&pickup).Error; err != nil {
			return err
		}
		return tx.Model(&models.NGO{}).
			Where("id = ?", pickup.NGOID).
			Update("total_received_kg", gorm.Expr("total_received_kg + ?", pickup.QuantityKg)).Error
	})
	if err != nil {
		return nil, err
	}

	// Other pending suggestions for the same surplus are now moot.
	_ = config.DB.Model(&models.RedistributionLog{}).
		Where("meal_log_id = ? AND status = ? AND id <> ?", pickup.MealLogID, models.PickupPending, pickup.ID).
		Update("status", models.PickupCancelled).Error

	return &pickup, nil
}

func (s *RedistributionService) CancelPickup(reference string) (*models.RedistributionLog, error) {
	var pickup models.RedistributionLog
	if err := config.DB.Where("reference = ?", reference).First(&pickup).Error; err != nil {
		return nil, err
	}
	if pickup.Status != models.PickupPending {
		return nil, ErrPickupNotPending
	}
	pickup.Status = models.PickupCancelled
	if err := config.DB.Save(&pickup).Error; err != nil {
		return nil, err
	}
	return &pickup, nil
}

func (s *RedistributionService) ListForNGO(ngoID uint, status string) ([]models.RedistributionLog, error) {
	var pickups []models.RedistributionLog
	q := config.DB.Preload("NGO").Where("ngo_id = ?", ngoID).Order("date DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&pickups).Error
	return pickups, err
}

func (s *RedistributionService) ListForMealLog(mealLogID uint) ([]models.RedistributionLog, error) {
	var pickups []models.RedistributionLog
	err := config.DB.Preload("NGO").
		Where("meal_log_id = ?", mealLogID).
		Order("distance_km ASC").
		Find(&pickups).Error
	return pickups, err
}

// ConfirmedKgBetween sums the quantity actually collected in a window.
// The sustainability aggregation feeds this to the engine as the
// redistributed total.
func (s *RedistributionService) ConfirmedKgBetween(from, to time.Time) (float64, error) {
	var total float64
	err := config.DB.Model(&models.RedistributionLog{}).
		Where("status = ? AND date BETWEEN ? AND ?", models.PickupConfirmed, dayStart(from), dayEnd(to)).
		Select("COALESCE(SUM(quantity_kg), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("summing confirmed pickups: %w", err)
	}
	return total, nil
}
