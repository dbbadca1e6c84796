package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Anky1388/SFIRN/config"
	"github.com/Anky1388/SFIRN/engine"
	"github.com/Anky1388/SFIRN/models"

	"github.com/google/uuid"
)

type MealLogService struct {
	ngoSvc *NGOService
}

func NewMealLogService(ngoSvc *NGOService) *MealLogService {
	return &MealLogService{ngoSvc: ngoSvc}
}

type MealLogRequest struct {
	Date       time.Time `json:"date"`
	MealType   string    `json:"meal_type"`
	PreparedKg float64   `json:"prepared_kg"`
	LeftoverKg float64   `json:"leftover_kg"`
	IsEdible   bool      `json:"is_edible"`
	PhotoURL   string    `json:"photo_url,omitempty"`
}

// CreateMealLog validates the submission, derives the impact metrics once
// via the engine, persists the log, and on an alert kicks off matching
// and NGO notification. The returned log carries the derived fields; they
// are never recomputed after this point.
func (s *MealLogService) CreateMealLog(operatorID uint, req MealLogRequest) (*models.MealLog, []models.RedistributionLog, error) {
	if !models.ValidMealType(req.MealType) {
		return nil, nil, fmt.Errorf("invalid meal type %q", req.MealType)
	}
	if req.Date.IsZero() {
		return nil, nil, errors.New("date is required")
	}

	metrics, err := engine.ComputeMetrics(req.PreparedKg, req.LeftoverKg, req.IsEdible)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid weights: %w", err)
	}

	mealLog := &models.MealLog{
		OperatorID:      operatorID,
		Date:            dayStart(req.Date),
		MealType:        req.MealType,
		PreparedKg:      req.PreparedKg,
		LeftoverKg:      req.LeftoverKg,
		IsEdible:        req.IsEdible,
		PhotoURL:        req.PhotoURL,
		AttendanceCount: s.headcountFor(req.Date, req.MealType),
		SurplusKg:       metrics.SurplusKg,
		WastePct:        metrics.WastePct,
		CO2Kg:           metrics.CO2Kg,
		MealsEquivalent: metrics.MealsEquivalent,
		AlertTriggered:  metrics.AlertTriggered,
	}
	if err := config.DB.Create(mealLog).Error; err != nil {
		return nil, nil, err
	}

	if !metrics.AlertTriggered {
		return mealLog, nil, nil
	}

	pickups, err := s.dispatchMatches(mealLog)
	if err != nil {
		// The log is already committed; matching failure must not undo it.
		return mealLog, nil, fmt.Errorf("meal log %d saved but matching failed: %w", mealLog.ID, err)
	}
	EmitSurplusAlert(mealLog, pickups)
	return mealLog, pickups, nil
}

// dispatchMatches ranks nearby NGOs for the surplus and records a pending
// pickup per match.
func (s *MealLogService) dispatchMatches(mealLog *models.MealLog) ([]models.RedistributionLog, error) {
	lat, lng := config.MessLocation()
	matches, err := s.ngoSvc.FindNearby(lat, lng, engine.MatchOptions{RequestedKg: mealLog.SurplusKg})
	if err != nil {
		return nil, err
	}

	pickups := make([]models.RedistributionLog, 0, len(matches))
	for _, m := range matches {
		p := models.RedistributionLog{
			Reference:    uuid.NewString(),
			MealLogID:    mealLog.ID,
			NGOID:        m.Candidate.ID,
			Date:         mealLog.Date,
			QuantityKg:   mealLog.SurplusKg,
			MealsServed:  mealLog.MealsEquivalent,
			CO2AvoidedKg: mealLog.CO2Kg,
			DistanceKm:   m.DistanceKm,
			Status:       models.PickupPending,
		}
		if err := config.DB.Create(&p).Error; err != nil {
			return nil, err
		}
		pickups = append(pickups, p)
	}
	return pickups, nil
}

func (s *MealLogService) headcountFor(date time.Time, mealType string) int {
	var al models.AttendanceLog
	err := config.DB.
		Where("date = ? AND meal_type = ?", dayStart(date), mealType).
		First(&al).Error
	if err != nil {
		return 0
	}
	return al.AttendanceCount
}

func (s *MealLogService) GetMealLog(id uint) (*models.MealLog, error) {
	var ml models.MealLog
	if err := config.DB.First(&ml, id).Error; err != nil {
		return nil, err // could be ErrRecordNotFound
	}
	return &ml, nil
}

func (s *MealLogService) ListMealLogs(limit int) ([]models.MealLog, error) {
	if limit <= 0 {
		limit = 50
	}
	var logs []models.MealLog
	err := config.DB.
		Order("date DESC, meal_type DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}

func (s *MealLogService) ListMealLogsByDateRange(from, to time.Time) ([]models.MealLog, error) {
	var logs []models.MealLog
	err := config.DB.
		Where("date >= ? AND date < ?", dayStart(from), dayEnd(to)).
		Order("date ASC").
		Find(&logs).Error
	return logs, err
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
