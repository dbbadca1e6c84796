package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Anky1388/SFIRN/config"
	"github.com/Anky1388/SFIRN/models"

	"gorm.io/gorm"
)

type AttendanceService struct{}

func NewAttendanceService() *AttendanceService { return &AttendanceService{} }

var ErrAlreadyCheckedIn = errors.New("attendance already recorded for this meal")

// CheckIn records one person's presence for a meal slot. The composite
// unique index makes double check-ins a constraint violation, which we
// surface as ErrAlreadyCheckedIn rather than a raw DB error. The per-slot
// headcount is maintained in the same transaction so the prep planner
// always reads a consistent count.
func (s *AttendanceService) CheckIn(subjectID uint, date time.Time, mealType, status string) (*models.AttendanceRecord, error) {
	if !models.ValidMealType(mealType) {
		return nil, fmt.Errorf("invalid meal type %q", mealType)
	}
	if status != models.AttendancePresent && status != models.AttendanceAbsent {
		return nil, fmt.Errorf("invalid status %q", status)
	}

	rec := &models.AttendanceRecord{
		Date:      dayStart(date),
		MealType:  mealType,
		SubjectID: subjectID,
		Status:    status,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.AttendanceRecord
		err := tx.Where("date = ? AND meal_type = ? AND subject_id = ?",
			rec.Date, mealType, subjectID).First(&existing).Error
		if err == nil {
			return ErrAlreadyCheckedIn
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := tx.Create(rec).Error; err != nil {
			return err
		}
		if status == models.AttendancePresent {
			return s.bumpHeadcount(tx, rec.Date, mealType, 1)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *AttendanceService) bumpHeadcount(tx *gorm.DB, date time.Time, mealType string, delta int) error {
	var al models.AttendanceLog
	err := tx.Where("date = ? AND meal_type = ?", date, mealType).First(&al).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		al = models.AttendanceLog{Date: date, MealType: mealType, AttendanceCount: delta}
		return tx.Create(&al).Error
	}
	if err != nil {
		return err
	}
	return tx.Model(&al).Update("attendance_count", gorm.Expr("attendance_count + ?", delta)).Error
}

func (s *AttendanceService) HeadcountFor(date time.Time, mealType string) (int, error) {
	var al models.AttendanceLog
	err := config.DB.Where("date = ? AND meal_type = ?", dayStart(date), mealType).First(&al).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return al.AttendanceCount, nil
}

func (s *AttendanceService) ListForSubject(subjectID uint, from, to time.Time) ([]models.AttendanceRecord, error) {
	var recs []models.AttendanceRecord
	err := config.DB.
		Where("subject_id = ? AND date BETWEEN ? AND ?", subjectID, dayStart(from), dayEnd(to)).
		Order("date DESC").
		Find(&recs).Error
	return recs, err
}

func (s *AttendanceService) ListHeadcounts(from, to time.Time) ([]models.AttendanceLog, error) {
	var logs []models.AttendanceLog
	err := config.DB.
		Where("date BETWEEN ? AND ?", dayStart(from), dayEnd(to)).
		Order("date ASC").
		Find(&logs).Error
	return logs, err
}
