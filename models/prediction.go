package models

import (
	"time"

	"gorm.io/gorm"
)

// Prediction is a forecast of next-day surplus per meal slot, produced by
// the external ML service.
type Prediction struct {
	gorm.Model
	TargetDate time.Time `gorm:"uniqueIndex;not null"`

	BreakfastSurplusKg float64
	LunchSurplusKg     float64
	DinnerSurplusKg    float64
	Confidence         float64
}
