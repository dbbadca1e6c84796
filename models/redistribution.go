package models

import (
	"time"

	"gorm.io/gorm"
)

// Pickup lifecycle. A pending pickup either gets confirmed by the NGO
// (which bumps the NGO's running total) or cancelled.
const (
	PickupPending   = "pending"
	PickupConfirmed = "confirmed"
	PickupCancelled = "cancelled"
)

// RedistributionLog is one suggested/executed pickup of a surplus event
// by an NGO. Reference is the code shared with the NGO contact so phone
// confirmations can be tied back to the row.
type RedistributionLog struct {
	gorm.Model
	Reference  string `gorm:"size:36;uniqueIndex;not null"`
	MealLogID  uint   `gorm:"index;not null"`
	NGOID      uint   `gorm:"index;not null"`
	NGO        NGO
	Date       time.Time `gorm:"index;not null"`
	QuantityKg float64   `gorm:"not null"`

	MealsServed  int
	CO2AvoidedKg float64
	DistanceKm   float64

	Status     string `gorm:"size:16;default:pending;index"` // pending|confirmed|cancelled
	PickupTime *time.Time
}
