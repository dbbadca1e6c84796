package models

import (
	"time"

	"gorm.io/gorm"
)

// Meal slots a mess serves.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
)

// ValidMealType reports whether t names a served meal slot.
func ValidMealType(t string) bool {
	return t == MealBreakfast || t == MealLunch || t == MealDinner
}

// MealLog is one meal-preparation event. The derived fields (surplus,
// waste %, CO2, meals-equivalent, alert flag) are computed once from the
// raw weights when the log is created and never mutated afterwards; the
// log is append-only.
type MealLog struct {
	gorm.Model
	OperatorID uint      `gorm:"index"` // FK -> users.id (mess operator who logged it)
	Date       time.Time `gorm:"index;not null"`
	MealType   string    `gorm:"size:16;index;not null"` // breakfast|lunch|dinner
	PreparedKg float64   `gorm:"not null"`
	LeftoverKg float64   `gorm:"not null"`
	IsEdible   bool      `gorm:"default:true"`

	AttendanceCount int
	PhotoURL        string `gorm:"size:512"` // optional surplus evidence photo

	// Derived at creation, immutable thereafter.
	SurplusKg       float64
	WastePct        float64
	CO2Kg           float64
	MealsEquivalent int
	AlertTriggered  bool
}
