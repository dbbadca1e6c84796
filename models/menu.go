package models

import (
	"time"

	"gorm.io/gorm"
)

// Menu is the planned dish list for one meal slot. SuggestedQuantityKg is
// filled from the forecast service when a prediction exists for the date.
type Menu struct {
	gorm.Model
	Date        time.Time `gorm:"uniqueIndex:idx_menu_slot;not null"`
	MealType    string    `gorm:"size:16;uniqueIndex:idx_menu_slot;not null"`
	MessOwnerID uint      `gorm:"index"` // FK -> users.id
	Items       []MenuItem

	SuggestedQuantityKg float64
}

type MenuItem struct {
	gorm.Model
	MenuID   uint   `gorm:"index;not null"`
	Name     string `gorm:"not null"`
	Category string `gorm:"size:32"` // e.g. "Main", "Side", "Dessert"
}
