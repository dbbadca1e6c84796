package models

import "gorm.io/gorm"

// NGO is a redistribution partner. TotalReceivedKg only increases, and
// only when a pickup is confirmed.
type NGO struct {
	gorm.Model
	Name        string  `gorm:"not null"`
	ContactName string  `gorm:"not null"`
	Phone       string  `gorm:"not null"`
	Email       string  `gorm:"not null"`
	Lat         float64 `gorm:"not null"` // decimal degrees, [-90, 90]
	Lng         float64 `gorm:"not null"` // decimal degrees, [-180, 180]
	Address     string  `gorm:"not null"`
	CapacityKg  float64 `gorm:"not null"` // max per pickup trip
	Active      bool    `gorm:"default:true;index"`

	TotalReceivedKg float64 `gorm:"default:0"`
}
