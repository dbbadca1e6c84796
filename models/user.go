package models

import (
	"gorm.io/gorm"
)

// Role controls which route groups and dashboard panels a user sees.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator" // mess operator: logs meals, manages menus
	RoleStudent  = "student"
	RoleNGO      = "ngo" // redistribution partner contact account
)

type User struct {
	gorm.Model
	Email      string `gorm:"uniqueIndex;not null"`
	Password   string `gorm:"not null"`
	FullName   string
	Role       string `gorm:"size:16;default:student;index"`
	NGOID      *uint  `gorm:"index"` // set for role=ngo accounts
	MFAEnabled bool
	MFACode    string
	ResetCode  string
}
