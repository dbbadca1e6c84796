package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
)

// AttendanceRecord is one person's opt-in/opt-out for a meal slot. The
// composite unique index is what enforces at-most-one record per
// (date, meal_type, subject); the engine never sees this concern.
type AttendanceRecord struct {
	gorm.Model
	Date      time.Time `gorm:"uniqueIndex:idx_attendance_slot;not null"`
	MealType  string    `gorm:"size:16;uniqueIndex:idx_attendance_slot;not null"`
	SubjectID uint      `gorm:"uniqueIndex:idx_attendance_slot;not null"` // FK -> users.id
	Status    string    `gorm:"size:8;default:present"`                   // present|absent
}

// AttendanceLog is the per-slot headcount the prep planning reads, one
// row per (date, meal_type).
type AttendanceLog struct {
	gorm.Model
	Date            time.Time `gorm:"uniqueIndex:idx_attendance_count_slot;not null"`
	MealType        string    `gorm:"size:16;uniqueIndex:idx_attendance_count_slot;not null"`
	AttendanceCount int       `gorm:"not null"`
}
