package models

import "time"

// Symptom is a single logged symptom entry owned by a user. DateTime is a
// combined "2025-06-01 14:30:00" string, notes are optional.
type Symptom struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"userId"`
	DateTime    string    `gorm:"column:date_time;size:19;not null" json:"dateTime" binding:"required"`
	Category    string    `gorm:"size:50;not null" json:"category" binding:"required"`
	Description string    `gorm:"type:text;not null" json:"description" binding:"required"`
	Severity    int       `gorm:"not null" json:"severity" binding:"required"`
	Notes       string    `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (Symptom) TableName() string {
	return "symptoms"
}
