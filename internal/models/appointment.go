package models

import "time"

// Appointment belongs to exactly one user. Date and time stay strings
// ("2025-06-01", "14:30"); the server does not interpret them.
type Appointment struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	Date      string    `gorm:"size:10;not null" json:"date" binding:"required"`
	Time      string    `gorm:"size:5;not null" json:"time" binding:"required"`
	Provider  string    `gorm:"size:100;not null" json:"provider" binding:"required"`
	Type      string    `gorm:"size:50;not null" json:"type" binding:"required"`
	Reason    string    `gorm:"type:text;not null" json:"reason" binding:"required"`
	Status    string    `gorm:"size:20;not null;default:scheduled" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Appointment) TableName() string {
	return "appointments"
}
