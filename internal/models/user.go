package models

import "time"

// User is an account holder. The JSON tags are the wire contract: external
// clients see camelCase names, the password hash never leaves the server.
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"size:80;uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"size:120;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:128;not null" json:"-"`
	FirstName    string    `gorm:"size:50;not null" json:"firstName"`
	LastName     string    `gorm:"size:50;not null" json:"lastName"`
	Gender       string    `gorm:"size:20;not null" json:"gender"`
	DateOfBirth  string    `gorm:"size:10;not null" json:"dateOfBirth"`
	IsAdmin      bool      `gorm:"not null;default:false" json:"isAdmin"`
	CreatedAt    time.Time `json:"createdAt"`

	Appointments []Appointment `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Symptoms     []Symptom     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string {
	return "users"
}
