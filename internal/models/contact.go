package models

import "time"

// Contact is a message submitted through the contact form. It has no owning
// user so it can be sent anonymously; only admins can read or delete it.
type Contact struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name" binding:"required"`
	Email     string    `gorm:"size:120;not null" json:"email" binding:"required"`
	Subject   string    `gorm:"size:200;not null" json:"subject" binding:"required"`
	Message   string    `gorm:"type:text;not null" json:"message" binding:"required"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Contact) TableName() string {
	return "contacts"
}
