package model

import "time"

type ContactSubmission struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Email     string    `json:"email" gorm:"size:255;not null;index"`
	Linkedin  string    `json:"linkedin" gorm:"size:512"` // empty means not provided
	Message   string    `json:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime;index"`
}

func (ContactSubmission) TableName() string {
	return "contact_submissions"
}
