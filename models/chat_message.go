package models

import "time"

// ChatMessage is one entry in the single shared chat room.
type ChatMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Timestamp time.Time `gorm:"column:timestamp;index;not null" json:"timestamp"`

	User User `json:"sender"`
}
