package models

import "time"

// Interested marks a user as interested in attending an event.
type Interested struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_interested_user_event" json:"user_id"`
	EventID   int64     `gorm:"not null;uniqueIndex:idx_interested_user_event;index" json:"event_id"`
	User      *User     `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"user,omitempty"`
	Event     *Event    `gorm:"foreignKey:EventID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"event,omitempty"`
	MarkedAt  time.Time `gorm:"autoCreateTime" json:"marked_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Interested) TableName() string { return "interested" }

type CreateInterestedRequest struct {
	UserID  int64 `json:"user_id"`
	EventID int64 `json:"event_id"`
}
