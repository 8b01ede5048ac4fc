package models

import "time"

type Review struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_reviews_user_event" json:"user_id"`
	EventID   int64     `gorm:"not null;uniqueIndex:idx_reviews_user_event;index" json:"event_id"`
	Rating    int       `gorm:"not null;check:chk_reviews_rating,rating >= 1 AND rating <= 10" json:"rating"`
	Comment   *string   `gorm:"size:1000" json:"comment,omitempty"`
	User      *User     `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"user,omitempty"`
	Event     *Event    `gorm:"foreignKey:EventID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"event,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	MinRating = 1
	MaxRating = 10
)

type CreateReviewRequest struct {
	UserID  int64   `json:"user_id"`
	EventID int64   `json:"event_id"`
	Rating  int     `json:"rating" validate:"min=1,max=10"`
	Comment *string `json:"comment"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating" validate:"omitempty,min=1,max=10"`
	Comment *string `json:"comment"`
}

// ReviewSummary is computed on every read from the event's current reviews.
type ReviewSummary struct {
	EventID       int64    `json:"event_id"`
	EventName     string   `json:"event_name"`
	AverageRating float64  `json:"average_rating"`
	TotalReviews  int      `json:"total_reviews"`
	Reviews       []Review `json:"reviews"`
}
