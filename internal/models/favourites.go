package models

import "time"

// Favourite records a user following an organizer.
type Favourite struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       int64     `gorm:"not null;uniqueIndex:idx_favourites_user_organizer" json:"user_id"`
	OrganizerID  int64     `gorm:"not null;uniqueIndex:idx_favourites_user_organizer;index" json:"organizer_id"`
	User         *User     `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"user,omitempty"`
	Organizer    *User     `gorm:"foreignKey:OrganizerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"organizer,omitempty"`
	FavouritedAt time.Time `gorm:"autoCreateTime" json:"favourited_at"`
}

type CreateFavouriteRequest struct {
	UserID      int64 `json:"user_id"`
	OrganizerID int64 `json:"organizer_id"`
}
