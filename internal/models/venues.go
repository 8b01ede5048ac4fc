package models

import "time"

type Venue struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Address     string    `gorm:"size:500" json:"address,omitempty"`
	Description string    `gorm:"size:1000" json:"description,omitempty"`
	CityID      int64     `gorm:"not null;index" json:"city_id"`
	City        *City     `gorm:"foreignKey:CityID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"city,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateVenueRequest struct {
	Name        string `json:"name" validate:"required,notblank,max=255"`
	Address     string `json:"address" validate:"max=500"`
	Description string `json:"description" validate:"max=1000"`
	CityID      int64  `json:"city_id"`
}

type UpdateVenueRequest struct {
	Name        *string `json:"name" validate:"omitempty,notblank,max=255"`
	Address     *string `json:"address" validate:"omitempty,max=500"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	CityID      *int64  `json:"city_id"`
}

type VenueFilter struct {
	CityIDs []int64
}
