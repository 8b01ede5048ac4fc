package models

import "time"

type Country struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Code      string    `gorm:"size:2;not null;uniqueIndex:idx_countries_code" json:"code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type City struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:255;not null;uniqueIndex:idx_cities_name" json:"name"`
	CountryID int64     `gorm:"not null;index" json:"country_id"`
	Country   *Country  `gorm:"foreignKey:CountryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"country,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Country codes are normalised to upper case before validation.
type CreateCountryRequest struct {
	Name string `json:"name" validate:"required,notblank,max=255"`
	Code string `json:"code" validate:"required,len=2,alpha"`
}

// The code of a country is fixed at creation.
type UpdateCountryRequest struct {
	Name *string `json:"name" validate:"omitempty,notblank,max=255"`
}

type CreateCityRequest struct {
	Name        string `json:"name" validate:"required,notblank,max=255"`
	CountryCode string `json:"country_code" validate:"required,len=2,alpha"`
}

type UpdateCityRequest struct {
	Name        *string `json:"name" validate:"omitempty,notblank,max=255"`
	CountryCode *string `json:"country_code" validate:"omitempty,len=2,alpha"`
}

// CitySearch matches cities whose name contains Name and whose country code
// is one of CountryCodes. Both criteria are case-insensitive and optional.
type CitySearch struct {
	Name         string   `form:"name"`
	CountryCodes []string `form:"country"`
}
