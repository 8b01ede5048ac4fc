package models

import (
	"context"

	"github.com/joshua-takyi/eventhub/internal/apperr"
	"gorm.io/gorm"
)

func (r *SQLRepo) CreateVenue(ctx context.Context, venue *Venue) error {
	err := r.conn(ctx).Omit("City").Create(venue).Error
	return apperr.MapError(apperr.EntityVenue, "CreateVenue", err)
}

// GetVenueByID loads the venue together with its city and country.
func (r *SQLRepo) GetVenueByID(ctx context.Context, id int64) (*Venue, error) {
	venue, err := findOne[Venue](r.conn(ctx).Preload("City.Country").Where("id = ?", id))
	return venue, apperr.MapError(apperr.EntityVenue, "GetVenueByID", err)
}

func (r *SQLRepo) ListVenues(ctx context.Context, filter VenueFilter, page PageRequest) ([]Venue, int64, error) {
	scope := func(q *gorm.DB) *gorm.DB {
		if len(filter.CityIDs) > 0 {
			q = q.Where("city_id IN ?", filter.CityIDs)
		}
		return q
	}

	var total int64
	if err := r.conn(ctx).Model(&Venue{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, apperr.MapError(apperr.EntityVenue, "ListVenues", err)
	}

	venues := []Venue{}
	err := r.conn(ctx).Scopes(scope).
		Preload("City.Country").
		Order("id").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&venues).Error
	return venues, total, apperr.MapError(apperr.EntityVenue, "ListVenues", err)
}

func (r *SQLRepo) ListVenueIDsByCities(ctx context.Context, cityIDs []int64) ([]int64, error) {
	if len(cityIDs) == 0 {
		return nil, nil
	}
	var ids []int64
	err := r.conn(ctx).Model(&Venue{}).Where("city_id IN ?", cityIDs).Pluck("id", &ids).Error
	return ids, apperr.MapError(apperr.EntityVenue, "ListVenueIDsByCities", err)
}

func (r *SQLRepo) UpdateVenue(ctx context.Context, id int64, updates map[string]any) error {
	err := updateByID(r.conn(ctx), &Venue{}, id, updates)
	return apperr.MapError(apperr.EntityVenue, "UpdateVenue", err)
}

func (r *SQLRepo) DeleteVenues(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	err := r.conn(ctx).Where("id IN ?", ids).Delete(&Venue{}).Error
	return apperr.MapError(apperr.EntityVenue, "DeleteVenues", err)
}
