package models

import (
	"context"

	"github.com/joshua-takyi/eventhub/internal/apperr"
)

func (r *SQLRepo) CreateFavourite(ctx context.Context, fav *Favourite) error {
	err := r.conn(ctx).Omit("User", "Organizer").Create(fav).Error
	return apperr.MapError(apperr.EntityFavourite, "CreateFavourite", err)
}

func (r *SQLRepo) GetFavouriteByID(ctx context.Context, id int64) (*Favourite, error) {
	fav, err := findOne[Favourite](r.conn(ctx).Where("id = ?", id))
	return fav, apperr.MapError(apperr.EntityFavourite, "GetFavouriteByID", err)
}

func (r *SQLRepo) FavouriteExists(ctx context.Context, userID, organizerID int64) (bool, error) {
	ok, err := exists(r.conn(ctx).Model(&Favourite{}).Where("user_id = ? AND organizer_id = ?", userID, organizerID))
	return ok, apperr.MapError(apperr.EntityFavourite, "FavouriteExists", err)
}

// ListFavouritesByUser returns the organizers a user follows, in no
// particular order.
func (r *SQLRepo) ListFavouritesByUser(ctx context.Context, userID int64) ([]Favourite, error) {
	favs := []Favourite{}
	err := r.conn(ctx).Preload("Organizer").Where("user_id = ?", userID).Find(&favs).Error
	return favs, apperr.MapError(apperr.EntityFavourite, "ListFavouritesByUser", err)
}

func (r *SQLRepo) ListFavouritesByOrganizer(ctx context.Context, organizerID int64) ([]Favourite, error) {
	favs := []Favourite{}
	err := r.conn(ctx).Preload("User").Where("organizer_id = ?", organizerID).Find(&favs).Error
	return favs, apperr.MapError(apperr.EntityFavourite, "ListFavouritesByOrganizer", err)
}

func (r *SQLRepo) DeleteFavourite(ctx context.Context, id int64) error {
	err := deleteByID(r.conn(ctx), &Favourite{}, id)
	return apperr.MapError(apperr.EntityFavourite, "DeleteFavourite", err)
}

// DeleteFavouritesByUser removes favourites held by the user and those
// pointing at the user as organizer.
func (r *SQLRepo) DeleteFavouritesByUser(ctx context.Context, userID int64) error {
	err := r.conn(ctx).Where("user_id = ? OR organizer_id = ?", userID, userID).Delete(&Favourite{}).Error
	return apperr.MapError(apperr.EntityFavourite, "DeleteFavouritesByUser", err)
}
