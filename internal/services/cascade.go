package services

import (
	"context"

	"github.com/joshua-takyi/eventhub/internal/apperr"
	"github.com/joshua-takyi/eventhub/internal/models"
)

// Geography deletes run top-down inside the caller's transaction. Venues
// that still host events stop the whole delete.

func deleteVenues(ctx context.Context, tx models.Store, entity apperr.Entity, op string, venueIDs []int64) error {
	if len(venueIDs) == 0 {
		return nil
	}
	n, err := tx.CountEvents(ctx, models.EventFilter{VenueIDs: venueIDs})
	if err != nil {
		return err
	}
	if n > 0 {
		return apperr.Conflict(entity, op, "cannot delete %s: %d event(s) still reference its venues", entity, n)
	}
	return tx.DeleteVenues(ctx, venueIDs)
}

func deleteCities(ctx context.Context, tx models.Store, entity apperr.Entity, op string, cityIDs []int64) error {
	if len(cityIDs) == 0 {
		return nil
	}
	venueIDs, err := tx.ListVenueIDsByCities(ctx, cityIDs)
	if err != nil {
		return err
	}
	if err := deleteVenues(ctx, tx, entity, op, venueIDs); err != nil {
		return err
	}
	return tx.DeleteCities(ctx, cityIDs)
}
