package models_test

import (
	"context"
	"testing"

	"github.com/joshua-takyi/eventhub/internal/apperr"
	"github.com/joshua-takyi/eventhub/internal/models"
	"github.com/joshua-takyi/eventhub/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test to verify partial update behavior
func TestUpdateVenuePartial(t *testing.T) {
	store := testutil.Store(t)
	ctx := context.Background()
	country := testutil.SeedCountry(t, store)
	city := testutil.SeedCity(t, store, country.ID)
	venue := testutil.SeedVenue(t, store, city.ID)

	require.NoError(t, store.UpdateVenue(ctx, venue.ID, map[string]any{"description": "New description"}))

	got, err := store.GetVenueByID(ctx, venue.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "New description", got.Description)
	assert.Equal(t, venue.Name, got.Name)
	assert.Equal(t, venue.Address, got.Address)
	require.NotNil(t, got.City)
	require.NotNil(t, got.City.Country)
	assert.Equal(t, country.Code, got.City.Country.Code)
}

func TestUpdateVenueMissing(t *testing.T) {
	store := testutil.Store(t)

	err := store.UpdateVenue(context.Background(), 999, map[string]any{"name": "x"})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	// An empty update touches nothing and is not an error.
	assert.NoError(t, store.UpdateVenue(context.Background(), 999, map[string]any{}))
}

func TestGetVenueByIDMissing(t *testing.T) {
	store := testutil.Store(t)

	got, err := store.GetVenueByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListVenuesFilterAndPaging(t *testing.T) {
	store := testutil.Store(t)
	ctx := context.Background()
	country := testutil.SeedCountry(t, store)
	a := testutil.SeedCity(t, store, country.ID)
	b := testutil.SeedCity(t, store, country.ID)
	for i := 0; i < 3; i++ {
		testutil.SeedVenue(t, store, a.ID)
	}
	testutil.SeedVenue(t, store, b.ID)

	venues, total, err := store.ListVenues(ctx, models.VenueFilter{CityIDs: []int64{a.ID}}, models.PageRequest{Page: 1, Size: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, venues, 2)

	venues, _, err = store.ListVenues(ctx, models.VenueFilter{CityIDs: []int64{a.ID}}, models.PageRequest{Page: 2, Size: 2})
	require.NoError(t, err)
	assert.Len(t, venues, 1)

	venues, total, err = store.ListVenues(ctx, models.VenueFilter{}, models.PageRequest{Page: 1, Size: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
	assert.Len(t, venues, 4)
}

func TestCreateVenueUnknownCity(t *testing.T) {
	store := testutil.Store(t)

	err := store.CreateVenue(context.Background(), &models.Venue{Name: "Hall", Address: "Main St", CityID: 404})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}
