package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/joshua-takyi/eventhub/internal/apperr"
	"github.com/joshua-takyi/eventhub/internal/models"
	"github.com/joshua-takyi/eventhub/internal/services"
	"github.com/joshua-takyi/eventhub/internal/testutil"
	"github.com/stretchr/testify/require"
)

type suite struct {
	store      *models.SQLRepo
	countries  *services.CountryService
	cities     *services.CityService
	venues     *services.VenuesService
	categories *services.CategoryService
	users      *services.UserService
	events     *services.EventService
	reviews    *services.ReviewService
	favourites *services.FavouritesService
	interested *services.InterestedService
}

func newSuite(t *testing.T) *suite {
	t.Helper()
	store := testutil.Store(t)
	logger := testutil.Logger(t)
	opts := services.DefaultOptions()
	return &suite{
		store:      store,
		countries:  services.NewCountryService(store, logger),
		cities:     services.NewCityService(store, logger),
		venues:     services.NewVenuesService(store, opts, logger),
		categories: services.NewCategoryService(store, logger),
		users:      services.NewUserService(store, opts, logger),
		events:     services.NewEventService(store, opts, logger),
		reviews:    services.NewReviewService(store, opts, logger),
		favourites: services.NewFavouritesService(store, logger),
		interested: services.NewInterestedService(store, logger),
	}
}

// world is the Poland/Warsaw/Arena/Concert fixture most scenarios start from.
type world struct {
	country   *models.Country
	city      *models.City
	venue     *models.Venue
	category  *models.Category
	organizer *models.User
	event     *models.Event
}

func (s *suite) seedWorld(t *testing.T) world {
	t.Helper()
	ctx := context.Background()
	var w world
	var err error

	w.country, err = s.countries.CreateCountry(ctx, &models.CreateCountryRequest{Name: "Poland", Code: "PL"})
	require.NoError(t, err)
	w.city, err = s.cities.CreateCity(ctx, &models.CreateCityRequest{Name: "Warsaw", CountryCode: "PL"})
	require.NoError(t, err)
	w.venue, err = s.venues.CreateVenue(ctx, &models.CreateVenueRequest{Name: "Arena", Address: "Stadium St 1", CityID: w.city.ID})
	require.NoError(t, err)
	w.category, err = s.categories.CreateCategory(ctx, &models.CreateCategoryRequest{Name: "Concert"})
	require.NoError(t, err)
	w.organizer = s.newUser(t, models.RoleOrganizer)
	w.event, err = s.events.CreateEvent(ctx, &models.CreateEventRequest{
		Name:        "Summer Concert",
		Date:        time.Now().Add(48 * time.Hour),
		Status:      models.EventStatusPublished,
		CategoryID:  w.category.ID,
		VenueID:     w.venue.ID,
		OrganizerID: w.organizer.ID,
	})
	require.NoError(t, err)
	return w
}

func (s *suite) newUser(t *testing.T, role models.Role) *models.User {
	t.Helper()
	return testutil.SeedUser(t, s.store, role)
}

func requireKind(t *testing.T, want apperr.Kind, err error) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, want, apperr.KindOf(err), "error: %v", err)
}
