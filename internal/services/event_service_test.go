package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/joshua-takyi/eventhub/internal/apperr"
	"github.com/joshua-takyi/eventhub/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEventDefaultsToDraft(t *testing.T) {
	s := newSuite(t)
	w := s.seedWorld(t)

	event, err := s.events.CreateEvent(context.Background(), &models.CreateEventRequest{
		Name:        "Autumn Concert",
		Date:        time.Now().Add(24 * time.Hour),
		CategoryID:  w.category.ID,
		VenueID:     w.venue.ID,
		OrganizerID: w.organizer.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, models.EventStatusDraft, event.Status)
	require.NotNil(t, event.Venue)
	assert.Equal(t, "Arena", event.Venue.Name)
}

func TestCreateEventReferences(t *testing.T) {
	s := newSuite(t)
	w := s.seedWorld(t)
	attendee := s.newUser(t, models.RoleAttendee)

	base := func() *models.CreateEventRequest {
		return &models.CreateEventRequest{
			Name:        "Gig",
			Date:        time.Now().Add(24 * time.Hour),
			CategoryID:  w.category.ID,
			VenueID:     w.venue.ID,
			OrganizerID: w.organizer.ID,
		}
	}

	tests := []struct {
		name   string
		mutate func(*models.CreateEventRequest)
		kind   apperr.Kind
		entity apperr.Entity
	}{
		{"unknown category", func(r *models.CreateEventRequest) { r.CategoryID = 999 }, apperr.KindNotFound, apperr.EntityCategory},
		{"unknown venue", func(r *models.CreateEventRequest) { r.VenueID = 999 }, apperr.KindNotFound, apperr.EntityVenue},
		{"unknown organizer", func(r *models.CreateEventRequest) { r.OrganizerID = 999 }, apperr.KindNotFound, apperr.EntityUser},
		{"attendee organizer", func(r *models.CreateEventRequest) { r.OrganizerID = attendee.ID }, apperr.KindInvalidArgument, apperr.EntityEvent},
		{"blank name", func(r *models.CreateEventRequest) { r.Name = "  " }, apperr.KindInvalidArgument, apperr.EntityEvent},
		{"created completed", func(r *models.CreateEventRequest) { r.Status = models.EventStatusCompleted }, apperr.KindInvalidArgument, apperr.EntityEvent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base()
			tt.mutate(req)
			_, err := s.events.CreateEvent(context.Background(), req)
			requireKind(t, tt.kind, err)
			assert.Equal(t, tt.entity, apperr.EntityOf(err))
		})
	}
}

func TestListEventsByOrganizerName(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	w := s.seedWorld(t)

	page, err := s.events.ListEventsByOrganizerName(ctx, w.organizer.FullName(), models.PageRequest{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, w.event.ID, page.Items[0].ID)

	_, err = s.events.ListEventsByOrganizerName(ctx, "Nonexistent Person", models.PageRequest{})
	requireKind(t, apperr.KindNoResultsFound, err)
}

func TestListEventsEmpty(t *testing.T) {
	s := newSuite(t)

	_, err := s.events.ListEvents(context.Background(), models.EventFilter{}, models.PageRequest{})
	requireKind(t, apperr.KindNoResultsFound, err)
}

func TestListEventsByCategory(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	w := s.seedWorld(t)

	page, err := s.events.ListEventsByCategory(ctx, w.category.ID, models.PageRequest{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)

	_, err = s.events.ListEventsByCategory(ctx, 4242, models.PageRequest{})
	requireKind(t, apperr.KindNotFound, err)
}

func TestChangeStatusTransitions(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	w := s.seedWorld(t)

	change := func(status models.EventStatus) error {
		_, err := s.events.ChangeStatus(ctx, w.event.ID, &models.ChangeStatusRequest{Status: status})
		return err
	}

	requireKind(t, apperr.KindConflict, change(models.EventStatusDraft))
	requireKind(t, apperr.KindConflict, change(models.EventStatusPublished))
	require.NoError(t, change(models.EventStatusCompleted))
	requireKind(t, apperr.KindConflict, change(models.EventStatusCancelled))
	requireKind(t, apperr.KindInvalidArgument, change("postponed"))

	event, err := s.events.GetEvent(ctx, w.event.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EventStatusCompleted, event.Status)
}

func TestUpdateEvent(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	w := s.seedWorld(t)
	other, err := s.categories.CreateCategory(ctx, &models.CreateCategoryRequest{Name: "Festival"})
	require.NoError(t, err)

	name := "Summer Concert II"
	cancelled := models.EventStatusCancelled
	event, err := s.events.UpdateEvent(ctx, w.event.ID, &models.UpdateEventRequest{
		Name:       &name,
		CategoryID: &other.ID,
		Status:     &cancelled,
	})
	require.NoError(t, err)
	assert.Equal(t, name, event.Name)
	assert.Equal(t, other.ID, event.CategoryID)
	assert.Equal(t, models.EventStatusCancelled, event.Status)

	published := models.EventStatusPublished
	_, err = s.events.UpdateEvent(ctx, w.event.ID, &models.UpdateEventRequest{Status: &published})
	requireKind(t, apperr.KindConflict, err)

	// Re-sending the current status is a same-state transition.
	_, err = s.events.UpdateEvent(ctx, w.event.ID, &models.UpdateEventRequest{Status: &cancelled})
	requireKind(t, apperr.KindConflict, err)

	missing := int64(31337)
	_, err = s.events.UpdateEvent(ctx, w.event.ID, &models.UpdateEventRequest{VenueID: &missing})
	requireKind(t, apperr.KindNotFound, err)
}

func TestDeleteEventCascades(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	w := s.seedWorld(t)
	fan := s.newUser(t, models.RoleAttendee)

	review, err := s.reviews.CreateReview(ctx, &models.CreateReviewRequest{UserID: fan.ID, EventID: w.event.ID, Rating: 9})
	require.NoError(t, err)
	mark, err := s.interested.MarkInterested(ctx, &models.CreateInterestedRequest{UserID: fan.ID, EventID: w.event.ID})
	require.NoError(t, err)

	require.NoError(t, s.events.DeleteEvent(ctx, w.event.ID))

	_, err = s.events.GetEvent(ctx, w.event.ID)
	requireKind(t, apperr.KindNotFound, err)
	_, err = s.reviews.GetReview(ctx, review.ID)
	requireKind(t, apperr.KindNotFound, err)
	_, err = s.interested.GetInterested(ctx, mark.ID)
	requireKind(t, apperr.KindNotFound, err)

	// Everything the event pointed at survives.
	_, err = s.venues.GetVenue(ctx, w.venue.ID)
	require.NoError(t, err)
	_, err = s.users.GetUser(ctx, fan.ID)
	require.NoError(t, err)
}
