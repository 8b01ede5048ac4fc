package services_test

import (
	"context"
	"testing"

	"github.com/joshua-takyi/eventhub/internal/apperr"
	"github.com/joshua-takyi/eventhub/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserRequest() *models.CreateUserRequest {
	return &models.CreateUserRequest{
		FirstName:   "Jan",
		LastName:    "Kowalski",
		Email:       "Jan.Kowalski@Example.com",
		PhoneNumber: "+48123456789",
	}
}

func TestCreateUser(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()

	user, err := s.users.CreateUser(ctx, newUserRequest())
	require.NoError(t, err)
	assert.Equal(t, "jan.kowalski@example.com", user.Email)
	assert.Equal(t, models.RoleAttendee, user.Role)

	users, err := s.users.FindByFullName(ctx, "Jan Kowalski")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, user.ID, users[0].ID)

	_, err = s.users.FindByFullName(ctx, "Nonexistent Person")
	requireKind(t, apperr.KindNoResultsFound, err)
}

func TestCreateUserUniqueness(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	_, err := s.users.CreateUser(ctx, newUserRequest())
	require.NoError(t, err)

	sameEmail := newUserRequest()
	sameEmail.PhoneNumber = "+48999999999"
	_, err = s.users.CreateUser(ctx, sameEmail)
	requireKind(t, apperr.KindDuplicateKey, err)
	assert.Contains(t, err.Error(), "email")

	samePhone := newUserRequest()
	samePhone.Email = "other@example.com"
	_, err = s.users.CreateUser(ctx, samePhone)
	requireKind(t, apperr.KindDuplicateKey, err)
	assert.Contains(t, err.Error(), "phone_number")
}

func TestCreateUserValidation(t *testing.T) {
	s := newSuite(t)

	tests := []struct {
		name   string
		mutate func(*models.CreateUserRequest)
	}{
		{"bad email", func(r *models.CreateUserRequest) { r.Email = "not-an-email" }},
		{"bad phone", func(r *models.CreateUserRequest) { r.PhoneNumber = "12345" }},
		{"blank first name", func(r *models.CreateUserRequest) { r.FirstName = " " }},
		{"unknown role", func(r *models.CreateUserRequest) { r.Role = "superuser" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newUserRequest()
			tt.mutate(req)
			_, err := s.users.CreateUser(context.Background(), req)
			requireKind(t, apperr.KindInvalidArgument, err)
		})
	}
}

func TestUpdateUserKeepsOwnEmail(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	user, err := s.users.CreateUser(ctx, newUserRequest())
	require.NoError(t, err)
	other := s.newUser(t, models.RoleAttendee)

	email := user.Email
	first := "Janek"
	updated, err := s.users.UpdateUser(ctx, user.ID, &models.UpdateUserRequest{Email: &email, FirstName: &first})
	require.NoError(t, err)
	assert.Equal(t, "Janek Kowalski", updated.FullName())

	_, err = s.users.UpdateUser(ctx, user.ID, &models.UpdateUserRequest{Email: &other.Email})
	requireKind(t, apperr.KindDuplicateKey, err)
}

func TestChangeRoleProtectsOrganizers(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	w := s.seedWorld(t)

	_, err := s.users.ChangeRole(ctx, w.organizer.ID, &models.ChangeRoleRequest{Role: models.RoleAttendee})
	requireKind(t, apperr.KindConflict, err)

	user, err := s.users.ChangeRole(ctx, w.organizer.ID, &models.ChangeRoleRequest{Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)

	// An organizer with followers but no events.
	followed := s.newUser(t, models.RoleOrganizer)
	fan := s.newUser(t, models.RoleAttendee)
	_, err = s.favourites.AddFavourite(ctx, &models.CreateFavouriteRequest{UserID: fan.ID, OrganizerID: followed.ID})
	require.NoError(t, err)

	_, err = s.users.ChangeRole(ctx, followed.ID, &models.ChangeRoleRequest{Role: models.RoleAttendee})
	requireKind(t, apperr.KindConflict, err)

	got, err := s.users.GetUser(ctx, followed.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleOrganizer, got.Role)
	favs, err := s.favourites.ListFavourites(ctx, fan.ID)
	require.NoError(t, err)
	assert.Len(t, favs, 1)

	// Without followers or events the demotion goes through.
	free := s.newUser(t, models.RoleOrganizer)
	user, err = s.users.ChangeRole(ctx, free.ID, &models.ChangeRoleRequest{Role: models.RoleAttendee})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAttendee, user.Role)
}

func TestDeleteUserCascades(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	w := s.seedWorld(t)
	fan := s.newUser(t, models.RoleOrganizer)
	follower := s.newUser(t, models.RoleAttendee)

	review, err := s.reviews.CreateReview(ctx, &models.CreateReviewRequest{UserID: fan.ID, EventID: w.event.ID, Rating: 4})
	require.NoError(t, err)
	following, err := s.favourites.AddFavourite(ctx, &models.CreateFavouriteRequest{UserID: fan.ID, OrganizerID: w.organizer.ID})
	require.NoError(t, err)
	followed, err := s.favourites.AddFavourite(ctx, &models.CreateFavouriteRequest{UserID: follower.ID, OrganizerID: fan.ID})
	require.NoError(t, err)
	mark, err := s.interested.MarkInterested(ctx, &models.CreateInterestedRequest{UserID: fan.ID, EventID: w.event.ID})
	require.NoError(t, err)

	require.NoError(t, s.users.DeleteUser(ctx, fan.ID))

	_, err = s.users.GetUser(ctx, fan.ID)
	requireKind(t, apperr.KindNotFound, err)
	_, err = s.reviews.GetReview(ctx, review.ID)
	requireKind(t, apperr.KindNotFound, err)
	_, err = s.favourites.GetFavourite(ctx, following.ID)
	requireKind(t, apperr.KindNotFound, err)
	_, err = s.favourites.GetFavourite(ctx, followed.ID)
	requireKind(t, apperr.KindNotFound, err)
	_, err = s.interested.GetInterested(ctx, mark.ID)
	requireKind(t, apperr.KindNotFound, err)

	_, err = s.users.GetUser(ctx, follower.ID)
	require.NoError(t, err)
}

func TestDeleteOrganizerWithEvents(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	w := s.seedWorld(t)

	err := s.users.DeleteUser(ctx, w.organizer.ID)
	requireKind(t, apperr.KindConflict, err)

	_, err = s.users.GetUser(ctx, w.organizer.ID)
	require.NoError(t, err)
}

func TestListUsersPaging(t *testing.T) {
	s := newSuite(t)
	for i := 0; i < 5; i++ {
		s.newUser(t, models.RoleAttendee)
	}

	page, err := s.users.ListUsers(context.Background(), models.PageRequest{Page: 2, Size: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 5, page.Total)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 2, page.Page)
}
