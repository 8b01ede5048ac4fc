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

func TestReviewUniquePerUserAndEvent(t *testing.T) {
	store := testutil.Store(t)
	ctx := context.Background()
	g := testutil.SeedGraph(t, store)
	user := testutil.SeedUser(t, store, models.RoleAttendee)

	require.NoError(t, store.CreateReview(ctx, &models.Review{UserID: user.ID, EventID: g.Event.ID, Rating: 8}))
	err := store.CreateReview(ctx, &models.Review{UserID: user.ID, EventID: g.Event.ID, Rating: 3})
	require.Error(t, err)
	assert.Equal(t, apperr.KindDuplicateKey, apperr.KindOf(err))

	ok, err := store.ReviewExists(ctx, user.ID, g.Event.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestReviewRatingCheckConstraint(t *testing.T) {
	store := testutil.Store(t)
	g := testutil.SeedGraph(t, store)
	user := testutil.SeedUser(t, store, models.RoleAttendee)

	err := store.CreateReview(context.Background(), &models.Review{UserID: user.ID, EventID: g.Event.ID, Rating: 11})
	require.Error(t, err)
	assert.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))
}

func TestDeleteReviewsByEvent(t *testing.T) {
	store := testutil.Store(t)
	ctx := context.Background()
	g := testutil.SeedGraph(t, store)
	for i := 0; i < 3; i++ {
		user := testutil.SeedUser(t, store, models.RoleAttendee)
		require.NoError(t, store.CreateReview(ctx, &models.Review{UserID: user.ID, EventID: g.Event.ID, Rating: 5}))
	}

	reviews, err := store.ListReviewsByEvent(ctx, g.Event.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 3)

	require.NoError(t, store.DeleteReviewsByEvent(ctx, g.Event.ID))
	reviews, err = store.ListReviewsByEvent(ctx, g.Event.ID)
	require.NoError(t, err)
	assert.Empty(t, reviews)
}
