package validation

import (
	"strings"
	"testing"

	"github.com/joshua-takyi/eventhub/internal/apperr"
	"github.com/joshua-takyi/eventhub/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckIDValid(t *testing.T) {
	v := For[models.Venue](apperr.EntityVenue)

	for _, id := range []int64{0, -1, -42} {
		err := v.CheckIDValid("GetVenue", id)
		require.Error(t, err, "id %d", id)
		assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
		assert.Equal(t, apperr.EntityVenue, apperr.EntityOf(err))
	}
	assert.NoError(t, v.CheckIDValid("GetVenue", 1))
}

func TestCheckRequestNotNull(t *testing.T) {
	v := For[models.Category](apperr.EntityCategory)

	var nilReq *models.CreateCategoryRequest
	err := v.CheckRequestNotNull("CreateCategory", nilReq)
	assert.True(t, apperr.IsKind(err, apperr.KindRequestEmpty))

	err = v.CheckRequestNotNull("CreateCategory", nil)
	assert.True(t, apperr.IsKind(err, apperr.KindRequestEmpty))

	assert.NoError(t, v.CheckRequestNotNull("CreateCategory", &models.CreateCategoryRequest{}))
}

func TestCheckObjectExist(t *testing.T) {
	v := For[models.Event](apperr.EntityEvent)

	err := v.CheckObjectExist("GetEvent", nil, 7)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	assert.Contains(t, err.Error(), "event not found")

	assert.NoError(t, v.CheckObjectExist("GetEvent", &models.Event{ID: 7}, 7))
}

func TestCheckRequestTags(t *testing.T) {
	v := For[models.Category](apperr.EntityCategory)

	err := v.CheckRequest("CreateCategory", &models.CreateCategoryRequest{Name: "   "})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidArgument))
	assert.Contains(t, err.Error(), "name must not be blank")

	err = v.CheckRequest("CreateCategory", &models.CreateCategoryRequest{
		Name:        "Jazz",
		Description: strings.Repeat("x", 501),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "description must be at most 500")

	assert.NoError(t, v.CheckRequest("CreateCategory", &models.CreateCategoryRequest{Name: "Jazz"}))
}

func TestCheckRequestPartialUpdate(t *testing.T) {
	v := For[models.Review](apperr.EntityReview)

	assert.NoError(t, v.CheckRequest("UpdateReview", &models.UpdateReviewRequest{}))

	bad := 11
	err := v.CheckRequest("UpdateReview", &models.UpdateReviewRequest{Rating: &bad})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidArgument))
}
