package models

import (
	"context"

	"github.com/joshua-takyi/eventhub/internal/apperr"
)

func (r *SQLRepo) CreateReview(ctx context.Context, review *Review) error {
	err := r.conn(ctx).Omit("User", "Event").Create(review).Error
	return apperr.MapError(apperr.EntityReview, "CreateReview", err)
}

func (r *SQLRepo) GetReviewByID(ctx context.Context, id int64) (*Review, error) {
	review, err := findOne[Review](r.conn(ctx).Preload("User").Where("id = ?", id))
	return review, apperr.MapError(apperr.EntityReview, "GetReviewByID", err)
}

func (r *SQLRepo) ReviewExists(ctx context.Context, userID, eventID int64) (bool, error) {
	ok, err := exists(r.conn(ctx).Model(&Review{}).Where("user_id = ? AND event_id = ?", userID, eventID))
	return ok, apperr.MapError(apperr.EntityReview, "ReviewExists", err)
}

// ListReviewsByEvent returns the event's reviews with their authors loaded.
func (r *SQLRepo) ListReviewsByEvent(ctx context.Context, eventID int64) ([]Review, error) {
	reviews := []Review{}
	err := r.conn(ctx).Preload("User").Where("event_id = ?", eventID).Order("created_at, id").Find(&reviews).Error
	return reviews, apperr.MapError(apperr.EntityReview, "ListReviewsByEvent", err)
}

func (r *SQLRepo) ListReviewsByUser(ctx context.Context, userID int64) ([]Review, error) {
	reviews := []Review{}
	err := r.conn(ctx).Preload("Event").Where("user_id = ?", userID).Order("created_at, id").Find(&reviews).Error
	return reviews, apperr.MapError(apperr.EntityReview, "ListReviewsByUser", err)
}

func (r *SQLRepo) UpdateReview(ctx context.Context, id int64, updates map[string]any) error {
	err := updateByID(r.conn(ctx), &Review{}, id, updates)
	return apperr.MapError(apperr.EntityReview, "UpdateReview", err)
}

func (r *SQLRepo) DeleteReview(ctx context.Context, id int64) error {
	err := deleteByID(r.conn(ctx), &Review{}, id)
	return apperr.MapError(apperr.EntityReview, "DeleteReview", err)
}

func (r *SQLRepo) DeleteReviewsByEvent(ctx context.Context, eventID int64) error {
	err := r.conn(ctx).Where("event_id = ?", eventID).Delete(&Review{}).Error
	return apperr.MapError(apperr.EntityReview, "DeleteReviewsByEvent", err)
}

func (r *SQLRepo) DeleteReviewsByUser(ctx context.Context, userID int64) error {
	err := r.conn(ctx).Where("user_id = ?", userID).Delete(&Review{}).Error
	return apperr.MapError(apperr.EntityReview, "DeleteReviewsByUser", err)
}
