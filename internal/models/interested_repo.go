package models

import (
	"context"

	"github.com/joshua-takyi/eventhub/internal/apperr"
)

func (r *SQLRepo) CreateInterested(ctx context.Context, mark *Interested) error {
	err := r.conn(ctx).Omit("User", "Event").Create(mark).Error
	return apperr.MapError(apperr.EntityInterested, "CreateInterested", err)
}

func (r *SQLRepo) GetInterestedByID(ctx context.Context, id int64) (*Interested, error) {
	mark, err := findOne[Interested](r.conn(ctx).Where("id = ?", id))
	return mark, apperr.MapError(apperr.EntityInterested, "GetInterestedByID", err)
}

func (r *SQLRepo) InterestedExists(ctx context.Context, userID, eventID int64) (bool, error) {
	ok, err := exists(r.conn(ctx).Model(&Interested{}).Where("user_id = ? AND event_id = ?", userID, eventID))
	return ok, apperr.MapError(apperr.EntityInterested, "InterestedExists", err)
}

func (r *SQLRepo) ListInterestedByUser(ctx context.Context, userID int64) ([]Interested, error) {
	marks := []Interested{}
	err := r.conn(ctx).Preload("Event").Where("user_id = ?", userID).Find(&marks).Error
	return marks, apperr.MapError(apperr.EntityInterested, "ListInterestedByUser", err)
}

func (r *SQLRepo) ListInterestedByEvent(ctx context.Context, eventID int64) ([]Interested, error) {
	marks := []Interested{}
	err := r.conn(ctx).Preload("User").Where("event_id = ?", eventID).Find(&marks).Error
	return marks, apperr.MapError(apperr.EntityInterested, "ListInterestedByEvent", err)
}

func (r *SQLRepo) CountInterestedByEvent(ctx context.Context, eventID int64) (int64, error) {
	var n int64
	err := r.conn(ctx).Model(&Interested{}).Where("event_id = ?", eventID).Count(&n).Error
	return n, apperr.MapError(apperr.EntityInterested, "CountInterestedByEvent", err)
}

func (r *SQLRepo) DeleteInterested(ctx context.Context, id int64) error {
	err := deleteByID(r.conn(ctx), &Interested{}, id)
	return apperr.MapError(apperr.EntityInterested, "DeleteInterested", err)
}

func (r *SQLRepo) DeleteInterestedByEvent(ctx context.Context, eventID int64) error {
	err := r.conn(ctx).Where("event_id = ?", eventID).Delete(&Interested{}).Error
	return apperr.MapError(apperr.EntityInterested, "DeleteInterestedByEvent", err)
}

func (r *SQLRepo) DeleteInterestedByUser(ctx context.Context, userID int64) error {
	err := r.conn(ctx).Where("user_id = ?", userID).Delete(&Interested{}).Error
	return apperr.MapError(apperr.EntityInterested, "DeleteInterestedByUser", err)
}
