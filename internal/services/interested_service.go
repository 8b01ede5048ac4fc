package services

import (
	"context"
	"log/slog"

	"github.com/joshua-takyi/eventhub/internal/apperr"
	"github.com/joshua-takyi/eventhub/internal/models"
	"github.com/joshua-takyi/eventhub/internal/validation"
)

type InterestedService struct {
	store  models.Store
	check  validation.Validator[models.Interested]
	user   validation.Validator[models.User]
	event  validation.Validator[models.Event]
	logger *slog.Logger
}

func NewInterestedService(store models.Store, logger *slog.Logger) *InterestedService {
	return &InterestedService{
		store:  store,
		check:  validation.For[models.Interested](apperr.EntityInterested),
		user:   validation.For[models.User](apperr.EntityUser),
		event:  validation.For[models.Event](apperr.EntityEvent),
		logger: logger.With("service", "InterestedService"),
	}
}

func (is *InterestedService) MarkInterested(ctx context.Context, req *models.CreateInterestedRequest) (*models.Interested, error) {
	const op = "InterestedService.MarkInterested"
	if err := is.check.CheckRequestNotNull(op, req); err != nil {
		return nil, err
	}
	if err := is.user.CheckIDValid(op, req.UserID); err != nil {
		return nil, err
	}
	user, err := is.store.GetUserByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if err := is.user.CheckObjectExist(op, user, req.UserID); err != nil {
		return nil, err
	}
	event, err := is.getEvent(ctx, op, req.EventID)
	if err != nil {
		return nil, err
	}

	taken, err := is.store.InterestedExists(ctx, user.ID, event.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Conflict(apperr.EntityInterested, op, "user %d is already interested in event %d", user.ID, event.ID)
	}

	mark := &models.Interested{UserID: user.ID, EventID: event.ID}
	if err := is.store.CreateInterested(ctx, mark); err != nil {
		return nil, duplicateAsConflict(err, apperr.EntityInterested, op, "user %d is already interested in event %d", user.ID, event.ID)
	}
	return mark, nil
}

func (is *InterestedService) getEvent(ctx context.Context, op string, id int64) (*models.Event, error) {
	if err := is.event.CheckIDValid(op, id); err != nil {
		return nil, err
	}
	event, err := is.store.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return event, is.event.CheckObjectExist(op, event, id)
}

func (is *InterestedService) GetInterested(ctx context.Context, id int64) (*models.Interested, error) {
	const op = "InterestedService.GetInterested"
	if err := is.check.CheckIDValid(op, id); err != nil {
		return nil, err
	}
	mark, err := is.store.GetInterestedByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := is.check.CheckObjectExist(op, mark, id); err != nil {
		return nil, err
	}
	return mark, nil
}

func (is *InterestedService) RemoveInterested(ctx context.Context, id int64) error {
	if _, err := is.GetInterested(ctx, id); err != nil {
		return err
	}
	return is.store.DeleteInterested(ctx, id)
}

func (is *InterestedService) ListByUser(ctx context.Context, userID int64) ([]models.Interested, error) {
	const op = "InterestedService.ListByUser"
	if err := is.user.CheckIDValid(op, userID); err != nil {
		return nil, err
	}
	user, err := is.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := is.user.CheckObjectExist(op, user, userID); err != nil {
		return nil, err
	}
	return is.store.ListInterestedByUser(ctx, userID)
}

func (is *InterestedService) ListByEvent(ctx context.Context, eventID int64) ([]models.Interested, error) {
	const op = "InterestedService.ListByEvent"
	if _, err := is.getEvent(ctx, op, eventID); err != nil {
		return nil, err
	}
	return is.store.ListInterestedByEvent(ctx, eventID)
}

func (is *InterestedService) CountByEvent(ctx context.Context, eventID int64) (int64, error) {
	const op = "InterestedService.CountByEvent"
	if _, err := is.getEvent(ctx, op, eventID); err != nil {
		return 0, err
	}
	return is.store.CountInterestedByEvent(ctx, eventID)
}
