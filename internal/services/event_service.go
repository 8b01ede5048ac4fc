package services

import (
	"context"
	"log/slog"

	"github.com/joshua-takyi/eventhub/internal/apperr"
	"github.com/joshua-takyi/eventhub/internal/helpers"
	"github.com/joshua-takyi/eventhub/internal/models"
	"github.com/joshua-takyi/eventhub/internal/validation"
)

type EventService struct {
	store     models.Store
	check     validation.Validator[models.Event]
	category  validation.Validator[models.Category]
	venue     validation.Validator[models.Venue]
	organizer validation.Validator[models.User]
	opts      Options
	logger    *slog.Logger
}

func NewEventService(store models.Store, opts Options, logger *slog.Logger) *EventService {
	return &EventService{
		store:     store,
		check:     validation.For[models.Event](apperr.EntityEvent),
		category:  validation.For[models.Category](apperr.EntityCategory),
		venue:     validation.For[models.Venue](apperr.EntityVenue),
		organizer: validation.For[models.User](apperr.EntityUser),
		opts:      opts,
		logger:    logger.With("service", "EventService"),
	}
}

func (es *EventService) resolveCategory(ctx context.Context, op string, id int64) (*models.Category, error) {
	if err := es.category.CheckIDValid(op, id); err != nil {
		return nil, err
	}
	category, err := es.store.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return category, es.category.CheckObjectExist(op, category, id)
}

func (es *EventService) resolveVenue(ctx context.Context, op string, id int64) (*models.Venue, error) {
	if err := es.venue.CheckIDValid(op, id); err != nil {
		return nil, err
	}
	venue, err := es.store.GetVenueByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return venue, es.venue.CheckObjectExist(op, venue, id)
}

func (es *EventService) resolveOrganizer(ctx context.Context, op string, id int64) (*models.User, error) {
	if err := es.organizer.CheckIDValid(op, id); err != nil {
		return nil, err
	}
	user, err := es.store.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := es.organizer.CheckObjectExist(op, user, id); err != nil {
		return nil, err
	}
	if !user.Role.CanOrganize() {
		return nil, apperr.Invalid(apperr.EntityEvent, op, "user %d cannot organize events with role %s", id, user.Role)
	}
	return user, nil
}

func (es *EventService) checkTransition(op string, from, to models.EventStatus) error {
	if !from.CanTransitionTo(to) {
		return apperr.Conflict(apperr.EntityEvent, op, "status transition not allowed: %s -> %s", from, to)
	}
	return nil
}

func (es *EventService) CreateEvent(ctx context.Context, req *models.CreateEventRequest) (*models.Event, error) {
	const op = "EventService.CreateEvent"
	if err := es.check.CheckRequestNotNull(op, req); err != nil {
		return nil, err
	}
	in := *req
	in.Name = helpers.StringTrim(in.Name)
	in.Description = helpers.StringTrim(in.Description)
	if in.Status == "" {
		in.Status = models.EventStatusDraft
	}
	if err := es.check.CheckRequest(op, &in); err != nil {
		return nil, err
	}

	category, err := es.resolveCategory(ctx, op, in.CategoryID)
	if err != nil {
		return nil, err
	}
	venue, err := es.resolveVenue(ctx, op, in.VenueID)
	if err != nil {
		return nil, err
	}
	organizer, err := es.resolveOrganizer(ctx, op, in.OrganizerID)
	if err != nil {
		return nil, err
	}

	event := &models.Event{
		Name:        in.Name,
		Description: in.Description,
		Status:      in.Status,
		Date:        in.Date.UTC(),
		CategoryID:  category.ID,
		VenueID:     venue.ID,
		OrganizerID: organizer.ID,
	}
	if err := es.store.CreateEvent(ctx, event); err != nil {
		return nil, err
	}
	event.Category = category
	event.Venue = venue
	event.Organizer = organizer
	return event, nil
}

// GetEvent loads the event with category, venue and organizer.
func (es *EventService) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	const op = "EventService.GetEvent"
	if err := es.check.CheckIDValid(op, id); err != nil {
		return nil, err
	}
	event, err := es.store.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := es.check.CheckObjectExist(op, event, id); err != nil {
		return nil, err
	}
	return event, nil
}

// ListEvents fails with NoResultsFound when the page is empty.
func (es *EventService) ListEvents(ctx context.Context, filter models.EventFilter, page models.PageRequest) (*models.Page[models.Event], error) {
	const op = "EventService.ListEvents"
	page = es.opts.page(page)
	events, total, err := es.store.ListEvents(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, apperr.NoResults(apperr.EntityEvent, op, "page %d", page.Page)
	}
	return &models.Page[models.Event]{Items: events, Page: page.Page, Size: page.Size, Total: total}, nil
}

func (es *EventService) ListEventsByOrganizerName(ctx context.Context, fullName string, page models.PageRequest) (*models.Page[models.Event], error) {
	const op = "EventService.ListEventsByOrganizerName"
	fullName = helpers.StringTrim(fullName)
	if fullName == "" {
		return nil, apperr.Invalid(apperr.EntityEvent, op, "organizer name must not be blank")
	}
	return es.ListEvents(ctx, models.EventFilter{OrganizerName: fullName}, page)
}

func (es *EventService) ListEventsByCategory(ctx context.Context, categoryID int64, page models.PageRequest) (*models.Page[models.Event], error) {
	const op = "EventService.ListEventsByCategory"
	if _, err := es.resolveCategory(ctx, op, categoryID); err != nil {
		return nil, err
	}
	return es.ListEvents(ctx, models.EventFilter{CategoryIDs: []int64{categoryID}}, page)
}

// UpdateEvent applies the non-nil fields of req. Changed references are
// resolved again and a status change must be a permitted transition.
func (es *EventService) UpdateEvent(ctx context.Context, id int64, req *models.UpdateEventRequest) (*models.Event, error) {
	const op = "EventService.UpdateEvent"
	if err := es.check.CheckRequestNotNull(op, req); err != nil {
		return nil, err
	}
	current, err := es.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	in := *req
	in.Name = trimPtr(req.Name)
	in.Description = trimPtr(req.Description)
	if err := es.check.CheckRequest(op, &in); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	set(updates, "name", in.Name)
	set(updates, "description", in.Description)
	if in.Date != nil {
		updates["date"] = in.Date.UTC()
	}
	if in.CategoryID != nil {
		category, err := es.resolveCategory(ctx, op, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		updates["category_id"] = category.ID
	}
	if in.VenueID != nil {
		venue, err := es.resolveVenue(ctx, op, *in.VenueID)
		if err != nil {
			return nil, err
		}
		updates["venue_id"] = venue.ID
	}
	if in.Status != nil {
		if err := es.checkTransition(op, current.Status, *in.Status); err != nil {
			return nil, err
		}
		updates["status"] = *in.Status
	}

	if err := es.store.UpdateEvent(ctx, id, updates); err != nil {
		return nil, err
	}
	return es.GetEvent(ctx, id)
}

func (es *EventService) ChangeStatus(ctx context.Context, id int64, req *models.ChangeStatusRequest) (*models.Event, error) {
	const op = "EventService.ChangeStatus"
	if err := es.check.CheckRequest(op, req); err != nil {
		return nil, err
	}
	current, err := es.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := es.checkTransition(op, current.Status, req.Status); err != nil {
		return nil, err
	}
	if err := es.store.UpdateEvent(ctx, id, map[string]any{"status": req.Status}); err != nil {
		return nil, err
	}
	es.logger.Info("event status changed", "event_id", id, "from", current.Status, "to", req.Status)
	return es.GetEvent(ctx, id)
}

// DeleteEvent removes the event together with its reviews and interest
// markers.
func (es *EventService) DeleteEvent(ctx context.Context, id int64) error {
	if _, err := es.GetEvent(ctx, id); err != nil {
		return err
	}
	err := es.store.InTx(ctx, func(tx models.Store) error {
		if err := tx.DeleteReviewsByEvent(ctx, id); err != nil {
			return err
		}
		if err := tx.DeleteInterestedByEvent(ctx, id); err != nil {
			return err
		}
		return tx.DeleteEvent(ctx, id)
	})
	if err != nil {
		es.logger.Warn("event delete failed", "event_id", id, "error", err)
		return err
	}
	es.logger.Info("event deleted", "event_id", id)
	return nil
}
