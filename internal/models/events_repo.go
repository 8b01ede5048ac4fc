package models

import (
	"context"
	"strings"

	"github.com/joshua-takyi/eventhub/internal/apperr"
	"gorm.io/gorm"
)

func (r *SQLRepo) CreateEvent(ctx context.Context, event *Event) error {
	err := r.conn(ctx).Omit("Category", "Venue", "Organizer").Create(event).Error
	return apperr.MapError(apperr.EntityEvent, "CreateEvent", err)
}

// GetEventByID loads the event with its category, venue (and city) and
// organizer in one call.
func (r *SQLRepo) GetEventByID(ctx context.Context, id int64) (*Event, error) {
	event, err := findOne[Event](r.conn(ctx).Scopes(withEventRefs).Where("id = ?", id))
	return event, apperr.MapError(apperr.EntityEvent, "GetEventByID", err)
}

func (r *SQLRepo) ListEvents(ctx context.Context, filter EventFilter, page PageRequest) ([]Event, int64, error) {
	var total int64
	if err := r.conn(ctx).Model(&Event{}).Scopes(eventFilter(filter)).Count(&total).Error; err != nil {
		return nil, 0, apperr.MapError(apperr.EntityEvent, "ListEvents", err)
	}

	events := []Event{}
	err := r.conn(ctx).
		Scopes(eventFilter(filter), withEventRefs).
		Order("date, id").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&events).Error
	return events, total, apperr.MapError(apperr.EntityEvent, "ListEvents", err)
}

func (r *SQLRepo) CountEvents(ctx context.Context, filter EventFilter) (int64, error) {
	var n int64
	err := r.conn(ctx).Model(&Event{}).Scopes(eventFilter(filter)).Count(&n).Error
	return n, apperr.MapError(apperr.EntityEvent, "CountEvents", err)
}

func (r *SQLRepo) UpdateEvent(ctx context.Context, id int64, updates map[string]any) error {
	err := updateByID(r.conn(ctx), &Event{}, id, updates)
	return apperr.MapError(apperr.EntityEvent, "UpdateEvent", err)
}

func (r *SQLRepo) DeleteEvent(ctx context.Context, id int64) error {
	err := deleteByID(r.conn(ctx), &Event{}, id)
	return apperr.MapError(apperr.EntityEvent, "DeleteEvent", err)
}

func withEventRefs(q *gorm.DB) *gorm.DB {
	return q.Preload("Category").Preload("Venue.City").Preload("Organizer")
}

func eventFilter(f EventFilter) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		if name := strings.TrimSpace(f.Name); name != "" {
			q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
		}
		if len(f.CategoryIDs) > 0 {
			q = q.Where("category_id IN ?", f.CategoryIDs)
		}
		if len(f.VenueIDs) > 0 {
			q = q.Where("venue_id IN ?", f.VenueIDs)
		}
		if len(f.OrganizerIDs) > 0 {
			q = q.Where("organizer_id IN ?", f.OrganizerIDs)
		}
		if len(f.Statuses) > 0 {
			q = q.Where("status IN ?", f.Statuses)
		}
		if len(f.CityIDs) > 0 {
			q = q.Where("venue_id IN (?)",
				q.Session(&gorm.Session{NewDB: true}).Model(&Venue{}).Select("id").Where("city_id IN ?", f.CityIDs))
		}
		if f.OrganizerName != "" {
			q = q.Where("organizer_id IN (?)",
				q.Session(&gorm.Session{NewDB: true}).Model(&User{}).Select("id").Where(fullNameExpr+" = ?", f.OrganizerName))
		}
		return q
	}
}
