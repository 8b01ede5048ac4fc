package models

import "time"

type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusPublished EventStatus = "published"
	EventStatusCancelled EventStatus = "cancelled"
	EventStatusCompleted EventStatus = "completed"
)

var eventTransitions = map[EventStatus][]EventStatus{
	EventStatusDraft:     {EventStatusPublished, EventStatusCancelled},
	EventStatusPublished: {EventStatusCompleted, EventStatusCancelled},
}

func (s EventStatus) Valid() bool {
	switch s {
	case EventStatusDraft, EventStatusPublished, EventStatusCancelled, EventStatusCompleted:
		return true
	}
	return false
}

func (s EventStatus) IsTerminal() bool {
	return s == EventStatusCancelled || s == EventStatusCompleted
}

// CanTransitionTo reports whether an event in status s may move to next.
// Staying in the same status is not a transition.
func (s EventStatus) CanTransitionTo(next EventStatus) bool {
	for _, allowed := range eventTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Event struct {
	ID          int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string      `gorm:"size:255;not null;index" json:"name"`
	Description string      `gorm:"size:2000" json:"description,omitempty"`
	Status      EventStatus `gorm:"size:20;not null;default:draft;index" json:"status"`
	Date        time.Time   `gorm:"not null;index" json:"date"`
	CategoryID  int64       `gorm:"not null;index" json:"category_id"`
	VenueID     int64       `gorm:"not null;index" json:"venue_id"`
	OrganizerID int64       `gorm:"not null;index" json:"organizer_id"`
	Category    *Category   `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category,omitempty"`
	Venue       *Venue      `gorm:"foreignKey:VenueID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"venue,omitempty"`
	Organizer   *User       `gorm:"foreignKey:OrganizerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"organizer,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type CreateEventRequest struct {
	Name        string      `json:"name" validate:"required,notblank,max=255"`
	Description string      `json:"description" validate:"max=2000"`
	Date        time.Time   `json:"date" validate:"required"`
	Status      EventStatus `json:"status" validate:"omitempty,oneof=draft published"`
	CategoryID  int64       `json:"category_id"`
	VenueID     int64       `json:"venue_id"`
	OrganizerID int64       `json:"organizer_id"`
}

type UpdateEventRequest struct {
	Name        *string      `json:"name" validate:"omitempty,notblank,max=255"`
	Description *string      `json:"description" validate:"omitempty,max=2000"`
	Date        *time.Time   `json:"date"`
	Status      *EventStatus `json:"status" validate:"omitempty,oneof=draft published cancelled completed"`
	CategoryID  *int64       `json:"category_id"`
	VenueID     *int64       `json:"venue_id"`
}

type ChangeStatusRequest struct {
	Status EventStatus `json:"status" validate:"required,oneof=draft published cancelled completed"`
}

// EventFilter narrows an event listing. Empty fields do not filter.
// OrganizerName is matched exactly against "first last".
type EventFilter struct {
	Name          string
	OrganizerName string
	CategoryIDs   []int64
	VenueIDs      []int64
	CityIDs       []int64
	OrganizerIDs  []int64
	Statuses      []EventStatus
}
