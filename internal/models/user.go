package models

import "time"

type Role string

const (
	RoleAttendee  Role = "attendee"
	RoleOrganizer Role = "organizer"
	RoleAdmin     Role = "admin"
)

// CanOrganize reports whether a user holding the role may organize events.
func (r Role) CanOrganize() bool {
	return r == RoleOrganizer || r == RoleAdmin
}

type User struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName   string    `gorm:"size:100;not null" json:"first_name"`
	LastName    string    `gorm:"size:100;not null" json:"last_name"`
	Email       string    `gorm:"size:255;not null;uniqueIndex:idx_users_email" json:"email"`
	PhoneNumber string    `gorm:"size:20;not null;uniqueIndex:idx_users_phone" json:"phone_number"`
	Role        Role      `gorm:"size:20;not null;default:attendee" json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

type CreateUserRequest struct {
	FirstName   string `json:"first_name" validate:"required,notblank,max=100"`
	LastName    string `json:"last_name" validate:"required,notblank,max=100"`
	Email       string `json:"email" validate:"required,email,max=255"`
	PhoneNumber string `json:"phone_number" validate:"required,e164"`
	Role        Role   `json:"role" validate:"omitempty,oneof=attendee organizer admin"`
}

type UpdateUserRequest struct {
	FirstName   *string `json:"first_name" validate:"omitempty,notblank,max=100"`
	LastName    *string `json:"last_name" validate:"omitempty,notblank,max=100"`
	Email       *string `json:"email" validate:"omitempty,email,max=255"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,e164"`
}

type ChangeRoleRequest struct {
	Role Role `json:"role" validate:"required,oneof=attendee organizer admin"`
}
