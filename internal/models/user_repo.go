package models

import (
	"context"

	"github.com/joshua-takyi/eventhub/internal/apperr"
)

// fullNameExpr is portable across postgres and sqlite.
const fullNameExpr = "first_name || ' ' || last_name"

func (r *SQLRepo) CreateUser(ctx context.Context, user *User) error {
	err := r.conn(ctx).Create(user).Error
	return apperr.MapError(apperr.EntityUser, "CreateUser", err)
}

func (r *SQLRepo) GetUserByID(ctx context.Context, id int64) (*User, error) {
	user, err := findOne[User](r.conn(ctx).Where("id = ?", id))
	return user, apperr.MapError(apperr.EntityUser, "GetUserByID", err)
}

func (r *SQLRepo) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	q := r.conn(ctx).Model(&User{}).Where("email = ?", email)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	ok, err := exists(q)
	return ok, apperr.MapError(apperr.EntityUser, "EmailExists", err)
}

func (r *SQLRepo) PhoneExists(ctx context.Context, phone string, excludeID int64) (bool, error) {
	q := r.conn(ctx).Model(&User{}).Where("phone_number = ?", phone)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	ok, err := exists(q)
	return ok, apperr.MapError(apperr.EntityUser, "PhoneExists", err)
}

func (r *SQLRepo) FindUsersByFullName(ctx context.Context, fullName string) ([]User, error) {
	users := []User{}
	err := r.conn(ctx).Where(fullNameExpr+" = ?", fullName).Order("id").Find(&users).Error
	return users, apperr.MapError(apperr.EntityUser, "FindUsersByFullName", err)
}

func (r *SQLRepo) ListUsers(ctx context.Context, page PageRequest) ([]User, int64, error) {
	var total int64
	if err := r.conn(ctx).Model(&User{}).Count(&total).Error; err != nil {
		return nil, 0, apperr.MapError(apperr.EntityUser, "ListUsers", err)
	}
	users := []User{}
	err := r.conn(ctx).Order("id").Offset(page.Offset()).Limit(page.Size).Find(&users).Error
	return users, total, apperr.MapError(apperr.EntityUser, "ListUsers", err)
}

func (r *SQLRepo) UpdateUser(ctx context.Context, id int64, updates map[string]any) error {
	err := updateByID(r.conn(ctx), &User{}, id, updates)
	return apperr.MapError(apperr.EntityUser, "UpdateUser", err)
}

func (r *SQLRepo) DeleteUser(ctx context.Context, id int64) error {
	err := deleteByID(r.conn(ctx), &User{}, id)
	return apperr.MapError(apperr.EntityUser, "DeleteUser", err)
}
