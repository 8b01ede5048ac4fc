package models

import (
	"context"

	"github.com/joshua-takyi/eventhub/internal/apperr"
)

func (r *SQLRepo) CreateCategory(ctx context.Context, category *Category) error {
	err := r.conn(ctx).Create(category).Error
	return apperr.MapError(apperr.EntityCategory, "CreateCategory", err)
}

func (r *SQLRepo) GetCategoryByID(ctx context.Context, id int64) (*Category, error) {
	category, err := findOne[Category](r.conn(ctx).Where("id = ?", id))
	return category, apperr.MapError(apperr.EntityCategory, "GetCategoryByID", err)
}

func (r *SQLRepo) CategoryNameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	q := r.conn(ctx).Model(&Category{}).Where("name = ?", name)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	ok, err := exists(q)
	return ok, apperr.MapError(apperr.EntityCategory, "CategoryNameExists", err)
}

func (r *SQLRepo) ListCategories(ctx context.Context) ([]Category, error) {
	categories := []Category{}
	err := r.conn(ctx).Order("name").Find(&categories).Error
	return categories, apperr.MapError(apperr.EntityCategory, "ListCategories", err)
}

func (r *SQLRepo) UpdateCategory(ctx context.Context, id int64, updates map[string]any) error {
	err := updateByID(r.conn(ctx), &Category{}, id, updates)
	return apperr.MapError(apperr.EntityCategory, "UpdateCategory", err)
}

func (r *SQLRepo) DeleteCategory(ctx context.Context, id int64) error {
	err := deleteByID(r.conn(ctx), &Category{}, id)
	return apperr.MapError(apperr.EntityCategory, "DeleteCategory", err)
}
