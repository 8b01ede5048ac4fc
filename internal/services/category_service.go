package services

import (
	"context"
	"log/slog"

	"github.com/joshua-takyi/eventhub/internal/apperr"
	"github.com/joshua-takyi/eventhub/internal/helpers"
	"github.com/joshua-takyi/eventhub/internal/models"
	"github.com/joshua-takyi/eventhub/internal/validation"
)

type CategoryService struct {
	store  models.Store
	check  validation.Validator[models.Category]
	logger *slog.Logger
}

func NewCategoryService(store models.Store, logger *slog.Logger) *CategoryService {
	return &CategoryService{
		store:  store,
		check:  validation.For[models.Category](apperr.EntityCategory),
		logger: logger.With("service", "CategoryService"),
	}
}

func (cs *CategoryService) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {
	const op = "CategoryService.CreateCategory"
	if err := cs.check.CheckRequestNotNull(op, req); err != nil {
		return nil, err
	}
	in := *req
	in.Name = helpers.StringTrim(in.Name)
	in.Description = helpers.StringTrim(in.Description)
	if err := cs.check.CheckRequest(op, &in); err != nil {
		return nil, err
	}

	taken, err := cs.store.CategoryNameExists(ctx, in.Name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.DuplicateKey(apperr.EntityCategory, op, "name", in.Name)
	}

	category := &models.Category{Name: in.Name, Description: in.Description}
	if err := cs.store.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (cs *CategoryService) GetCategory(ctx context.Context, id int64) (*models.Category, error) {
	const op = "CategoryService.GetCategory"
	if err := cs.check.CheckIDValid(op, id); err != nil {
		return nil, err
	}
	category, err := cs.store.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := cs.check.CheckObjectExist(op, category, id); err != nil {
		return nil, err
	}
	return category, nil
}

func (cs *CategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return cs.store.ListCategories(ctx)
}

func (cs *CategoryService) UpdateCategory(ctx context.Context, id int64, req *models.UpdateCategoryRequest) (*models.Category, error) {
	const op = "CategoryService.UpdateCategory"
	if err := cs.check.CheckRequestNotNull(op, req); err != nil {
		return nil, err
	}
	current, err := cs.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	in := models.UpdateCategoryRequest{
		Name:        trimPtr(req.Name),
		Description: trimPtr(req.Description),
	}
	if err := cs.check.CheckRequest(op, &in); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if in.Name != nil && *in.Name != current.Name {
		taken, err := cs.store.CategoryNameExists(ctx, *in.Name, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperr.DuplicateKey(apperr.EntityCategory, op, "name", *in.Name)
		}
		updates["name"] = *in.Name
	}
	set(updates, "description", in.Description)

	if err := cs.store.UpdateCategory(ctx, id, updates); err != nil {
		return nil, err
	}
	return cs.GetCategory(ctx, id)
}

// DeleteCategory refuses while any event is filed under the category.
func (cs *CategoryService) DeleteCategory(ctx context.Context, id int64) error {
	const op = "CategoryService.DeleteCategory"
	if _, err := cs.GetCategory(ctx, id); err != nil {
		return err
	}
	return cs.store.InTx(ctx, func(tx models.Store) error {
		n, err := tx.CountEvents(ctx, models.EventFilter{CategoryIDs: []int64{id}})
		if err != nil {
			return err
		}
		if n > 0 {
			cs.logger.Warn("category still in use", "category_id", id, "events", n)
			return apperr.Conflict(apperr.EntityCategory, op, "cannot delete category: %d event(s) still reference it", n)
		}
		return tx.DeleteCategory(ctx, id)
	})
}
