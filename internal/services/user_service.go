package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/joshua-takyi/eventhub/internal/apperr"
	"github.com/joshua-takyi/eventhub/internal/helpers"
	"github.com/joshua-takyi/eventhub/internal/models"
	"github.com/joshua-takyi/eventhub/internal/validation"
)

type UserService struct {
	store  models.Store
	check  validation.Validator[models.User]
	opts   Options
	logger *slog.Logger
}

func NewUserService(store models.Store, opts Options, logger *slog.Logger) *UserService {
	return &UserService{
		store:  store,
		check:  validation.For[models.User](apperr.EntityUser),
		opts:   opts,
		logger: logger.With("service", "UserService"),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(helpers.StringTrim(email))
}

// checkUnique reports which unique field collides with another user.
func (us *UserService) checkUnique(ctx context.Context, op string, email, phone *string, excludeID int64) error {
	if email != nil {
		taken, err := us.store.EmailExists(ctx, *email, excludeID)
		if err != nil {
			return err
		}
		if taken {
			return apperr.DuplicateKey(apperr.EntityUser, op, "email", *email)
		}
	}
	if phone != nil {
		taken, err := us.store.PhoneExists(ctx, *phone, excludeID)
		if err != nil {
			return err
		}
		if taken {
			return apperr.DuplicateKey(apperr.EntityUser, op, "phone_number", *phone)
		}
	}
	return nil
}

func (us *UserService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	const op = "UserService.CreateUser"
	if err := us.check.CheckRequestNotNull(op, req); err != nil {
		return nil, err
	}
	in := *req
	in.FirstName = helpers.StringTrim(in.FirstName)
	in.LastName = helpers.StringTrim(in.LastName)
	in.Email = normalizeEmail(in.Email)
	in.PhoneNumber = helpers.StringTrim(in.PhoneNumber)
	if in.Role == "" {
		in.Role = models.RoleAttendee
	}
	if err := us.check.CheckRequest(op, &in); err != nil {
		return nil, err
	}
	if err := us.checkUnique(ctx, op, &in.Email, &in.PhoneNumber, 0); err != nil {
		return nil, err
	}

	user := &models.User{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		Role:        in.Role,
	}
	if err := us.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (us *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	const op = "UserService.GetUser"
	if err := us.check.CheckIDValid(op, id); err != nil {
		return nil, err
	}
	user, err := us.store.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := us.check.CheckObjectExist(op, user, id); err != nil {
		return nil, err
	}
	return user, nil
}

func (us *UserService) ListUsers(ctx context.Context, page models.PageRequest) (*models.Page[models.User], error) {
	page = us.opts.page(page)
	users, total, err := us.store.ListUsers(ctx, page)
	if err != nil {
		return nil, err
	}
	return &models.Page[models.User]{Items: users, Page: page.Page, Size: page.Size, Total: total}, nil
}

// FindByFullName matches "first last" exactly.
func (us *UserService) FindByFullName(ctx context.Context, fullName string) ([]models.User, error) {
	const op = "UserService.FindByFullName"
	fullName = helpers.StringTrim(fullName)
	if fullName == "" {
		return nil, apperr.Invalid(apperr.EntityUser, op, "full name must not be blank")
	}
	users, err := us.store.FindUsersByFullName(ctx, fullName)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, apperr.NoResults(apperr.EntityUser, op, "name %q", fullName)
	}
	return users, nil
}

func (us *UserService) UpdateUser(ctx context.Context, id int64, req *models.UpdateUserRequest) (*models.User, error) {
	const op = "UserService.UpdateUser"
	if err := us.check.CheckRequestNotNull(op, req); err != nil {
		return nil, err
	}
	if _, err := us.GetUser(ctx, id); err != nil {
		return nil, err
	}
	in := models.UpdateUserRequest{
		FirstName:   trimPtr(req.FirstName),
		LastName:    trimPtr(req.LastName),
		PhoneNumber: trimPtr(req.PhoneNumber),
	}
	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		in.Email = &email
	}
	if err := us.check.CheckRequest(op, &in); err != nil {
		return nil, err
	}
	if err := us.checkUnique(ctx, op, in.Email, in.PhoneNumber, id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	set(updates, "first_name", in.FirstName)
	set(updates, "last_name", in.LastName)
	set(updates, "email", in.Email)
	set(updates, "phone_number", in.PhoneNumber)
	if err := us.store.UpdateUser(ctx, id, updates); err != nil {
		return nil, err
	}
	return us.GetUser(ctx, id)
}

// ChangeRole is a privileged mutation; callers must authorize it. A user
// who still organizes events or is followed as an organizer keeps an
// organizer-capable role.
func (us *UserService) ChangeRole(ctx context.Context, id int64, req *models.ChangeRoleRequest) (*models.User, error) {
	const op = "UserService.ChangeRole"
	if err := us.check.CheckRequest(op, req); err != nil {
		return nil, err
	}
	user, err := us.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Role == req.Role {
		return user, nil
	}
	err = us.store.InTx(ctx, func(tx models.Store) error {
		if !req.Role.CanOrganize() {
			n, err := tx.CountEvents(ctx, models.EventFilter{OrganizerIDs: []int64{id}})
			if err != nil {
				return err
			}
			if n > 0 {
				return apperr.Conflict(apperr.EntityUser, op, "user %d organizes %d event(s) and must keep an organizer role", id, n)
			}
			followers, err := tx.ListFavouritesByOrganizer(ctx, id)
			if err != nil {
				return err
			}
			if len(followers) > 0 {
				return apperr.Conflict(apperr.EntityUser, op, "user %d is favourited by %d user(s) and must keep an organizer role", id, len(followers))
			}
		}
		return tx.UpdateUser(ctx, id, map[string]any{"role": req.Role})
	})
	if err != nil {
		us.logger.Warn("role change rejected", "user_id", id, "to", req.Role, "error", err)
		return nil, err
	}
	us.logger.Info("user role changed", "user_id", id, "from", user.Role, "to", req.Role)
	return us.GetUser(ctx, id)
}

// DeleteUser removes the user with their reviews, favourites and interest
// markers. Organizers of existing events cannot be deleted.
func (us *UserService) DeleteUser(ctx context.Context, id int64) error {
	const op = "UserService.DeleteUser"
	if _, err := us.GetUser(ctx, id); err != nil {
		return err
	}
	err := us.store.InTx(ctx, func(tx models.Store) error {
		n, err := tx.CountEvents(ctx, models.EventFilter{OrganizerIDs: []int64{id}})
		if err != nil {
			return err
		}
		if n > 0 {
			return apperr.Conflict(apperr.EntityUser, op, "cannot delete user: they organize %d event(s)", n)
		}
		if err := tx.DeleteReviewsByUser(ctx, id); err != nil {
			return err
		}
		if err := tx.DeleteFavouritesByUser(ctx, id); err != nil {
			return err
		}
		if err := tx.DeleteInterestedByUser(ctx, id); err != nil {
			return err
		}
		return tx.DeleteUser(ctx, id)
	})
	if err != nil {
		us.logger.Warn("user delete failed", "user_id", id, "error", err)
		return err
	}
	us.logger.Info("user deleted", "user_id", id)
	return nil
}
