package services

import (
	"context"
	"log/slog"

	"github.com/joshua-takyi/eventhub/internal/apperr"
	"github.com/joshua-takyi/eventhub/internal/models"
	"github.com/joshua-takyi/eventhub/internal/validation"
)

type FavouritesService struct {
	store  models.Store
	check  validation.Validator[models.Favourite]
	user   validation.Validator[models.User]
	logger *slog.Logger
}

func NewFavouritesService(store models.Store, logger *slog.Logger) *FavouritesService {
	return &FavouritesService{
		store:  store,
		check:  validation.For[models.Favourite](apperr.EntityFavourite),
		user:   validation.For[models.User](apperr.EntityUser),
		logger: logger.With("service", "FavouritesService"),
	}
}

func (fs *FavouritesService) resolveUser(ctx context.Context, op string, id int64) (*models.User, error) {
	if err := fs.user.CheckIDValid(op, id); err != nil {
		return nil, err
	}
	user, err := fs.store.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user, fs.user.CheckObjectExist(op, user, id)
}

// AddFavourite makes userID follow organizerID. A pair can exist once.
func (fs *FavouritesService) AddFavourite(ctx context.Context, req *models.CreateFavouriteRequest) (*models.Favourite, error) {
	const op = "FavouritesService.AddFavourite"
	if err := fs.check.CheckRequestNotNull(op, req); err != nil {
		return nil, err
	}
	user, err := fs.resolveUser(ctx, op, req.UserID)
	if err != nil {
		return nil, err
	}
	organizer, err := fs.resolveUser(ctx, op, req.OrganizerID)
	if err != nil {
		return nil, err
	}
	if user.ID == organizer.ID {
		return nil, apperr.Invalid(apperr.EntityFavourite, op, "a user cannot favourite themselves")
	}
	if !organizer.Role.CanOrganize() {
		return nil, apperr.Invalid(apperr.EntityFavourite, op, "user %d is not an organizer", organizer.ID)
	}

	taken, err := fs.store.FavouriteExists(ctx, user.ID, organizer.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Conflict(apperr.EntityFavourite, op, "user %d already favourites organizer %d", user.ID, organizer.ID)
	}

	fav := &models.Favourite{UserID: user.ID, OrganizerID: organizer.ID}
	if err := fs.store.CreateFavourite(ctx, fav); err != nil {
		return nil, duplicateAsConflict(err, apperr.EntityFavourite, op, "user %d already favourites organizer %d", user.ID, organizer.ID)
	}
	fav.Organizer = organizer
	return fav, nil
}

func (fs *FavouritesService) GetFavourite(ctx context.Context, id int64) (*models.Favourite, error) {
	const op = "FavouritesService.GetFavourite"
	if err := fs.check.CheckIDValid(op, id); err != nil {
		return nil, err
	}
	fav, err := fs.store.GetFavouriteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fs.check.CheckObjectExist(op, fav, id); err != nil {
		return nil, err
	}
	return fav, nil
}

func (fs *FavouritesService) RemoveFavourite(ctx context.Context, id int64) error {
	if _, err := fs.GetFavourite(ctx, id); err != nil {
		return err
	}
	return fs.store.DeleteFavourite(ctx, id)
}

// ListFavourites returns the organizers userID follows, unordered.
func (fs *FavouritesService) ListFavourites(ctx context.Context, userID int64) ([]models.Favourite, error) {
	const op = "FavouritesService.ListFavourites"
	if _, err := fs.resolveUser(ctx, op, userID); err != nil {
		return nil, err
	}
	return fs.store.ListFavouritesByUser(ctx, userID)
}

func (fs *FavouritesService) ListFollowers(ctx context.Context, organizerID int64) ([]models.Favourite, error) {
	const op = "FavouritesService.ListFollowers"
	if _, err := fs.resolveUser(ctx, op, organizerID); err != nil {
		return nil, err
	}
	return fs.store.ListFavouritesByOrganizer(ctx, organizerID)
}
