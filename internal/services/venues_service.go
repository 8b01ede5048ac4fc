package services

import (
	"context"
	"log/slog"

	"github.com/joshua-takyi/eventhub/internal/apperr"
	"github.com/joshua-takyi/eventhub/internal/helpers"
	"github.com/joshua-takyi/eventhub/internal/models"
	"github.com/joshua-takyi/eventhub/internal/validation"
)

type VenuesService struct {
	store  models.Store
	check  validation.Validator[models.Venue]
	city   validation.Validator[models.City]
	opts   Options
	logger *slog.Logger
}

func NewVenuesService(store models.Store, opts Options, logger *slog.Logger) *VenuesService {
	return &VenuesService{
		store:  store,
		check:  validation.For[models.Venue](apperr.EntityVenue),
		city:   validation.For[models.City](apperr.EntityCity),
		opts:   opts,
		logger: logger.With("service", "VenuesService"),
	}
}

func (vs *VenuesService) resolveCity(ctx context.Context, op string, id int64) (*models.City, error) {
	if err := vs.city.CheckIDValid(op, id); err != nil {
		return nil, err
	}
	city, err := vs.store.GetCityByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := vs.city.CheckObjectExist(op, city, id); err != nil {
		return nil, err
	}
	return city, nil
}

func (vs *VenuesService) CreateVenue(ctx context.Context, req *models.CreateVenueRequest) (*models.Venue, error) {
	const op = "VenuesService.CreateVenue"
	if err := vs.check.CheckRequestNotNull(op, req); err != nil {
		return nil, err
	}
	in := *req
	in.Name = helpers.StringTrim(in.Name)
	in.Address = helpers.StringTrim(in.Address)
	in.Description = helpers.StringTrim(in.Description)
	if err := vs.check.CheckRequest(op, &in); err != nil {
		return nil, err
	}

	city, err := vs.resolveCity(ctx, op, in.CityID)
	if err != nil {
		return nil, err
	}

	venue := &models.Venue{
		Name:        in.Name,
		Address:     in.Address,
		Description: in.Description,
		CityID:      city.ID,
	}
	if err := vs.store.CreateVenue(ctx, venue); err != nil {
		return nil, err
	}
	venue.City = city
	return venue, nil
}

// GetVenue returns the venue with its city and country attached.
func (vs *VenuesService) GetVenue(ctx context.Context, id int64) (*models.Venue, error) {
	const op = "VenuesService.GetVenue"
	if err := vs.check.CheckIDValid(op, id); err != nil {
		return nil, err
	}
	venue, err := vs.store.GetVenueByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := vs.check.CheckObjectExist(op, venue, id); err != nil {
		return nil, err
	}
	return venue, nil
}

// ListVenues pages through venues, optionally restricted to one city.
func (vs *VenuesService) ListVenues(ctx context.Context, cityID int64, page models.PageRequest) (*models.Page[models.Venue], error) {
	const op = "VenuesService.ListVenues"
	var filter models.VenueFilter
	if cityID != 0 {
		if _, err := vs.resolveCity(ctx, op, cityID); err != nil {
			return nil, err
		}
		filter.CityIDs = []int64{cityID}
	}
	page = vs.opts.page(page)
	venues, total, err := vs.store.ListVenues(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	return &models.Page[models.Venue]{Items: venues, Page: page.Page, Size: page.Size, Total: total}, nil
}

func (vs *VenuesService) UpdateVenue(ctx context.Context, id int64, req *models.UpdateVenueRequest) (*models.Venue, error) {
	const op = "VenuesService.UpdateVenue"
	if err := vs.check.CheckRequestNotNull(op, req); err != nil {
		return nil, err
	}
	if _, err := vs.GetVenue(ctx, id); err != nil {
		return nil, err
	}
	in := models.UpdateVenueRequest{
		Name:        trimPtr(req.Name),
		Address:     trimPtr(req.Address),
		Description: trimPtr(req.Description),
		CityID:      req.CityID,
	}
	if err := vs.check.CheckRequest(op, &in); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	set(updates, "name", in.Name)
	set(updates, "address", in.Address)
	set(updates, "description", in.Description)
	if in.CityID != nil {
		city, err := vs.resolveCity(ctx, op, *in.CityID)
		if err != nil {
			return nil, err
		}
		updates["city_id"] = city.ID
	}

	if err := vs.store.UpdateVenue(ctx, id, updates); err != nil {
		return nil, err
	}
	return vs.GetVenue(ctx, id)
}

// DeleteVenue refuses while any event is scheduled at the venue.
func (vs *VenuesService) DeleteVenue(ctx context.Context, id int64) error {
	const op = "VenuesService.DeleteVenue"
	if _, err := vs.GetVenue(ctx, id); err != nil {
		return err
	}
	err := vs.store.InTx(ctx, func(tx models.Store) error {
		return deleteVenues(ctx, tx, apperr.EntityVenue, op, []int64{id})
	})
	if err != nil {
		vs.logger.Warn("venue delete failed", "venue_id", id, "error", err)
		return err
	}
	return nil
}
