package services

import (
	"context"
	"log/slog"

	"github.com/joshua-takyi/eventhub/internal/apperr"
	"github.com/joshua-takyi/eventhub/internal/helpers"
	"github.com/joshua-takyi/eventhub/internal/models"
	"github.com/joshua-takyi/eventhub/internal/validation"
)

type CountryService struct {
	store  models.Store
	check  validation.Validator[models.Country]
	logger *slog.Logger
}

func NewCountryService(store models.Store, logger *slog.Logger) *CountryService {
	return &CountryService{
		store:  store,
		check:  validation.For[models.Country](apperr.EntityCountry),
		logger: logger.With("service", "CountryService"),
	}
}

func (cs *CountryService) CreateCountry(ctx context.Context, req *models.CreateCountryRequest) (*models.Country, error) {
	const op = "CountryService.CreateCountry"
	if err := cs.check.CheckRequestNotNull(op, req); err != nil {
		return nil, err
	}
	in := *req
	in.Name = helpers.StringTrim(in.Name)
	in.Code = normalizeCode(in.Code)
	if err := cs.check.CheckRequest(op, &in); err != nil {
		return nil, err
	}

	taken, err := cs.store.CountryCodeExists(ctx, in.Code)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.DuplicateKey(apperr.EntityCountry, op, "code", in.Code)
	}

	country := &models.Country{Name: in.Name, Code: in.Code}
	if err := cs.store.CreateCountry(ctx, country); err != nil {
		return nil, err
	}
	return country, nil
}

func (cs *CountryService) GetCountry(ctx context.Context, id int64) (*models.Country, error) {
	const op = "CountryService.GetCountry"
	if err := cs.check.CheckIDValid(op, id); err != nil {
		return nil, err
	}
	country, err := cs.store.GetCountryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := cs.check.CheckObjectExist(op, country, id); err != nil {
		return nil, err
	}
	return country, nil
}

func (cs *CountryService) GetCountryByCode(ctx context.Context, code string) (*models.Country, error) {
	const op = "CountryService.GetCountryByCode"
	code = normalizeCode(code)
	country, err := cs.store.GetCountryByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if country == nil {
		return nil, apperr.NotFound(apperr.EntityCountry, op, "code %q", code)
	}
	return country, nil
}

func (cs *CountryService) ListCountries(ctx context.Context) ([]models.Country, error) {
	return cs.store.ListCountries(ctx)
}

func (cs *CountryService) UpdateCountry(ctx context.Context, id int64, req *models.UpdateCountryRequest) (*models.Country, error) {
	const op = "CountryService.UpdateCountry"
	if err := cs.check.CheckRequestNotNull(op, req); err != nil {
		return nil, err
	}
	if _, err := cs.GetCountry(ctx, id); err != nil {
		return nil, err
	}
	in := models.UpdateCountryRequest{Name: trimPtr(req.Name)}
	if err := cs.check.CheckRequest(op, &in); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	set(updates, "name", in.Name)
	if err := cs.store.UpdateCountry(ctx, id, updates); err != nil {
		return nil, err
	}
	return cs.GetCountry(ctx, id)
}

// DeleteCountry removes the country with its cities and their venues.
func (cs *CountryService) DeleteCountry(ctx context.Context, id int64) error {
	const op = "CountryService.DeleteCountry"
	if _, err := cs.GetCountry(ctx, id); err != nil {
		return err
	}

	err := cs.store.InTx(ctx, func(tx models.Store) error {
		cityIDs, err := tx.ListCityIDsByCountry(ctx, id)
		if err != nil {
			return err
		}
		if err := deleteCities(ctx, tx, apperr.EntityCountry, op, cityIDs); err != nil {
			return err
		}
		return tx.DeleteCountry(ctx, id)
	})
	if err != nil {
		cs.logger.Warn("country delete failed", "country_id", id, "error", err)
		return err
	}
	cs.logger.Info("country deleted", "country_id", id)
	return nil
}
