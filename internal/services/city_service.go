package services

import (
	"context"
	"log/slog"

	"github.com/joshua-takyi/eventhub/internal/apperr"
	"github.com/joshua-takyi/eventhub/internal/helpers"
	"github.com/joshua-takyi/eventhub/internal/models"
	"github.com/joshua-takyi/eventhub/internal/validation"
)

type CityService struct {
	store  models.Store
	check  validation.Validator[models.City]
	logger *slog.Logger
}

func NewCityService(store models.Store, logger *slog.Logger) *CityService {
	return &CityService{
		store:  store,
		check:  validation.For[models.City](apperr.EntityCity),
		logger: logger.With("service", "CityService"),
	}
}

func (cs *CityService) resolveCountry(ctx context.Context, op, code string) (*models.Country, error) {
	country, err := cs.store.GetCountryByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if country == nil {
		return nil, apperr.NotFound(apperr.EntityCountry, op, "code %q", code)
	}
	return country, nil
}

func (cs *CityService) CreateCity(ctx context.Context, req *models.CreateCityRequest) (*models.City, error) {
	const op = "CityService.CreateCity"
	if err := cs.check.CheckRequestNotNull(op, req); err != nil {
		return nil, err
	}
	in := *req
	in.Name = helpers.StringTrim(in.Name)
	in.CountryCode = normalizeCode(in.CountryCode)
	if err := cs.check.CheckRequest(op, &in); err != nil {
		return nil, err
	}

	country, err := cs.resolveCountry(ctx, op, in.CountryCode)
	if err != nil {
		return nil, err
	}
	taken, err := cs.store.CityNameExists(ctx, in.Name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.DuplicateKey(apperr.EntityCity, op, "name", in.Name)
	}

	city := &models.City{Name: in.Name, CountryID: country.ID}
	if err := cs.store.CreateCity(ctx, city); err != nil {
		return nil, err
	}
	city.Country = country
	return city, nil
}

func (cs *CityService) GetCity(ctx context.Context, id int64) (*models.City, error) {
	const op = "CityService.GetCity"
	if err := cs.check.CheckIDValid(op, id); err != nil {
		return nil, err
	}
	city, err := cs.store.GetCityByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := cs.check.CheckObjectExist(op, city, id); err != nil {
		return nil, err
	}
	return city, nil
}

// UpdateCity applies the non-nil fields of req. A new country code is
// resolved again before it is stored.
func (cs *CityService) UpdateCity(ctx context.Context, id int64, req *models.UpdateCityRequest) (*models.City, error) {
	const op = "CityService.UpdateCity"
	if err := cs.check.CheckRequestNotNull(op, req); err != nil {
		return nil, err
	}
	current, err := cs.GetCity(ctx, id)
	if err != nil {
		return nil, err
	}
	in := models.UpdateCityRequest{Name: trimPtr(req.Name)}
	if req.CountryCode != nil {
		code := normalizeCode(*req.CountryCode)
		in.CountryCode = &code
	}
	if err := cs.check.CheckRequest(op, &in); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if in.Name != nil && *in.Name != current.Name {
		taken, err := cs.store.CityNameExists(ctx, *in.Name, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperr.DuplicateKey(apperr.EntityCity, op, "name", *in.Name)
		}
		updates["name"] = *in.Name
	}
	if in.CountryCode != nil {
		country, err := cs.resolveCountry(ctx, op, *in.CountryCode)
		if err != nil {
			return nil, err
		}
		updates["country_id"] = country.ID
	}

	if err := cs.store.UpdateCity(ctx, id, updates); err != nil {
		return nil, err
	}
	return cs.GetCity(ctx, id)
}

// SearchCities never fails on an empty match.
func (cs *CityService) SearchCities(ctx context.Context, search models.CitySearch) ([]models.City, error) {
	return cs.store.SearchCities(ctx, search)
}

// DeleteCity removes the city and its venues.
func (cs *CityService) DeleteCity(ctx context.Context, id int64) error {
	const op = "CityService.DeleteCity"
	if _, err := cs.GetCity(ctx, id); err != nil {
		return err
	}
	err := cs.store.InTx(ctx, func(tx models.Store) error {
		return deleteCities(ctx, tx, apperr.EntityCity, op, []int64{id})
	})
	if err != nil {
		cs.logger.Warn("city delete failed", "city_id", id, "error", err)
		return err
	}
	cs.logger.Info("city deleted", "city_id", id)
	return nil
}
