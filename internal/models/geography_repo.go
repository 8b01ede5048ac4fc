package models

import (
	"context"
	"strings"

	"github.com/joshua-takyi/eventhub/internal/apperr"
)

func (r *SQLRepo) CreateCountry(ctx context.Context, country *Country) error {
	err := r.conn(ctx).Create(country).Error
	return apperr.MapError(apperr.EntityCountry, "CreateCountry", err)
}

func (r *SQLRepo) GetCountryByID(ctx context.Context, id int64) (*Country, error) {
	country, err := findOne[Country](r.conn(ctx).Where("id = ?", id))
	return country, apperr.MapError(apperr.EntityCountry, "GetCountryByID", err)
}

func (r *SQLRepo) GetCountryByCode(ctx context.Context, code string) (*Country, error) {
	country, err := findOne[Country](r.conn(ctx).Where("code = ?", code))
	return country, apperr.MapError(apperr.EntityCountry, "GetCountryByCode", err)
}

func (r *SQLRepo) CountryCodeExists(ctx context.Context, code string) (bool, error) {
	ok, err := exists(r.conn(ctx).Model(&Country{}).Where("code = ?", code))
	return ok, apperr.MapError(apperr.EntityCountry, "CountryCodeExists", err)
}

func (r *SQLRepo) ListCountries(ctx context.Context) ([]Country, error) {
	var countries []Country
	err := r.conn(ctx).Order("name").Find(&countries).Error
	return countries, apperr.MapError(apperr.EntityCountry, "ListCountries", err)
}

func (r *SQLRepo) UpdateCountry(ctx context.Context, id int64, updates map[string]any) error {
	err := updateByID(r.conn(ctx), &Country{}, id, updates)
	return apperr.MapError(apperr.EntityCountry, "UpdateCountry", err)
}

func (r *SQLRepo) DeleteCountry(ctx context.Context, id int64) error {
	err := deleteByID(r.conn(ctx), &Country{}, id)
	return apperr.MapError(apperr.EntityCountry, "DeleteCountry", err)
}

func (r *SQLRepo) CreateCity(ctx context.Context, city *City) error {
	err := r.conn(ctx).Omit("Country").Create(city).Error
	return apperr.MapError(apperr.EntityCity, "CreateCity", err)
}

func (r *SQLRepo) GetCityByID(ctx context.Context, id int64) (*City, error) {
	city, err := findOne[City](r.conn(ctx).Preload("Country").Where("id = ?", id))
	return city, apperr.MapError(apperr.EntityCity, "GetCityByID", err)
}

func (r *SQLRepo) CityNameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	q := r.conn(ctx).Model(&City{}).Where("LOWER(name) = LOWER(?)", name)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	ok, err := exists(q)
	return ok, apperr.MapError(apperr.EntityCity, "CityNameExists", err)
}

func (r *SQLRepo) SearchCities(ctx context.Context, search CitySearch) ([]City, error) {
	q := r.conn(ctx).Preload("Country")

	if name := strings.TrimSpace(search.Name); name != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}
	if len(search.CountryCodes) > 0 {
		codes := make([]string, 0, len(search.CountryCodes))
		for _, c := range search.CountryCodes {
			if c = strings.TrimSpace(c); c != "" {
				codes = append(codes, strings.ToUpper(c))
			}
		}
		if len(codes) > 0 {
			q = q.Where("country_id IN (?)",
				r.conn(ctx).Model(&Country{}).Select("id").Where("UPPER(code) IN ?", codes))
		}
	}

	cities := []City{}
	err := q.Order("name").Find(&cities).Error
	return cities, apperr.MapError(apperr.EntityCity, "SearchCities", err)
}

func (r *SQLRepo) ListCityIDsByCountry(ctx context.Context, countryID int64) ([]int64, error) {
	var ids []int64
	err := r.conn(ctx).Model(&City{}).Where("country_id = ?", countryID).Pluck("id", &ids).Error
	return ids, apperr.MapError(apperr.EntityCity, "ListCityIDsByCountry", err)
}

func (r *SQLRepo) UpdateCity(ctx context.Context, id int64, updates map[string]any) error {
	err := updateByID(r.conn(ctx), &City{}, id, updates)
	return apperr.MapError(apperr.EntityCity, "UpdateCity", err)
}

func (r *SQLRepo) DeleteCities(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	err := r.conn(ctx).Where("id IN ?", ids).Delete(&City{}).Error
	return apperr.MapError(apperr.EntityCity, "DeleteCities", err)
}
