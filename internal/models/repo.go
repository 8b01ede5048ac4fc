package models

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"gorm.io/gorm"
)

var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

type CountryRepo interface {
	CreateCountry(ctx context.Context, country *Country) error
	GetCountryByID(ctx context.Context, id int64) (*Country, error)
	GetCountryByCode(ctx context.Context, code string) (*Country, error)
	CountryCodeExists(ctx context.Context, code string) (bool, error)
	ListCountries(ctx context.Context) ([]Country, error)
	UpdateCountry(ctx context.Context, id int64, updates map[string]any) error
	DeleteCountry(ctx context.Context, id int64) error
}

type CityRepo interface {
	CreateCity(ctx context.Context, city *City) error
	GetCityByID(ctx context.Context, id int64) (*City, error)
	CityNameExists(ctx context.Context, name string, excludeID int64) (bool, error)
	SearchCities(ctx context.Context, search CitySearch) ([]City, error)
	ListCityIDsByCountry(ctx context.Context, countryID int64) ([]int64, error)
	UpdateCity(ctx context.Context, id int64, updates map[string]any) error
	DeleteCities(ctx context.Context, ids []int64) error
}

type VenuesRepo interface {
	CreateVenue(ctx context.Context, venue *Venue) error
	GetVenueByID(ctx context.Context, id int64) (*Venue, error)
	ListVenues(ctx context.Context, filter VenueFilter, page PageRequest) ([]Venue, int64, error)
	ListVenueIDsByCities(ctx context.Context, cityIDs []int64) ([]int64, error)
	UpdateVenue(ctx context.Context, id int64, updates map[string]any) error
	DeleteVenues(ctx context.Context, ids []int64) error
}

type CategoryRepo interface {
	CreateCategory(ctx context.Context, category *Category) error
	GetCategoryByID(ctx context.Context, id int64) (*Category, error)
	CategoryNameExists(ctx context.Context, name string, excludeID int64) (bool, error)
	ListCategories(ctx context.Context) ([]Category, error)
	UpdateCategory(ctx context.Context, id int64, updates map[string]any) error
	DeleteCategory(ctx context.Context, id int64) error
}

type UserRepo interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, id int64) (*User, error)
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)
	PhoneExists(ctx context.Context, phone string, excludeID int64) (bool, error)
	FindUsersByFullName(ctx context.Context, fullName string) ([]User, error)
	ListUsers(ctx context.Context, page PageRequest) ([]User, int64, error)
	UpdateUser(ctx context.Context, id int64, updates map[string]any) error
	DeleteUser(ctx context.Context, id int64) error
}

type EventsRepo interface {
	CreateEvent(ctx context.Context, event *Event) error
	GetEventByID(ctx context.Context, id int64) (*Event, error)
	ListEvents(ctx context.Context, filter EventFilter, page PageRequest) ([]Event, int64, error)
	CountEvents(ctx context.Context, filter EventFilter) (int64, error)
	UpdateEvent(ctx context.Context, id int64, updates map[string]any) error
	DeleteEvent(ctx context.Context, id int64) error
}

type ReviewsRepo interface {
	CreateReview(ctx context.Context, review *Review) error
	GetReviewByID(ctx context.Context, id int64) (*Review, error)
	ReviewExists(ctx context.Context, userID, eventID int64) (bool, error)
	ListReviewsByEvent(ctx context.Context, eventID int64) ([]Review, error)
	ListReviewsByUser(ctx context.Context, userID int64) ([]Review, error)
	UpdateReview(ctx context.Context, id int64, updates map[string]any) error
	DeleteReview(ctx context.Context, id int64) error
	DeleteReviewsByEvent(ctx context.Context, eventID int64) error
	DeleteReviewsByUser(ctx context.Context, userID int64) error
}

type FavouriteRepo interface {
	CreateFavourite(ctx context.Context, fav *Favourite) error
	GetFavouriteByID(ctx context.Context, id int64) (*Favourite, error)
	FavouriteExists(ctx context.Context, userID, organizerID int64) (bool, error)
	ListFavouritesByUser(ctx context.Context, userID int64) ([]Favourite, error)
	ListFavouritesByOrganizer(ctx context.Context, organizerID int64) ([]Favourite, error)
	DeleteFavourite(ctx context.Context, id int64) error
	DeleteFavouritesByUser(ctx context.Context, userID int64) error
}

type InterestedRepo interface {
	CreateInterested(ctx context.Context, mark *Interested) error
	GetInterestedByID(ctx context.Context, id int64) (*Interested, error)
	InterestedExists(ctx context.Context, userID, eventID int64) (bool, error)
	ListInterestedByUser(ctx context.Context, userID int64) ([]Interested, error)
	ListInterestedByEvent(ctx context.Context, eventID int64) ([]Interested, error)
	CountInterestedByEvent(ctx context.Context, eventID int64) (int64, error)
	DeleteInterested(ctx context.Context, id int64) error
	DeleteInterestedByEvent(ctx context.Context, eventID int64) error
	DeleteInterestedByUser(ctx context.Context, userID int64) error
}

// Store is everything the services need from persistence. InTx runs fn
// against a Store bound to a single transaction.
type Store interface {
	CountryRepo
	CityRepo
	VenuesRepo
	CategoryRepo
	UserRepo
	EventsRepo
	ReviewsRepo
	FavouriteRepo
	InterestedRepo
	InTx(ctx context.Context, fn func(tx Store) error) error
}

// SQLRepo implements Store on top of gorm.
type SQLRepo struct {
	db *gorm.DB
}

func NewSQLRepo(db *gorm.DB) *SQLRepo {
	return &SQLRepo{db: db}
}

func (r *SQLRepo) InTx(ctx context.Context, fn func(tx Store) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&SQLRepo{db: tx})
	})
}

func (r *SQLRepo) conn(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// findOne returns nil without error when the query matches nothing.
func findOne[T any](q *gorm.DB) (*T, error) {
	var out T
	res := q.Limit(1).Find(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &out, nil
}

func exists(q *gorm.DB) (bool, error) {
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// updateByID applies a partial update. Zero rows affected means the
// record is gone.
func updateByID(q *gorm.DB, model any, id int64, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	res := q.Model(model).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func deleteByID(q *gorm.DB, model any, id int64) error {
	res := q.Where("id = ?", id).Delete(model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
