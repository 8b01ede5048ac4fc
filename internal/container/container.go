package container

import (
	"log/slog"

	"github.com/joshua-takyi/eventhub/internal/config"
	"github.com/joshua-takyi/eventhub/internal/helpers"
	"github.com/joshua-takyi/eventhub/internal/models"
	"github.com/joshua-takyi/eventhub/internal/services"
	"gorm.io/gorm"
)

// Container holds all application dependencies
type Container struct {
	Config        *config.Config
	Logger        *slog.Logger
	DB            *gorm.DB
	TokenVerifier *helpers.TokenVerifier

	CountryService    *services.CountryService
	CityService       *services.CityService
	VenueService      *services.VenuesService
	CategoryService   *services.CategoryService
	UserService       *services.UserService
	EventService      *services.EventService
	ReviewService     *services.ReviewService
	FavouritesService *services.FavouritesService
	InterestedService *services.InterestedService
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger, db *gorm.DB, verifier *helpers.TokenVerifier) *Container {
	store := models.NewSQLRepo(db)
	opts := services.Options{
		MaxCommentLength: cfg.MaxCommentLength,
		DefaultPageSize:  cfg.DefaultPageSize,
		MaxPageSize:      cfg.MaxPageSize,
	}

	return &Container{
		Config:        cfg,
		Logger:        logger,
		DB:            db,
		TokenVerifier: verifier,

		CountryService:    services.NewCountryService(store, logger),
		CityService:       services.NewCityService(store, logger),
		VenueService:      services.NewVenuesService(store, opts, logger),
		CategoryService:   services.NewCategoryService(store, logger),
		UserService:       services.NewUserService(store, opts, logger),
		EventService:      services.NewEventService(store, opts, logger),
		ReviewService:     services.NewReviewService(store, opts, logger),
		FavouritesService: services.NewFavouritesService(store, logger),
		InterestedService: services.NewInterestedService(store, logger),
	}
}
