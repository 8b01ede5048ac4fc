package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventhub/internal/container"
	"github.com/joshua-takyi/eventhub/internal/handlers"
	"github.com/joshua-takyi/eventhub/internal/middleware"
	"github.com/joshua-takyi/eventhub/internal/models"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	if container.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     container.Config.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	auth := middleware.AuthMiddleware(container.TokenVerifier, container.Logger)
	admin := middleware.RequireRole(string(models.RoleAdmin))
	organizer := middleware.RequireRole(string(models.RoleOrganizer), string(models.RoleAdmin))

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", func(c *gin.Context) {
			sqlDB, err := container.DB.DB()
			if err == nil {
				err = sqlDB.PingContext(c.Request.Context())
			}
			if err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "DEGRADED", "service": "eventhub-api"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"status": "OK", "service": "eventhub-api"})
		})

		v1.POST("/signup", handlers.CreateUser(container.UserService))
	}

	countryRoutes := v1.Group("/countries")
	{
		countryRoutes.GET("", handlers.ListCountries(container.CountryService))
		countryRoutes.GET("/:id", handlers.GetCountry(container.CountryService))
		countryRoutes.GET("/code/:code", handlers.GetCountryByCode(container.CountryService))
		countryRoutes.POST("", auth, admin, handlers.CreateCountry(container.CountryService))
		countryRoutes.PATCH("/:id", auth, admin, handlers.UpdateCountry(container.CountryService))
		countryRoutes.DELETE("/:id", auth, admin, handlers.DeleteCountry(container.CountryService))
	}

	cityRoutes := v1.Group("/cities")
	{
		cityRoutes.GET("", handlers.SearchCities(container.CityService))
		cityRoutes.GET("/:id", handlers.GetCity(container.CityService))
		cityRoutes.POST("", auth, admin, handlers.CreateCity(container.CityService))
		cityRoutes.PATCH("/:id", auth, admin, handlers.UpdateCity(container.CityService))
		cityRoutes.DELETE("/:id", auth, admin, handlers.DeleteCity(container.CityService))
	}

	venueRoutes := v1.Group("/venues")
	{
		venueRoutes.GET("", handlers.ListVenues(container.VenueService))
		venueRoutes.GET("/:id", handlers.ListVenueByID(container.VenueService))
		venueRoutes.POST("", auth, organizer, handlers.CreateVenueHandler(container.VenueService))
		venueRoutes.PATCH("/:id", auth, organizer, handlers.UpdateVenue(container.VenueService))
		venueRoutes.DELETE("/:id", auth, admin, handlers.DeleteVenue(container.VenueService))
	}

	categoryRoutes := v1.Group("/categories")
	{
		categoryRoutes.GET("", handlers.ListCategories(container.CategoryService))
		categoryRoutes.GET("/:id", handlers.GetCategory(container.CategoryService))
		categoryRoutes.POST("", auth, admin, handlers.CreateCategory(container.CategoryService))
		categoryRoutes.PATCH("/:id", auth, admin, handlers.UpdateCategory(container.CategoryService))
		categoryRoutes.DELETE("/:id", auth, admin, handlers.DeleteCategory(container.CategoryService))
	}

	eventRoutes := v1.Group("/events")
	{
		eventRoutes.GET("", handlers.ListEvents(container.EventService))
		eventRoutes.GET("/:id", handlers.GetEvent(container.EventService))
		eventRoutes.GET("/:id/reviews", handlers.ListEventReviews(container.ReviewService))
		eventRoutes.GET("/:id/summary", handlers.GetEventSummary(container.ReviewService))
		eventRoutes.GET("/:id/interested", handlers.GetEventInterested(container.InterestedService))
		eventRoutes.GET("/:id/interested/count", handlers.GetEventInterestCount(container.InterestedService))
		eventRoutes.POST("", auth, organizer, handlers.CreateEvent(container.EventService))
		eventRoutes.PATCH("/:id", auth, organizer, handlers.UpdateEvent(container.EventService))
		eventRoutes.PATCH("/:id/status", auth, organizer, handlers.ChangeEventStatus(container.EventService))
		eventRoutes.DELETE("/:id", auth, organizer, handlers.DeleteEvent(container.EventService))
	}

	userRoutes := v1.Group("/users")
	{
		userRoutes.GET("/:id", handlers.GetUser(container.UserService))
		userRoutes.GET("/:id/reviews", handlers.ListUserReviews(container.ReviewService))
		userRoutes.GET("/:id/favourites", handlers.GetUserFavourites(container.FavouritesService))
		userRoutes.GET("/:id/followers", handlers.GetOrganizerFollowers(container.FavouritesService))
		userRoutes.GET("/:id/interested", handlers.GetUserInterested(container.InterestedService))
		userRoutes.GET("", auth, admin, handlers.ListUsers(container.UserService))
		userRoutes.PATCH("/:id", auth, handlers.UpdateUser(container.UserService))
		userRoutes.PATCH("/:id/role", auth, admin, handlers.ChangeUserRole(container.UserService))
		userRoutes.DELETE("/:id", auth, handlers.DeleteUser(container.UserService))
	}

	protected := v1.Group("")
	protected.Use(auth)
	{
		protected.POST("/reviews", handlers.CreateReview(container.ReviewService))
		protected.PATCH("/reviews/:id", handlers.UpdateReview(container.ReviewService))
		protected.DELETE("/reviews/:id", handlers.DeleteReview(container.ReviewService))

		protected.POST("/favourites", handlers.AddToFavourites(container.FavouritesService))
		protected.DELETE("/favourites/:id", handlers.RemoveFromFavourites(container.FavouritesService))

		protected.POST("/interested", handlers.MarkInterested(container.InterestedService))
		protected.DELETE("/interested/:id", handlers.RemoveInterested(container.InterestedService))
	}
	v1.GET("/reviews/:id", handlers.GetReview(container.ReviewService))

	return r
}
