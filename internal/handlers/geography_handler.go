package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventhub/internal/helpers"
	"github.com/joshua-takyi/eventhub/internal/models"
	"github.com/joshua-takyi/eventhub/internal/services"
)

func CreateCountry(s *services.CountryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateCountryRequest
		if !bindJSON(c, &req) {
			return
		}
		country, err := s.CreateCountry(c.Request.Context(), &req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(country, "Country created successfully"))
	}
}

func ListCountries(s *services.CountryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		countries, err := s.ListCountries(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(countries, ""))
	}
}

func GetCountry(s *services.CountryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		country, err := s.GetCountry(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(country, ""))
	}
}

func GetCountryByCode(s *services.CountryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		country, err := s.GetCountryByCode(c.Request.Context(), c.Param("code"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(country, ""))
	}
}

func UpdateCountry(s *services.CountryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		var req models.UpdateCountryRequest
		if !bindJSON(c, &req) {
			return
		}
		country, err := s.UpdateCountry(c.Request.Context(), id, &req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(country, "Country updated successfully"))
	}
}

func DeleteCountry(s *services.CountryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		if err := s.DeleteCountry(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Country deleted successfully"))
	}
}

func CreateCity(s *services.CityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateCityRequest
		if !bindJSON(c, &req) {
			return
		}
		city, err := s.CreateCity(c.Request.Context(), &req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(city, "City created successfully"))
	}
}

// SearchCities accepts ?name=war&country=PL,DE and answers with an empty
// list when nothing matches.
func SearchCities(s *services.CityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := models.CitySearch{
			Name:         c.Query("name"),
			CountryCodes: helpers.SplitList(c.Query("country")),
		}
		cities, err := s.SearchCities(c.Request.Context(), search)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(cities, ""))
	}
}

func GetCity(s *services.CityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		city, err := s.GetCity(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(city, ""))
	}
}

func UpdateCity(s *services.CityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		var req models.UpdateCityRequest
		if !bindJSON(c, &req) {
			return
		}
		city, err := s.UpdateCity(c.Request.Context(), id, &req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(city, "City updated successfully"))
	}
}

func DeleteCity(s *services.CityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		if err := s.DeleteCity(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "City deleted successfully"))
	}
}
