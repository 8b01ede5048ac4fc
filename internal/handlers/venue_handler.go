package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventhub/internal/helpers"
	"github.com/joshua-takyi/eventhub/internal/models"
	"github.com/joshua-takyi/eventhub/internal/services"
)

func CreateVenueHandler(v *services.VenuesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateVenueRequest
		if !bindJSON(c, &req) {
			return
		}
		venue, err := v.CreateVenue(c.Request.Context(), &req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(venue, "Venue created successfully"))
	}
}

// ListVenues pages through venues, optionally for one ?city_id.
func ListVenues(v *services.VenuesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, ok := pageQuery(c)
		if !ok {
			return
		}
		var cityID int64
		if raw := c.Query("city_id"); raw != "" {
			id, err := helpers.ParseID(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid city_id parameter"))
				return
			}
			cityID = id
		}
		venues, err := v.ListVenues(c.Request.Context(), cityID, page)
		if err != nil {
			respondError(c, err)
			return
		}
		paginated(c, venues)
	}
}

func ListVenueByID(v *services.VenuesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		venue, err := v.GetVenue(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(venue, ""))
	}
}

func UpdateVenue(v *services.VenuesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		var req models.UpdateVenueRequest
		if !bindJSON(c, &req) {
			return
		}
		venue, err := v.UpdateVenue(c.Request.Context(), id, &req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(venue, "Venue updated successfully"))
	}
}

func DeleteVenue(v *services.VenuesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		if err := v.DeleteVenue(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Venue deleted successfully"))
	}
}
