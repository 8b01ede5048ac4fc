package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventhub/internal/helpers"
	"github.com/joshua-takyi/eventhub/internal/models"
	"github.com/joshua-takyi/eventhub/internal/services"
)

// CreateEvent defaults the organizer to the caller. Only admins may create
// events on behalf of someone else.
func CreateEvent(s *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, userID, ok := actor(c)
		if !ok {
			return
		}
		var req models.CreateEventRequest
		if !bindJSON(c, &req) {
			return
		}
		if req.OrganizerID == 0 || !claims.IsAdmin() {
			req.OrganizerID = userID
		}
		event, err := s.CreateEvent(c.Request.Context(), &req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(event, "Event created successfully"))
	}
}

func GetEvent(s *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		event, err := s.GetEvent(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(event, ""))
	}
}

// ListEvents supports ?name, ?organizer (full name), ?category, ?venue,
// ?city (comma separated ids) and ?status.
func ListEvents(s *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, ok := pageQuery(c)
		if !ok {
			return
		}
		filter := models.EventFilter{
			Name:          c.Query("name"),
			OrganizerName: helpers.StringTrim(c.Query("organizer")),
		}
		if filter.CategoryIDs, ok = queryIDs(c, "category"); !ok {
			return
		}
		if filter.VenueIDs, ok = queryIDs(c, "venue"); !ok {
			return
		}
		if filter.CityIDs, ok = queryIDs(c, "city"); !ok {
			return
		}
		for _, raw := range helpers.SplitList(c.Query("status")) {
			status := models.EventStatus(raw)
			if !status.Valid() {
				c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid status parameter"))
				return
			}
			filter.Statuses = append(filter.Statuses, status)
		}

		events, err := s.ListEvents(c.Request.Context(), filter, page)
		if err != nil {
			respondError(c, err)
			return
		}
		paginated(c, events)
	}
}

// loadOwnedEvent fetches the event and checks the caller organizes it.
func loadOwnedEvent(c *gin.Context, s *services.EventService) (*models.Event, bool) {
	id, ok := pathID(c, "id")
	if !ok {
		return nil, false
	}
	event, err := s.GetEvent(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	if !requireOwner(c, event.OrganizerID) {
		return nil, false
	}
	return event, true
}

func UpdateEvent(s *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, ok := loadOwnedEvent(c, s)
		if !ok {
			return
		}
		var req models.UpdateEventRequest
		if !bindJSON(c, &req) {
			return
		}
		updated, err := s.UpdateEvent(c.Request.Context(), event.ID, &req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(updated, "Event updated successfully"))
	}
}

func ChangeEventStatus(s *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, ok := loadOwnedEvent(c, s)
		if !ok {
			return
		}
		var req models.ChangeStatusRequest
		if !bindJSON(c, &req) {
			return
		}
		updated, err := s.ChangeStatus(c.Request.Context(), event.ID, &req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(updated, "Event status updated successfully"))
	}
}

func DeleteEvent(s *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, ok := loadOwnedEvent(c, s)
		if !ok {
			return
		}
		if err := s.DeleteEvent(c.Request.Context(), event.ID); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Event deleted successfully"))
	}
}
