package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventhub/internal/models"
	"github.com/joshua-takyi/eventhub/internal/services"
)

func MarkInterested(s *services.InterestedService) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, userID, ok := actor(c)
		if !ok {
			return
		}
		var req models.CreateInterestedRequest
		if !bindJSON(c, &req) {
			return
		}
		req.UserID = userID
		mark, err := s.MarkInterested(c.Request.Context(), &req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(mark, "Marked as interested"))
	}
}

func RemoveInterested(s *services.InterestedService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		mark, err := s.GetInterested(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		if !requireOwner(c, mark.UserID) {
			return
		}
		if err := s.RemoveInterested(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Interest removed"))
	}
}

func GetUserInterested(s *services.InterestedService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		marks, err := s.ListByUser(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(marks, ""))
	}
}

func GetEventInterested(s *services.InterestedService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		marks, err := s.ListByEvent(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(marks, ""))
	}
}

func GetEventInterestCount(s *services.InterestedService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		n, err := s.CountByEvent(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{"event_id": id, "count": n}, ""))
	}
}
