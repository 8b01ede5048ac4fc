package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventhub/internal/models"
	"github.com/joshua-takyi/eventhub/internal/services"
)

// CreateReview always attributes the review to the caller.
func CreateReview(s *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, userID, ok := actor(c)
		if !ok {
			return
		}
		var req models.CreateReviewRequest
		if !bindJSON(c, &req) {
			return
		}
		req.UserID = userID
		review, err := s.CreateReview(c.Request.Context(), &req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(review, "Review created successfully"))
	}
}

func GetReview(s *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		review, err := s.GetReview(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(review, ""))
	}
}

func loadOwnedReview(c *gin.Context, s *services.ReviewService) (*models.Review, bool) {
	id, ok := pathID(c, "id")
	if !ok {
		return nil, false
	}
	review, err := s.GetReview(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	if !requireOwner(c, review.UserID) {
		return nil, false
	}
	return review, true
}

func UpdateReview(s *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		review, ok := loadOwnedReview(c, s)
		if !ok {
			return
		}
		var req models.UpdateReviewRequest
		if !bindJSON(c, &req) {
			return
		}
		updated, err := s.UpdateReview(c.Request.Context(), review.ID, &req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(updated, "Review updated successfully"))
	}
}

func DeleteReview(s *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		review, ok := loadOwnedReview(c, s)
		if !ok {
			return
		}
		if err := s.DeleteReview(c.Request.Context(), review.ID); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Review deleted successfully"))
	}
}

func ListEventReviews(s *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		reviews, err := s.ListReviewsByEvent(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(reviews, ""))
	}
}

func ListUserReviews(s *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		reviews, err := s.ListReviewsByUser(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(reviews, ""))
	}
}

func GetEventSummary(s *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		summary, err := s.GetSummary(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(summary, ""))
	}
}
