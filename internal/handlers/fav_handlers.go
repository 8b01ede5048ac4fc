package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventhub/internal/models"
	"github.com/joshua-takyi/eventhub/internal/services"
)

func AddToFavourites(s *services.FavouritesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, userID, ok := actor(c)
		if !ok {
			return
		}
		var req models.CreateFavouriteRequest
		if !bindJSON(c, &req) {
			return
		}
		req.UserID = userID
		fav, err := s.AddFavourite(c.Request.Context(), &req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(fav, "Organizer added to favourites"))
	}
}

func RemoveFromFavourites(s *services.FavouritesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		fav, err := s.GetFavourite(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		if !requireOwner(c, fav.UserID) {
			return
		}
		if err := s.RemoveFavourite(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Organizer removed from favourites"))
	}
}

func GetUserFavourites(s *services.FavouritesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		favs, err := s.ListFavourites(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(favs, ""))
	}
}

func GetOrganizerFollowers(s *services.FavouritesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		favs, err := s.ListFollowers(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(favs, ""))
	}
}
