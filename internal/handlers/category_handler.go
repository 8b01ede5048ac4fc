package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventhub/internal/models"
	"github.com/joshua-takyi/eventhub/internal/services"
)

func CreateCategory(s *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateCategoryRequest
		if !bindJSON(c, &req) {
			return
		}
		category, err := s.CreateCategory(c.Request.Context(), &req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(category, "Category created successfully"))
	}
}

func ListCategories(s *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := s.ListCategories(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(categories, ""))
	}
}

func GetCategory(s *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		category, err := s.GetCategory(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(category, ""))
	}
}

func UpdateCategory(s *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		var req models.UpdateCategoryRequest
		if !bindJSON(c, &req) {
			return
		}
		category, err := s.UpdateCategory(c.Request.Context(), id, &req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(category, "Category updated successfully"))
	}
}

func DeleteCategory(s *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		if err := s.DeleteCategory(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Category deleted successfully"))
	}
}
