package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventhub/internal/models"
	"github.com/joshua-takyi/eventhub/internal/services"
)

func CreateUser(s *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateUserRequest
		if !bindJSON(c, &req) {
			return
		}
		// Signup always yields an attendee; roles change through ChangeUserRole.
		req.Role = models.RoleAttendee
		user, err := s.CreateUser(c.Request.Context(), &req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(user, "User created successfully"))
	}
}

func GetUser(s *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		user, err := s.GetUser(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(user, ""))
	}
}

// ListUsers pages through users, or looks them up by ?name=First Last.
func ListUsers(s *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if name := c.Query("name"); name != "" {
			users, err := s.FindByFullName(c.Request.Context(), name)
			if err != nil {
				respondError(c, err)
				return
			}
			c.JSON(http.StatusOK, models.SuccessResponse(users, ""))
			return
		}
		page, ok := pageQuery(c)
		if !ok {
			return
		}
		users, err := s.ListUsers(c.Request.Context(), page)
		if err != nil {
			respondError(c, err)
			return
		}
		paginated(c, users)
	}
}

func UpdateUser(s *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok || !requireOwner(c, id) {
			return
		}
		var req models.UpdateUserRequest
		if !bindJSON(c, &req) {
			return
		}
		user, err := s.UpdateUser(c.Request.Context(), id, &req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(user, "User updated successfully"))
	}
}

func ChangeUserRole(s *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		var req models.ChangeRoleRequest
		if !bindJSON(c, &req) {
			return
		}
		user, err := s.ChangeRole(c.Request.Context(), id, &req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(user, "User role updated successfully"))
	}
}

func DeleteUser(s *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok || !requireOwner(c, id) {
			return
		}
		if err := s.DeleteUser(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "User deleted successfully"))
	}
}
