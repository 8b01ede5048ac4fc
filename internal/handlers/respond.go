package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventhub/internal/apperr"
	"github.com/joshua-takyi/eventhub/internal/helpers"
	"github.com/joshua-takyi/eventhub/internal/middleware"
	"github.com/joshua-takyi/eventhub/internal/models"
)

func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindRequestEmpty, apperr.KindInvalidArgument:
		return http.StatusBadRequest
	case apperr.KindNotFound, apperr.KindNoResultsFound:
		return http.StatusNotFound
	case apperr.KindDuplicateKey, apperr.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err with the status of its kind. Internal failures are
// attached to the context for ErrorHandler and their detail is hidden.
func respondError(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	status := statusFor(kind)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		c.JSON(status, models.CodedErrorResponse("Internal server error", string(kind)))
		return
	}
	c.JSON(status, models.CodedErrorResponse(err.Error(), string(kind)))
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := helpers.ParseID(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid "+name+" parameter"))
		return 0, false
	}
	return id, true
}

func queryIDs(c *gin.Context, name string) ([]int64, bool) {
	ids, err := helpers.ParseIDList(c.Query(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid "+name+" parameter"))
		return nil, false
	}
	return ids, true
}

func pageQuery(c *gin.Context) (models.PageRequest, bool) {
	var page models.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid pagination parameters"))
		return page, false
	}
	return page, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
		return false
	}
	return true
}

// actor returns the authenticated user's claims and id.
func actor(c *gin.Context) (*helpers.Claims, int64, bool) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
		return nil, 0, false
	}
	id, err := claims.UserID()
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse("invalid user ID in token"))
		return nil, 0, false
	}
	return claims, id, true
}

// requireOwner allows the owning user or an admin through.
func requireOwner(c *gin.Context, ownerID int64) bool {
	claims, _, ok := actor(c)
	if !ok {
		return false
	}
	if !claims.IsAdmin() && !claims.IsOwner(ownerID) {
		c.JSON(http.StatusForbidden, models.ErrorResponse("insufficient permissions"))
		return false
	}
	return true
}

func paginated[T any](c *gin.Context, page *models.Page[T]) {
	c.JSON(http.StatusOK, models.PaginatedResponse(page.Items, page.Page, page.Size, int(page.Total)))
}
