package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dongwonkwak/boardly-sub002/internal/apperr"
	"github.com/dongwonkwak/boardly-sub002/internal/middleware"
)

// writeError maps the service error taxonomy onto HTTP statuses. The kinds
// are deliberately not collapsed: clients rely on 404 vs 403 vs 409 vs 422.
func writeError(c *gin.Context, err error) {
	var e *apperr.Error
	if !errors.As(err, &e) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	switch e.Kind {
	case apperr.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": e.Msg})
	case apperr.KindPermissionDenied:
		c.JSON(http.StatusForbidden, gin.H{"error": e.Msg})
	case apperr.KindConflict:
		c.JSON(http.StatusConflict, gin.H{"error": e.Msg})
	case apperr.KindBusinessRule:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": e.Msg})
	case apperr.KindInvalidInput:
		c.JSON(http.StatusBadRequest, gin.H{"error": e.Msg})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// currentUserID pulls the authenticated user's uuid set by the auth
// middleware. A missing or malformed value aborts the request.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return uuid.Nil, false
	}
	userID, ok := v.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return uuid.Nil, false
	}
	return userID, true
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " format"})
		return uuid.Nil, false
	}
	return id, true
}
