package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/platewise/backend/internal/service"
)

const dateLayout = "2006-01-02"

// respondData writes the success envelope.
func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

// respondError writes the error envelope.
func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   gin.H{"code": code, "message": message},
	})
}

// respondServiceError maps service errors onto the error envelope.
func respondServiceError(c *gin.Context, err error) {
	var ve *service.ValidationError
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondError(c, http.StatusNotFound, "NOT_FOUND", "record not found")
	case errors.As(err, &ve):
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", ve.Error())
	default:
		respondError(c, http.StatusInternalServerError, "INTERNAL", "internal server error")
	}
}

// currentUserID reads the authenticated user from the request context.
// A missing or malformed value fails closed.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "user not authenticated")
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	if !ok || id == uuid.Nil {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "user not authenticated")
		return uuid.Nil, false
	}
	return id, true
}

// parseDate parses a YYYY-MM-DD wire date.
func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := parseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
