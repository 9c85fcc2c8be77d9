package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"scrimhub-backend/internal/auth"
	apperrors "scrimhub-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondError maps service errors onto HTTP status codes. Unclassified
// errors are treated as internal and their details are not leaked.
func respondError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors

	switch {
	case errors.As(err, &validationErrs):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErrs.Error()})
	case errors.Is(err, apperrors.ErrInvalidSelection):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrAlreadyResolved),
		errors.Is(err, apperrors.ErrDuplicateRequest),
		errors.Is(err, apperrors.ErrCapacityExceeded),
		errors.Is(err, apperrors.ErrAlreadyMember):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsInvalidState(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// viewerID extracts the authenticated viewer or aborts with 401
func viewerID(c *gin.Context) (int64, bool) {
	id, ok := auth.ViewerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return 0, false
	}
	return id, true
}

// pathID parses a positive integer path parameter
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

// queryID parses an optional positive integer query parameter
func queryID(c *gin.Context, name string) (*int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return nil, false
	}
	return &id, true
}
