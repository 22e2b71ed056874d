package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/merojugx/mero/internal/shared/errors"
)

// ParseUUIDParam reads a path parameter and checks that it is a UUID.
// entityName is used in error messages (e.g. "organization").
func ParseUUIDParam(c *gin.Context, paramName, entityName string) (string, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return "", errors.NewValidationError(entityName + " ID is required")
	}
	if _, err := uuid.Parse(raw); err != nil {
		return "", errors.NewValidationError("invalid " + entityName + " ID format")
	}
	return raw, nil
}
