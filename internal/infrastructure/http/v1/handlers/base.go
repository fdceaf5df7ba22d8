// Package handlers implements the v1 HTTP endpoints.
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"stocktake/internal/core/apperror"
)

// pathID parses the :id path parameter as a numeric identity.
func pathID(c *gin.Context) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.NewValidation("invalid id").
			WithDetail("field", "id").
			WithDetail("value", raw)
	}
	return id, nil
}
