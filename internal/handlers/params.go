package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/contactdesk/contactdesk-backend/internal/apierr"
)

// pathID parses a positive integer path parameter. Non-numeric or
// non-positive values are a 400; a well-formed id that matches nothing is
// the repository's 404 to report.
func pathID(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, apierr.BadRequest(name + " must be a positive number")
	}
	return uint(id), nil
}
