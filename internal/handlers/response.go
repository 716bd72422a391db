package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contactdesk/contactdesk-backend/internal/apierr"
)

// DataEnvelope wraps every successful response body.
type DataEnvelope struct {
	Data any `json:"data"`
}

// ErrorEnvelope wraps every failure. Errors is either a plain message or a
// field -> message map from validation.
type ErrorEnvelope struct {
	Errors any `json:"errors"`
}

func RespondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, DataEnvelope{Data: data})
}

// RespondError translates a service failure into the error envelope. Errors
// without an apierr in the chain are infrastructure failures and map to a
// generic 500.
func RespondError(c *gin.Context, err error) {
	if apiErr, ok := apierr.From(err); ok {
		if apiErr.Details != nil {
			c.JSON(apiErr.Status, ErrorEnvelope{Errors: apiErr.Details})
			return
		}
		c.JSON(apiErr.Status, ErrorEnvelope{Errors: apiErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorEnvelope{Errors: "Internal Server Error"})
}
