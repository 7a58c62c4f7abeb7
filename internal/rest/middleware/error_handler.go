package middleware

import (
	"github.com/gin-gonic/gin"

	ierr "github.com/petshield/petshield/internal/errors"
)

// ErrorResponse is the JSON error envelope for all v1 endpoints.
type ErrorResponse struct {
	Error   string         `json:"error"`
	Hint    string         `json:"hint,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// ErrorHandlerMiddleware converts errors attached via c.Error into JSON
// responses with the status derived from the error's mark.
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		c.JSON(ierr.HTTPStatusFromErr(err), ErrorResponse{
			Error:   err.Error(),
			Hint:    ierr.Hint(err),
			Details: ierr.ReportableDetails(err),
		})
	}
}
