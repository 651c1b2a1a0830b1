package handler

import (
	"net/http"

	"github.com/analisafiscal/retention-analyzer/dto"

	"github.com/gin-gonic/gin"
)

// PasswordGate rejects requests that do not carry the configured access
// password in the X-App-Password header. An empty password disables the
// gate entirely.
func PasswordGate(password string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if password != "" && c.GetHeader("X-App-Password") != password {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error:   "UNAUTHORIZED",
				Message: "The password is incorrect",
				Code:    http.StatusUnauthorized,
			})
			return
		}
		c.Next()
	}
}
