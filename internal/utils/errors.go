package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/osa911/lifecycle/internal/api/constants"
	"github.com/osa911/lifecycle/internal/api/dto/common"
	"github.com/osa911/lifecycle/internal/logging"
)

// HandleAPIError is a utility function for consistent error handling across the API
// It logs the failure and only exposes error details outside release mode
func HandleAPIError(c *gin.Context, err error, status int, code common.ErrorCode, message string) {
	logging.GetGlobalLogger().LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		GetRealIP(c),
		status,
		message,
		err,
	)

	var details interface{}
	if err != nil && gin.Mode() != gin.ReleaseMode {
		details = err.Error()
	}

	c.AbortWithStatusJSON(status, common.NewErrorResponse(code, message, details).WithRequestID(c.GetString(constants.ContextKeyRequestID)))
}
