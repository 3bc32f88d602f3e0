package apperrors

import (
	"github.com/gin-gonic/gin"

	"filmoteca_backend/internal/logger"
)

// HandleError writes err to the response in the API's wire format:
// 4xx errors answer {"msg": ...}, 5xx errors answer {"error": ...}.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		logger.CtxWithError(c.Request.Context(), "server error", appErr,
			"path", c.Request.URL.Path,
		)
		c.JSON(appErr.HTTPCode, gin.H{"error": appErr.Message})
		return
	}

	c.JSON(appErr.HTTPCode, gin.H{"msg": appErr.Message})
}

// AsAppError converts err to *AppError if it is one.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
