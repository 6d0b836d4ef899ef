package middleware

import (
	"net/http"

	"premier-properties/internal/utils"
	"premier-properties/internal/views"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error attached to the request, as an HTML
// page for browsers and as JSON otherwise.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		appErr := utils.LogAndMapError(c.Errors.Last().Err, c.Request.Method+" "+c.Request.URL.Path,
			"client_ip", c.ClientIP())

		if c.Writer.Written() {
			return
		}
		switch c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) {
		case gin.MIMEHTML:
			c.HTML(appErr.HTTPStatus, views.ErrorTemplate, views.ErrorPage{
				Status:  appErr.HTTPStatus,
				Title:   http.StatusText(appErr.HTTPStatus),
				Message: appErr.UserMessage,
			})
		default:
			c.JSON(appErr.HTTPStatus, gin.H{
				"error": gin.H{
					"message": appErr.UserMessage,
					"code":    appErr.Code,
				},
			})
		}
	}
}
