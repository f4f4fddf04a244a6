package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SendError responde con el código HTTP dado y un cuerpo {"message": ...}.
func SendError(c *gin.Context, httpStatus int, message string) {
	c.AbortWithStatusJSON(httpStatus, MessageResponse{Message: message})
}

// BadRequest responde 400 Bad Request.
func BadRequest(c *gin.Context, message string) {
	SendError(c, http.StatusBadRequest, message)
}

// NotFound responde 404 Not Found.
func NotFound(c *gin.Context, message string) {
	SendError(c, http.StatusNotFound, message)
}

// InternalServerError responde 500 Internal Server Error.
func InternalServerError(c *gin.Context, message string) {
	SendError(c, http.StatusInternalServerError, message)
}
