package http

import "github.com/gin-gonic/gin"

// Envelope is the uniform response body. The transport status code and
// the Status field always agree; callers may rely on either.
type Envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func respond(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{Status: status, Message: message, Data: data})
}
