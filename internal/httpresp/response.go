package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK writes {"success": true, ...fields}.
func OK(c *gin.Context, fields gin.H) {
	Status(c, http.StatusOK, fields)
}

func Created(c *gin.Context, fields gin.H) {
	Status(c, http.StatusCreated, fields)
}

func Status(c *gin.Context, status int, fields gin.H) {
	body := gin.H{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(status, body)
}

// List writes the slice under key, never as null.
func List[T any](c *gin.Context, key string, data []T, extra gin.H) {
	if data == nil {
		data = []T{}
	}
	fields := gin.H{key: data}
	for k, v := range extra {
		fields[k] = v
	}
	OK(c, fields)
}
