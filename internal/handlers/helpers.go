package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/trainer-marketplace/internal/httperr"
	"github.com/BruksfildServices01/trainer-marketplace/internal/middleware"
)

func currentUserID(c *gin.Context) string {
	return c.GetString(middleware.ContextUserID)
}

// targetUser resolves the userId query parameter. It defaults to the caller
// and may not name anyone else.
func targetUser(c *gin.Context) (string, bool) {
	me := currentUserID(c)
	id := c.Query("userId")
	if id == "" {
		return me, true
	}
	if id != me {
		httperr.Forbidden(c, "forbidden", "Not allowed.")
		return "", false
	}
	return id, true
}

func invalidRequest(c *gin.Context, err error) {
	httperr.BadRequest(c, "invalid_request", err.Error())
}
