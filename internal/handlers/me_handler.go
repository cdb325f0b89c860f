package handlers

import (
	"github.com/gin-gonic/gin"

	userdomain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/user"
	"github.com/BruksfildServices01/trainer-marketplace/internal/httperr"
	"github.com/BruksfildServices01/trainer-marketplace/internal/httpresp"
)

type MeHandler struct {
	users userdomain.Repository
}

func NewMeHandler(users userdomain.Repository) *MeHandler {
	return &MeHandler{users: users}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	u, err := h.users.GetByID(c.Request.Context(), currentUserID(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"user": u.Public()})
}
