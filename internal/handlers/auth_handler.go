package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/trainer-marketplace/internal/auth"
	"github.com/BruksfildServices01/trainer-marketplace/internal/httperr"
	"github.com/BruksfildServices01/trainer-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
	ucauth "github.com/BruksfildServices01/trainer-marketplace/internal/usecase/auth"
)

type AuthHandler struct {
	register *ucauth.Register
	login    *ucauth.Login
	tokens   *auth.Tokens
}

func NewAuthHandler(
	register *ucauth.Register,
	login *ucauth.Login,
	tokens *auth.Tokens,
) *AuthHandler {
	return &AuthHandler{
		register: register,
		login:    login,
		tokens:   tokens,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=50,personname"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72,strongpassword"`
	Role     string `json:"role" binding:"required,oneof=client trainer"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	u, err := h.register.Execute(c.Request.Context(), ucauth.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.respondWithToken(c, u, true)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	u, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.respondWithToken(c, u, false)
}

func (h *AuthHandler) respondWithToken(c *gin.Context, u *models.User, created bool) {
	token, err := h.tokens.Issue(u)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	body := gin.H{
		"user":  u.Public(),
		"token": token,
	}
	if created {
		httpresp.Created(c, body)
		return
	}
	httpresp.OK(c, body)
}
