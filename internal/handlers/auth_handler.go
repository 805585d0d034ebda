package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillconnect/skillconnect-backend/internal/auth"
	"github.com/skillconnect/skillconnect-backend/internal/dtos"
	"github.com/skillconnect/skillconnect-backend/internal/services"
	"github.com/skillconnect/skillconnect-backend/pkg/apierr"
)

type AuthHandler struct {
	Users *services.UserService
}

func NewAuthHandler(users *services.UserService) *AuthHandler {
	return &AuthHandler{Users: users}
}

// Register is POST /auth/register/
func (h *AuthHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apierr.ErrBadRequest("invalid request body: "+err.Error()))
		return
	}

	user, err := h.Users.Register(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := auth.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dtos.AuthResponse{
		Token: token,
		User:  dtos.NewUserSummary(user),
	})
}

// Login is POST /auth/login/
func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apierr.ErrBadRequest("invalid request body: "+err.Error()))
		return
	}

	user, err := h.Users.Authenticate(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := auth.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dtos.AuthResponse{
		Token: token,
		User:  dtos.NewUserSummary(user),
	})
}

// Me is GET /auth/me/
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.Users.Get(auth.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewUserSummary(user))
}
