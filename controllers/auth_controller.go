package controllers

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"

	"stayhub-backend/services"
	"stayhub-backend/utils"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=merchant admin"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// Registration passwords need at least one letter and one digit.
var (
	hasLetter = regexp.MustCompile(`[A-Za-z]`)
	hasDigit  = regexp.MustCompile(`\d`)
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

// POST /api/auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if !hasLetter.MatchString(req.Password) || !hasDigit.MatchString(req.Password) {
		utils.JSONError(c, http.StatusBadRequest, "password must contain both letters and digits")
		return
	}

	user, token, err := a.Auth.Register(req.Email, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "registration failed")
		return
	}

	utils.JSONSuccessMessage(c, http.StatusCreated, "registered", gin.H{
		"user":  user,
		"token": token,
	})
}

// POST /api/auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, token, err := a.Auth.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "login failed")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"user":  user,
		"token": token,
	})
}

// GET /api/auth/profile
func (a *AuthController) Profile(c *gin.Context) {
	user, err := a.Auth.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "user not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"user": user})
}
