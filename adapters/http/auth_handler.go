package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	authUC "github.com/sanketgaikwad/portfolio-api/internal/application/usecase/auth"
	"github.com/sanketgaikwad/portfolio-api/pkg/apperror"
)

type AuthHandler struct {
	loginUseCase *authUC.LoginUseCase
}

func NewAuthHandler(loginUC *authUC.LoginUseCase) *AuthHandler {
	return &AuthHandler{
		loginUseCase: loginUC,
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	input := authUC.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	}

	output, err := h.loginUseCase.Execute(c.Request.Context(), input)
	if err != nil {

		if errors.Is(err, apperror.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Email or password is incorrect"})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": output.AccessToken,
	})
}
