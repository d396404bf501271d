package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/mywallet/internal/domain/errors"
	"github.com/polkiloo/mywallet/internal/server/http/dto"
)

// AuthHandler processes registration and sign-in.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// SignUp handles POST /signup.
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": validationMessages(err)})
		return
	}

	err := h.facade.SignUp(c.Request.Context(), req.Name, req.Email, req.Password, req.PasswordConfirm)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"message": "user is already registered"})
		case errors.Is(err, domainErrors.ErrEmptyName),
			errors.Is(err, domainErrors.ErrInvalidEmail),
			errors.Is(err, domainErrors.ErrInvalidPassword),
			errors.Is(err, domainErrors.ErrPasswordMismatch):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": []string{err.Error()}})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusCreated)
}

// SignIn handles POST /signin.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": validationMessages(err)})
		return
	}

	name, token, err := h.facade.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			// Unknown email and wrong password are deliberately indistinguishable.
			c.JSON(http.StatusUnauthorized, gin.H{"message": "incorrect e-mail or password"})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.SignInResponse{Name: name, Token: token})
}
