package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "budget-api/internal/handler/dto/request"
	resdto "budget-api/internal/handler/dto/response"
	"budget-api/internal/handler/middleware"
	"budget-api/internal/pkg/config"
	"budget-api/internal/pkg/cookie"
	"budget-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	cfg         config.Config
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		cfg:         cfg,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	credentials, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
		return
	}

	token, user, err := h.authUseCase.Register(c.Request.Context(), credentials, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Email is already registered",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	cookie.SetTokenCookie(c, h.cfg.Cookie, token, h.tokenLifetime())

	c.JSON(http.StatusCreated, resdto.AuthResponse{
		AccessToken: token,
		User:        resdto.FromAuthorizedUser(user),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	credentials, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
		return
	}

	token, user, err := h.authUseCase.Login(c.Request.Context(), credentials)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	cookie.SetTokenCookie(c, h.cfg.Cookie, token, h.tokenLifetime())

	c.JSON(http.StatusOK, resdto.AuthResponse{
		AccessToken: token,
		User:        resdto.FromAuthorizedUser(user),
	})
}

// Logout only clears the cookie; the JWT itself stays valid until expiry.
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookie(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	user, err := h.authUseCase.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAuthorizedUser(user))
}

func (h *AuthHandler) tokenLifetime() time.Duration {
	d, err := time.ParseDuration(h.cfg.JWT.Duration)
	if err != nil {
		return 168 * time.Hour
	}
	return d
}
