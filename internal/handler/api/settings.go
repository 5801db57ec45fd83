package api

import (
	"errors"
	"net/http"

	reqdto "budget-api/internal/handler/dto/request"
	resdto "budget-api/internal/handler/dto/response"
	"budget-api/internal/handler/middleware"
	"budget-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsUseCase usecase.SettingsUseCase
}

func NewSettingsHandler(settingsUseCase usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{
		settingsUseCase: settingsUseCase,
	}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	settings, err := h.settingsUseCase.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSettings(settings))
}

func (h *SettingsHandler) UpdateTheme(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.UpdateThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.settingsUseCase.UpdateTheme(c.Request.Context(), userID, req.Theme); err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidTheme):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Theme must be light or dark",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"theme": req.Theme})
}

func (h *SettingsHandler) UpdateTolerance(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.UpdateToleranceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.settingsUseCase.UpdateTolerance(c.Request.Context(), userID, *req.Tolerance); err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidTolerance):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Tolerance must be between 0 and 100",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"tolerance": *req.Tolerance})
}
