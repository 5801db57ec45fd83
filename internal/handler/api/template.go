package api

import (
	"errors"
	"net/http"

	"budget-api/internal/domain/template"
	reqdto "budget-api/internal/handler/dto/request"
	resdto "budget-api/internal/handler/dto/response"
	"budget-api/internal/handler/middleware"
	"budget-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TemplateHandler struct {
	templateUseCase usecase.TemplateUseCase
}

func NewTemplateHandler(templateUseCase usecase.TemplateUseCase) *TemplateHandler {
	return &TemplateHandler{
		templateUseCase: templateUseCase,
	}
}

func (h *TemplateHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	templates, err := h.templateUseCase.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromTemplates(templates))
}

func (h *TemplateHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	t, err := h.templateUseCase.Create(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		h.respondTemplateError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromTemplate(t))
}

func (h *TemplateHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid template ID format",
		})
		return
	}

	var req reqdto.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	t, err := h.templateUseCase.Update(c.Request.Context(), userID, id, req.ToInput())
	if err != nil {
		h.respondTemplateError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromTemplate(t))
}

func (h *TemplateHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid template ID format",
		})
		return
	}

	if err := h.templateUseCase.Delete(c.Request.Context(), userID, id); err != nil {
		h.respondTemplateError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TemplateHandler) respondTemplateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrTemplateNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Template not found",
		})
	case errors.Is(err, template.ErrEmptyDescription),
		errors.Is(err, template.ErrEmptyCategory),
		errors.Is(err, template.ErrNegativeAmount),
		errors.Is(err, template.ErrInvalidFirstPayment),
		errors.Is(err, template.ErrMissingExpiry),
		errors.Is(err, template.ErrExpiryBeforeFirstMonth):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
