package api

import (
	"errors"
	"net/http"

	reqdto "budget-api/internal/handler/dto/request"
	resdto "budget-api/internal/handler/dto/response"
	"budget-api/internal/handler/httperr"
	"budget-api/internal/handler/middleware"
	"budget-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MonthlyExpenseHandler struct {
	monthlyUseCase usecase.MonthlyExpenseUseCase
}

func NewMonthlyExpenseHandler(monthlyUseCase usecase.MonthlyExpenseUseCase) *MonthlyExpenseHandler {
	return &MonthlyExpenseHandler{
		monthlyUseCase: monthlyUseCase,
	}
}

// GetMonth materializes the month on first access, so it always answers 200
// for a well-formed key.
func (h *MonthlyExpenseHandler) GetMonth(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, usecase.ErrTokenValidation, "Unauthorized", nil)
		return
	}

	view, err := h.monthlyUseCase.GetOrCreateMonth(c.Request.Context(), userID, c.Param("month"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidMonth):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Month must be formatted as YYYY-MM", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromMonthView(view))
}

// GetExistingMonth is the read-only probe: it never creates a snapshot.
func (h *MonthlyExpenseHandler) GetExistingMonth(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, usecase.ErrTokenValidation, "Unauthorized", nil)
		return
	}

	view, err := h.monthlyUseCase.GetExistingMonth(c.Request.Context(), userID, c.Param("month"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidMonth):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Month must be formatted as YYYY-MM", nil)
		case errors.Is(err, usecase.ErrMonthNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Month not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromMonthView(view))
}

func (h *MonthlyExpenseHandler) PatchItem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, usecase.ErrTokenValidation, "Unauthorized", nil)
		return
	}

	snapshotID, err := uuid.Parse(c.Param("snapshotId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid snapshot ID format", nil)
		return
	}

	var req reqdto.PatchItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	item, err := h.monthlyUseCase.PatchItem(c.Request.Context(), userID, snapshotID, req.TemplateID, req.ToPatch())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrItemNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Monthly expense item not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *MonthlyExpenseHandler) CopyMonth(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, usecase.ErrTokenValidation, "Unauthorized", nil)
		return
	}

	var req reqdto.CopyMonthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	items, err := h.monthlyUseCase.CopyMonth(c.Request.Context(), userID, req.FromMonth, req.ToMonth)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidMonth):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Months must be formatted as YYYY-MM", nil)
		case errors.Is(err, usecase.ErrSourceMonthNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Source month not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.CopyMonthResponse{
		Success: true,
		ToMonth: req.ToMonth,
		Items:   items,
	})
}
