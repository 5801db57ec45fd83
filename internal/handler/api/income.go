package api

import (
	"errors"
	"net/http"

	"budget-api/internal/domain/income"
	reqdto "budget-api/internal/handler/dto/request"
	resdto "budget-api/internal/handler/dto/response"
	"budget-api/internal/handler/middleware"
	"budget-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type IncomeHandler struct {
	incomeUseCase usecase.IncomeUseCase
}

func NewIncomeHandler(incomeUseCase usecase.IncomeUseCase) *IncomeHandler {
	return &IncomeHandler{
		incomeUseCase: incomeUseCase,
	}
}

func (h *IncomeHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	incomes, err := h.incomeUseCase.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromIncomes(incomes))
}

func (h *IncomeHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	inc, err := h.incomeUseCase.Create(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		h.respondIncomeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromIncome(inc))
}

func (h *IncomeHandler) Update(c *gin.Context) {
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
			"error": "Invalid income ID format",
		})
		return
	}

	var req reqdto.UpdateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	inc, err := h.incomeUseCase.Update(c.Request.Context(), userID, id, req.ToInput())
	if err != nil {
		h.respondIncomeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromIncome(inc))
}

func (h *IncomeHandler) Delete(c *gin.Context) {
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
			"error": "Invalid income ID format",
		})
		return
	}

	if err := h.incomeUseCase.Delete(c.Request.Context(), userID, id); err != nil {
		h.respondIncomeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *IncomeHandler) respondIncomeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrIncomeNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Income not found",
		})
	case errors.Is(err, income.ErrEmptyCategory),
		errors.Is(err, income.ErrEmptyCompany),
		errors.Is(err, income.ErrEmptyFrequency),
		errors.Is(err, income.ErrMissingDate):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
