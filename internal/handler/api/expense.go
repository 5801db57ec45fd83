package api

import (
	"errors"
	"net/http"

	"budget-api/internal/domain/expense"
	reqdto "budget-api/internal/handler/dto/request"
	resdto "budget-api/internal/handler/dto/response"
	"budget-api/internal/handler/middleware"
	"budget-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ExpenseHandler struct {
	expenseUseCase usecase.ExpenseUseCase
}

func NewExpenseHandler(expenseUseCase usecase.ExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{
		expenseUseCase: expenseUseCase,
	}
}

func (h *ExpenseHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	expenses, err := h.expenseUseCase.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromExpenses(expenses))
}

func (h *ExpenseHandler) Get(c *gin.Context) {
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
			"error": "Invalid expense ID format",
		})
		return
	}

	e, err := h.expenseUseCase.Get(c.Request.Context(), userID, id)
	if err != nil {
		h.respondExpenseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromExpense(e))
}

func (h *ExpenseHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	e, err := h.expenseUseCase.Create(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		h.respondExpenseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromExpense(e))
}

func (h *ExpenseHandler) Update(c *gin.Context) {
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
			"error": "Invalid expense ID format",
		})
		return
	}

	var req reqdto.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	e, err := h.expenseUseCase.Update(c.Request.Context(), userID, id, req.ToInput())
	if err != nil {
		h.respondExpenseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromExpense(e))
}

func (h *ExpenseHandler) Delete(c *gin.Context) {
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
			"error": "Invalid expense ID format",
		})
		return
	}

	if err := h.expenseUseCase.Delete(c.Request.Context(), userID, id); err != nil {
		h.respondExpenseError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ExpenseHandler) respondExpenseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrExpenseNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Expense not found",
		})
	case errors.Is(err, expense.ErrEmptyDescription),
		errors.Is(err, expense.ErrEmptyCategory),
		errors.Is(err, expense.ErrNegativeAmount):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
