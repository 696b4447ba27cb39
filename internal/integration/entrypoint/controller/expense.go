// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/usecase/expense"
	"github.com/expense-tracker/backend/internal/application/usecase/recurrence"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	createUseCase    *expense.CreateExpenseUseCase
	getUseCase       *expense.GetExpenseUseCase
	listUseCase      *expense.ListExpensesUseCase
	updateUseCase    *expense.UpdateExpenseUseCase
	deleteUseCase    *expense.DeleteExpenseUseCase
	searchUseCase    *expense.SearchExpensesUseCase
	sortUseCase      *expense.SortExpensesUseCase
	listRecurring    *recurrence.ListRecurringUseCase
	setStatusUseCase *recurrence.SetRecurringStatusUseCase
	onWrite          func(*gin.Context) // Cache invalidation hook, may be nil
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	createUseCase *expense.CreateExpenseUseCase,
	getUseCase *expense.GetExpenseUseCase,
	listUseCase *expense.ListExpensesUseCase,
	updateUseCase *expense.UpdateExpenseUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
	searchUseCase *expense.SearchExpensesUseCase,
	sortUseCase *expense.SortExpensesUseCase,
	listRecurring *recurrence.ListRecurringUseCase,
	setStatusUseCase *recurrence.SetRecurringStatusUseCase,
	onWrite func(*gin.Context),
) *ExpenseController {
	return &ExpenseController{
		createUseCase:    createUseCase,
		getUseCase:       getUseCase,
		listUseCase:      listUseCase,
		updateUseCase:    updateUseCase,
		deleteUseCase:    deleteUseCase,
		searchUseCase:    searchUseCase,
		sortUseCase:      sortUseCase,
		listRecurring:    listRecurring,
		setStatusUseCase: setStatusUseCase,
		onWrite:          onWrite,
	}
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	date, ok := parseDate(ctx, req.Date)
	if !ok {
		return
	}

	var endDate *time.Time
	if req.RecurrenceEndDate != nil && *req.RecurrenceEndDate != "" {
		parsed, ok := parseDate(ctx, *req.RecurrenceEndDate)
		if !ok {
			return
		}
		endDate = &parsed
	}

	input := expense.CreateExpenseInput{
		Title:             req.Title,
		Amount:            decimal.NewFromFloat(req.Amount),
		Category:          req.Category,
		Date:              date,
		Recurrence:        req.Recurrence,
		Note:              req.Note,
		Tags:              req.Tags,
		RecurrenceEndDate: endDate,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	c.notifyWrite(ctx)
	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(output.Expense))
}

// Get handles GET /expenses/:id requests.
func (c *ExpenseController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), expense.GetExpenseInput{ID: id})
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(output.Expense))
}

// List handles GET /expenses requests with optional conjunctive filters.
func (c *ExpenseController) List(ctx *gin.Context) {
	input := expense.ListExpensesInput{
		Category: ctx.Query("category"),
	}

	if startStr := ctx.Query("start"); startStr != "" {
		start, ok := parseDate(ctx, startStr)
		if !ok {
			return
		}
		input.Start = &start
	}
	if endStr := ctx.Query("end"); endStr != "" {
		end, ok := parseEndDate(ctx, endStr)
		if !ok {
			return
		}
		input.End = &end
	}
	if minStr := ctx.Query("minAmount"); minStr != "" {
		minAmount, ok := parseAmount(ctx, minStr)
		if !ok {
			return
		}
		input.MinAmount = &minAmount
	}
	if maxStr := ctx.Query("maxAmount"); maxStr != "" {
		maxAmount, ok := parseAmount(ctx, maxStr)
		if !ok {
			return
		}
		input.MaxAmount = &maxAmount
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(output.Expenses))
}

// Update handles PUT /expenses/:id requests.
func (c *ExpenseController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	date, ok := parseDate(ctx, req.Date)
	if !ok {
		return
	}

	input := expense.UpdateExpenseInput{
		ID:         id,
		Title:      req.Title,
		Amount:     decimal.NewFromFloat(req.Amount),
		Category:   req.Category,
		Date:       date,
		Recurrence: req.Recurrence,
		Note:       req.Note,
		Tags:       req.Tags,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	c.notifyWrite(ctx)
	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(output.Expense))
}

// Delete handles DELETE /expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), expense.DeleteExpenseInput{ID: id}); err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	c.notifyWrite(ctx)
	ctx.Status(http.StatusNoContent)
}

// Search handles GET /expenses/search requests.
func (c *ExpenseController) Search(ctx *gin.Context) {
	keyword := ctx.Query("keyword")
	if keyword == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Missing required parameter: keyword",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	output, err := c.searchUseCase.Execute(ctx.Request.Context(), expense.SearchExpensesInput{Keyword: keyword})
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(output.Expenses))
}

// Sorted handles GET /expenses/sorted requests.
func (c *ExpenseController) Sorted(ctx *gin.Context) {
	input := expense.SortExpensesInput{
		SortBy: ctx.DefaultQuery("sortBy", expense.SortByDate),
		Order:  ctx.DefaultQuery("order", "asc"),
	}

	output, err := c.sortUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(output.Expenses))
}

// ListRecurring handles GET /expenses/recurring requests.
func (c *ExpenseController) ListRecurring(ctx *gin.Context) {
	output, err := c.listRecurring.Execute(ctx.Request.Context())
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(output.Expenses))
}

// SetRecurringStatus handles PATCH /expenses/:id/recurring requests.
func (c *ExpenseController) SetRecurringStatus(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req dto.SetRecurringStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	input := recurrence.SetRecurringStatusInput{
		ID:     id,
		Active: *req.Active,
	}

	output, err := c.setStatusUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	c.notifyWrite(ctx)
	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(output.Expense))
}

// handleExpenseError maps domain errors to HTTP responses.
func (c *ExpenseController) handleExpenseError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrExpenseNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Expense not found",
			Code:  string(domainerror.ErrCodeExpenseNotFound),
		})
	case errors.Is(err, domainerror.ErrInvalidRecurrence):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid recurrence. Use none, daily, weekly or monthly",
			Code:  string(domainerror.ErrCodeInvalidRecurrence),
		})
	default:
		code := domainerror.ErrCodeStoreFailure
		var expErr *domainerror.ExpenseError
		if errors.As(err, &expErr) {
			code = expErr.Code
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Internal server error",
			Code:  string(code),
		})
	}
}

func (c *ExpenseController) notifyWrite(ctx *gin.Context) {
	if c.onWrite != nil {
		c.onWrite(ctx)
	}
}

// parseID parses the :id path parameter, responding with 404 on garbage.
// An unparsable ID can never name a stored record.
func parseID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Expense not found",
			Code:  string(domainerror.ErrCodeExpenseNotFound),
		})
		return uuid.Nil, false
	}
	return id, true
}

// parseDate parses a YYYY-MM-DD or RFC3339 date string, responding with 400
// on failure.
func parseDate(ctx *gin.Context, value string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t.UTC(), true
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), true
	}
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid date format. Use YYYY-MM-DD",
		Code:  string(domainerror.ErrCodeInvalidDate),
	})
	return time.Time{}, false
}

// parseEndDate parses an end bound for a date-range filter. A date-only value
// extends to the end of that day so the bound stays inclusive; a full
// timestamp is used as given.
func parseEndDate(ctx *gin.Context, value string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t.UTC().Add(23*time.Hour + 59*time.Minute + 59*time.Second), true
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), true
	}
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid date format. Use YYYY-MM-DD",
		Code:  string(domainerror.ErrCodeInvalidDate),
	})
	return time.Time{}, false
}

// parseAmount parses a decimal amount query value, responding with 400 on failure.
func parseAmount(ctx *gin.Context, value string) (decimal.Decimal, bool) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid amount value",
			Code:  string(domainerror.ErrCodeInvalidAmount),
		})
		return decimal.Decimal{}, false
	}
	return amount, true
}
