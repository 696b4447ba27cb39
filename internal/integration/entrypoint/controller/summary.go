package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/summary"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// SummaryController handles spending summary endpoints.
type SummaryController struct {
	summaryUseCase         *summary.GetSummaryUseCase
	categorySummaryUseCase *summary.GetCategorySummaryUseCase
	dailySummaryUseCase    *summary.GetDailySummaryUseCase
	cache                  adapter.SummaryCache // May be nil when Redis is unavailable
	cacheTTL               time.Duration
	now                    func() time.Time
}

// NewSummaryController creates a new summary controller instance. now supplies
// the current instant for period resolution and is injectable for tests.
func NewSummaryController(
	summaryUseCase *summary.GetSummaryUseCase,
	categorySummaryUseCase *summary.GetCategorySummaryUseCase,
	dailySummaryUseCase *summary.GetDailySummaryUseCase,
	cache adapter.SummaryCache,
	cacheTTL time.Duration,
	now func() time.Time,
) *SummaryController {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &SummaryController{
		summaryUseCase:         summaryUseCase,
		categorySummaryUseCase: categorySummaryUseCase,
		dailySummaryUseCase:    dailySummaryUseCase,
		cache:                  cache,
		cacheTTL:               cacheTTL,
		now:                    now,
	}
}

// GetSummary handles GET /expenses/summary requests.
func (c *SummaryController) GetSummary(ctx *gin.Context) {
	if c.serveCached(ctx) {
		return
	}

	input := summary.GetSummaryInput{
		Now:      c.now(),
		Period:   ctx.Query("period"),
		Category: ctx.Query("category"),
	}

	start, end, ok := c.parseOptionalBounds(ctx)
	if !ok {
		return
	}
	input.Start = start
	input.End = end

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSummaryError(ctx, err)
		return
	}

	c.respondAndCache(ctx, dto.ToSummaryResponse(output))
}

// GetCategorySummary handles GET /expenses/summary/categories requests.
func (c *SummaryController) GetCategorySummary(ctx *gin.Context) {
	if c.serveCached(ctx) {
		return
	}

	input := summary.GetCategorySummaryInput{
		Now:    c.now(),
		Period: ctx.Query("period"),
	}

	start, end, ok := c.parseOptionalBounds(ctx)
	if !ok {
		return
	}
	input.Start = start
	input.End = end

	output, err := c.categorySummaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSummaryError(ctx, err)
		return
	}

	c.respondAndCache(ctx, dto.ToCategorySummaryResponse(output))
}

// GetDailySummary handles GET /expenses/summary/daily requests. Both bounds
// are mandatory.
func (c *SummaryController) GetDailySummary(ctx *gin.Context) {
	startStr := ctx.Query("start")
	endStr := ctx.Query("end")
	if startStr == "" || endStr == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Missing required parameters: start and end",
			Code:  string(domainerror.ErrCodeInvalidPeriod),
		})
		return
	}

	if c.serveCached(ctx) {
		return
	}

	start, ok := parseDate(ctx, startStr)
	if !ok {
		return
	}
	end, ok := parseDate(ctx, endStr)
	if !ok {
		return
	}

	output, err := c.dailySummaryUseCase.Execute(ctx.Request.Context(), summary.GetDailySummaryInput{
		Start: start,
		End:   end,
	})
	if err != nil {
		c.handleSummaryError(ctx, err)
		return
	}

	c.respondAndCache(ctx, dto.ToDailySummaryResponse(output))
}

// parseOptionalBounds parses the optional start/end query parameters shared by
// the summary endpoints.
func (c *SummaryController) parseOptionalBounds(ctx *gin.Context) (start, end *time.Time, ok bool) {
	if startStr := ctx.Query("start"); startStr != "" {
		parsed, parsedOK := parseDate(ctx, startStr)
		if !parsedOK {
			return nil, nil, false
		}
		start = &parsed
	}
	if endStr := ctx.Query("end"); endStr != "" {
		parsed, parsedOK := parseDate(ctx, endStr)
		if !parsedOK {
			return nil, nil, false
		}
		end = &parsed
	}
	return start, end, true
}

// serveCached writes the cached payload for this request if one exists.
func (c *SummaryController) serveCached(ctx *gin.Context) bool {
	if c.cache == nil {
		return false
	}
	payload, ok := c.cache.Get(ctx.Request.Context(), cacheKey(ctx))
	if !ok {
		return false
	}
	ctx.Data(http.StatusOK, "application/json; charset=utf-8", payload)
	return true
}

// respondAndCache renders the response and stores it for later requests.
func (c *SummaryController) respondAndCache(ctx *gin.Context, response any) {
	if c.cache != nil {
		if payload, err := json.Marshal(response); err == nil {
			c.cache.Set(ctx.Request.Context(), cacheKey(ctx), payload, c.cacheTTL)
		}
	}
	ctx.JSON(http.StatusOK, response)
}

func (c *SummaryController) handleSummaryError(ctx *gin.Context, err error) {
	if errors.Is(err, domainerror.ErrInvalidPeriod) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid period or missing parameters",
			Code:  string(domainerror.ErrCodeInvalidPeriod),
		})
		return
	}
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

func cacheKey(ctx *gin.Context) string {
	return ctx.Request.URL.Path + "?" + ctx.Request.URL.RawQuery
}
