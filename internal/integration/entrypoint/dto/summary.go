package dto

import (
	"github.com/expense-tracker/backend/internal/application/usecase/summary"
)

// SummaryResponse represents the total spending summary response.
type SummaryResponse struct {
	Period     string `json:"period"`
	Category   string `json:"category,omitempty"`
	TotalSpent string `json:"total_spent"`
	From       string `json:"from"`
	To         string `json:"to"`
}

// CategorySummaryResponse represents the category-wise summary response.
type CategorySummaryResponse struct {
	From           string            `json:"from"`
	To             string            `json:"to"`
	CategoryTotals map[string]string `json:"category_totals"`
}

// DailySummaryResponse maps ISO dates to totals.
type DailySummaryResponse struct {
	DailyTotals map[string]string `json:"daily_totals"`
}

// ToSummaryResponse converts the total summary output to its response form.
func ToSummaryResponse(output *summary.GetSummaryOutput) SummaryResponse {
	return SummaryResponse{
		Period:     output.Period,
		Category:   output.Category,
		TotalSpent: output.TotalSpent.String(),
		From:       output.From,
		To:         output.To,
	}
}

// ToCategorySummaryResponse converts the category-wise output to its response form.
func ToCategorySummaryResponse(output *summary.GetCategorySummaryOutput) CategorySummaryResponse {
	totals := make(map[string]string, len(output.CategoryTotals))
	for category, total := range output.CategoryTotals {
		totals[category] = total.String()
	}
	return CategorySummaryResponse{
		From:           output.From,
		To:             output.To,
		CategoryTotals: totals,
	}
}

// ToDailySummaryResponse converts the daily output to its response form.
func ToDailySummaryResponse(output *summary.GetDailySummaryOutput) DailySummaryResponse {
	totals := make(map[string]string, len(output.DailyTotals))
	for day, total := range output.DailyTotals {
		totals[day] = total.String()
	}
	return DailySummaryResponse{DailyTotals: totals}
}
