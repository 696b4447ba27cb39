// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/config"
	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/expense"
	"github.com/expense-tracker/backend/internal/application/usecase/recurrence"
	"github.com/expense-tracker/backend/internal/application/usecase/summary"
	"github.com/expense-tracker/backend/internal/infra/server/router"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/expense-tracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config            *config.Config
	DB                *gorm.DB
	Router            *router.Router
	GenerateRecurring *recurrence.GenerateRecurringUseCase
}

// NewInjector creates a new dependency injector with all dependencies wired.
// summaryCache may be nil, in which case summary responses are not cached and
// no invalidation happens on writes. Health checkers may be nil as well.
func NewInjector(
	cfg *config.Config,
	db *gorm.DB,
	summaryCache adapter.SummaryCache,
	dbHealthChecker func() bool,
	cacheHealthChecker func() bool,
) *Injector {
	// Create repositories
	expenseRepo := persistence.NewExpenseRepository(db)

	// Create expense use cases
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo)
	getExpenseUseCase := expense.NewGetExpenseUseCase(expenseRepo)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)
	searchExpensesUseCase := expense.NewSearchExpensesUseCase(expenseRepo)
	sortExpensesUseCase := expense.NewSortExpensesUseCase(expenseRepo)

	// Create recurrence use cases
	listRecurringUseCase := recurrence.NewListRecurringUseCase(expenseRepo)
	setRecurringStatusUseCase := recurrence.NewSetRecurringStatusUseCase(expenseRepo)
	generateRecurringUseCase := recurrence.NewGenerateRecurringUseCase(expenseRepo)

	// Create summary use cases
	getSummaryUseCase := summary.NewGetSummaryUseCase(expenseRepo)
	getCategorySummaryUseCase := summary.NewGetCategorySummaryUseCase(expenseRepo)
	getDailySummaryUseCase := summary.NewGetDailySummaryUseCase(expenseRepo)

	// Any successful write invalidates cached summaries
	var onWrite func(*gin.Context)
	if summaryCache != nil {
		onWrite = func(c *gin.Context) {
			summaryCache.Invalidate(c.Request.Context())
		}
	}

	// Create controllers
	healthController := controller.NewHealthController(dbHealthChecker, cacheHealthChecker)

	expenseController := controller.NewExpenseController(
		createExpenseUseCase,
		getExpenseUseCase,
		listExpensesUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
		searchExpensesUseCase,
		sortExpensesUseCase,
		listRecurringUseCase,
		setRecurringStatusUseCase,
		onWrite,
	)

	summaryController := controller.NewSummaryController(
		getSummaryUseCase,
		getCategorySummaryUseCase,
		getDailySummaryUseCase,
		summaryCache,
		cfg.Cache.TTL,
		nil,
	)

	// Create middleware
	writeRateLimiter := middleware.NewRateLimiter()

	// Create router
	r := router.NewRouter(healthController, expenseController, summaryController, writeRateLimiter)

	return &Injector{
		Config:            cfg,
		DB:                db,
		Router:            r,
		GenerateRecurring: generateRecurringUseCase,
	}
}
