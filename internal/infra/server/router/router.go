// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine            *gin.Engine
	healthController  *controller.HealthController
	expenseController *controller.ExpenseController
	summaryController *controller.SummaryController
	writeRateLimiter  *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	expenseController *controller.ExpenseController,
	summaryController *controller.SummaryController,
	writeRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:  healthController,
		expenseController: expenseController,
		summaryController: summaryController,
		writeRateLimiter:  writeRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		if r.expenseController != nil {
			expenses := v1.Group("/expenses")
			{
				expenses.GET("", r.expenseController.List)
				expenses.GET("/search", r.expenseController.Search)
				expenses.GET("/sorted", r.expenseController.Sorted)
				expenses.GET("/recurring", r.expenseController.ListRecurring)

				// Summary routes are registered before the :id routes so the
				// literal "summary" segment wins the match
				if r.summaryController != nil {
					expenses.GET("/summary", r.summaryController.GetSummary)
					expenses.GET("/summary/categories", r.summaryController.GetCategorySummary)
					expenses.GET("/summary/daily", r.summaryController.GetDailySummary)
				}

				expenses.GET("/:id", r.expenseController.Get)

				// Mutating routes go through the write rate limiter
				writes := expenses.Group("")
				if r.writeRateLimiter != nil {
					writes.Use(r.writeRateLimiter.Middleware())
				}
				writes.POST("", r.expenseController.Create)
				writes.PUT("/:id", r.expenseController.Update)
				writes.DELETE("/:id", r.expenseController.Delete)
				writes.PATCH("/:id/recurring", r.expenseController.SetRecurringStatus)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
