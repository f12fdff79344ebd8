// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	authController     *controller.AuthController
	categoryController *controller.CategoryController
	expenseController  *controller.ExpenseController
	incomeController   *controller.IncomeController
	budgetController   *controller.BudgetController
	loginRateLimiter   *middleware.RateLimiter
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	categoryController *controller.CategoryController,
	expenseController *controller.ExpenseController,
	incomeController *controller.IncomeController,
	budgetController *controller.BudgetController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:   healthController,
		authController:     authController,
		categoryController: categoryController,
		expenseController:  expenseController,
		incomeController:   incomeController,
		budgetController:   budgetController,
		loginRateLimiter:   loginRateLimiter,
		authMiddleware:     authMiddleware,
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

// setupAPIRoutes configures the main API routes. Authentication runs for the
// whole v1 surface: it binds a principal when a valid token is presented and
// lets the request through either way. Protected groups additionally require
// the principal to be present.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	v1.Use(r.authMiddleware.Authenticate())
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
		}

		categories := v1.Group("/categories")
		categories.Use(r.authMiddleware.RequireAuth())
		{
			categories.GET("", r.categoryController.List)
			categories.POST("", r.categoryController.Create)
			categories.GET("/:id", r.categoryController.Get)
			categories.PUT("/:id", r.categoryController.Update)
			categories.DELETE("/:id", r.categoryController.Delete)
		}

		expenses := v1.Group("/expenses")
		expenses.Use(r.authMiddleware.RequireAuth())
		{
			expenses.GET("", r.expenseController.List)
			expenses.POST("", r.expenseController.Create)
			expenses.GET("/:id", r.expenseController.Get)
			expenses.PUT("/:id", r.expenseController.Update)
			expenses.DELETE("/:id", r.expenseController.Delete)
		}

		incomes := v1.Group("/incomes")
		incomes.Use(r.authMiddleware.RequireAuth())
		{
			incomes.GET("", r.incomeController.List)
			incomes.POST("", r.incomeController.Create)
			incomes.GET("/:id", r.incomeController.Get)
			incomes.PUT("/:id", r.incomeController.Update)
			incomes.DELETE("/:id", r.incomeController.Delete)
		}

		budgets := v1.Group("/budgets")
		budgets.Use(r.authMiddleware.RequireAuth())
		{
			budgets.GET("", r.budgetController.List)
			budgets.POST("", r.budgetController.Create)
			budgets.PUT("", r.budgetController.Upsert)
			budgets.GET("/:id", r.budgetController.Get)
			budgets.PUT("/:id", r.budgetController.Update)
			budgets.DELETE("/:id", r.budgetController.Delete)
		}
	}
}
