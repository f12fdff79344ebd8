// Package main is the entry point for the Expense Tracker API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/expense-tracker/backend/config"
	"github.com/expense-tracker/backend/internal/application/usecase/auth"
	"github.com/expense-tracker/backend/internal/application/usecase/budget"
	"github.com/expense-tracker/backend/internal/application/usecase/category"
	"github.com/expense-tracker/backend/internal/application/usecase/expense"
	"github.com/expense-tracker/backend/internal/application/usecase/income"
	"github.com/expense-tracker/backend/internal/infra/db"
	"github.com/expense-tracker/backend/internal/infra/server/router"
	"github.com/expense-tracker/backend/internal/integration/adapters"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/expense-tracker/backend/internal/integration/persistence"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Expense Tracker API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.CategoryModel{},
		&model.ExpenseModel{},
		&model.IncomeModel{},
		&model.BudgetModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Initialize Redis for the login rate limiter
	redisClient, err := db.NewRedisClient(&cfg.Redis)
	if err != nil {
		slog.Error("Redis connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("Failed to close redis connection", "error", err)
		}
	}()

	// Create repositories
	userRepo := persistence.NewUserRepository(database.DB())
	categoryRepo := persistence.NewCategoryRepository(database.DB())
	expenseRepo := persistence.NewExpenseRepository(database.DB())
	incomeRepo := persistence.NewIncomeRepository(database.DB())
	budgetRepo := persistence.NewBudgetRepository(database.DB())

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.PreviousSecrets, cfg.JWT.Expiry)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, categoryRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	getCategoryUseCase := category.NewGetCategoryUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	// Create expense use cases
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	getExpenseUseCase := expense.NewGetExpenseUseCase(expenseRepo)
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, categoryRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, categoryRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)

	// Create income use cases
	listIncomesUseCase := income.NewListIncomesUseCase(incomeRepo)
	getIncomeUseCase := income.NewGetIncomeUseCase(incomeRepo)
	createIncomeUseCase := income.NewCreateIncomeUseCase(incomeRepo, categoryRepo)
	updateIncomeUseCase := income.NewUpdateIncomeUseCase(incomeRepo, categoryRepo)
	deleteIncomeUseCase := income.NewDeleteIncomeUseCase(incomeRepo)

	// Create budget use cases. Create and upsert share the keyed mutex so
	// their check-then-act sequences serialize against each other.
	budgetLocks := budget.NewKeyedMutex()
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)
	getBudgetUseCase := budget.NewGetBudgetUseCase(budgetRepo)
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo, categoryRepo, budgetLocks)
	upsertBudgetUseCase := budget.NewUpsertBudgetUseCase(budgetRepo, categoryRepo, budgetLocks)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)

	// Create controllers
	healthController := controller.NewHealthController(database.HealthCheck)
	authController := controller.NewAuthController(registerUseCase, loginUseCase)
	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		getCategoryUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)
	expenseController := controller.NewExpenseController(
		listExpensesUseCase,
		getExpenseUseCase,
		createExpenseUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
	)
	incomeController := controller.NewIncomeController(
		listIncomesUseCase,
		getIncomeUseCase,
		createIncomeUseCase,
		updateIncomeUseCase,
		deleteIncomeUseCase,
	)
	budgetController := controller.NewBudgetController(
		listBudgetsUseCase,
		getBudgetUseCase,
		createBudgetUseCase,
		upsertBudgetUseCase,
		deleteBudgetUseCase,
	)

	// Create middleware
	loginRateLimiter := middleware.NewRateLimiter(redisClient)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Setup router
	r := router.NewRouter(
		healthController,
		authController,
		categoryController,
		expenseController,
		incomeController,
		budgetController,
		loginRateLimiter,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
