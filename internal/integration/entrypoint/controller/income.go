// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/usecase/income"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// IncomeController handles income endpoints.
type IncomeController struct {
	listUseCase   *income.ListIncomesUseCase
	getUseCase    *income.GetIncomeUseCase
	createUseCase *income.CreateIncomeUseCase
	updateUseCase *income.UpdateIncomeUseCase
	deleteUseCase *income.DeleteIncomeUseCase
}

// NewIncomeController creates a new income controller instance.
func NewIncomeController(
	listUseCase *income.ListIncomesUseCase,
	getUseCase *income.GetIncomeUseCase,
	createUseCase *income.CreateIncomeUseCase,
	updateUseCase *income.UpdateIncomeUseCase,
	deleteUseCase *income.DeleteIncomeUseCase,
) *IncomeController {
	return &IncomeController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /incomes requests.
func (c *IncomeController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), income.ListIncomesInput{
		UserID: userID,
	})
	if err != nil {
		c.handleIncomeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeListResponse(output.Incomes))
}

// Get handles GET /incomes/:id requests.
func (c *IncomeController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	incomeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid income ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), income.GetIncomeInput{
		IncomeID: incomeID,
		UserID:   userID,
	})
	if err != nil {
		c.handleIncomeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeResponse(output.Income))
}

// Create handles POST /incomes requests.
func (c *IncomeController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateIncomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingIncomeFields),
		})
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), income.CreateIncomeInput{
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     req.Amount,
		Date:       req.Date,
		Notes:      req.Notes,
	})
	if err != nil {
		c.handleIncomeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToIncomeResponse(output.Income))
}

// Update handles PUT /incomes/:id requests.
func (c *IncomeController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	incomeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid income ID format",
		})
		return
	}

	var req dto.UpdateIncomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingIncomeFields),
		})
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), income.UpdateIncomeInput{
		IncomeID:   incomeID,
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     req.Amount,
		Date:       req.Date,
		Notes:      req.Notes,
	})
	if err != nil {
		c.handleIncomeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeResponse(output.Income))
}

// Delete handles DELETE /incomes/:id requests.
func (c *IncomeController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	incomeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid income ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), income.DeleteIncomeInput{
		IncomeID: incomeID,
		UserID:   userID,
	}); err != nil {
		c.handleIncomeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleIncomeError handles income errors and returns appropriate HTTP responses.
func (c *IncomeController) handleIncomeError(ctx *gin.Context, err error) {
	var incErr *domainerror.IncomeError
	if errors.As(err, &incErr) {
		statusCode := c.getStatusCodeForIncomeError(incErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: incErr.Message,
			Code:  string(incErr.Code),
		})
		return
	}

	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) {
		statusCode := getStatusCodeForReferencedCategory(catErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: catErr.Message,
			Code:  string(catErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForIncomeError maps income error codes to HTTP status codes.
func (c *IncomeController) getStatusCodeForIncomeError(code domainerror.IncomeErrorCode) int {
	switch code {
	case domainerror.ErrCodeIncomeNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotIncomeOwner:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidIncomeDate,
		domainerror.ErrCodeMissingIncomeFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
