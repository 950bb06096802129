package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finanzas-app/backend/internal/application/usecase/account"
	"github.com/finanzas-app/backend/internal/domain/entity"
	domainerror "github.com/finanzas-app/backend/internal/domain/error"
	"github.com/finanzas-app/backend/internal/integration/entrypoint/dto"
)

// AccountController handles account endpoints.
type AccountController struct {
	createUseCase       *account.CreateAccountUseCase
	listUseCase         *account.ListAccountsUseCase
	getMovementsUseCase *account.GetAccountMovementsUseCase
}

// NewAccountController creates a new account controller instance.
func NewAccountController(
	createUseCase *account.CreateAccountUseCase,
	listUseCase *account.ListAccountsUseCase,
	getMovementsUseCase *account.GetAccountMovementsUseCase,
) *AccountController {
	return &AccountController{
		createUseCase:       createUseCase,
		listUseCase:         listUseCase,
		getMovementsUseCase: getMovementsUseCase,
	}
}

// Create handles POST /accounts requests.
func (c *AccountController) Create(ctx *gin.Context) {
	var req dto.CreateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingAccountFields),
		})
		return
	}

	input := account.CreateAccountInput{
		Name:     req.Name,
		Category: entity.AccountCategory(req.Category),
		Currency: req.Currency,
		Balance:  req.Balance,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAccountResponse(output.Account))
}

// List handles GET /accounts requests.
func (c *AccountController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context(), account.ListAccountsInput{})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve accounts",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccountListResponse(output))
}

// GetMovements handles GET /accounts/:id/movements requests.
func (c *AccountController) GetMovements(ctx *gin.Context) {
	accountID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID format",
		})
		return
	}

	input := account.GetAccountMovementsInput{
		AccountID: accountID,
		Filter:    ctx.Query("filter"),
	}

	output, err := c.getMovementsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccountMovementsResponse(output))
}

// handleAccountError handles account errors and returns appropriate HTTP responses.
func (c *AccountController) handleAccountError(ctx *gin.Context, err error) {
	var accountErr *domainerror.AccountError
	if errors.As(err, &accountErr) {
		statusCode := c.getStatusCodeForAccountError(accountErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: accountErr.Message,
			Code:  string(accountErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrAccountNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Account not found",
			Code:  string(domainerror.ErrCodeAccountNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForAccountError maps account error codes to HTTP status codes.
func (c *AccountController) getStatusCodeForAccountError(code domainerror.AccountErrorCode) int {
	switch code {
	case domainerror.ErrCodeAccountNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidAccountCategory,
		domainerror.ErrCodeInvalidAccountName,
		domainerror.ErrCodeNegativeInitialBalance,
		domainerror.ErrCodeMissingAccountFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
