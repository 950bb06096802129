package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finanzas-app/backend/internal/application/usecase/obligation"
	"github.com/finanzas-app/backend/internal/application/usecase/settlement"
	"github.com/finanzas-app/backend/internal/domain/entity"
	domainerror "github.com/finanzas-app/backend/internal/domain/error"
	"github.com/finanzas-app/backend/internal/domain/valueobject"
	"github.com/finanzas-app/backend/internal/integration/entrypoint/dto"
)

// ObligationController handles obligation endpoints, including settlement
// posting and history.
type ObligationController struct {
	createUseCase    *obligation.CreateObligationUseCase
	listUseCase      *obligation.ListObligationsUseCase
	deleteUseCase    *obligation.DeleteObligationUseCase
	historyUseCase   *obligation.GetHistoryUseCase
	isSettledUseCase *obligation.IsSettledUseCase
	settleUseCase    *settlement.SettleObligationUseCase
}

// NewObligationController creates a new obligation controller instance.
func NewObligationController(
	createUseCase *obligation.CreateObligationUseCase,
	listUseCase *obligation.ListObligationsUseCase,
	deleteUseCase *obligation.DeleteObligationUseCase,
	historyUseCase *obligation.GetHistoryUseCase,
	isSettledUseCase *obligation.IsSettledUseCase,
	settleUseCase *settlement.SettleObligationUseCase,
) *ObligationController {
	return &ObligationController{
		createUseCase:    createUseCase,
		listUseCase:      listUseCase,
		deleteUseCase:    deleteUseCase,
		historyUseCase:   historyUseCase,
		isSettledUseCase: isSettledUseCase,
		settleUseCase:    settleUseCase,
	}
}

// Create handles POST /obligations requests.
func (c *ObligationController) Create(ctx *gin.Context) {
	var req dto.CreateObligationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingObligationField),
		})
		return
	}

	input := obligation.CreateObligationInput{
		Type:              entity.ObligationType(req.Type),
		Name:              req.Name,
		Description:       req.Description,
		NominalDay:        req.NominalDay,
		ValueMode:         entity.ValueMode(req.ValueMode),
		Amount:            req.Amount,
		TotalAmount:       req.TotalAmount,
		Periodicity:       valueobject.Periodicity(req.Periodicity),
		PaymentMode:       entity.PaymentMode(req.PaymentMode),
		InstallmentAmount: req.InstallmentAmount,
	}

	if req.CreationDate != nil {
		creationDate, err := valueobject.ParseDate(*req.CreationDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid creation date format, expected YYYY-MM-DD",
			})
			return
		}
		input.CreationDate = &creationDate
	}

	if req.LumpDueDate != nil {
		lumpDate, err := valueobject.ParseDate(*req.LumpDueDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid lump due date format, expected YYYY-MM-DD",
			})
			return
		}
		input.LumpDueDate = &lumpDate
	}

	if req.SourceAccountID != nil {
		sourceID, err := uuid.Parse(*req.SourceAccountID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid source account ID format",
			})
			return
		}
		input.SourceAccountID = &sourceID
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleObligationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToObligationResponse(output.Obligation))
}

// List handles GET /obligations requests. An optional type query parameter
// restricts the listing.
func (c *ObligationController) List(ctx *gin.Context) {
	input := obligation.ListObligationsInput{}
	if typeParam := ctx.Query("type"); typeParam != "" {
		obligationType := entity.ObligationType(typeParam)
		if !entity.IsValidObligationType(obligationType) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid obligation type",
				Code:  string(domainerror.ErrCodeInvalidObligationType),
			})
			return
		}
		input.Type = &obligationType
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve obligations",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToObligationListResponse(output))
}

// Delete handles DELETE /obligations/:id requests.
func (c *ObligationController) Delete(ctx *gin.Context) {
	obligationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid obligation ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), obligation.DeleteObligationInput{
		ObligationID: obligationID,
	}); err != nil {
		c.handleObligationError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetHistory handles GET /obligations/:id/history requests.
func (c *ObligationController) GetHistory(ctx *gin.Context) {
	obligationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid obligation ID format",
		})
		return
	}

	output, err := c.historyUseCase.Execute(ctx.Request.Context(), obligation.GetHistoryInput{
		ObligationID: obligationID,
	})
	if err != nil {
		c.handleObligationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettlementHistoryResponse(output))
}

// IsSettled handles GET /obligations/:id/settled requests. The month and
// period query parameters identify the period instance.
func (c *ObligationController) IsSettled(ctx *gin.Context) {
	obligationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid obligation ID format",
		})
		return
	}

	monthID := ctx.Query("month")
	periodKey := ctx.Query("period")
	if monthID == "" || periodKey == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "month and period query parameters are required",
		})
		return
	}

	output, err := c.isSettledUseCase.Execute(ctx.Request.Context(), obligation.IsSettledInput{
		ObligationID: obligationID,
		MonthID:      monthID,
		PeriodKey:    periodKey,
	})
	if err != nil {
		c.handleObligationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.IsSettledResponse{Settled: output.Settled})
}

// Settle handles POST /obligations/:id/settlements requests.
func (c *ObligationController) Settle(ctx *gin.Context) {
	obligationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid obligation ID format",
		})
		return
	}

	var req dto.SettleObligationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID format",
			Code:  string(domainerror.ErrCodeMissingSettlementAccount),
		})
		return
	}

	date, err := valueobject.ParseDate(req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	output, err := c.settleUseCase.Execute(ctx.Request.Context(), settlement.SettleInput{
		ObligationID: obligationID,
		AccountID:    accountID,
		Date:         date,
		Amount:       req.Amount,
		MonthID:      req.MonthID,
		PeriodKey:    req.PeriodKey,
	})
	if err != nil {
		c.handleObligationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SettleObligationResponse{
		Obligation: dto.ToObligationResponse(output.Obligation),
		Account:    dto.ToAccountResponse(output.Account),
		Settlement: dto.ToSettlementResponse(output.Settlement),
	})
}

// handleObligationError handles obligation and settlement errors and returns
// appropriate HTTP responses.
func (c *ObligationController) handleObligationError(ctx *gin.Context, err error) {
	var obligationErr *domainerror.ObligationError
	if errors.As(err, &obligationErr) {
		statusCode := http.StatusBadRequest
		if obligationErr.Code == domainerror.ErrCodeObligationNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: obligationErr.Message,
			Code:  string(obligationErr.Code),
		})
		return
	}

	var settlementErr *domainerror.SettlementError
	if errors.As(err, &settlementErr) {
		ctx.JSON(getStatusCodeForSettlementError(settlementErr.Code), dto.ErrorResponse{
			Error: settlementErr.Message,
			Code:  string(settlementErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrObligationNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Obligation not found",
			Code:  string(domainerror.ErrCodeObligationNotFound),
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

// getStatusCodeForSettlementError maps settlement error codes to HTTP status
// codes. Business-rule rejections map to 422, duplicates to 409.
func getStatusCodeForSettlementError(code domainerror.SettlementErrorCode) int {
	switch code {
	case domainerror.ErrCodePeriodAlreadySettled:
		return http.StatusConflict
	case domainerror.ErrCodeInsufficientFunds, domainerror.ErrCodeOverpayment:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeInvalidSettlementAmount, domainerror.ErrCodeMissingSettlementAccount:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
