package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finanzas-app/backend/internal/application/usecase/movement"
	"github.com/finanzas-app/backend/internal/domain/entity"
	domainerror "github.com/finanzas-app/backend/internal/domain/error"
	"github.com/finanzas-app/backend/internal/domain/valueobject"
	"github.com/finanzas-app/backend/internal/integration/entrypoint/dto"
)

// MovementController handles variable movement endpoints.
type MovementController struct {
	registerUseCase *movement.RegisterMovementUseCase
	listUseCase     *movement.ListMovementsUseCase
	deleteUseCase   *movement.DeleteMovementUseCase
	clearUseCase    *movement.ClearMovementsUseCase
}

// NewMovementController creates a new movement controller instance.
func NewMovementController(
	registerUseCase *movement.RegisterMovementUseCase,
	listUseCase *movement.ListMovementsUseCase,
	deleteUseCase *movement.DeleteMovementUseCase,
	clearUseCase *movement.ClearMovementsUseCase,
) *MovementController {
	return &MovementController{
		registerUseCase: registerUseCase,
		listUseCase:     listUseCase,
		deleteUseCase:   deleteUseCase,
		clearUseCase:    clearUseCase,
	}
}

// Register handles POST /movements requests.
func (c *MovementController) Register(ctx *gin.Context) {
	var req dto.RegisterMovementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingMovementFields),
		})
		return
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID format",
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

	input := movement.RegisterMovementInput{
		Type:        entity.MovementType(req.Type),
		Category:    req.Category,
		Description: req.Description,
		Date:        date,
		Amount:      req.Amount,
		AccountID:   accountID,
	}

	if req.DestinationAccountID != nil {
		destinationID, err := uuid.Parse(*req.DestinationAccountID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid destination account ID format",
			})
			return
		}
		input.DestinationAccountID = &destinationID
	}

	output, err := c.registerUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleMovementError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToMovementResponse(output.Movement))
}

// List handles GET /movements requests.
func (c *MovementController) List(ctx *gin.Context) {
	input := movement.ListMovementsInput{}
	if typeParam := ctx.Query("type"); typeParam != "" {
		movementType := entity.MovementType(typeParam)
		if !entity.IsValidMovementType(movementType) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid movement type",
				Code:  string(domainerror.ErrCodeInvalidMovementType),
			})
			return
		}
		input.Type = &movementType
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve movements",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMovementListResponse(output.Movements))
}

// Delete handles DELETE /movements/:id requests.
func (c *MovementController) Delete(ctx *gin.Context) {
	movementID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid movement ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), movement.DeleteMovementInput{
		ID: movementID,
	}); err != nil {
		c.handleMovementError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Clear handles DELETE /movements requests, clearing the whole history.
func (c *MovementController) Clear(ctx *gin.Context) {
	if err := c.clearUseCase.Execute(ctx.Request.Context()); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to clear movements",
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleMovementError handles movement errors and returns appropriate HTTP responses.
func (c *MovementController) handleMovementError(ctx *gin.Context, err error) {
	var movementErr *domainerror.MovementError
	if errors.As(err, &movementErr) {
		statusCode := http.StatusBadRequest
		if movementErr.Code == domainerror.ErrCodeMovementNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: movementErr.Message,
			Code:  string(movementErr.Code),
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

	if errors.Is(err, domainerror.ErrMovementNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Movement not found",
			Code:  string(domainerror.ErrCodeMovementNotFound),
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
