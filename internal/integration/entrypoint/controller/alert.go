package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finanzas-app/backend/internal/application/usecase/alert"
	"github.com/finanzas-app/backend/internal/domain/entity"
	domainerror "github.com/finanzas-app/backend/internal/domain/error"
	"github.com/finanzas-app/backend/internal/domain/valueobject"
	"github.com/finanzas-app/backend/internal/integration/entrypoint/dto"
)

// AlertController handles due-date alert endpoints.
type AlertController struct {
	computeUseCase *alert.ComputeAlertsUseCase
	digestUseCase  *alert.SendDigestUseCase
}

// NewAlertController creates a new alert controller instance.
func NewAlertController(
	computeUseCase *alert.ComputeAlertsUseCase,
	digestUseCase *alert.SendDigestUseCase,
) *AlertController {
	return &AlertController{
		computeUseCase: computeUseCase,
		digestUseCase:  digestUseCase,
	}
}

// List handles GET /alerts requests. The optional today query parameter
// overrides the reference date, mainly for inspection and testing.
func (c *AlertController) List(ctx *gin.Context) {
	today := time.Now()
	if todayParam := ctx.Query("today"); todayParam != "" {
		parsed, err := valueobject.ParseDate(todayParam)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid today format, expected YYYY-MM-DD",
			})
			return
		}
		today = parsed
	}

	input := alert.ComputeAlertsInput{Today: today}
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

	output, err := c.computeUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute alerts",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAlertListResponse(output.Alerts))
}

// SendDigest handles POST /alerts/digest requests.
func (c *AlertController) SendDigest(ctx *gin.Context) {
	var req struct {
		To string `json:"to,omitempty" binding:"omitempty,email"`
	}
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid request body: " + err.Error(),
			})
			return
		}
	}

	output, err := c.digestUseCase.Execute(ctx.Request.Context(), alert.SendDigestInput{
		Today: time.Now(),
		To:    req.To,
	})
	if err != nil {
		c.handleDigestError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SendDigestResponse{
		AlertCount: output.AlertCount,
		ProviderID: output.ProviderID,
	})
}

// handleDigestError handles email errors and returns appropriate HTTP responses.
func (c *AlertController) handleDigestError(ctx *gin.Context, err error) {
	var emailErr *domainerror.EmailError
	if errors.As(err, &emailErr) {
		statusCode := http.StatusBadGateway
		if emailErr.Code == domainerror.ErrCodeMissingDigestRecipient {
			statusCode = http.StatusBadRequest
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: emailErr.Message,
			Code:  string(emailErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
