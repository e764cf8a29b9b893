// internal/handlers/payout.go
package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/promolink/affiliate-backend/internal/services"
	"github.com/promolink/affiliate-backend/internal/utils"
)

type PayoutHandler struct {
	payoutService *services.PayoutService
}

func NewPayoutHandler(payoutService *services.PayoutService) *PayoutHandler {
	return &PayoutHandler{payoutService: payoutService}
}

// GET /payouts/balance
func (h *PayoutHandler) GetBalance(c *gin.Context) {
	affiliateID, ok := affiliateIDFrom(c)
	if !ok {
		return
	}

	balance, err := h.payoutService.GetBalance(affiliateID)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, balance)
}

// POST /payouts
func (h *PayoutHandler) RequestPayout(c *gin.Context) {
	affiliateID, ok := affiliateIDFrom(c)
	if !ok {
		return
	}

	var req services.RequestPayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", nil)
		return
	}

	payout, err := h.payoutService.RequestPayout(affiliateID, &req)
	if err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			utils.ValidationErrorResponse(c, utils.GetValidationErrors(validationErrs))
			return
		}
		if strings.Contains(err.Error(), "minimum") || strings.Contains(err.Error(), "exceeds") {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, payout)
}

// GET /payouts
func (h *PayoutHandler) GetPayouts(c *gin.Context) {
	affiliateID, ok := affiliateIDFrom(c)
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c)

	payouts, total, err := h.payoutService.ListPayouts(affiliateID, params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(payouts, total, params)
	utils.PaginatedResponse(c, result)
}
