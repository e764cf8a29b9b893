// internal/handlers/finance.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/promolink/affiliate-backend/internal/services"
	"github.com/promolink/affiliate-backend/internal/utils"
)

type FinanceHandler struct {
	financeService *services.FinanceService
}

func NewFinanceHandler(financeService *services.FinanceService) *FinanceHandler {
	return &FinanceHandler{financeService: financeService}
}

// GET /finance/records
func (h *FinanceHandler) GetRecords(c *gin.Context) {
	affiliateID, ok := affiliateIDFrom(c)
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c)

	records, total, err := h.financeService.ListRecords(affiliateID, params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(records, total, params)
	utils.PaginatedResponse(c, result)
}

// GET /finance/summary
func (h *FinanceHandler) GetSummary(c *gin.Context) {
	affiliateID, ok := affiliateIDFrom(c)
	if !ok {
		return
	}

	summary, err := h.financeService.GetEarningsSummary(affiliateID)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, summary)
}
