// internal/handlers/hotlink.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/promolink/affiliate-backend/internal/services"
	"github.com/promolink/affiliate-backend/internal/utils"
)

type HotlinkHandler struct {
	hotlinkService *services.HotlinkService
}

func NewHotlinkHandler(hotlinkService *services.HotlinkService) *HotlinkHandler {
	return &HotlinkHandler{hotlinkService: hotlinkService}
}

// GET /hotlinks
func (h *HotlinkHandler) GetHotlinks(c *gin.Context) {
	affiliateID, ok := affiliateIDFrom(c)
	if !ok {
		return
	}

	mode, ok := viewModeFrom(c)
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c)

	hotlinks, total, err := h.hotlinkService.GetHotlinks(c.Request.Context(), affiliateID, mode, params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(hotlinks, total, params)
	utils.PaginatedResponse(c, result)
}
