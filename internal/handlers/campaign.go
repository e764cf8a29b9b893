// internal/handlers/campaign.go
package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/promolink/affiliate-backend/internal/services"
	"github.com/promolink/affiliate-backend/internal/utils"
)

type CampaignHandler struct {
	campaignService *services.CampaignService
}

func NewCampaignHandler(campaignService *services.CampaignService) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService}
}

// GET /campaigns/:id
func (h *CampaignHandler) GetCampaign(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid campaign ID", nil)
		return
	}

	campaign, err := h.campaignService.GetCampaign(c.Request.Context(), uint(id))
	if err != nil {
		if isNotFound(err) {
			utils.NotFoundResponse(c, "Campaign")
			return
		}
		utils.BadGatewayResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, campaign)
}

// GET /campaigns?ids=1,2,3
func (h *CampaignHandler) GetCampaigns(c *gin.Context) {
	raw := c.Query("ids")
	if raw == "" {
		utils.BadRequestResponse(c, "Query parameter ids is required", nil)
		return
	}

	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil {
			utils.BadRequestResponse(c, "Invalid campaign ID: "+part, nil)
			return
		}
		ids = append(ids, uint(id))
	}

	campaigns, err := h.campaignService.GetCampaigns(c.Request.Context(), ids)
	if err != nil {
		if isNotFound(err) {
			utils.NotFoundResponse(c, "Campaign")
			return
		}
		utils.BadGatewayResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, campaigns)
}
