// internal/handlers/link.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/promolink/affiliate-backend/internal/services"
	"github.com/promolink/affiliate-backend/internal/utils"
)

type LinkHandler struct {
	linkService *services.LinkService
}

func NewLinkHandler(linkService *services.LinkService) *LinkHandler {
	return &LinkHandler{linkService: linkService}
}

// POST /links
func (h *LinkHandler) CreateLink(c *gin.Context) {
	affiliateID, ok := affiliateIDFrom(c)
	if !ok {
		return
	}

	var req services.CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", nil)
		return
	}

	link, err := h.linkService.CreateLink(affiliateID, &req)
	if err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			utils.ValidationErrorResponse(c, utils.GetValidationErrors(validationErrs))
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, link)
}

// GET /links
func (h *LinkHandler) GetLinks(c *gin.Context) {
	affiliateID, ok := affiliateIDFrom(c)
	if !ok {
		return
	}

	mode, ok := viewModeFrom(c)
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c)

	links, total, err := h.linkService.ListLinks(affiliateID, mode, params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(links, total, params)
	utils.PaginatedResponse(c, result)
}

// GET /links/:id
func (h *LinkHandler) GetLink(c *gin.Context) {
	affiliateID, ok := affiliateIDFrom(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid link ID", nil)
		return
	}

	link, err := h.linkService.GetLink(id, affiliateID)
	if err != nil {
		if isNotFound(err) {
			utils.NotFoundResponse(c, "Link")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, link)
}

// DELETE /links/:id
func (h *LinkHandler) ExpireLink(c *gin.Context) {
	affiliateID, ok := affiliateIDFrom(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid link ID", nil)
		return
	}

	if err := h.linkService.ExpireLink(id, affiliateID); err != nil {
		if isNotFound(err) {
			utils.NotFoundResponse(c, "Link")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"expired": true})
}

// POST /links/:id/restore
func (h *LinkHandler) RestoreLink(c *gin.Context) {
	affiliateID, ok := affiliateIDFrom(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid link ID", nil)
		return
	}

	if err := h.linkService.RestoreLink(id, affiliateID); err != nil {
		if isNotFound(err) {
			utils.NotFoundResponse(c, "Link")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"restored": true})
}

// POST /links/:id/click
func (h *LinkHandler) TrackClick(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid link ID", nil)
		return
	}

	if err := h.linkService.TrackClick(id); err != nil {
		if isNotFound(err) {
			utils.NotFoundResponse(c, "Link")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"tracked": true})
}
