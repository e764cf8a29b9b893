// internal/handlers/handlers.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/promolink/affiliate-backend/internal/models"
	"github.com/promolink/affiliate-backend/internal/utils"
)

// affiliateIDFrom reads the affiliate identity the edge gateway injects.
// Returns false (and responds 400) when the header is missing or malformed.
func affiliateIDFrom(c *gin.Context) (uuid.UUID, bool) {
	raw := c.GetHeader("X-Affiliate-ID")
	if raw == "" {
		utils.BadRequestResponse(c, "Missing X-Affiliate-ID header", nil)
		return uuid.Nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid X-Affiliate-ID header", nil)
		return uuid.Nil, false
	}

	return id, true
}

// viewModeFrom parses the ?mode= query, defaulting to the active view.
func viewModeFrom(c *gin.Context) (models.LinkViewMode, bool) {
	switch c.DefaultQuery("mode", "active") {
	case "active":
		return models.LinkViewActive, true
	case "expired":
		return models.LinkViewExpired, true
	default:
		utils.BadRequestResponse(c, "Mode must be either active or expired", nil)
		return "", false
	}
}

func isNotFound(err error) bool {
	return err != nil && strings.Contains(err.Error(), "not found")
}
