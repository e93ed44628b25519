package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/mailreply/internal/api/models"
)

// GetConfig godoc
// @Summary Get current configuration
// @Description Returns the current server configuration (sensitive fields redacted)
// @Tags config
// @Produce json
// @Success 200 {object} models.ConfigResponse
// @Failure 500 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /config [get]
func (h *Handler) GetConfig(c *gin.Context) {
	if h.cfg == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "config unavailable"})
		return
	}

	resp := models.ConfigResponse{
		Server:   h.cfg.Server,
		Database: h.cfg.Database,
		Provider: models.ProviderConfigResponse{
			Name:      h.cfg.Provider.Name,
			Endpoint:  h.cfg.Provider.Endpoint,
			Model:     h.cfg.Provider.Model,
			APIKeyEnv: h.cfg.Provider.APIKeyEnv,
			MaxTokens: h.cfg.Provider.MaxTokens,
			Timeout:   h.cfg.Provider.Timeout,
		},
		History:   h.cfg.History,
		Logging:   h.cfg.Logging,
		RateLimit: h.cfg.RateLimit,
		API: models.APIConfigResponse{
			AuthEnabled: h.cfg.API.APIKey != "",
		},
	}

	c.JSON(http.StatusOK, resp)
}
