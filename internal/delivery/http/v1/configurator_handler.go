package v1

import (
	"net/http"

	"form-relay-backend/internal/delivery/http/response"
	"form-relay-backend/internal/domain"
	"form-relay-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ConfiguratorHandler struct {
	configuratorUC domain.ConfiguratorUsecase
}

func NewConfiguratorHandler(public *gin.RouterGroup, configuratorUC domain.ConfiguratorUsecase) {
	handler := &ConfiguratorHandler{
		configuratorUC: configuratorUC,
	}

	public.POST("/configurator-email", handler.SubmitConfiguration)
}

// SubmitConfiguration godoc
// @Summary      Submit Sign Configuration
// @Description  Send a custom sign configuration as a quote request. Echoes the item name and price.
// @Tags         configurator
// @Accept       json
// @Produce      json
// @Param        configuration  body      domain.ConfiguratorRequest  true  "Configured sign"
// @Success      200            {object}  response.Response{data=domain.ConfiguratorEcho}
// @Failure      400            {object}  response.Response
// @Failure      500            {object}  response.Response
// @Failure      503            {object}  response.Response
// @Router       /configurator-email [post]
func (h *ConfiguratorHandler) SubmitConfiguration(c *gin.Context) {
	var req domain.ConfiguratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailure(c, err, usecase.MsgInvalidConfiguration)
		return
	}

	echo, err := h.configuratorUC.SubmitConfiguration(c.Request.Context(), &req)
	if err != nil {
		respondFailure(c, err, "Erreur lors de l'envoi de la configuration.")
		return
	}

	response.Success(c, http.StatusOK, "Configuration soumise avec succès.", echo)
}
