package v1

import (
	"net/http"

	"form-relay-backend/internal/delivery/http/response"
	"form-relay-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthUC usecase.HealthUsecase
}

func NewHealthHandler(public *gin.RouterGroup, healthUC usecase.HealthUsecase) {
	handler := &HealthHandler{healthUC: healthUC}

	public.GET("/hello", handler.Hello)
}

// Hello godoc
// @Summary      Health Check
// @Description  Liveness probe reporting which mail transport is active.
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /hello [get]
func (h *HealthHandler) Hello(c *gin.Context) {
	response.Success(c, http.StatusOK, "Hello depuis le backend !", h.healthUC.Check(c.Request.Context()))
}
