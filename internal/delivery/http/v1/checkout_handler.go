package v1

import (
	"net/http"

	"form-relay-backend/internal/delivery/http/response"
	"form-relay-backend/internal/domain"
	"form-relay-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkoutUC domain.CheckoutUsecase
}

func NewCheckoutHandler(public *gin.RouterGroup, checkoutUC domain.CheckoutUsecase) {
	handler := &CheckoutHandler{
		checkoutUC: checkoutUC,
	}

	public.POST("/checkout", handler.SubmitOrder)
}

// SubmitOrder godoc
// @Summary      Submit Order
// @Description  Notify the shop of a storefront order (customer details and cart).
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        order  body      domain.CheckoutRequest  true  "Customer and order summary"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Failure      503    {object}  response.Response
// @Router       /checkout [post]
func (h *CheckoutHandler) SubmitOrder(c *gin.Context) {
	var req domain.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailure(c, err, usecase.MsgInvalidCheckout)
		return
	}

	if err := h.checkoutUC.SubmitOrder(c.Request.Context(), &req); err != nil {
		respondFailure(c, err, "Erreur lors de l'envoi de la commande.")
		return
	}

	response.Success(c, http.StatusOK, "Commande soumise avec succès.", nil)
}
