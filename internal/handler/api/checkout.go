package api

import (
	"net/http"

	reqdto "storefront-console/internal/handler/dto/request"
	resdto "storefront-console/internal/handler/dto/response"
	"storefront-console/internal/handler/httperr"
	"storefront-console/internal/handler/middleware"
	"storefront-console/internal/usecase/commands"
	"storefront-console/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	cmds commands.PromotionCommands
	q    queries.PromotionQueries
}

func NewCheckoutHandler(cmds commands.PromotionCommands, q queries.PromotionQueries) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds, q: q}
}

// @Summary Redeem voucher
// @Description Validate a voucher for a confirmed order and record the usage
// @Tags checkout
// @Accept json
// @Produce json
// @Param X-Customer-ID header string false "Customer ID"
// @Param request body reqdto.RedeemRequest true "Redeem request"
// @Success 200 {object} resdto.RedeemResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} resdto.RedeemResponse
// @Router /checkout/redeem [post]
func (h *CheckoutHandler) Redeem(c *gin.Context) {
	var req reqdto.RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Redeem(c.Request.Context(), commands.RedeemInput{
		Code:       req.Code,
		CustomerID: middleware.ResolveCustomerID(c),
		OrderID:    req.OrderID,
		Purchase:   req.Purchase(),
	})
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Redemption failed", nil)
		return
	}

	resp := resdto.FromRedeemResult(&result.Validation, result.Usage)
	if !resp.Valid {
		c.JSON(http.StatusUnprocessableEntity, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Apply automatic discount
// @Description Validate a discount for a confirmed order and record the usage
// @Tags checkout
// @Accept json
// @Produce json
// @Param X-Customer-ID header string false "Customer ID"
// @Param request body reqdto.ApplyDiscountRequest true "Apply discount request"
// @Success 200 {object} resdto.RedeemResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} resdto.RedeemResponse
// @Router /checkout/apply-discount [post]
func (h *CheckoutHandler) ApplyDiscount(c *gin.Context) {
	var req reqdto.ApplyDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.ApplyDiscount(c.Request.Context(), commands.ApplyDiscountInput{
		DiscountID: req.DiscountID,
		CustomerID: middleware.ResolveCustomerID(c),
		OrderID:    req.OrderID,
		Purchase:   req.Purchase(),
	})
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Discount application failed", nil)
		return
	}

	resp := resdto.FromRedeemResult(&result.Validation, result.Usage)
	if !resp.Valid {
		c.JSON(http.StatusUnprocessableEntity, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Preview voucher
// @Description Check whether a voucher would apply, without recording usage
// @Tags checkout
// @Accept json
// @Produce json
// @Param X-Customer-ID header string false "Customer ID"
// @Param request body reqdto.PreviewRequest true "Preview request"
// @Success 200 {object} resdto.PreviewResponse
// @Failure 400 {object} map[string]string
// @Router /checkout/preview [post]
func (h *CheckoutHandler) Preview(c *gin.Context) {
	var req reqdto.PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.q.Preview(c.Request.Context(), queries.PreviewInput{
		Code:       req.Code,
		CustomerID: middleware.ResolveCustomerID(c),
		Purchase:   req.Purchase(),
	})
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Preview failed", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPreviewResult(result))
}
