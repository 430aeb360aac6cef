package api

import (
	"net/http"
	"strconv"

	"storefront-console/internal/domain/authority"
	"storefront-console/internal/domain/promotion"
	reqdto "storefront-console/internal/handler/dto/request"
	resdto "storefront-console/internal/handler/dto/response"
	"storefront-console/internal/handler/httperr"
	"storefront-console/internal/handler/middleware"
	"storefront-console/internal/usecase/commands"
	"storefront-console/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PromotionAdminHandler struct {
	cmds commands.AdminCommands
	q    queries.PromotionQueries
	auth *authority.Authority
}

func NewPromotionAdminHandler(cmds commands.AdminCommands, q queries.PromotionQueries, auth *authority.Authority) *PromotionAdminHandler {
	return &PromotionAdminHandler{cmds: cmds, q: q, auth: auth}
}

// @Summary Create voucher
// @Description Create a code-entry voucher promotion
// @Tags promotions
// @Accept json
// @Produce json
// @Param X-Admin-Role header string true "Operator role"
// @Param request body reqdto.CreateVoucherRequest true "Create voucher request"
// @Success 201 {object} resdto.PromotionResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/promotions/vouchers [post]
func (h *PromotionAdminHandler) CreateVoucher(c *gin.Context) {
	role, ok := middleware.GetRole(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Missing role header", nil)
		return
	}
	var req reqdto.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	id, err := h.cmds.CreateVoucher(c.Request.Context(), role, commands.CreateVoucherInput{
		Code:             req.Code,
		AmountOffCents:   req.AmountOffCents,
		PercentOff:       req.PercentOff,
		MaxDiscountCents: req.MaxDiscountCents,
		MinPurchaseCents: req.MinPurchaseCents,
		UsageLimit:       req.UsageLimit,
		PerCustomerLimit: req.PerCustomerLimit,
		ValidFrom:        req.ValidFrom,
		ValidUntil:       req.ValidUntil,
		IsActive:         isActive,
	})
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Create voucher failed")
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load promotion", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPromotionView(view))
}

// @Summary Create discount
// @Description Create an automatic discount promotion
// @Tags promotions
// @Accept json
// @Produce json
// @Param X-Admin-Role header string true "Operator role"
// @Param request body reqdto.CreateDiscountRequest true "Create discount request"
// @Success 201 {object} resdto.PromotionResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/promotions/discounts [post]
func (h *PromotionAdminHandler) CreateDiscount(c *gin.Context) {
	role, ok := middleware.GetRole(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Missing role header", nil)
		return
	}
	var req reqdto.CreateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	id, err := h.cmds.CreateDiscount(c.Request.Context(), role, commands.CreateDiscountInput{
		AmountOffCents:   req.AmountOffCents,
		PercentOff:       req.PercentOff,
		MaxDiscountCents: req.MaxDiscountCents,
		AppliesTo:        promotion.AppliesTo(req.AppliesTo),
		ProductIDs:       req.ProductIDs,
		CategoryIDs:      req.CategoryIDs,
		CustomerClass:    req.CustomerClass,
		MinSpendCents:    req.MinSpendCents,
		ValidFrom:        req.ValidFrom,
		ValidUntil:       req.ValidUntil,
		IsActive:         isActive,
	})
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Create discount failed")
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load promotion", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPromotionView(view))
}

// @Summary List promotions
// @Description List promotions, optionally filtered by kind and active flag
// @Tags promotions
// @Produce json
// @Param X-Admin-Role header string true "Operator role"
// @Param kind query string false "voucher or discount"
// @Param active query bool false "Active only"
// @Param limit query int false "Max items (default 50)"
// @Param offset query int false "Offset"
// @Success 200 {array} resdto.PromotionResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/promotions [get]
func (h *PromotionAdminHandler) List(c *gin.Context) {
	filter := queries.ListFilter{}
	if v := c.Query("kind"); v == string(promotion.KindVoucher) || v == string(promotion.KindDiscount) {
		kind := promotion.Kind(v)
		filter.Kind = &kind
	}
	filter.ActiveOnly = c.Query("active") == "true"
	if v := c.Query("limit"); v != "" {
		if iv, err := strconv.Atoi(v); err == nil {
			filter.Limit = iv
		}
	}
	if v := c.Query("offset"); v != "" {
		if iv, err := strconv.Atoi(v); err == nil {
			filter.Offset = iv
		}
	}

	views, err := h.q.List(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list promotions", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"promotions": resdto.FromPromotionList(views)})
}

// @Summary Get promotion
// @Description Get a promotion by ID
// @Tags promotions
// @Produce json
// @Param X-Admin-Role header string true "Operator role"
// @Param id path string true "Promotion ID"
// @Success 200 {object} resdto.PromotionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/promotions/{id} [get]
func (h *PromotionAdminHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to load promotion")
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromotionView(view))
}

// @Summary Update promotion
// @Description Partially update a promotion's limits and validity window
// @Tags promotions
// @Accept json
// @Produce json
// @Param X-Admin-Role header string true "Operator role"
// @Param id path string true "Promotion ID"
// @Param request body reqdto.UpdatePromotionRequest true "Update request"
// @Success 200 {object} resdto.PromotionResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/promotions/{id} [patch]
func (h *PromotionAdminHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	role, ok := middleware.GetRole(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Missing role header", nil)
		return
	}
	var req reqdto.UpdatePromotionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	err = h.cmds.Update(c.Request.Context(), role, id, commands.UpdatePromotionInput{
		MinPurchaseCents: req.MinPurchaseCents,
		UsageLimit:       req.UsageLimit,
		PerCustomerLimit: req.PerCustomerLimit,
		ValidFrom:        req.ValidFrom,
		ValidUntil:       req.ValidUntil,
		ClearValidUntil:  req.ClearValidUntil,
	})
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Update failed")
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load promotion", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromotionView(view))
}

// @Summary Activate or suspend promotion
// @Description Toggle the admin active flag
// @Tags promotions
// @Accept json
// @Produce json
// @Param X-Admin-Role header string true "Operator role"
// @Param id path string true "Promotion ID"
// @Param request body reqdto.SetActiveRequest true "Active flag"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/promotions/{id}/active [put]
func (h *PromotionAdminHandler) SetActive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	role, ok := middleware.GetRole(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Missing role header", nil)
		return
	}
	var req reqdto.SetActiveRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	if err := h.cmds.SetActive(c.Request.Context(), role, id, *req.IsActive); err != nil {
		httperr.AbortWithUsecaseError(c, err, "Activation toggle failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete promotion
// @Description Delete a promotion and its usage ledger
// @Tags promotions
// @Param X-Admin-Role header string true "Operator role"
// @Param id path string true "Promotion ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/promotions/{id} [delete]
func (h *PromotionAdminHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	role, ok := middleware.GetRole(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Missing role header", nil)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), role, id); err != nil {
		httperr.AbortWithUsecaseError(c, err, "Delete failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List usage records
// @Description Page through the redemption ledger of a promotion
// @Tags promotions
// @Produce json
// @Param X-Admin-Role header string true "Operator role"
// @Param id path string true "Promotion ID"
// @Param limit query int false "Max items (default 50)"
// @Param offset query int false "Offset"
// @Success 200 {array} resdto.UsageResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/promotions/{id}/usages [get]
func (h *PromotionAdminHandler) ListUsages(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	limit, offset := 50, 0
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = iv
		}
	}
	if v := c.Query("offset"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			offset = iv
		}
	}

	views, err := h.q.ListUsages(c.Request.Context(), id, limit, offset)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to list usage records")
		return
	}
	c.JSON(http.StatusOK, gin.H{"usages": resdto.FromUsageViews(views)})
}

// @Summary Usage summary
// @Description Aggregate redemption stats for a promotion
// @Tags promotions
// @Produce json
// @Param X-Admin-Role header string true "Operator role"
// @Param id path string true "Promotion ID"
// @Success 200 {object} resdto.UsageSummaryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/promotions/{id}/usage-summary [get]
func (h *PromotionAdminHandler) UsageSummary(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	summary, err := h.q.GetUsageSummary(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to summarize usage")
		return
	}
	c.JSON(http.StatusOK, resdto.FromUsageSummary(summary))
}

// @Summary Own permissions
// @Description List the permissions granted to the calling role
// @Tags permissions
// @Produce json
// @Param X-Admin-Role header string true "Operator role"
// @Success 200 {object} resdto.PermissionsResponse
// @Failure 401 {object} map[string]string
// @Router /admin/permissions [get]
func (h *PromotionAdminHandler) MyPermissions(c *gin.Context) {
	role, ok := middleware.GetRole(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Missing role header", nil)
		return
	}
	perms := h.auth.RolePermissions(role)
	out := make([]string, 0, len(perms))
	for _, p := range perms {
		out = append(out, string(p))
	}
	c.JSON(http.StatusOK, resdto.PermissionsResponse{
		Role:        string(role),
		Permissions: out,
	})
}
