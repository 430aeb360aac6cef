//go:build e2e

package promotion_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"sync"
	"testing"
	"time"

	"storefront-console/internal/handler/dto/response"
	"storefront-console/tests/common/builder"
	"storefront-console/tests/common/dbtest"
	"storefront-console/tests/common/httptest"
	"storefront-console/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	redeemURL     = "/api/checkout/redeem"
	previewURL    = "/api/checkout/preview"
	promotionsURL = "/api/admin/promotions"
)

type PromotionSuite struct {
	e2e.SharedSuite
}

func (s *PromotionSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestPromotionSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(PromotionSuite))
}

func redeemBody(code string, amountCents int64) map[string]any {
	return map[string]any{
		"code":        code,
		"orderId":     uuid.NewString(),
		"amountCents": amountCents,
	}
}

// =============================================================================
// TestRedeem - redemption against a live database
// =============================================================================

func (s *PromotionSuite) TestRedeem() {
	s.Run("Normal case: redemption records the usage and bumps the counter", func() {
		t := s.T()

		rec := builder.NewVoucherBuilder().
			WithCode("LAUNCH20").
			WithPercentDiscount(20, nil).
			BuildRecord()
		dbtest.InsertPromotion(t, s.DB, rec)

		customerID := uuid.New()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, redeemURL,
			redeemBody("LAUNCH20", 1000), map[string]string{"X-Customer-ID": customerID.String()})
		require.Equal(t, http.StatusOK, w.Code, "redemption should succeed: %s", w.Body.String())

		var resp response.RedeemResponse
		err := httptest.DecodeResponseBody(t, w.Body, &resp)
		require.NoError(t, err)

		valid := true
		discount := int64(200)
		final := int64(800)
		expected := &response.RedeemResponse{
			Valid:         valid,
			DiscountCents: &discount,
			FinalCents:    &final,
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.RedeemResponse{}, "UsageID"),
		}
		if diff := cmp.Diff(expected, &resp, opts...); diff != "" {
			t.Errorf("redeem response mismatch (-want +got):\n%s", diff)
		}
		require.NotNil(t, resp.UsageID)

		require.Equal(t, 1, dbtest.GetUsageCount(t, s.DB, rec.ID))
		require.Equal(t, 1, dbtest.CountUsageRows(t, s.DB, rec.ID))
	})

	s.Run("Error case: unknown code yields an advisory 422, nothing written", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, redeemURL,
			redeemBody("GHOST99", 1000), nil)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var resp response.RedeemResponse
		err := httptest.DecodeResponseBody(t, w.Body, &resp)
		require.NoError(t, err)
		require.False(t, resp.Valid)
		require.NotNil(t, resp.Reason)
		require.Equal(t, "not_found", *resp.Reason)
	})

	s.Run("Error case: per-customer limit counts only that customer's ledger rows", func() {
		t := s.T()

		rec := builder.NewVoucherBuilder().
			WithCode("ONCEEACH").
			WithPerCustomerLimit(1).
			BuildRecord()
		dbtest.InsertPromotion(t, s.DB, rec)

		repeat := uuid.New()
		dbtest.InsertUsage(t, s.DB, rec.ID, repeat, 1000, 100)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, redeemURL,
			redeemBody("ONCEEACH", 1000), map[string]string{"X-Customer-ID": repeat.String()})
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var resp response.RedeemResponse
		err := httptest.DecodeResponseBody(t, w.Body, &resp)
		require.NoError(t, err)
		require.Equal(t, "customer_limit_reached", *resp.Reason)

		// A different customer is unaffected
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, redeemURL,
			redeemBody("ONCEEACH", 1000), map[string]string{"X-Customer-ID": uuid.NewString()})
		require.Equal(t, http.StatusOK, w.Code, "other customers should still redeem: %s", w.Body.String())
	})
}

// =============================================================================
// TestConcurrentRedemption - the conditional increment is the sole authority
// =============================================================================

func (s *PromotionSuite) TestConcurrentRedemption() {
	s.Run("Race case: N customers race for the last slot, exactly one wins", func() {
		t := s.T()

		rec := builder.NewVoucherBuilder().
			WithCode("LASTONE1").
			WithUsageLimit(1).
			BuildRecord()
		dbtest.InsertPromotion(t, s.DB, rec)

		const workers = 8

		statuses := make([]int, workers)
		reasons := make([]string, workers)
		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()

				body, _ := json.Marshal(map[string]any{
					"code":        "LASTONE1",
					"orderId":     uuid.NewString(),
					"amountCents": 1000,
				})
				req := nethttptest.NewRequest(http.MethodPost, redeemURL, bytes.NewReader(body))
				req.Header.Set("Content-Type", "application/json")
				req.Header.Set("X-Customer-ID", uuid.NewString())

				w := nethttptest.NewRecorder()
				s.Router.ServeHTTP(w, req)

				statuses[n] = w.Code
				var resp response.RedeemResponse
				if json.Unmarshal(w.Body.Bytes(), &resp) == nil && resp.Reason != nil {
					reasons[n] = *resp.Reason
				}
			}(i)
		}
		wg.Wait()

		wins, limited := 0, 0
		for i := range workers {
			switch {
			case statuses[i] == http.StatusOK:
				wins++
			case statuses[i] == http.StatusUnprocessableEntity && reasons[i] == "usage_limit_reached":
				limited++
			default:
				t.Errorf("unexpected outcome: status=%d reason=%q", statuses[i], reasons[i])
			}
		}
		require.Equal(t, 1, wins, "exactly one redemption may claim the last slot")
		require.Equal(t, workers-1, limited)

		require.Equal(t, 1, dbtest.GetUsageCount(t, s.DB, rec.ID), "counter must never exceed the limit")
		require.Equal(t, 1, dbtest.CountUsageRows(t, s.DB, rec.ID), "exactly one ledger row")
	})

	s.Run("Race case: raising the limit reopens an exhausted voucher", func() {
		t := s.T()

		limit := 1
		rec := builder.NewVoucherBuilder().
			WithCode("REOPEN01").
			WithUsageLimit(limit).
			BuildRecord()
		rec.UsageCount = limit
		dbtest.InsertPromotion(t, s.DB, rec)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, redeemURL,
			redeemBody("REOPEN01", 1000), nil)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		patchURL := fmt.Sprintf("%s/%s", promotionsURL, rec.ID)
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, patchURL,
			map[string]any{"usageLimit": 5}, httptest.RoleHeaders("manager"))
		require.Equal(t, http.StatusOK, w.Code, "manager should raise the limit: %s", w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, redeemURL,
			redeemBody("REOPEN01", 1000), nil)
		require.Equal(t, http.StatusOK, w.Code, "redemption should reopen: %s", w.Body.String())
		require.Equal(t, limit+1, dbtest.GetUsageCount(t, s.DB, rec.ID))
	})
}

// =============================================================================
// TestAdminLifecycle - create, inspect and retire a voucher over HTTP
// =============================================================================

func (s *PromotionSuite) TestAdminLifecycle() {
	s.Run("Normal case: manager creates a voucher and the storefront redeems it", func() {
		t := s.T()

		until := time.Now().Add(48 * time.Hour)
		reqBody := builder.NewVoucherBuilder().
			WithCode("SPRING15").
			WithPercentDiscount(15, nil).
			WithValidity(time.Now().Add(-time.Minute), &until).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, promotionsURL+"/vouchers",
			reqBody, httptest.RoleHeaders("manager"))
		require.Equal(t, http.StatusCreated, w.Code, "create should succeed: %s", w.Body.String())

		var created response.PromotionResponse
		err := httptest.DecodeResponseBody(t, w.Body, &created)
		require.NoError(t, err)
		require.Equal(t, "SPRING15", created.Code)
		require.Equal(t, "active", created.Status)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, previewURL,
			map[string]any{"code": "SPRING15", "amountCents": 2000}, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var preview response.PreviewResponse
		err = httptest.DecodeResponseBody(t, w.Body, &preview)
		require.NoError(t, err)
		require.True(t, preview.Valid)
		require.Equal(t, int64(300), *preview.DiscountCents)

		// Preview must not have written anything
		var promoID uuid.UUID
		require.NoError(t, promoID.UnmarshalText([]byte(created.ID)))
		require.Equal(t, 0, dbtest.GetUsageCount(t, s.DB, promoID))
	})

	s.Run("Error case: employee may view but not create", func() {
		t := s.T()

		reqBody := builder.NewVoucherBuilder().WithCode("DENIED01").BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, promotionsURL+"/vouchers",
			reqBody, httptest.RoleHeaders("employee"))
		require.Equal(t, http.StatusForbidden, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, promotionsURL, nil, httptest.RoleHeaders("employee"))
		require.Equal(t, http.StatusOK, w.Code)
	})

	s.Run("Error case: duplicate voucher code is rejected with 409", func() {
		t := s.T()

		dbtest.InsertPromotion(t, s.DB, builder.NewVoucherBuilder().WithCode("TAKEN001").BuildRecord())

		reqBody := builder.NewVoucherBuilder().WithCode("TAKEN001").BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, promotionsURL+"/vouchers",
			reqBody, httptest.RoleHeaders("admin"))
		require.Equal(t, http.StatusConflict, w.Code, "duplicate code should conflict: %s", w.Body.String())
	})

	s.Run("Normal case: suspended voucher stops redeeming immediately", func() {
		t := s.T()

		rec := builder.NewVoucherBuilder().WithCode("PAUSED01").BuildRecord()
		dbtest.InsertPromotion(t, s.DB, rec)

		activeURL := fmt.Sprintf("%s/%s/active", promotionsURL, rec.ID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, activeURL,
			map[string]any{"isActive": false}, httptest.RoleHeaders("manager"))
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, redeemURL,
			redeemBody("PAUSED01", 1000), nil)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var resp response.RedeemResponse
		err := httptest.DecodeResponseBody(t, w.Body, &resp)
		require.NoError(t, err)
		require.Equal(t, "inactive", *resp.Reason)
	})

	s.Run("Normal case: usage summary aggregates the ledger", func() {
		t := s.T()

		rec := builder.NewVoucherBuilder().WithCode("SUMMARY1").BuildRecord()
		dbtest.InsertPromotion(t, s.DB, rec)
		dbtest.InsertUsage(t, s.DB, rec.ID, uuid.New(), 1000, 100)
		dbtest.InsertUsage(t, s.DB, rec.ID, uuid.New(), 2000, 200)

		summaryURL := fmt.Sprintf("%s/%s/usage-summary", promotionsURL, rec.ID)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, summaryURL, nil, httptest.RoleHeaders("employee"))
		require.Equal(t, http.StatusOK, w.Code)

		var summary response.UsageSummaryResponse
		err := httptest.DecodeResponseBody(t, w.Body, &summary)
		require.NoError(t, err)
		require.Equal(t, 2, summary.RedemptionCount)
		require.Equal(t, int64(300), summary.TotalDiscountCents)
		require.Equal(t, int64(3000), summary.TotalOriginalCents)
	})
}
