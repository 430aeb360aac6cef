//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"storefront-console/internal/domain/promotion"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// InsertPromotion seeds a promotion row straight into the table, bypassing
// the command layer, so tests control every column including usage_count.
func InsertPromotion(t *testing.T, db DBLike, rec promotion.Record) {
	t.Helper()

	ctx := context.Background()
	var code *string
	if rec.Code != "" {
		code = &rec.Code
	}
	_, err := db.Exec(ctx, `
		INSERT INTO promotions (
			id, kind, code,
			amount_off_cents, percent_off, max_discount_cents,
			min_purchase_cents, usage_limit, per_customer_limit, usage_count,
			applies_to, product_ids, category_ids, customer_class,
			valid_from, valid_until, is_active,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, now(), now())`,
		rec.ID, rec.Kind, code,
		rec.AmountOffCents, rec.PercentOff, rec.MaxDiscountCents,
		rec.MinPurchaseCents, rec.UsageLimit, rec.PerCustomerLimit, rec.UsageCount,
		rec.AppliesTo, rec.ProductIDs, rec.CategoryIDs, rec.CustomerClass,
		rec.ValidFrom, rec.ValidUntil, rec.IsActive,
	)
	require.NoError(t, err)
}

func InsertUsage(t *testing.T, db DBLike, promotionID, customerID uuid.UUID, originalCents, discountCents int64) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO promotion_usages (
			id, promotion_id, customer_id, order_id,
			original_cents, discount_cents, final_cents, used_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		uuid.New(), promotionID, customerID, uuid.New(),
		originalCents, discountCents, originalCents-discountCents, time.Now(),
	)
	require.NoError(t, err)
}

func GetUsageCount(t *testing.T, db DBLike, promotionID uuid.UUID) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(),
		"SELECT usage_count FROM promotions WHERE id = $1", promotionID).Scan(&count)
	require.NoError(t, err)
	return count
}

func CountUsageRows(t *testing.T, db DBLike, promotionID uuid.UUID) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM promotion_usages WHERE promotion_id = $1", promotionID).Scan(&count)
	require.NoError(t, err)
	return count
}

// truncates all promotion tables between subtests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE promotion_usages, promotions RESTART IDENTITY CASCADE;")
	return err
}
