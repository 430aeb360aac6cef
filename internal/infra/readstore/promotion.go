package readstore

import (
	"context"
	"errors"
	"fmt"

	"storefront-console/internal/domain/promotion"
	"storefront-console/internal/infra"
	"storefront-console/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const promotionColumns = `
	id, kind, code, amount_off_cents, percent_off, max_discount_cents,
	min_purchase_cents, usage_limit, per_customer_limit, usage_count,
	applies_to, product_ids, category_ids, customer_class,
	valid_from, valid_until, is_active, created_at, updated_at`

type PromotionReadStore struct {
	pool *pgxpool.Pool
}

func NewPromotionReadStore(pool *pgxpool.Pool) *PromotionReadStore {
	return &PromotionReadStore{pool: pool}
}

func (r *PromotionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*promotion.Record, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT`+promotionColumns+`
		FROM promotions
		WHERE id = $1`, id)
	return scanPromotion(row, "promotion")
}

func (r *PromotionReadStore) FindVoucherByCode(ctx context.Context, code string) (*promotion.Record, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT`+promotionColumns+`
		FROM promotions
		WHERE kind = 'voucher' AND code = upper($1)`, code)
	return scanPromotion(row, "voucher")
}

func (r *PromotionReadStore) List(ctx context.Context, filter queries.ListFilter) ([]promotion.Record, error) {
	query := `SELECT` + promotionColumns + ` FROM promotions WHERE 1=1`
	args := []any{}

	if filter.Kind != nil {
		args = append(args, *filter.Kind)
		query += fmt.Sprintf(" AND kind = $%d", len(args))
	}
	if filter.ActiveOnly {
		query += " AND is_active"
	}
	query += " ORDER BY created_at DESC"

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	args = append(args, limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list promotions", err)
	}
	defer rows.Close()

	var recs []promotion.Record
	for rows.Next() {
		rec, err := scanPromotion(rows, "promotion")
		if err != nil {
			return nil, err
		}
		recs = append(recs, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate promotions", err)
	}
	return recs, nil
}

func (r *PromotionReadStore) ListUsages(ctx context.Context, promotionID uuid.UUID, limit, offset int) ([]promotion.UsageRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, promotion_id, customer_id, order_id,
		       original_cents, discount_cents, final_cents, used_at
		FROM promotion_usages
		WHERE promotion_id = $1
		ORDER BY used_at DESC
		LIMIT $2 OFFSET $3`, promotionID, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list usage records", err)
	}
	defer rows.Close()

	var usages []promotion.UsageRecord
	for rows.Next() {
		var u promotion.UsageRecord
		if err := rows.Scan(
			&u.ID, &u.PromotionID, &u.CustomerID, &u.OrderID,
			&u.OriginalCents, &u.DiscountCents, &u.FinalCents, &u.UsedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan usage record", err)
		}
		usages = append(usages, u)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate usage records", err)
	}
	return usages, nil
}

func (r *PromotionReadStore) CountCustomerUsage(ctx context.Context, promotionID, customerID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `
		SELECT count(*)
		FROM promotion_usages
		WHERE promotion_id = $1 AND customer_id = $2`, promotionID, customerID).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count customer usage", err)
	}
	return count, nil
}

func (r *PromotionReadStore) UsageSummary(ctx context.Context, promotionID uuid.UUID) (*queries.UsageSummary, error) {
	if _, err := r.FindByID(ctx, promotionID); err != nil {
		return nil, err
	}

	summary := queries.UsageSummary{PromotionID: promotionID}
	err := r.pool.QueryRow(ctx, `
		SELECT count(*),
		       coalesce(sum(discount_cents), 0),
		       coalesce(sum(original_cents), 0),
		       max(used_at)
		FROM promotion_usages
		WHERE promotion_id = $1`, promotionID).Scan(
		&summary.RedemptionCount,
		&summary.TotalDiscountCents,
		&summary.TotalOriginalCents,
		&summary.LastUsedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to summarize usage", err)
	}
	return &summary, nil
}

func scanPromotion(row pgx.Row, kind string) (*promotion.Record, error) {
	var rec promotion.Record
	var code *string
	err := row.Scan(
		&rec.ID, &rec.Kind, &code, &rec.AmountOffCents, &rec.PercentOff, &rec.MaxDiscountCents,
		&rec.MinPurchaseCents, &rec.UsageLimit, &rec.PerCustomerLimit, &rec.UsageCount,
		&rec.AppliesTo, &rec.ProductIDs, &rec.CategoryIDs, &rec.CustomerClass,
		&rec.ValidFrom, &rec.ValidUntil, &rec.IsActive, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(kind+" not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan "+kind+" row", err)
	}
	if code != nil {
		rec.Code = *code
	}
	return &rec, nil
}
