package repo_impl

import (
	"context"
	"errors"

	"storefront-console/internal/domain/promotion"
	"storefront-console/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const promotionColumns = `
	id, kind, code, amount_off_cents, percent_off, max_discount_cents,
	min_purchase_cents, usage_limit, per_customer_limit, usage_count,
	applies_to, product_ids, category_ids, customer_class,
	valid_from, valid_until, is_active, created_at, updated_at`

type PromotionRepository struct {
	pool *pgxpool.Pool
}

func NewPromotionRepository(pool *pgxpool.Pool) *PromotionRepository {
	return &PromotionRepository{pool: pool}
}

func (r *PromotionRepository) FindVoucherByCode(ctx context.Context, code string) (*promotion.Record, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT`+promotionColumns+`
		FROM promotions
		WHERE kind = 'voucher' AND code = upper($1)`, code)

	rec, err := scanPromotionRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("voucher not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find voucher by code", err)
	}
	return rec, nil
}

func (r *PromotionRepository) FindDiscountByID(ctx context.Context, id uuid.UUID) (*promotion.Record, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT`+promotionColumns+`
		FROM promotions
		WHERE kind = 'discount' AND id = $1`, id)

	rec, err := scanPromotionRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("discount not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find discount by ID", err)
	}
	return rec, nil
}

func (r *PromotionRepository) FindByID(ctx context.Context, id uuid.UUID) (*promotion.Record, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT`+promotionColumns+`
		FROM promotions
		WHERE id = $1`, id)

	rec, err := scanPromotionRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("promotion not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find promotion by ID", err)
	}
	return rec, nil
}

func (r *PromotionRepository) CountCustomerUsage(ctx context.Context, promotionID, customerID uuid.UUID) (int, error) {
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

// AtomicIncrementAndAppendUsage takes the usage slot and writes the ledger
// row in one transaction. The WHERE clause is the authoritative cap check:
// zero rows affected means concurrent redemptions got there first.
func (r *PromotionRepository) AtomicIncrementAndAppendUsage(ctx context.Context, promotionID uuid.UUID, rec promotion.UsageRecord) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `
		UPDATE promotions
		SET usage_count = usage_count + 1, updated_at = now()
		WHERE id = $1
		  AND (usage_limit IS NULL OR usage_count < usage_limit)`, promotionID)
	if err != nil {
		return infra.WrapRepoErr("failed to increment usage count", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("usage limit reached", nil, infra.KindLimitReached)
	}

	if err := insertUsage(ctx, tx, rec); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit redemption", err)
	}
	return nil
}

func (r *PromotionRepository) AppendUsage(ctx context.Context, rec promotion.UsageRecord) error {
	return insertUsage(ctx, r.pool, rec)
}

func (r *PromotionRepository) Create(ctx context.Context, rec promotion.Record) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO promotions (
			id, kind, code, amount_off_cents, percent_off, max_discount_cents,
			min_purchase_cents, usage_limit, per_customer_limit, usage_count,
			applies_to, product_ids, category_ids, customer_class,
			valid_from, valid_until, is_active, created_at, updated_at
		) VALUES (
			$1, $2, NULLIF($3, ''), $4, $5, $6,
			$7, $8, $9, $10,
			$11, $12, $13, $14,
			$15, $16, $17, $18, $19
		)`,
		rec.ID, rec.Kind, rec.Code, rec.AmountOffCents, rec.PercentOff, rec.MaxDiscountCents,
		rec.MinPurchaseCents, rec.UsageLimit, rec.PerCustomerLimit, rec.UsageCount,
		rec.AppliesTo, rec.ProductIDs, rec.CategoryIDs, rec.CustomerClass,
		rec.ValidFrom, rec.ValidUntil, rec.IsActive, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("promotion code already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create promotion", err)
	}
	return nil
}

// Update rewrites the mutable columns. usage_count is owned by the atomic
// increment path and never written here.
func (r *PromotionRepository) Update(ctx context.Context, rec promotion.Record) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE promotions
		SET min_purchase_cents = $2,
		    usage_limit = $3,
		    per_customer_limit = $4,
		    applies_to = $5,
		    product_ids = $6,
		    category_ids = $7,
		    customer_class = $8,
		    valid_from = $9,
		    valid_until = $10,
		    updated_at = $11
		WHERE id = $1`,
		rec.ID, rec.MinPurchaseCents, rec.UsageLimit, rec.PerCustomerLimit,
		rec.AppliesTo, rec.ProductIDs, rec.CategoryIDs, rec.CustomerClass,
		rec.ValidFrom, rec.ValidUntil, rec.UpdatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update promotion", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("promotion not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PromotionRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE promotions
		SET is_active = $2, updated_at = now()
		WHERE id = $1`, id, active)
	if err != nil {
		return infra.WrapRepoErr("failed to set promotion active flag", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("promotion not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PromotionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM promotions WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete promotion", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("promotion not found", nil, infra.KindNotFound)
	}
	return nil
}

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func insertUsage(ctx context.Context, db execer, rec promotion.UsageRecord) error {
	_, err := db.Exec(ctx, `
		INSERT INTO promotion_usages (
			id, promotion_id, customer_id, order_id,
			original_cents, discount_cents, final_cents, used_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rec.ID, rec.PromotionID, rec.CustomerID, rec.OrderID,
		rec.OriginalCents, rec.DiscountCents, rec.FinalCents, rec.UsedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append usage record", err)
	}
	return nil
}

func scanPromotionRow(row pgx.Row) (*promotion.Record, error) {
	var rec promotion.Record
	var code *string
	err := row.Scan(
		&rec.ID, &rec.Kind, &code, &rec.AmountOffCents, &rec.PercentOff, &rec.MaxDiscountCents,
		&rec.MinPurchaseCents, &rec.UsageLimit, &rec.PerCustomerLimit, &rec.UsageCount,
		&rec.AppliesTo, &rec.ProductIDs, &rec.CategoryIDs, &rec.CustomerClass,
		&rec.ValidFrom, &rec.ValidUntil, &rec.IsActive, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if code != nil {
		rec.Code = *code
	}
	return &rec, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
