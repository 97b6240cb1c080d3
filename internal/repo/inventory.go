package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hienle2703/shop-order-service/internal/entities"
	"github.com/hienle2703/shop-order-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// inventoryRepo owns the stock column of the products table. The rest of the
// product record belongs to the catalog and is never touched here.
type inventoryRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewInventoryRepo(db *sqlx.DB) *inventoryRepo {
	return &inventoryRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Decrement reserves qty units of a product. The check and the write are one
// conditional UPDATE, so concurrent callers (including the admin stock
// editor) can never drive stock negative.
func (r *inventoryRepo) Decrement(ctx context.Context, productID string, qty int) error {
	query, args := r.qb.Update("products").
		Set("stock", sq.Expr("stock - ?", qty)).
		Where(sq.Eq{"product_id": productID}).
		Where(sq.GtOrEq{"stock": qty}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to decrement stock: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if affected > 0 {
		return nil
	}

	// nothing matched: either the product does not exist or its stock is
	// too low
	query, args = r.qb.Select("stock").
		From("products").
		Where(sq.Eq{"product_id": productID}).
		MustSql()

	var stock int
	err = r.getContext(ctx, &stock, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", entities.ErrProductNotFound, productID)
	}
	if err != nil {
		return fmt.Errorf("failed to check stock: %w", err)
	}
	return fmt.Errorf("%w: product %s has %d left, requested %d", entities.ErrInsufficientStock, productID, stock, qty)
}

// Increment returns qty units to stock. Compensation for a decrement that
// must not stand; callers are responsible for invoking it at most once per
// committed decrement.
func (r *inventoryRepo) Increment(ctx context.Context, productID string, qty int) error {
	query, args := r.qb.Update("products").
		Set("stock", sq.Expr("stock + ?", qty)).
		Where(sq.Eq{"product_id": productID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to increment stock: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", entities.ErrProductNotFound, productID)
	}
	return nil
}

func (r *inventoryRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *inventoryRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}
