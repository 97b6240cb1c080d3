package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hienle2703/shop-order-service/internal/entities"
	"github.com/hienle2703/shop-order-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var orderColumns = []string{
	"order_id", "user_id", "address", "city", "country", "pin_code",
	"payment_method", "payment_id", "payment_status", "paid_at",
	"items_price", "tax_price", "shipping_charges", "total_amount",
	"order_status", "delivered_at", "created_at",
}

type ordersRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewOrdersRepo(db *sqlx.DB) *ordersRepo {
	return &ordersRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ordersRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	var paymentID, paymentStatus sql.NullString
	if o.PaymentInfo != nil {
		paymentID = nullString(o.PaymentInfo.ID)
		paymentStatus = nullString(o.PaymentInfo.Status)
	}

	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ID, o.UserID,
			o.ShippingInfo.Address, o.ShippingInfo.City, o.ShippingInfo.Country, o.ShippingInfo.PinCode,
			string(o.PaymentMethod), paymentID, paymentStatus, nullTime(o.PaidAt),
			o.ItemsPrice, o.TaxPrice, o.ShippingCharges, o.TotalAmount,
			string(o.Status), nullTime(o.DeliveredAt), o.CreatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

func (r *ordersRepo) SaveItems(ctx context.Context, orderID string, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "product_id", "name", "price", "quantity", "image")

	for _, it := range items {
		q = q.Values(orderID, it.ProductID, it.Name, it.Price, it.Quantity, nullString(it.Image))
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order items: %w", err)
	}
	return nil
}

func (r *ordersRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select("order_id", "product_id", "name", "price", "quantity", "image").
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order items: %w", err)
	}

	return OrderToEntity(order, items), nil
}

func (r *ordersRepo) ListByUser(ctx context.Context, userID string) ([]entities.Order, error) {
	return r.list(ctx, sq.Eq{"user_id": userID})
}

func (r *ordersRepo) ListAll(ctx context.Context) ([]entities.Order, error) {
	return r.list(ctx, nil)
}

func (r *ordersRepo) list(ctx context.Context, where any) ([]entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC")
	if where != nil {
		q = q.Where(where)
	}
	query, args := q.MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, order := range orders {
		ids[i] = order.OrderID
	}

	query, args = r.qb.Select("order_id", "product_id", "name", "price", "quantity", "image").
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}
	itemsMap := make(map[string][]OrderItem, len(ids))
	for _, item := range items {
		itemsMap[item.OrderID] = append(itemsMap[item.OrderID], item)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderToEntity(order, itemsMap[order.OrderID]))
	}

	return result, nil
}

// UpdateStatus advances the order only if it is still in the status the
// caller saw. Zero matched rows means a concurrent actor got there first.
func (r *ordersRepo) UpdateStatus(ctx context.Context, orderID string, from, to entities.OrderStatus, deliveredAt *time.Time) error {
	statusCond := sq.Sqlizer(sq.Eq{"order_status": string(from)})
	if from == entities.StatusPreparing {
		// legacy rows have NULL status and read as PREPARING
		statusCond = sq.Or{statusCond, sq.Eq{"order_status": nil}}
	}

	q := r.qb.Update("orders").
		Set("order_status", string(to)).
		Where(sq.Eq{"order_id": orderID}).
		Where(statusCond)
	if deliveredAt != nil {
		q = q.Set("delivered_at", *deliveredAt)
	}
	query, args := q.MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if affected == 0 {
		return entities.ErrTransitionConflict
	}
	return nil
}

func (r *ordersRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *ordersRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *ordersRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
