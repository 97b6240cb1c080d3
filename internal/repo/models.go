package repo

import (
	"database/sql"
	"time"

	"github.com/hienle2703/shop-order-service/internal/entities"
)

type Order struct {
	OrderID string `db:"order_id"`
	UserID  string `db:"user_id"`

	Address string `db:"address"`
	City    string `db:"city"`
	Country string `db:"country"`
	PinCode int    `db:"pin_code"`

	PaymentMethod string         `db:"payment_method"`
	PaymentID     sql.NullString `db:"payment_id"`
	PaymentStatus sql.NullString `db:"payment_status"`
	PaidAt        sql.NullTime   `db:"paid_at"`

	ItemsPrice      float64 `db:"items_price"`
	TaxPrice        float64 `db:"tax_price"`
	ShippingCharges float64 `db:"shipping_charges"`
	TotalAmount     float64 `db:"total_amount"`

	OrderStatus sql.NullString `db:"order_status"`
	DeliveredAt sql.NullTime   `db:"delivered_at"`
	CreatedAt   time.Time      `db:"created_at"`
}

type OrderItem struct {
	OrderID   string         `db:"order_id"`
	ProductID string         `db:"product_id"`
	Name      string         `db:"name"`
	Price     float64        `db:"price"`
	Quantity  int            `db:"quantity"`
	Image     sql.NullString `db:"image"`
}

func ItemToEntity(i OrderItem) entities.OrderItem {
	return entities.OrderItem{
		ProductID: i.ProductID,
		Name:      i.Name,
		Price:     i.Price,
		Quantity:  i.Quantity,
		Image:     nullStringToString(i.Image),
	}
}

func OrderToEntity(o Order, items []OrderItem) entities.Order {
	order := entities.Order{
		ID:     o.OrderID,
		UserID: o.UserID,
		ShippingInfo: entities.ShippingInfo{
			Address: o.Address,
			City:    o.City,
			Country: o.Country,
			PinCode: o.PinCode,
		},
		PaymentMethod:   entities.PaymentMethod(o.PaymentMethod),
		PaidAt:          nullTimeToPtr(o.PaidAt),
		ItemsPrice:      o.ItemsPrice,
		TaxPrice:        o.TaxPrice,
		ShippingCharges: o.ShippingCharges,
		TotalAmount:     o.TotalAmount,
		// legacy rows may carry NULL status, which means the order was
		// never advanced
		Status:      entities.StatusPreparing,
		DeliveredAt: nullTimeToPtr(o.DeliveredAt),
		CreatedAt:   o.CreatedAt,
	}

	if o.OrderStatus.Valid {
		order.Status = entities.OrderStatus(o.OrderStatus.String)
	}

	if o.PaymentID.Valid {
		order.PaymentInfo = &entities.PaymentInfo{
			ID:     o.PaymentID.String,
			Status: nullStringToString(o.PaymentStatus),
		}
	}

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}

	return order
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func nullTimeToPtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		return &nt.Time
	}
	return nil
}
