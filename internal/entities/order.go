package entities

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"math"
	"time"
)

type OrderStatus string

const (
	StatusPreparing OrderStatus = "PREPARING"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusDelivered OrderStatus = "DELIVERED"
)

type PaymentMethod string

const (
	PaymentMethodCOD    PaymentMethod = "COD"
	PaymentMethodOnline PaymentMethod = "ONLINE"
)

type ShippingInfo struct {
	Address string
	City    string
	Country string
	PinCode int
}

type OrderItem struct {
	ProductID string
	Name      string
	Price     float64
	Quantity  int
	Image     string
}

// PaymentInfo holds the gateway confirmation, present only for ONLINE orders.
type PaymentInfo struct {
	ID     string
	Status string
}

type Order struct {
	ID        string
	UserID    string
	CreatedAt time.Time

	ShippingInfo ShippingInfo
	Items        []OrderItem

	PaymentMethod PaymentMethod
	PaymentInfo   *PaymentInfo
	PaidAt        *time.Time

	ItemsPrice      float64
	TaxPrice        float64
	ShippingCharges float64
	TotalAmount     float64

	Status      OrderStatus
	DeliveredAt *time.Time
}

// Advance moves the order one step along PREPARING -> SHIPPED -> DELIVERED.
// An empty status counts as PREPARING. DELIVERED is terminal.
func (o *Order) Advance(now time.Time) error {
	switch o.Status {
	case StatusPreparing, "":
		o.Status = StatusShipped
	case StatusShipped:
		o.Status = StatusDelivered
		o.DeliveredAt = &now
	default:
		return ErrOrderDelivered
	}
	return nil
}

// VerifyTotals checks that the client-supplied total matches the sum of its
// parts. Amounts are dollars, so the comparison happens in rounded cents.
func (o Order) VerifyTotals() error {
	if o.ItemsPrice < 0 || o.TaxPrice < 0 || o.ShippingCharges < 0 || o.TotalAmount < 0 {
		return fmt.Errorf("%w: negative amount", ErrInvalidOrder)
	}
	want := toCents(o.ItemsPrice) + toCents(o.TaxPrice) + toCents(o.ShippingCharges)
	if toCents(o.TotalAmount) != want {
		return fmt.Errorf("%w: total amount does not match items + tax + shipping", ErrInvalidOrder)
	}
	return nil
}

func toCents(dollars float64) int64 {
	return int64(math.Round(dollars * 100))
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	if err := dec.Decode(o); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidOrder, err)
	}
	return nil
}

func init() {
	gob.Register(Order{})
	gob.Register(OrderItem{})
	gob.Register(ShippingInfo{})
	gob.Register(PaymentInfo{})
}
