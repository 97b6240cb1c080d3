package handler

import (
	"time"

	"github.com/hienle2703/shop-order-service/internal/entities"
	"github.com/hienle2703/shop-order-service/internal/service"
)

// ShippingInfo адрес доставки
type ShippingInfo struct {
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	Country string `json:"country" validate:"required"`
	PinCode int    `json:"pinCode" validate:"required"`
}

// OrderItem одна позиция заказа
type OrderItem struct {
	Product  string  `json:"product" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Quantity int     `json:"quantity" validate:"required,gt=0"`
	Image    string  `json:"image,omitempty"`
}

// PaymentInfo подтверждение платежа от шлюза
type PaymentInfo struct {
	ID     string `json:"id" validate:"required"`
	Status string `json:"status,omitempty"`
}

// CreateOrderRequest тело запроса на создание заказа
type CreateOrderRequest struct {
	ShippingInfo    ShippingInfo `json:"shippingInfo" validate:"required"`
	OrderItems      []OrderItem  `json:"orderItems" validate:"required,min=1,dive"`
	PaymentMethod   string       `json:"paymentMethod" validate:"required,oneof=COD ONLINE"`
	PaymentInfo     *PaymentInfo `json:"paymentInfo,omitempty" validate:"omitempty"`
	ItemsPrice      float64      `json:"itemsPrice" validate:"gte=0"`
	TaxPrice        float64      `json:"taxPrice" validate:"gte=0"`
	ShippingCharges float64      `json:"shippingCharges" validate:"gte=0"`
	TotalAmount     float64      `json:"totalAmount" validate:"gte=0"`
}

// ProcessPaymentRequest тело запроса на создание платежного интента
type ProcessPaymentRequest struct {
	TotalAmount float64 `json:"totalAmount" validate:"required,gt=0"`
}

// Order представляет заказ
type Order struct {
	ID              string       `json:"id"`
	User            string       `json:"user"`
	ShippingInfo    ShippingInfo `json:"shippingInfo"`
	OrderItems      []OrderItem  `json:"orderItems"`
	PaymentMethod   string       `json:"paymentMethod"`
	PaymentInfo     *PaymentInfo `json:"paymentInfo,omitempty"`
	PaidAt          *time.Time   `json:"paidAt,omitempty"`
	ItemsPrice      float64      `json:"itemsPrice"`
	TaxPrice        float64      `json:"taxPrice"`
	ShippingCharges float64      `json:"shippingCharges"`
	TotalAmount     float64      `json:"totalAmount"`
	OrderStatus     string       `json:"orderStatus"`
	DeliveredAt     *time.Time   `json:"deliveredAt,omitempty"`
	CreatedAt       time.Time    `json:"createdAt"`
}

type OrderResponse struct {
	Success bool  `json:"success"`
	Order   Order `json:"order"`
}

type OrdersResponse struct {
	Success bool    `json:"success"`
	Orders  []Order `json:"orders"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type PaymentResponse struct {
	Success      bool   `json:"success"`
	ClientSecret string `json:"client_secret"`
}

func (r CreateOrderRequest) ToInput(userID string) service.CreateOrderInput {
	items := make([]entities.OrderItem, 0, len(r.OrderItems))
	for _, it := range r.OrderItems {
		items = append(items, entities.OrderItem{
			ProductID: it.Product,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
			Image:     it.Image,
		})
	}

	input := service.CreateOrderInput{
		UserID: userID,
		ShippingInfo: entities.ShippingInfo{
			Address: r.ShippingInfo.Address,
			City:    r.ShippingInfo.City,
			Country: r.ShippingInfo.Country,
			PinCode: r.ShippingInfo.PinCode,
		},
		Items:           items,
		PaymentMethod:   entities.PaymentMethod(r.PaymentMethod),
		ItemsPrice:      r.ItemsPrice,
		TaxPrice:        r.TaxPrice,
		ShippingCharges: r.ShippingCharges,
		TotalAmount:     r.TotalAmount,
	}

	if r.PaymentInfo != nil {
		input.PaymentInfo = &entities.PaymentInfo{
			ID:     r.PaymentInfo.ID,
			Status: r.PaymentInfo.Status,
		}
	}

	return input
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItem{
			Product:  it.ProductID,
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
			Image:    it.Image,
		})
	}

	order := Order{
		ID:   o.ID,
		User: o.UserID,
		ShippingInfo: ShippingInfo{
			Address: o.ShippingInfo.Address,
			City:    o.ShippingInfo.City,
			Country: o.ShippingInfo.Country,
			PinCode: o.ShippingInfo.PinCode,
		},
		OrderItems:      items,
		PaymentMethod:   string(o.PaymentMethod),
		PaidAt:          o.PaidAt,
		ItemsPrice:      o.ItemsPrice,
		TaxPrice:        o.TaxPrice,
		ShippingCharges: o.ShippingCharges,
		TotalAmount:     o.TotalAmount,
		OrderStatus:     string(o.Status),
		DeliveredAt:     o.DeliveredAt,
		CreatedAt:       o.CreatedAt,
	}

	if o.PaymentInfo != nil {
		order.PaymentInfo = &PaymentInfo{
			ID:     o.PaymentInfo.ID,
			Status: o.PaymentInfo.Status,
		}
	}

	return order
}

func OrderEntitiesToJSON(orders []entities.Order) []Order {
	result := make([]Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderEntityToJSON(o))
	}
	return result
}
