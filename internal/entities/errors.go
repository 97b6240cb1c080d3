package entities

import "errors"

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrOrderDelivered     = errors.New("order already delivered")
	ErrTransitionConflict = errors.New("order status changed concurrently")
	ErrInvalidOrder       = errors.New("invalid order")
	ErrPaymentGateway     = errors.New("payment gateway error")
)
