package entities_test

import (
	"testing"
	"time"

	"github.com/hienle2703/shop-order-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrder_Advance(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("full lifecycle", func(t *testing.T) {
		order := entities.Order{Status: entities.StatusPreparing}

		require.NoError(t, order.Advance(now))
		assert.Equal(t, entities.StatusShipped, order.Status)
		assert.Nil(t, order.DeliveredAt)

		require.NoError(t, order.Advance(now))
		assert.Equal(t, entities.StatusDelivered, order.Status)
		require.NotNil(t, order.DeliveredAt)
		assert.Equal(t, now, *order.DeliveredAt)

		err := order.Advance(now)
		assert.ErrorIs(t, err, entities.ErrOrderDelivered)
		assert.Equal(t, entities.StatusDelivered, order.Status)
		assert.Equal(t, now, *order.DeliveredAt)
	})

	t.Run("unset status counts as preparing", func(t *testing.T) {
		order := entities.Order{}
		require.NoError(t, order.Advance(now))
		assert.Equal(t, entities.StatusShipped, order.Status)
	})

	t.Run("delivered stays terminal on repeated attempts", func(t *testing.T) {
		order := entities.Order{Status: entities.StatusDelivered}
		for i := 0; i < 3; i++ {
			assert.ErrorIs(t, order.Advance(now), entities.ErrOrderDelivered)
		}
	})
}

func TestOrder_VerifyTotals(t *testing.T) {
	testCases := []struct {
		name    string
		order   entities.Order
		wantErr bool
	}{
		{
			name: "valid",
			order: entities.Order{
				ItemsPrice: 100, TaxPrice: 10, ShippingCharges: 5, TotalAmount: 115,
			},
		},
		{
			name: "valid with cents",
			order: entities.Order{
				ItemsPrice: 19.99, TaxPrice: 1.6, ShippingCharges: 0.41, TotalAmount: 22,
			},
		},
		{
			name: "mismatch",
			order: entities.Order{
				ItemsPrice: 100, TaxPrice: 10, ShippingCharges: 5, TotalAmount: 120,
			},
			wantErr: true,
		},
		{
			name: "negative amount",
			order: entities.Order{
				ItemsPrice: -1, TaxPrice: 0, ShippingCharges: 0, TotalAmount: -1,
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.order.VerifyTotals()
			if tc.wantErr {
				assert.ErrorIs(t, err, entities.ErrInvalidOrder)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOrder_MarshalUnmarshal(t *testing.T) {
	paid := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	order := entities.Order{
		ID:     "5e6f7a88-0000-4000-8000-000000000001",
		UserID: "user-1",
		Items: []entities.OrderItem{
			{ProductID: "p1", Name: "Keyboard", Price: 49.99, Quantity: 2, Image: "http://img/p1"},
		},
		PaymentMethod: entities.PaymentMethodOnline,
		PaymentInfo:   &entities.PaymentInfo{ID: "pi_123", Status: "succeeded"},
		PaidAt:        &paid,
		Status:        entities.StatusPreparing,
	}

	data, err := order.Marshal()
	require.NoError(t, err)

	var got entities.Order
	require.NoError(t, got.Unmarshal(data))
	assert.Equal(t, order, got)

	var broken entities.Order
	assert.ErrorIs(t, broken.Unmarshal([]byte("broken")), entities.ErrInvalidOrder)
}
