package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hienle2703/shop-order-service/internal/config"
	"github.com/hienle2703/shop-order-service/internal/entities"

	"github.com/segmentio/kafka-go"
)

const (
	TypeOrderPlaced        = "order.placed"
	TypeOrderStatusChanged = "order.status_changed"
)

type OrderEvent struct {
	Type       string    `json:"type"`
	OrderID    string    `json:"order_id"`
	UserID     string    `json:"user_id"`
	Status     string    `json:"status"`
	Total      float64   `json:"total_amount,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// KafkaProducer publishes order lifecycle events. Delivery is best-effort:
// callers log failures instead of failing the request.
type KafkaProducer struct {
	writer *kafka.Writer
}

func NewKafkaProducer(cfg config.Kafka) *KafkaProducer {
	return &KafkaProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

func (p *KafkaProducer) OrderPlaced(ctx context.Context, order entities.Order) error {
	return p.publish(ctx, OrderEvent{
		Type:       TypeOrderPlaced,
		OrderID:    order.ID,
		UserID:     order.UserID,
		Status:     string(order.Status),
		Total:      order.TotalAmount,
		OccurredAt: time.Now(),
	})
}

func (p *KafkaProducer) OrderStatusChanged(ctx context.Context, order entities.Order) error {
	return p.publish(ctx, OrderEvent{
		Type:       TypeOrderStatusChanged,
		OrderID:    order.ID,
		UserID:     order.UserID,
		Status:     string(order.Status),
		OccurredAt: time.Now(),
	})
}

func (p *KafkaProducer) publish(ctx context.Context, event OrderEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", event.Type, err)
	}
	return nil
}

func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}
