package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hienle2703/shop-order-service/internal/entities"
	"github.com/hienle2703/shop-order-service/pkg/trm"
	"github.com/hienle2703/shop-order-service/pkg/utils"

	"github.com/google/uuid"
)

type OrderRepo interface {
	SaveOrder(ctx context.Context, o entities.Order) error
	SaveItems(ctx context.Context, orderID string, items []entities.OrderItem) error

	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Order, error)
	ListAll(ctx context.Context) ([]entities.Order, error)

	// UpdateStatus is conditional on the status the caller observed and
	// reports entities.ErrTransitionConflict when another writer won.
	UpdateStatus(ctx context.Context, orderID string, from, to entities.OrderStatus, deliveredAt *time.Time) error
}

// InventoryLedger is the only way stock is mutated. Decrement never drives
// stock negative; Increment compensates a decrement that must not stand.
type InventoryLedger interface {
	Decrement(ctx context.Context, productID string, qty int) error
	Increment(ctx context.Context, productID string, qty int) error
}

type PaymentGateway interface {
	CreateIntent(ctx context.Context, amount float64) (string, error)
}

type EventProducer interface {
	OrderPlaced(ctx context.Context, order entities.Order) error
	OrderStatusChanged(ctx context.Context, order entities.Order) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type CreateOrderInput struct {
	UserID          string
	ShippingInfo    entities.ShippingInfo
	Items           []entities.OrderItem
	PaymentMethod   entities.PaymentMethod
	PaymentInfo     *entities.PaymentInfo
	ItemsPrice      float64
	TaxPrice        float64
	ShippingCharges float64
	TotalAmount     float64
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	inventory InventoryLedger
	gateway   PaymentGateway
	events    EventProducer
	cache     Cache
	now       func() time.Time
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo OrderRepo,
	inventory InventoryLedger,
	gateway PaymentGateway,
	events EventProducer,
	cache Cache,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		inventory: inventory,
		gateway:   gateway,
		events:    events,
		cache:     cache,
		now:       time.Now,
	}
}

var storageRetry = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  5,
	Multiplier:   2,
}

// CreateOrder reserves stock for every line item and persists the order.
// Either everything happens or nothing does: the first failed decrement (or
// a failed insert) triggers compensating increments for every decrement
// already applied in this attempt.
func (s *orderService) CreateOrder(ctx context.Context, input CreateOrderInput) (entities.Order, error) {
	order := entities.Order{
		ID:              uuid.NewString(),
		UserID:          input.UserID,
		ShippingInfo:    input.ShippingInfo,
		Items:           input.Items,
		PaymentMethod:   input.PaymentMethod,
		PaymentInfo:     input.PaymentInfo,
		ItemsPrice:      input.ItemsPrice,
		TaxPrice:        input.TaxPrice,
		ShippingCharges: input.ShippingCharges,
		TotalAmount:     input.TotalAmount,
		Status:          entities.StatusPreparing,
		CreatedAt:       s.now(),
	}

	if err := s.validateOrder(order); err != nil {
		return entities.Order{}, err
	}

	if order.PaymentMethod == entities.PaymentMethodOnline {
		paidAt := order.CreatedAt
		order.PaidAt = &paidAt
	}

	// decrements stay sequential so a product appearing twice in one order
	// is reserved one line at a time
	for i, item := range order.Items {
		if err := s.inventory.Decrement(ctx, item.ProductID, item.Quantity); err != nil {
			s.compensate(ctx, order.Items[:i])
			return entities.Order{}, err
		}
	}

	persist := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			if err := s.repo.SaveOrder(ctx, order); err != nil {
				return err
			}
			return s.repo.SaveItems(ctx, order.ID, order.Items)
		})
	}
	if err := utils.Retry(storageRetry, persist, context.Canceled, context.DeadlineExceeded); err != nil {
		s.compensate(ctx, order.Items)
		return entities.Order{}, fmt.Errorf("failed to persist order: %w", err)
	}

	if err := s.events.OrderPlaced(ctx, order); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish order placed event",
			slog.String("order_id", order.ID), slog.Any("error", err))
	}

	s.logger.InfoContext(ctx, "order created",
		slog.String("order_id", order.ID), slog.String("user_id", order.UserID))
	return order, nil
}

func (s *orderService) validateOrder(order entities.Order) error {
	if len(order.Items) == 0 {
		return fmt.Errorf("%w: order has no items", entities.ErrInvalidOrder)
	}
	for _, item := range order.Items {
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: quantity must be positive for product %s", entities.ErrInvalidOrder, item.ProductID)
		}
	}
	if order.PaymentMethod == entities.PaymentMethodOnline && order.PaymentInfo == nil {
		return fmt.Errorf("%w: online order has no payment info", entities.ErrInvalidOrder)
	}
	return order.VerifyTotals()
}

// compensate returns already-reserved stock. Each line was decremented at
// most once, so each is incremented exactly once. The triggering failure is
// often the request being canceled, so the increments run detached from the
// caller's deadline; an increment that still fails after retries is an
// operator problem and gets logged loudly.
func (s *orderService) compensate(ctx context.Context, items []entities.OrderItem) {
	ctx = context.WithoutCancel(ctx)
	for _, item := range items {
		increment := func() error {
			return s.inventory.Increment(ctx, item.ProductID, item.Quantity)
		}
		if err := utils.Retry(storageRetry, increment, entities.ErrProductNotFound); err != nil {
			s.logger.ErrorContext(ctx, "failed to compensate stock decrement",
				slog.String("product_id", item.ProductID),
				slog.Int("quantity", item.Quantity),
				slog.Any("error", err))
		}
	}
}

// AdvanceOrder moves an order one step along its lifecycle. The write is
// conditional on the status we loaded, so two concurrent admin calls can
// never both advance the same order.
func (s *orderService) AdvanceOrder(ctx context.Context, orderID string) (entities.Order, error) {
	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	seen := order.Status
	if err := order.Advance(s.now()); err != nil {
		return entities.Order{}, err
	}

	if err := s.repo.UpdateStatus(ctx, orderID, seen, order.Status, order.DeliveredAt); err != nil {
		return entities.Order{}, err
	}

	s.cache.Delete(orderID)

	if err := s.events.OrderStatusChanged(ctx, order); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish status changed event",
			slog.String("order_id", order.ID), slog.Any("error", err))
	}

	s.logger.InfoContext(ctx, "order advanced",
		slog.String("order_id", order.ID), slog.String("status", string(order.Status)))
	return order, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	if data, ok := s.cache.Get(orderID); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err == nil {
			return order, nil
		}
		// an unreadable entry would otherwise shadow the order until TTL
		s.logger.Warn("dropping unreadable cached order", slog.String("order_id", orderID))
		s.cache.Delete(orderID)
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, orderID)
		return err
	}
	if err := utils.Retry(storageRetry, fn, entities.ErrOrderNotFound, context.Canceled, context.DeadlineExceeded); err != nil {
		return entities.Order{}, err
	}

	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.String("order_id", orderID), slog.Any("error", err))
		return entities.Order{}, err
	}
	s.cache.Set(orderID, data)
	return order, nil
}

func (s *orderService) GetMyOrders(ctx context.Context, userID string) ([]entities.Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *orderService) GetAdminOrders(ctx context.Context) ([]entities.Order, error) {
	return s.repo.ListAll(ctx)
}

// ProcessPayment is a pass-through to the gateway; nothing links the intent
// to a later order beyond the client echoing the confirmation back.
func (s *orderService) ProcessPayment(ctx context.Context, totalAmount float64) (string, error) {
	return s.gateway.CreateIntent(ctx, totalAmount)
}
