package service_test

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/hienle2703/shop-order-service/internal/entities"
	"github.com/hienle2703/shop-order-service/internal/service"
	mocks "github.com/hienle2703/shop-order-service/internal/service/mocks"
	"github.com/hienle2703/shop-order-service/pkg/trm"
	txMocks "github.com/hienle2703/shop-order-service/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func passthroughTx(tx *txMocks.MockManager) {
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(
			func(ctx context.Context, cb func(ctx context.Context) error) error {
				return cb(ctx)
			}).Maybe()
}

func validInput() service.CreateOrderInput {
	return service.CreateOrderInput{
		UserID: "user-1",
		ShippingInfo: entities.ShippingInfo{
			Address: "1 Main St", City: "Saigon", Country: "Vietnam", PinCode: 70000,
		},
		Items: []entities.OrderItem{
			{ProductID: "prod-a", Name: "Keyboard", Price: 50, Quantity: 2, Image: "http://img/a"},
			{ProductID: "prod-b", Name: "Mouse", Price: 20, Quantity: 1, Image: "http://img/b"},
		},
		PaymentMethod:   entities.PaymentMethodCOD,
		ItemsPrice:      120,
		TaxPrice:        12,
		ShippingCharges: 8,
		TotalAmount:     140,
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	type Mocks struct {
		repo      *mocks.MockOrderRepo
		inventory *mocks.MockInventoryLedger
		events    *mocks.MockEventProducer
	}

	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		input        func() service.CreateOrderInput
		mockBehavior func(m Mocks)
		wantErr      error
	}{
		{
			name:  "OK",
			input: validInput,
			mockBehavior: func(m Mocks) {
				m.inventory.EXPECT().Decrement(mock.Anything, "prod-a", 2).Return(nil).Once()
				m.inventory.EXPECT().Decrement(mock.Anything, "prod-b", 1).Return(nil).Once()
				m.repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil).Once()
				m.repo.EXPECT().SaveItems(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
				m.events.EXPECT().OrderPlaced(mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name: "no items",
			input: func() service.CreateOrderInput {
				in := validInput()
				in.Items = nil
				return in
			},
			mockBehavior: func(m Mocks) {},
			wantErr:      entities.ErrInvalidOrder,
		},
		{
			name: "non-positive quantity",
			input: func() service.CreateOrderInput {
				in := validInput()
				in.Items[0].Quantity = 0
				return in
			},
			mockBehavior: func(m Mocks) {},
			wantErr:      entities.ErrInvalidOrder,
		},
		{
			name: "total amount mismatch",
			input: func() service.CreateOrderInput {
				in := validInput()
				in.TotalAmount = 150
				return in
			},
			mockBehavior: func(m Mocks) {},
			wantErr:      entities.ErrInvalidOrder,
		},
		{
			name: "online order without payment info",
			input: func() service.CreateOrderInput {
				in := validInput()
				in.PaymentMethod = entities.PaymentMethodOnline
				return in
			},
			mockBehavior: func(m Mocks) {},
			wantErr:      entities.ErrInvalidOrder,
		},
		{
			name:  "second decrement fails, first is compensated",
			input: validInput,
			mockBehavior: func(m Mocks) {
				m.inventory.EXPECT().Decrement(mock.Anything, "prod-a", 2).Return(nil).Once()
				m.inventory.EXPECT().Decrement(mock.Anything, "prod-b", 1).
					Return(entities.ErrInsufficientStock).Once()
				m.inventory.EXPECT().Increment(mock.Anything, "prod-a", 2).Return(nil).Once()
			},
			wantErr: entities.ErrInsufficientStock,
		},
		{
			name:  "unknown product, nothing persisted",
			input: validInput,
			mockBehavior: func(m Mocks) {
				m.inventory.EXPECT().Decrement(mock.Anything, "prod-a", 2).
					Return(entities.ErrProductNotFound).Once()
			},
			wantErr: entities.ErrProductNotFound,
		},
		{
			name:  "persist fails, every decrement is compensated",
			input: validInput,
			mockBehavior: func(m Mocks) {
				m.inventory.EXPECT().Decrement(mock.Anything, "prod-a", 2).Return(nil).Once()
				m.inventory.EXPECT().Decrement(mock.Anything, "prod-b", 1).Return(nil).Once()
				m.repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(dbError)
				m.inventory.EXPECT().Increment(mock.Anything, "prod-a", 2).Return(nil).Once()
				m.inventory.EXPECT().Increment(mock.Anything, "prod-b", 1).Return(nil).Once()
			},
			wantErr: dbError,
		},
		{
			name:  "persist retry works (first attempt fails, second succeeds)",
			input: validInput,
			mockBehavior: func(m Mocks) {
				m.inventory.EXPECT().Decrement(mock.Anything, "prod-a", 2).Return(nil).Once()
				m.inventory.EXPECT().Decrement(mock.Anything, "prod-b", 1).Return(nil).Once()
				m.repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).
					Once().Return(errors.New("temporary error"))
				m.repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).
					Once().Return(nil)
				m.repo.EXPECT().SaveItems(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
				m.events.EXPECT().OrderPlaced(mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name:  "event publish failure does not fail the order",
			input: validInput,
			mockBehavior: func(m Mocks) {
				m.inventory.EXPECT().Decrement(mock.Anything, "prod-a", 2).Return(nil).Once()
				m.inventory.EXPECT().Decrement(mock.Anything, "prod-b", 1).Return(nil).Once()
				m.repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil).Once()
				m.repo.EXPECT().SaveItems(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
				m.events.EXPECT().OrderPlaced(mock.Anything, mock.Anything).
					Return(errors.New("broker down")).Once()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := Mocks{
				repo:      mocks.NewMockOrderRepo(t),
				inventory: mocks.NewMockInventoryLedger(t),
				events:    mocks.NewMockEventProducer(t),
			}
			gateway := mocks.NewMockPaymentGateway(t)
			cache := mocks.NewMockCache(t)
			tx := txMocks.NewMockManager(t)
			passthroughTx(tx)

			tc.mockBehavior(m)

			svc := service.NewOrderService(discardLogger(), tx, m.repo, m.inventory, gateway, m.events, cache)

			order, err := svc.CreateOrder(context.Background(), tc.input())

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, order.ID)
			assert.Equal(t, entities.StatusPreparing, order.Status)
			assert.Nil(t, order.DeliveredAt)
		})
	}
}

func TestOrderService_CreateOrder_OnlineSetsPaidAt(t *testing.T) {
	repo := mocks.NewMockOrderRepo(t)
	inventory := mocks.NewMockInventoryLedger(t)
	events := mocks.NewMockEventProducer(t)
	gateway := mocks.NewMockPaymentGateway(t)
	cache := mocks.NewMockCache(t)
	tx := txMocks.NewMockManager(t)
	passthroughTx(tx)

	inventory.EXPECT().Decrement(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil)
	repo.EXPECT().SaveItems(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	events.EXPECT().OrderPlaced(mock.Anything, mock.Anything).Return(nil)

	in := validInput()
	in.PaymentMethod = entities.PaymentMethodOnline
	in.PaymentInfo = &entities.PaymentInfo{ID: "pi_123", Status: "succeeded"}

	svc := service.NewOrderService(discardLogger(), tx, repo, inventory, gateway, events, cache)

	order, err := svc.CreateOrder(context.Background(), in)
	require.NoError(t, err)
	require.NotNil(t, order.PaidAt)
	assert.Equal(t, order.CreatedAt, *order.PaidAt)
}

func TestOrderService_AdvanceOrder(t *testing.T) {
	type Mocks struct {
		repo   *mocks.MockOrderRepo
		events *mocks.MockEventProducer
		cache  *mocks.MockCache
	}

	testCases := []struct {
		name         string
		orderID      string
		mockBehavior func(m Mocks)
		wantStatus   entities.OrderStatus
		wantErr      error
		checkOrder   func(t *testing.T, order entities.Order)
	}{
		{
			name:    "preparing to shipped",
			orderID: "order-1",
			mockBehavior: func(m Mocks) {
				m.repo.EXPECT().GetOrderByID(mock.Anything, "order-1").
					Return(entities.Order{ID: "order-1", Status: entities.StatusPreparing}, nil).Once()
				m.repo.EXPECT().
					UpdateStatus(mock.Anything, "order-1", entities.StatusPreparing, entities.StatusShipped, mock.Anything).
					Return(nil).Once()
				m.cache.EXPECT().Delete("order-1").Return().Once()
				m.events.EXPECT().OrderStatusChanged(mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantStatus: entities.StatusShipped,
			checkOrder: func(t *testing.T, order entities.Order) {
				assert.Nil(t, order.DeliveredAt)
			},
		},
		{
			name:    "shipped to delivered sets deliveredAt",
			orderID: "order-1",
			mockBehavior: func(m Mocks) {
				m.repo.EXPECT().GetOrderByID(mock.Anything, "order-1").
					Return(entities.Order{ID: "order-1", Status: entities.StatusShipped}, nil).Once()
				m.repo.EXPECT().
					UpdateStatus(mock.Anything, "order-1", entities.StatusShipped, entities.StatusDelivered, mock.Anything).
					Return(nil).Once()
				m.cache.EXPECT().Delete("order-1").Return().Once()
				m.events.EXPECT().OrderStatusChanged(mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantStatus: entities.StatusDelivered,
			checkOrder: func(t *testing.T, order entities.Order) {
				assert.NotNil(t, order.DeliveredAt)
			},
		},
		{
			name:    "delivered is terminal",
			orderID: "order-1",
			mockBehavior: func(m Mocks) {
				m.repo.EXPECT().GetOrderByID(mock.Anything, "order-1").
					Return(entities.Order{ID: "order-1", Status: entities.StatusDelivered}, nil).Once()
			},
			wantErr: entities.ErrOrderDelivered,
		},
		{
			name:    "not found",
			orderID: "missing",
			mockBehavior: func(m Mocks) {
				m.repo.EXPECT().GetOrderByID(mock.Anything, "missing").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:    "concurrent admin wins the race",
			orderID: "order-1",
			mockBehavior: func(m Mocks) {
				m.repo.EXPECT().GetOrderByID(mock.Anything, "order-1").
					Return(entities.Order{ID: "order-1", Status: entities.StatusPreparing}, nil).Once()
				m.repo.EXPECT().
					UpdateStatus(mock.Anything, "order-1", entities.StatusPreparing, entities.StatusShipped, mock.Anything).
					Return(entities.ErrTransitionConflict).Once()
			},
			wantErr: entities.ErrTransitionConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := Mocks{
				repo:   mocks.NewMockOrderRepo(t),
				events: mocks.NewMockEventProducer(t),
				cache:  mocks.NewMockCache(t),
			}
			inventory := mocks.NewMockInventoryLedger(t)
			gateway := mocks.NewMockPaymentGateway(t)
			tx := txMocks.NewMockManager(t)

			tc.mockBehavior(m)

			svc := service.NewOrderService(discardLogger(), tx, m.repo, inventory, gateway, m.events, m.cache)

			order, err := svc.AdvanceOrder(context.Background(), tc.orderID)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, order.Status)
			if tc.checkOrder != nil {
				tc.checkOrder(t, order)
			}
		})
	}
}

func TestOrderService_GetOrderByID(t *testing.T) {
	validOrder := entities.Order{ID: "order-1", UserID: "user-1"}
	validData, err := validOrder.Marshal()
	require.NoError(t, err)

	testCases := []struct {
		name         string
		orderID      string
		mockBehavior func(repo *mocks.MockOrderRepo, cache *mocks.MockCache)
		wantErr      error
		want         entities.Order
	}{
		{
			name:    "success from cache",
			orderID: "order-1",
			mockBehavior: func(_ *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("order-1").Return(validData, true).Once()
			},
			want: validOrder,
		},
		{
			name:    "unreadable cache entry is dropped and repo serves the read",
			orderID: "order-1",
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("order-1").Return([]byte("broken"), true).Once()
				cache.EXPECT().Delete("order-1").Return().Once()
				repo.EXPECT().GetOrderByID(mock.Anything, "order-1").
					Return(validOrder, nil).Once()
				cache.EXPECT().Set("order-1", validData).Return().Once()
			},
			want: validOrder,
		},
		{
			name:    "success from repo and set to cache",
			orderID: "order-1",
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("order-1").Return(nil, false).Once()
				repo.EXPECT().GetOrderByID(mock.Anything, "order-1").
					Return(validOrder, nil).Once()
				cache.EXPECT().Set("order-1", validData).Return().Once()
			},
			want: validOrder,
		},
		{
			name:    "not found is not retried",
			orderID: "missing",
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("missing").Return(nil, false).Once()
				repo.EXPECT().GetOrderByID(mock.Anything, "missing").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:    "second attempt from repo",
			orderID: "order-1",
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("order-1").Return(nil, false).Once()
				repo.EXPECT().GetOrderByID(mock.Anything, "order-1").
					Return(entities.Order{}, errors.New("some error")).Once()
				repo.EXPECT().GetOrderByID(mock.Anything, "order-1").
					Return(validOrder, nil).Once()
				cache.EXPECT().Set("order-1", validData).Return().Once()
			},
			want: validOrder,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			cache := mocks.NewMockCache(t)
			inventory := mocks.NewMockInventoryLedger(t)
			gateway := mocks.NewMockPaymentGateway(t)
			events := mocks.NewMockEventProducer(t)
			tx := txMocks.NewMockManager(t)

			tc.mockBehavior(repo, cache)

			svc := service.NewOrderService(discardLogger(), tx, repo, inventory, gateway, events, cache)

			got, err := svc.GetOrderByID(context.Background(), tc.orderID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrderService_ProcessPayment(t *testing.T) {
	repo := mocks.NewMockOrderRepo(t)
	cache := mocks.NewMockCache(t)
	inventory := mocks.NewMockInventoryLedger(t)
	gateway := mocks.NewMockPaymentGateway(t)
	events := mocks.NewMockEventProducer(t)
	tx := txMocks.NewMockManager(t)

	gateway.EXPECT().CreateIntent(mock.Anything, 140.0).Return("pi_secret", nil).Once()

	svc := service.NewOrderService(discardLogger(), tx, repo, inventory, gateway, events, cache)

	secret, err := svc.ProcessPayment(context.Background(), 140)
	require.NoError(t, err)
	assert.Equal(t, "pi_secret", secret)

	gateway.EXPECT().CreateIntent(mock.Anything, 10.0).
		Return("", entities.ErrPaymentGateway).Once()
	_, err = svc.ProcessPayment(context.Background(), 10)
	assert.ErrorIs(t, err, entities.ErrPaymentGateway)
}

// memLedger is a mutex-guarded in-memory ledger with the same conditional
// semantics as the Postgres one.
type memLedger struct {
	mu    sync.Mutex
	stock map[string]int
}

func newMemLedger(stock map[string]int) *memLedger {
	return &memLedger{stock: stock}
}

func (l *memLedger) Decrement(_ context.Context, productID string, qty int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	current, ok := l.stock[productID]
	if !ok {
		return entities.ErrProductNotFound
	}
	if current < qty {
		return entities.ErrInsufficientStock
	}
	l.stock[productID] = current - qty
	return nil
}

func (l *memLedger) Increment(_ context.Context, productID string, qty int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.stock[productID]; !ok {
		return entities.ErrProductNotFound
	}
	l.stock[productID] += qty
	return nil
}

func (l *memLedger) get(productID string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stock[productID]
}

type nopTx struct{}

func (nopTx) Commit() error   { return nil }
func (nopTx) Rollback() error { return nil }

type nopTxManager struct{}

func (nopTxManager) BeginTx(ctx context.Context, _ *sql.TxOptions) (context.Context, trm.Transaction, error) {
	return ctx, nopTx{}, nil
}

func (nopTxManager) Do(ctx context.Context, cb func(ctx context.Context) error) error {
	return cb(ctx)
}

func TestOrderService_CreateOrder_ConcurrentStockNeverNegative(t *testing.T) {
	ledger := newMemLedger(map[string]int{"prod-a": 5})

	repo := mocks.NewMockOrderRepo(t)
	repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil).Maybe()
	repo.EXPECT().SaveItems(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	events := mocks.NewMockEventProducer(t)
	events.EXPECT().OrderPlaced(mock.Anything, mock.Anything).Return(nil).Maybe()
	gateway := mocks.NewMockPaymentGateway(t)
	cache := mocks.NewMockCache(t)

	svc := service.NewOrderService(discardLogger(), nopTxManager{}, repo, ledger, gateway, events, cache)

	input := service.CreateOrderInput{
		UserID:       "user-1",
		ShippingInfo: entities.ShippingInfo{Address: "1 Main St", City: "Saigon", Country: "Vietnam", PinCode: 70000},
		Items: []entities.OrderItem{
			{ProductID: "prod-a", Name: "Keyboard", Price: 10, Quantity: 3},
		},
		PaymentMethod: entities.PaymentMethodCOD,
		ItemsPrice:    30,
		TotalAmount:   30,
	}

	var mu sync.Mutex
	var succeeded, insufficient int

	var g errgroup.Group
	for i := 0; i < 2; i++ {
		g.Go(func() error {
			_, err := svc.CreateOrder(context.Background(), input)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, entities.ErrInsufficientStock):
				insufficient++
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	// combined demand 6 against stock 5: exactly one order wins
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, insufficient)
	assert.Equal(t, 2, ledger.get("prod-a"))
}

func TestOrderService_CreateOrder_DecrementsStock(t *testing.T) {
	ledger := newMemLedger(map[string]int{"prod-a": 10})

	repo := mocks.NewMockOrderRepo(t)
	repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil).Once()
	repo.EXPECT().SaveItems(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	events := mocks.NewMockEventProducer(t)
	events.EXPECT().OrderPlaced(mock.Anything, mock.Anything).Return(nil).Once()
	gateway := mocks.NewMockPaymentGateway(t)
	cache := mocks.NewMockCache(t)

	svc := service.NewOrderService(discardLogger(), nopTxManager{}, repo, ledger, gateway, events, cache)

	input := service.CreateOrderInput{
		UserID:       "user-1",
		ShippingInfo: entities.ShippingInfo{Address: "1 Main St", City: "Saigon", Country: "Vietnam", PinCode: 70000},
		Items: []entities.OrderItem{
			{ProductID: "prod-a", Name: "Keyboard", Price: 10, Quantity: 2},
		},
		PaymentMethod: entities.PaymentMethodCOD,
		ItemsPrice:    20,
		TotalAmount:   20,
	}

	order, err := svc.CreateOrder(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusPreparing, order.Status)
	assert.Equal(t, 8, ledger.get("prod-a"))
}

// ctxLedger refuses new work once the context is done, like a real driver
// would.
type ctxLedger struct {
	*memLedger
}

func (l ctxLedger) Decrement(ctx context.Context, productID string, qty int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return l.memLedger.Decrement(ctx, productID, qty)
}

func (l ctxLedger) Increment(ctx context.Context, productID string, qty int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return l.memLedger.Increment(ctx, productID, qty)
}

func TestOrderService_CreateOrder_CanceledRequestStillRestoresStock(t *testing.T) {
	ledger := newMemLedger(map[string]int{"prod-a": 10})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// the request dies mid-persist: the order must not survive and every
	// reserved unit must come back even though the caller's context is gone
	repo := mocks.NewMockOrderRepo(t)
	repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ entities.Order) error {
			cancel()
			return ctx.Err()
		}).Once()
	events := mocks.NewMockEventProducer(t)
	gateway := mocks.NewMockPaymentGateway(t)
	cache := mocks.NewMockCache(t)

	svc := service.NewOrderService(discardLogger(), nopTxManager{}, repo, ctxLedger{ledger}, gateway, events, cache)

	input := service.CreateOrderInput{
		UserID:       "user-1",
		ShippingInfo: entities.ShippingInfo{Address: "1 Main St", City: "Saigon", Country: "Vietnam", PinCode: 70000},
		Items: []entities.OrderItem{
			{ProductID: "prod-a", Name: "Keyboard", Price: 10, Quantity: 2},
		},
		PaymentMethod: entities.PaymentMethodCOD,
		ItemsPrice:    20,
		TotalAmount:   20,
	}

	_, err := svc.CreateOrder(ctx, input)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 10, ledger.get("prod-a"))
}

func TestOrderService_CreateOrder_RollbackRestoresStock(t *testing.T) {
	// prod-b has nothing left, so the second line item must fail and the
	// first decrement must be undone
	ledger := newMemLedger(map[string]int{"prod-a": 10, "prod-b": 0})

	repo := mocks.NewMockOrderRepo(t)
	events := mocks.NewMockEventProducer(t)
	gateway := mocks.NewMockPaymentGateway(t)
	cache := mocks.NewMockCache(t)

	svc := service.NewOrderService(discardLogger(), nopTxManager{}, repo, ledger, gateway, events, cache)

	input := service.CreateOrderInput{
		UserID:       "user-1",
		ShippingInfo: entities.ShippingInfo{Address: "1 Main St", City: "Saigon", Country: "Vietnam", PinCode: 70000},
		Items: []entities.OrderItem{
			{ProductID: "prod-a", Name: "Keyboard", Price: 10, Quantity: 2},
			{ProductID: "prod-b", Name: "Mouse", Price: 5, Quantity: 1},
		},
		PaymentMethod: entities.PaymentMethodCOD,
		ItemsPrice:    25,
		TotalAmount:   25,
	}

	_, err := svc.CreateOrder(context.Background(), input)
	assert.ErrorIs(t, err, entities.ErrInsufficientStock)

	assert.Equal(t, 10, ledger.get("prod-a"))
	assert.Equal(t, 0, ledger.get("prod-b"))
}
