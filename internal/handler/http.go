package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hienle2703/shop-order-service/internal/entities"
	"github.com/hienle2703/shop-order-service/internal/middleware"
	"github.com/hienle2703/shop-order-service/internal/service"
	"github.com/hienle2703/shop-order-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	CreateOrder(ctx context.Context, input service.CreateOrderInput) (entities.Order, error)
	AdvanceOrder(ctx context.Context, orderID string) (entities.Order, error)
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	GetMyOrders(ctx context.Context, userID string) ([]entities.Order, error)
	GetAdminOrders(ctx context.Context) ([]entities.Order, error)
	ProcessPayment(ctx context.Context, totalAmount float64) (string, error)
}

// Auth supplies the verified-identity gates; the handler never inspects
// credentials itself.
type Auth interface {
	RequireAuth(next http.Handler) http.Handler
	RequireAdmin(next http.Handler) http.Handler
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
	auth     Auth
}

func NewHTTPHandler(logger *slog.Logger, svc OrderService, auth Auth) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		svc:      svc,
		auth:     auth,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/order", func(r chi.Router) {
		r.Use(h.auth.RequireAuth)

		r.Post("/payment", h.ProcessPayment)
		r.Post("/new", h.CreateOrder)
		r.Get("/my", h.GetMyOrders)
		r.Get("/single/{order_id}", h.GetOrderDetail)

		r.Group(func(r chi.Router) {
			r.Use(h.auth.RequireAdmin)
			r.Get("/admin", h.GetAdminOrders)
			r.Put("/single/{order_id}", h.AdvanceOrder)
		})
	})
}

// ProcessPayment создает платежный интент.
// @Summary      Создать платежный интент
// @Tags         orders
// @Accept       json
// @Param        body  body      ProcessPaymentRequest  true  "Сумма заказа"
// @Success      200   {object}  PaymentResponse
// @Failure      400   {object}  utils.ValidationErrorResponse
// @Failure      502   {object}  utils.ErrorResponse "Ошибка платежного шлюза"
// @Router       /order/payment [post]
func (h *HTTPHandler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ProcessPaymentRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	secret, err := h.svc.ProcessPayment(ctx, req.TotalAmount)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create payment intent", slog.Any("error", err))
		utils.WriteError(w, "payment gateway error", http.StatusBadGateway)
		return
	}

	paymentIntentsCreated.Inc()
	utils.WriteJSON(w, PaymentResponse{Success: true, ClientSecret: secret}, http.StatusOK)
}

// CreateOrder создает новый заказ.
// @Summary      Создать заказ
// @Tags         orders
// @Accept       json
// @Param        body  body      CreateOrderRequest  true  "Данные заказа"
// @Success      201   {object}  MessageResponse
// @Failure      400   {object}  utils.ErrorResponse "Недостаточно товара или невалидные данные"
// @Router       /order/new [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := middleware.UserFromContext(ctx)
	if !ok {
		utils.WriteError(w, "not logged in", http.StatusUnauthorized)
		return
	}

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	_, err := h.svc.CreateOrder(ctx, req.ToInput(user.ID))

	switch {
	case err == nil:
	case errors.Is(err, entities.ErrInsufficientStock),
		errors.Is(err, entities.ErrProductNotFound),
		errors.Is(err, entities.ErrInvalidOrder):
		ordersRejected.Inc()
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	default:
		h.logger.ErrorContext(ctx, "failed to create order", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	ordersCreated.Inc()
	utils.WriteJSON(w, MessageResponse{Success: true, Message: "Order placed successfully"}, http.StatusCreated)
}

// GetMyOrders возвращает заказы текущего пользователя.
// @Summary      Мои заказы
// @Tags         orders
// @Success      200  {object}  OrdersResponse
// @Router       /order/my [get]
func (h *HTTPHandler) GetMyOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := middleware.UserFromContext(ctx)
	if !ok {
		utils.WriteError(w, "not logged in", http.StatusUnauthorized)
		return
	}

	orders, err := h.svc.GetMyOrders(ctx, user.ID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get user orders", slog.Any("error", err), slog.String("user_id", user.ID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrdersResponse{Success: true, Orders: OrderEntitiesToJSON(orders)}, http.StatusOK)
}

// GetAdminOrders возвращает все заказы.
// @Summary      Все заказы (админ)
// @Tags         orders
// @Success      200  {object}  OrdersResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Router       /order/admin [get]
func (h *HTTPHandler) GetAdminOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orders, err := h.svc.GetAdminOrders(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get admin orders", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrdersResponse{Success: true, Orders: OrderEntitiesToJSON(orders)}, http.StatusOK)
}

// GetOrderDetail возвращает заказ по ID.
// @Summary      Получить заказ по ID
// @Tags         orders
// @Param        order_id  path      string  true  "Идентификатор заказа"
// @Success      200  {object}  OrderResponse
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Router       /order/single/{order_id} [get]
func (h *HTTPHandler) GetOrderDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	if err := h.validate.Var(orderID, "required,uuid"); err != nil {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}

	order, err := h.svc.GetOrderByID(ctx, orderID)

	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order", slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderResponse{Success: true, Order: OrderEntityToJSON(order)}, http.StatusOK)
}

// AdvanceOrder переводит заказ в следующий статус.
// @Summary      Продвинуть статус заказа (админ)
// @Tags         orders
// @Param        order_id  path      string  true  "Идентификатор заказа"
// @Success      200  {object}  OrderResponse
// @Failure      400  {object}  utils.ErrorResponse "Заказ уже доставлен"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Конкурентное изменение статуса"
// @Router       /order/single/{order_id} [put]
func (h *HTTPHandler) AdvanceOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	if err := h.validate.Var(orderID, "required,uuid"); err != nil {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}

	order, err := h.svc.AdvanceOrder(ctx, orderID)

	switch {
	case err == nil:
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	case errors.Is(err, entities.ErrOrderDelivered):
		utils.WriteError(w, "order already delivered", http.StatusBadRequest)
		return
	case errors.Is(err, entities.ErrTransitionConflict):
		utils.WriteError(w, "order status changed concurrently", http.StatusConflict)
		return
	default:
		h.logger.ErrorContext(ctx, "failed to advance order", slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	statusTransitions.WithLabelValues(string(order.Status)).Inc()
	utils.WriteJSON(w, OrderResponse{Success: true, Order: OrderEntityToJSON(order)}, http.StatusOK)
}
