package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/hienle2703/shop-order-service/docs"
	"github.com/hienle2703/shop-order-service/internal/app"
	"github.com/hienle2703/shop-order-service/internal/config"
	"github.com/hienle2703/shop-order-service/internal/events"
	"github.com/hienle2703/shop-order-service/internal/handler"
	"github.com/hienle2703/shop-order-service/internal/middleware"
	"github.com/hienle2703/shop-order-service/internal/payment"
	"github.com/hienle2703/shop-order-service/internal/postgres"
	"github.com/hienle2703/shop-order-service/internal/repo"
	"github.com/hienle2703/shop-order-service/internal/service"
	"github.com/hienle2703/shop-order-service/pkg/cache"
	"github.com/hienle2703/shop-order-service/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Shop Order Service API
// @version         1.0
// @description     Документация HTTP API сервиса заказов
// @BasePath        /
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	ordersRepo := repo.NewOrdersRepo(db)
	inventoryRepo := repo.NewInventoryRepo(db)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	gateway := payment.NewStripeGateway(conf.Stripe.SecretKey)
	producer := events.NewKafkaProducer(conf.Kafka)

	orderService := service.NewOrderService(logger, txManager, ordersRepo, inventoryRepo, gateway, producer, orderCache)

	auth := middleware.NewJWTAuth(conf.JWT.Secret)
	httpHandler := handler.NewHTTPHandler(logger, orderService, auth)
	handler.RegisterMetrics()

	app := app.New(logger, conf)
	app.SetHTTPHandlers(httpHandler)
	app.SetStarters(janitorAdapter{cache: orderCache})
	app.SetClosers(producer)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	app.Start(ctx)
	<-ctx.Done()
	app.Stop()
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type janitorAdapter struct {
	cache *cache.LRUCache
}

func (a janitorAdapter) Start(ctx context.Context) {
	a.cache.StartJanitor(ctx)
}
