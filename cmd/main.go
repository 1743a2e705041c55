package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	authapp "github.com/muhammadheryan/storefront/application/auth"
	categoryapp "github.com/muhammadheryan/storefront/application/category"
	commentapp "github.com/muhammadheryan/storefront/application/comment"
	orderapp "github.com/muhammadheryan/storefront/application/order"
	productapp "github.com/muhammadheryan/storefront/application/product"
	regionapp "github.com/muhammadheryan/storefront/application/region"
	userapp "github.com/muhammadheryan/storefront/application/user"
	"github.com/muhammadheryan/storefront/cmd/config"
	"github.com/muhammadheryan/storefront/cmd/database"
	redisclient "github.com/muhammadheryan/storefront/cmd/redis"
	_ "github.com/muhammadheryan/storefront/docs"
	categoryRepo "github.com/muhammadheryan/storefront/repository/category"
	commentRepo "github.com/muhammadheryan/storefront/repository/comment"
	orderRepo "github.com/muhammadheryan/storefront/repository/order"
	productRepo "github.com/muhammadheryan/storefront/repository/product"
	redisRepo "github.com/muhammadheryan/storefront/repository/redis"
	regionRepo "github.com/muhammadheryan/storefront/repository/region"
	txRepo "github.com/muhammadheryan/storefront/repository/tx"
	userRepo "github.com/muhammadheryan/storefront/repository/user"
	"github.com/muhammadheryan/storefront/thirdparty/notifier"
	"github.com/muhammadheryan/storefront/thirdparty/rabbitmq"
	"github.com/muhammadheryan/storefront/thirdparty/storage"
	"github.com/muhammadheryan/storefront/transport"
	"github.com/muhammadheryan/storefront/utils/logger"
	"github.com/muhammadheryan/storefront/utils/otp"
	"github.com/muhammadheryan/storefront/utils/token"
	"go.uber.org/zap"
)

// @title STOREFRONT API
// @version 1.0
// @description Storefront API Documentation
// @host localhost:3002
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	log, err := logger.New(cfg.Environment)
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting server", zap.String("env", cfg.Environment))

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			log.Fatal("err migrate db", zap.Error(err))
		}
	}

	redisClient, err := redisclient.New(cfg)
	if err != nil {
		log.Fatal("err connect redis", zap.Error(err))
	}
	if redisClient != nil {
		defer redisClient.Close()
	} else {
		log.Warn("redis disabled, otp attempt limit is off")
	}

	// OTP delivery goes through the queue when RabbitMQ is on
	var sender notifier.Sender
	if cfg.RabbitMQ.Enabled {
		publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			log.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer publisher.Close()
		sender = publisher
	} else {
		sender = notifier.NewFromConfig(cfg)
	}

	issuer, err := token.New(token.Config{
		AccessSecret:      cfg.Auth.AccessSecret,
		RefreshSecret:     cfg.Auth.RefreshSecret,
		AccessExpiration:  cfg.Auth.AccessExpiration,
		RefreshExpiration: cfg.Auth.RefreshExpiration,
	})
	if err != nil {
		log.Fatal("err token issuer", zap.Error(err))
	}

	store, err := storage.NewDisk(cfg.Storage.UploadDir)
	if err != nil {
		log.Fatal("err upload storage", zap.Error(err))
	}

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	RegionRepo := regionRepo.NewRegionRepository(db)
	CategoryRepo := categoryRepo.NewCategoryRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	CommentRepo := commentRepo.NewCommentRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	TxRepo := txRepo.NewTxRepository(db)
	RedisRepo := redisRepo.NewRepository(redisClient)

	// Initialize application layers
	httpTransport := transport.NewTransport(&transport.RestHandler{
		AuthApp:     authapp.NewAuthApp(cfg, log, UserRepo, RedisRepo, otp.New(cfg.OTP.Salt, cfg.OTP.Period), issuer, sender),
		UserApp:     userapp.NewUserApp(log, UserRepo),
		RegionApp:   regionapp.NewRegionApp(log, RegionRepo, UserRepo),
		CategoryApp: categoryapp.NewCategoryApp(log, CategoryRepo),
		ProductApp:  productapp.NewProductApp(log, ProductRepo, CommentRepo),
		CommentApp:  commentapp.NewCommentApp(log, CommentRepo),
		OrderApp:    orderapp.NewOrderApp(log, TxRepo, OrderRepo),

		Storage:       store,
		PublicBaseURL: cfg.Storage.PublicBaseURL,
		MaxUploadSize: cfg.Storage.MaxUploadSize,
		MetricsAPIKey: cfg.Metrics.APIKey,
		Log:           log,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("err shutdown server", zap.Error(err))
	}
}
