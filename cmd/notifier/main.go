package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/muhammadheryan/storefront/cmd/config"
	"github.com/muhammadheryan/storefront/thirdparty/notifier"
	"github.com/muhammadheryan/storefront/thirdparty/rabbitmq"
	"github.com/muhammadheryan/storefront/utils/logger"
	"go.uber.org/zap"
)

// notifier delivers the OTP codes the API queues on RabbitMQ.
func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Environment)
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = log.Sync()
	}()

	sender := notifier.NewFromConfig(cfg)

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, sender, log)
	if err != nil {
		log.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	done, err := consumer.Start(ctx)
	if err != nil {
		log.Fatal("err start consumer", zap.Error(err))
	}
	log.Info("Notifier consuming", zap.String("queue", rabbitmq.OTPQueue))

	select {
	case <-ctx.Done():
		log.Info("Shutting down notifier")
	case <-done:
		log.Warn("RabbitMQ channel closed")
	}
}
