package rabbitmq

import (
	"context"
	"encoding/json"

	"github.com/muhammadheryan/storefront/model"
	"github.com/muhammadheryan/storefront/thirdparty/notifier"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Consumer drains the OTP queue and hands each delivery to a Sender.
type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	sender  notifier.Sender
	log     *zap.Logger
}

func NewConsumer(host string, port int, user, password string, sender notifier.Sender, log *zap.Logger) (*Consumer, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}
	return &Consumer{
		conn:    conn,
		channel: channel,
		sender:  sender,
		log:     log,
	}, nil
}

// Start begins consuming in a background goroutine that stops with ctx or
// when the channel closes. Done is closed once the loop exits.
func (c *Consumer) Start(ctx context.Context) (done <-chan struct{}, err error) {
	// process one message at a time
	if err := c.channel.Qos(1, 0, false); err != nil {
		return nil, err
	}

	msgs, err := c.channel.Consume(
		OTPQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return nil, err
	}

	finished := make(chan struct{})
	go func() {
		defer close(finished)
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				c.handle(ctx, msg)
			}
		}
	}()

	return finished, nil
}

func (c *Consumer) handle(ctx context.Context, msg amqp091.Delivery) {
	var delivery model.OTPDelivery
	if err := json.Unmarshal(msg.Body, &delivery); err != nil {
		c.log.Error("[Consumer] err unmarshal delivery", zap.Error(err))
		_ = msg.Ack(false)
		return
	}

	if err := c.sender.SendOTP(ctx, &delivery); err != nil {
		// retry once, then drop
		c.log.Error("[Consumer] err SendOTP",
			zap.Error(err),
			zap.String("channel", string(delivery.Channel)),
			zap.Bool("redelivered", msg.Redelivered))
		_ = msg.Nack(false, !msg.Redelivered)
		return
	}

	_ = msg.Ack(false)
	c.log.Info("[Consumer] otp delivered", zap.String("channel", string(delivery.Channel)))
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
