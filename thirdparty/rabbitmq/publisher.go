package rabbitmq

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/muhammadheryan/storefront/model"
	"github.com/rabbitmq/amqp091-go"
)

// Publisher enqueues OTP deliveries for cmd/notifier. It satisfies
// notifier.Sender, so the auth flow does not wait on SMTP or SMS gateways.
type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	mu      sync.Mutex
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, channel: channel}, nil
}

func (p *Publisher) SendOTP(ctx context.Context, delivery *model.OTPDelivery) error {
	body, err := json.Marshal(delivery)
	if err != nil {
		return err
	}

	// amqp091 channels are not safe for concurrent publishing
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.channel.PublishWithContext(ctx,
		"",       // default exchange
		OTPQueue, // routing key
		false,    // mandatory
		false,    // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Body:         body,
		},
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
