package rabbitmq

import (
	"fmt"

	"github.com/rabbitmq/amqp091-go"
)

// OTPQueue carries model.OTPDelivery messages as JSON
const OTPQueue = "otp_delivery"

// dial connects and declares the durable OTP queue on a fresh channel.
func dial(host string, port int, user, password string) (*amqp091.Connection, *amqp091.Channel, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	_, err = channel.QueueDeclare(
		OTPQueue, // name
		true,     // durable
		false,    // auto-delete
		false,    // exclusive
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}

	return conn, channel, nil
}
