package mq

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Connection wraps a RabbitMQ connection.
type Connection struct {
	conn *amqp.Connection
}

func Dial(url string) (*Connection, error) {
	zap.L().Info("connecting to RabbitMQ")

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to RabbitMQ: %w", err)
	}
	return &Connection{conn: conn}, nil
}

func (c *Connection) Channel() (*amqp.Channel, error) {
	return c.conn.Channel()
}

func (c *Connection) Close() error {
	if err := c.conn.Close(); err != nil {
		zap.L().Error("failed to close rabbitmq connection", zap.Error(err))
		return err
	}
	zap.L().Info("rabbitmq connection closed")
	return nil
}
