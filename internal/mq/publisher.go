package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const PaymentRequestedKey = "payment.requested"

// Channel is the part of *amqp.Channel the publisher uses.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type Publisher struct {
	channel  Channel
	exchange string
}

// NewPublisher declares the durable topic exchange and returns a publisher bound to it.
func NewPublisher(ch Channel, exchange string) (*Publisher, error) {
	err := ch.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &Publisher{
		channel:  ch,
		exchange: exchange,
	}, nil
}

// PaymentRequested is emitted when a user is handed off to the payment page.
type PaymentRequested struct {
	WithdrawalID string    `json:"withdrawal_id"`
	ChargerID    string    `json:"charger_id"`
	KioskID      string    `json:"kiosk_id"`
	UserID       string    `json:"user_id"`
	RequestedAt  time.Time `json:"requested_at"`
}

func (p *Publisher) PublishPaymentRequested(ctx context.Context, event PaymentRequested) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,
		PaymentRequestedKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			MessageId:    event.WithdrawalID,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	zap.L().Debug("published payment event",
		zap.String("withdrawal_id", event.WithdrawalID),
		zap.String("charger_id", event.ChargerID),
	)
	return nil
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		return p.channel.Close()
	}
	return nil
}
