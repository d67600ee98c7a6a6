// Package payment hands a confirmed checkout over to the external payment page.
package payment

import (
	"context"
	"time"

	"github.com/GlebRadaev/kioskhub/internal/mq"
	"github.com/GlebRadaev/kioskhub/internal/routes"
	"go.uber.org/zap"
)

//go:generate mockgen -source=payment.go -destination=mock_payment.go -package=payment

type Publisher interface {
	PublishPaymentRequested(ctx context.Context, event mq.PaymentRequested) error
}

// Request describes a checkout being handed off. Mock requests never reached the stores.
type Request struct {
	WithdrawalID string
	ChargerID    string
	KioskID      string
	UserID       string
	Mock         bool
}

type Service struct {
	publisher Publisher
	clock     func() time.Time
}

// New builds the hand-off service. publisher may be nil when no broker is configured.
func New(publisher Publisher) *Service {
	return &Service{
		publisher: publisher,
		clock:     time.Now,
	}
}

// Handoff returns the payment page path for the request. Event delivery is
// best effort and never blocks the user.
func (s *Service) Handoff(ctx context.Context, req Request) string {
	path := routes.PaymentPath(req.ChargerID)
	if req.Mock || s.publisher == nil {
		return path
	}

	event := mq.PaymentRequested{
		WithdrawalID: req.WithdrawalID,
		ChargerID:    req.ChargerID,
		KioskID:      req.KioskID,
		UserID:       req.UserID,
		RequestedAt:  s.clock().UTC(),
	}
	if err := s.publisher.PublishPaymentRequested(ctx, event); err != nil {
		zap.L().Warn("payment event not published", zap.String("charger_id", req.ChargerID), zap.Error(err))
	}
	return path
}
