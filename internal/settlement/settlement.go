// Package settlement follows reservations through the payment system: paid
// checkouts occupy their charger, failed or abandoned ones release it.
package settlement

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/GlebRadaev/kioskhub/internal/config"
	"github.com/GlebRadaev/kioskhub/internal/domain"
	"github.com/GlebRadaev/kioskhub/internal/service/gateway"
	"github.com/GlebRadaev/kioskhub/pkg/clients"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=settlement.go -destination=mock_settlement.go -package=settlement

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
	batchLimit    = 1000
	workers       = 10
)

const (
	StatusPending  = "PENDING"
	StatusPaid     = "PAID"
	StatusFailed   = "FAILED"
	StatusCanceled = "CANCELED"
)

var ErrWithdrawalMismatch = errors.New("payment response is for another withdrawal")

type Gateway interface {
	ReservedChargers(ctx context.Context, limit uint32) ([]domain.Reservation, error)
	LatestWithdrawal(ctx context.Context, chargerID string) (*domain.Withdrawal, error)
	Occupy(ctx context.Context, chargerID, userID string) error
	ReleaseReservation(ctx context.Context, chargerID, userID string) error
}

type Response struct {
	Withdrawal string `json:"withdrawal"`
	Status     string `json:"status"`
}

type Service struct {
	url            string
	gateway        Gateway
	client         clients.HTTPClientI
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
	reservationTTL time.Duration
	clock          func() time.Time
	inFlight       sync.Map
}

func New(cfg *config.Config, gateway Gateway, client clients.HTTPClientI) *Service {
	return &Service{
		url:            cfg.PaymentAddress,
		gateway:        gateway,
		client:         client,
		limit:          batchLimit,
		workerPool:     NewWorkerPool(workers),
		updateInterval: cfg.SettleInterval,
		reservationTTL: cfg.ReservationTTL,
		clock:          time.Now,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Settlement service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()
	defer s.workerPool.Close()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping settlement")
			return
		case <-ticker.C:
			s.processReservations(ctx)
		}
	}
}

func (s *Service) processReservations(ctx context.Context) {
	reservations, err := s.gateway.ReservedChargers(ctx, s.limit)
	if err != nil {
		zap.L().Error("Failed to fetch reserved chargers", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, res := range reservations {
		res := res
		id := res.Charger.ID

		if _, loaded := s.inFlight.LoadOrStore(id, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer s.inFlight.Delete(id)
				return s.handleReservation(ctx, res)
			})
			if err != nil {
				s.inFlight.Delete(id)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error queueing reservations", zap.Error(err))
	}
}

func (s *Service) handleReservation(ctx context.Context, res domain.Reservation) error {
	withdrawal, err := s.gateway.LatestWithdrawal(ctx, res.Charger.ID)
	if err != nil {
		return fmt.Errorf("failed to load withdrawal for charger %s: %w", res.Charger.ID, err)
	}
	if !belongsTo(withdrawal, res) {
		if withdrawal != nil {
			zap.L().Debug("Latest withdrawal predates the reservation, ignoring",
				zap.String("charger_id", res.Charger.ID),
				zap.String("withdrawal_id", withdrawal.ID),
			)
		}
		return s.expireIfStale(ctx, res)
	}

	url := s.url + "/api/payments/" + withdrawal.ID
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		statusCode, respBody, respHeaders, err := s.client.Get(ctx, url, nil)
		if err != nil {
			if attempt < maxRetries {
				if err := wait(ctx, retryInterval*time.Duration(attempt)); err != nil {
					return err
				}
				continue
			}
			return fmt.Errorf("failed to poll payment %s after %d retries: %w", withdrawal.ID, maxRetries, err)
		}

		switch statusCode {
		case http.StatusTooManyRequests:
			return s.handleRateLimit(ctx, withdrawal.ID, respHeaders, attempt)
		case http.StatusNoContent, http.StatusNotFound:
			zap.L().Debug("Payment not registered yet", zap.String("withdrawal_id", withdrawal.ID))
			return s.expireIfStale(ctx, res)
		case http.StatusOK:
			return s.settle(ctx, res, withdrawal, respBody)
		default:
			zap.L().Error("Unexpected status code", zap.Int("status", statusCode), zap.String("withdrawal_id", withdrawal.ID))
			return errors.New("unexpected status code")
		}
	}
	return nil
}

func (s *Service) settle(ctx context.Context, res domain.Reservation, withdrawal *domain.Withdrawal, respBody []byte) error {
	var response Response
	if err := json.Unmarshal(respBody, &response); err != nil {
		return fmt.Errorf("failed to parse response body: %w", err)
	}
	if response.Withdrawal != withdrawal.ID {
		return fmt.Errorf("%w: expected %s, got %s", ErrWithdrawalMismatch, withdrawal.ID, response.Withdrawal)
	}

	chargerID := res.Charger.ID
	switch response.Status {
	case StatusPaid:
		err := s.gateway.Occupy(ctx, chargerID, res.Charger.HeldBy)
		if errors.Is(err, gateway.ErrNotReserved) || errors.Is(err, gateway.ErrNotFound) {
			zap.L().Warn("Paid charger is no longer reserved", zap.String("charger_id", chargerID))
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to occupy charger %s: %w", chargerID, err)
		}
		zap.L().Info("Charger occupied", zap.String("charger_id", chargerID), zap.String("withdrawal_id", withdrawal.ID))
	case StatusFailed, StatusCanceled:
		zap.L().Info("Payment did not go through, releasing charger",
			zap.String("charger_id", chargerID),
			zap.String("status", response.Status),
		)
		return s.release(ctx, res)
	case StatusPending:
		return s.expireIfStale(ctx, res)
	default:
		zap.L().Warn("Unrecognized payment status", zap.String("withdrawal_id", withdrawal.ID), zap.String("status", response.Status))
		return s.expireIfStale(ctx, res)
	}
	return nil
}

// expireIfStale releases reservations that outlived the reservation TTL.
func (s *Service) expireIfStale(ctx context.Context, res domain.Reservation) error {
	if s.clock().Sub(res.Since) < s.reservationTTL {
		return nil
	}
	zap.L().Info("Reservation expired, releasing charger",
		zap.String("charger_id", res.Charger.ID),
		zap.Time("since", res.Since),
	)
	return s.release(ctx, res)
}

// belongsTo reports whether the withdrawal was made by the current holder
// after the reservation started.
func belongsTo(withdrawal *domain.Withdrawal, res domain.Reservation) bool {
	if withdrawal == nil {
		return false
	}
	return withdrawal.UserID == res.Charger.HeldBy && !withdrawal.CreatedAt.Before(res.Since)
}

// release frees the charger only if the reservation seen by this tick still holds it.
func (s *Service) release(ctx context.Context, res domain.Reservation) error {
	err := s.gateway.ReleaseReservation(ctx, res.Charger.ID, res.Charger.HeldBy)
	if errors.Is(err, gateway.ErrNotReserved) || errors.Is(err, gateway.ErrNotFound) {
		zap.L().Warn("Reservation changed before release, skipping",
			zap.String("charger_id", res.Charger.ID),
			zap.String("held_by", res.Charger.HeldBy),
		)
		return nil
	}
	return err
}

func (s *Service) handleRateLimit(ctx context.Context, withdrawalID string, respHeaders http.Header, attempt int) error {
	retryAfterHeader := respHeaders.Get("Retry-After")
	retryAfter := retryInterval * time.Duration(attempt)

	if retryAfterHeader != "" {
		if seconds, err := strconv.Atoi(retryAfterHeader); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn(
		"Rate limit detected, backing off",
		zap.String("withdrawalID", withdrawalID),
		zap.Int("attempt", attempt),
		zap.Duration("retryAfter", retryAfter),
	)
	return wait(ctx, retryAfter)
}

func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
