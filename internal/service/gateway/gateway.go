// Package gateway is the only way the rest of the service reaches the kiosk,
// charger and withdrawal stores. It translates storage failures into the
// error kinds the workflow and handlers act on.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/GlebRadaev/kioskhub/internal/directory"
	"github.com/GlebRadaev/kioskhub/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=gateway.go -destination=mock_gateway.go -package=gateway

type KioskRepo interface {
	FindAll(ctx context.Context) ([]domain.Kiosk, error)
	FindByID(ctx context.Context, id string) (*domain.Kiosk, error)
}

type ChargerRepo interface {
	FindByKioskID(ctx context.Context, kioskID string) ([]domain.Charger, error)
	FindByID(ctx context.Context, id string) (*domain.Charger, error)
	FindReserved(ctx context.Context, limit uint32) ([]domain.Reservation, error)
	Reserve(ctx context.Context, id, userID string) error
	Occupy(ctx context.Context, id, userID string) error
	Release(ctx context.Context, id string) error
	ReleaseReservation(ctx context.Context, id, userID string) error
}

type WithdrawalRepo interface {
	CreateWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error)
	GetWithdrawalsByUserID(ctx context.Context, userID string) ([]domain.Withdrawal, error)
	GetLatestByChargerID(ctx context.Context, chargerID string) (*domain.Withdrawal, error)
}

// KioskCache is a read-through cache for the kiosk list. Kiosks returns nil, nil on a miss.
type KioskCache interface {
	Kiosks(ctx context.Context) ([]domain.Kiosk, error)
	StoreKiosks(ctx context.Context, kiosks []domain.Kiosk) error
	Invalidate(ctx context.Context) error
}

var (
	ErrDataUnavailable   = errors.New("data unavailable, try again later")
	ErrChargerTaken      = errors.New("charger already taken")
	ErrNotReserved       = errors.New("charger is not reserved")
	ErrNotFound          = domain.ErrNotFound
	ErrReservationFailed = errors.New("reservation failed")
	ErrWithdrawalFailed  = errors.New("withdrawal failed")
	ErrReleaseFailed     = errors.New("release failed")
)

type Service struct {
	kiosks      KioskRepo
	chargers    ChargerRepo
	withdrawals WithdrawalRepo
	cache       KioskCache
	clock       func() time.Time
	newID       func() string
}

// New builds the gateway. cache may be nil when no cache is configured.
func New(kiosks KioskRepo, chargers ChargerRepo, withdrawals WithdrawalRepo, cache KioskCache) *Service {
	return &Service{
		kiosks:      kiosks,
		chargers:    chargers,
		withdrawals: withdrawals,
		cache:       cache,
		clock:       time.Now,
		newID:       uuid.NewString,
	}
}

func (s *Service) ListKiosks(ctx context.Context) ([]domain.Kiosk, error) {
	if s.cache != nil {
		kiosks, err := s.cache.Kiosks(ctx)
		if err != nil {
			zap.L().Warn("kiosk cache read failed", zap.Error(err))
		} else if kiosks != nil {
			return kiosks, nil
		}
	}

	kiosks, err := s.kiosks.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}
	if kiosks == nil {
		kiosks = []domain.Kiosk{}
	}

	if s.cache != nil {
		if err := s.cache.StoreKiosks(ctx, kiosks); err != nil {
			zap.L().Warn("kiosk cache write failed", zap.Error(err))
		}
	}
	return kiosks, nil
}

func (s *Service) ListAvailableKiosks(ctx context.Context) ([]domain.Kiosk, error) {
	kiosks, err := s.ListKiosks(ctx)
	if err != nil {
		return nil, err
	}
	return directory.AvailableKiosks(kiosks), nil
}

// GetKiosk returns nil, nil when the kiosk does not exist.
func (s *Service) GetKiosk(ctx context.Context, id string) (*domain.Kiosk, error) {
	kiosk, err := s.kiosks.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}
	return kiosk, nil
}

// GetCharger returns nil, nil when the charger does not exist.
func (s *Service) GetCharger(ctx context.Context, id string) (*domain.Charger, error) {
	charger, err := s.chargers.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}
	return charger, nil
}

// ListChargersForKiosk never fails: a storage error degrades to an empty list
// so the kiosk page can still render.
func (s *Service) ListChargersForKiosk(ctx context.Context, kioskID string) []domain.Charger {
	chargers, err := s.chargers.FindByKioskID(ctx, kioskID)
	if err != nil {
		zap.L().Warn("can't load chargers, continuing with none", zap.String("kiosk_id", kioskID), zap.Error(err))
		return []domain.Charger{}
	}
	if chargers == nil {
		return []domain.Charger{}
	}
	sort.SliceStable(chargers, func(i, j int) bool {
		return chargers[i].SlotNumber < chargers[j].SlotNumber
	})
	return chargers
}

// Reserve holds the charger for userID, but only while it is still available.
func (s *Service) Reserve(ctx context.Context, chargerID, userID string) error {
	err := s.chargers.Reserve(ctx, chargerID, userID)
	switch {
	case err == nil:
		s.invalidate(ctx)
		return nil
	case errors.Is(err, domain.ErrConflict):
		return ErrChargerTaken
	case errors.Is(err, domain.ErrNotFound):
		return ErrNotFound
	default:
		return fmt.Errorf("%w: %w", ErrReservationFailed, err)
	}
}

// Occupy completes a reservation once payment has gone through.
func (s *Service) Occupy(ctx context.Context, chargerID, userID string) error {
	err := s.chargers.Occupy(ctx, chargerID, userID)
	switch {
	case err == nil:
		s.invalidate(ctx)
		return nil
	case errors.Is(err, domain.ErrConflict):
		return ErrNotReserved
	case errors.Is(err, domain.ErrNotFound):
		return ErrNotFound
	default:
		return fmt.Errorf("%w: %w", ErrReservationFailed, err)
	}
}

func (s *Service) Release(ctx context.Context, chargerID string) error {
	err := s.chargers.Release(ctx, chargerID)
	switch {
	case err == nil:
		s.invalidate(ctx)
		return nil
	case errors.Is(err, domain.ErrNotFound):
		return ErrNotFound
	default:
		return fmt.Errorf("%w: %w", ErrReleaseFailed, err)
	}
}

// ReleaseReservation frees the charger only while userID still holds its reservation.
func (s *Service) ReleaseReservation(ctx context.Context, chargerID, userID string) error {
	err := s.chargers.ReleaseReservation(ctx, chargerID, userID)
	switch {
	case err == nil:
		s.invalidate(ctx)
		return nil
	case errors.Is(err, domain.ErrConflict):
		return ErrNotReserved
	case errors.Is(err, domain.ErrNotFound):
		return ErrNotFound
	default:
		return fmt.Errorf("%w: %w", ErrReleaseFailed, err)
	}
}

func (s *Service) CreateWithdrawal(ctx context.Context, chargerID, userID, kioskID string) (*domain.Withdrawal, error) {
	withdrawal := &domain.Withdrawal{
		ID:        s.newID(),
		ChargerID: chargerID,
		UserID:    userID,
		KioskID:   kioskID,
		Timestamp: s.clock().UTC().Format(time.RFC3339),
		Status:    domain.WithdrawalPending,
	}
	created, err := s.withdrawals.CreateWithdrawal(ctx, withdrawal)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWithdrawalFailed, err)
	}
	return created, nil
}

// Withdrawals lists the user's withdrawals, newest first.
func (s *Service) Withdrawals(ctx context.Context, userID string) ([]domain.Withdrawal, error) {
	withdrawals, err := s.withdrawals.GetWithdrawalsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}
	return withdrawals, nil
}

func (s *Service) ReservedChargers(ctx context.Context, limit uint32) ([]domain.Reservation, error) {
	return s.chargers.FindReserved(ctx, limit)
}

// LatestWithdrawal returns nil, nil when the charger has no withdrawal.
func (s *Service) LatestWithdrawal(ctx context.Context, chargerID string) (*domain.Withdrawal, error) {
	return s.withdrawals.GetLatestByChargerID(ctx, chargerID)
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		zap.L().Warn("kiosk cache invalidation failed", zap.Error(err))
	}
}
