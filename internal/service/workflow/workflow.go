// Package workflow drives the charger checkout on a kiosk page: it loads the
// kiosk and its chargers, tracks the single selected charger and runs the
// reserve, withdrawal and payment hand-off sequence.
package workflow

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/GlebRadaev/kioskhub/internal/directory"
	"github.com/GlebRadaev/kioskhub/internal/domain"
	"github.com/GlebRadaev/kioskhub/internal/service/gateway"
	"github.com/GlebRadaev/kioskhub/internal/service/payment"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=workflow.go -destination=mock_workflow.go -package=workflow

type Gateway interface {
	GetKiosk(ctx context.Context, id string) (*domain.Kiosk, error)
	ListChargersForKiosk(ctx context.Context, kioskID string) []domain.Charger
	Reserve(ctx context.Context, chargerID, userID string) error
	CreateWithdrawal(ctx context.Context, chargerID, userID, kioskID string) (*domain.Withdrawal, error)
	Release(ctx context.Context, chargerID string) error
}

type Payments interface {
	Handoff(ctx context.Context, req payment.Request) string
}

type Phase string

const (
	PhaseLoading Phase = "loading"
	PhaseReady   Phase = "ready"
	PhaseError   Phase = "error"
)

const (
	BannerChargerTaken = "charger already taken"
	BannerChargerGone  = "charger no longer exists"
	BannerCheckout     = "could not complete checkout, try again"
)

var (
	ErrNoKiosk           = errors.New("no kiosk id supplied")
	ErrSessionNotFound   = errors.New("session not found")
	ErrNotSelectable     = errors.New("charger is not selectable")
	ErrNothingSelected   = errors.New("no charger selected")
	ErrConfirmInProgress = errors.New("confirmation already in progress")
	ErrNotReady          = errors.New("session is not ready")
)

// User is the authenticated person driving a session.
type User struct {
	ID    string
	Name  string
	Email string
}

// View is a consistent snapshot of a session.
type View struct {
	ID         string
	Phase      Phase
	Kiosk      *domain.Kiosk
	Chargers   []domain.Charger
	Stats      directory.ChargerStats
	MockMode   bool
	SelectedID string
	Confirming bool
	Banner     string
	Err        error
}

type Service struct {
	gateway   Gateway
	payments  Payments
	failOpen  bool
	mockDelay time.Duration
	clock     func() time.Time
	newID     func() string

	mu       sync.RWMutex
	sessions map[string]*session
}

func New(gateway Gateway, payments Payments, failOpen bool, mockDelay time.Duration) *Service {
	return &Service{
		gateway:   gateway,
		payments:  payments,
		failOpen:  failOpen,
		mockDelay: mockDelay,
		clock:     time.Now,
		newID:     uuid.NewString,
		sessions:  make(map[string]*session),
	}
}

// Open starts a session for the kiosk and runs its initial load. A nil user
// means nobody is signed in.
func (s *Service) Open(ctx context.Context, kioskID string, user *User) (View, error) {
	sessCtx, cancel := context.WithCancel(context.Background())
	sess := &session{
		id:       s.newID(),
		kioskID:  kioskID,
		user:     user,
		ctx:      sessCtx,
		cancel:   cancel,
		phase:    PhaseLoading,
		lastSeen: s.clock(),
	}

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	if err := s.load(ctx, sess); err != nil {
		s.remove(sess.id)
		return View{}, err
	}
	return sess.view(), nil
}

// Reload re-runs the initial load ("try again").
func (s *Service) Reload(ctx context.Context, id string) (View, error) {
	sess, err := s.get(id)
	if err != nil {
		return View{}, err
	}
	if sess.confirming.Load() {
		return sess.view(), ErrConfirmInProgress
	}
	if err := s.load(ctx, sess); err != nil {
		return View{}, err
	}
	return sess.view(), nil
}

func (s *Service) Get(id string) (View, error) {
	sess, err := s.get(id)
	if err != nil {
		return View{}, err
	}
	return sess.view(), nil
}

// Select marks the charger as the pending choice. Anything but an available
// charger of a ready session leaves the state untouched.
func (s *Service) Select(id, chargerID string) (View, error) {
	sess, err := s.get(id)
	if err != nil {
		return View{}, err
	}
	if sess.confirming.Load() {
		return sess.view(), ErrConfirmInProgress
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.phase != PhaseReady {
		return sess.viewLocked(), ErrNotReady
	}
	charger, ok := directory.FindCharger(sess.chargers, chargerID)
	if !ok || !directory.IsAvailable(charger) {
		zap.L().Debug("ignoring selection", zap.String("session_id", id), zap.String("charger_id", chargerID))
		return sess.viewLocked(), ErrNotSelectable
	}
	sess.selected = chargerID
	sess.banner = ""
	return sess.viewLocked(), nil
}

func (s *Service) Cancel(id string) (View, error) {
	sess, err := s.get(id)
	if err != nil {
		return View{}, err
	}
	if sess.confirming.Load() {
		return sess.view(), ErrConfirmInProgress
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.selected = ""
	return sess.viewLocked(), nil
}

// Close abandons the session; in-flight work observes the cancellation and
// its late results are dropped.
func (s *Service) Close(id string) error {
	sess := s.remove(id)
	if sess == nil {
		return ErrSessionNotFound
	}
	return nil
}

// Confirm runs the checkout for the selected charger and returns the path of
// the payment page. Only one confirmation per session runs at a time.
func (s *Service) Confirm(ctx context.Context, id string) (string, error) {
	sess, err := s.get(id)
	if err != nil {
		return "", err
	}
	if !sess.confirming.CompareAndSwap(false, true) {
		return "", ErrConfirmInProgress
	}
	defer sess.confirming.Store(false)

	sess.mu.Lock()
	if sess.phase != PhaseReady || sess.selected == "" {
		sess.mu.Unlock()
		return "", ErrNothingSelected
	}
	chargerID := sess.selected
	mockMode := sess.mockMode
	sess.banner = ""
	sess.mu.Unlock()

	ctx, stop := sess.bind(ctx)
	defer stop()

	req := payment.Request{ChargerID: chargerID, KioskID: sess.kioskID}

	if mockMode || sess.user == nil {
		if err := sleep(ctx, s.mockDelay); err != nil {
			return "", err
		}
		req.Mock = true
		return s.payments.Handoff(ctx, req), nil
	}

	userID := sess.user.ID
	req.UserID = userID
	logger := zap.L().With(zap.String("session_id", id), zap.String("charger_id", chargerID))

	err = s.gateway.Reserve(ctx, chargerID, userID)
	switch {
	case errors.Is(err, gateway.ErrChargerTaken):
		s.refreshAfterConflict(ctx, sess, BannerChargerTaken)
		return "", err
	case errors.Is(err, gateway.ErrNotFound):
		s.refreshAfterConflict(ctx, sess, BannerChargerGone)
		return "", err
	case err != nil:
		logger.Warn("reservation failed", zap.Error(err))
		if !s.failOpen {
			sess.setBanner(BannerCheckout)
			return "", err
		}
		return s.handoff(ctx, req)
	}

	withdrawal, err := s.gateway.CreateWithdrawal(ctx, chargerID, userID, sess.kioskID)
	if err != nil {
		logger.Warn("withdrawal failed", zap.Error(err))
		if !s.failOpen {
			if rerr := s.gateway.Release(context.WithoutCancel(ctx), chargerID); rerr != nil {
				logger.Error("can't release charger after failed withdrawal", zap.Error(rerr))
			}
			sess.setBanner(BannerCheckout)
			return "", err
		}
		return s.handoff(ctx, req)
	}

	req.WithdrawalID = withdrawal.ID
	return s.handoff(ctx, req)
}

func (s *Service) handoff(ctx context.Context, req payment.Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.payments.Handoff(ctx, req), nil
}

func (s *Service) refreshAfterConflict(ctx context.Context, sess *session, banner string) {
	chargers := s.gateway.ListChargersForKiosk(ctx, sess.kioskID)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if len(chargers) > 0 {
		sess.chargers = chargers
	}
	sess.selected = ""
	sess.banner = banner
}

func (s *Service) load(ctx context.Context, sess *session) error {
	sess.mu.Lock()
	sess.seq++
	seq := sess.seq
	sess.phase = PhaseLoading
	sess.selected = ""
	sess.banner = ""
	sess.err = nil
	sess.lastSeen = s.clock()
	sess.mu.Unlock()

	if sess.kioskID == "" {
		sess.mu.Lock()
		sess.phase = PhaseError
		sess.err = ErrNoKiosk
		sess.mu.Unlock()
		return nil
	}

	ctx, stop := sess.bind(ctx)
	defer stop()

	var (
		kiosk    *domain.Kiosk
		chargers []domain.Charger
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		kiosk, err = s.gateway.GetKiosk(gctx, sess.kioskID)
		return err
	})
	g.Go(func() error {
		chargers = s.gateway.ListChargersForKiosk(gctx, sess.kioskID)
		return nil
	})
	fetchErr := g.Wait()

	if err := ctx.Err(); err != nil {
		return err
	}

	now := s.clock()
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if seq != sess.seq {
		return nil
	}

	switch {
	case fetchErr != nil || kiosk == nil:
		if fetchErr != nil {
			zap.L().Warn("kiosk unavailable, using demo data", zap.String("kiosk_id", sess.kioskID), zap.Error(fetchErr))
		}
		sess.kiosk = fallbackKiosk(sess.kioskID, now)
		sess.chargers = fallbackChargers(sess.kioskID, now)
		sess.mockMode = true
	case len(chargers) == 0:
		sess.kiosk = kiosk
		sess.chargers = fallbackChargers(sess.kioskID, now)
		sess.mockMode = true
	default:
		sess.kiosk = kiosk
		sess.chargers = chargers
		sess.mockMode = false
	}
	sess.phase = PhaseReady
	return nil
}

// Prune closes sessions idle for longer than maxIdle and reports how many went.
func (s *Service) Prune(maxIdle time.Duration) int {
	cutoff := s.clock().Add(-maxIdle)

	s.mu.Lock()
	var stale []*session
	for id, sess := range s.sessions {
		if sess.idleSince().Before(cutoff) && !sess.confirming.Load() {
			stale = append(stale, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range stale {
		sess.cancel()
	}
	return len(stale)
}

// RunJanitor prunes idle sessions every interval until ctx is done.
func (s *Service) RunJanitor(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Prune(maxIdle); n > 0 {
				zap.L().Info("pruned idle sessions", zap.Int("count", n))
			}
		}
	}
}

func (s *Service) get(id string) (*session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	sess.touch(s.clock())
	return sess, nil
}

func (s *Service) remove(id string) *session {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if !ok {
		return nil
	}
	sess.cancel()
	return sess
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
