package workflow

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/GlebRadaev/kioskhub/internal/directory"
	"github.com/GlebRadaev/kioskhub/internal/domain"
)

type session struct {
	id      string
	kioskID string
	user    *User
	ctx     context.Context
	cancel  context.CancelFunc

	confirming atomic.Bool

	mu       sync.Mutex
	seq      uint64
	phase    Phase
	kiosk    *domain.Kiosk
	chargers []domain.Charger
	mockMode bool
	selected string
	banner   string
	err      error
	lastSeen time.Time
}

// bind derives a context that ends with either the caller's context or the session.
func (s *session) bind(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(s.ctx, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}

func (s *session) setBanner(banner string) {
	s.mu.Lock()
	s.banner = banner
	s.mu.Unlock()
}

func (s *session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *session) view() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *session) viewLocked() View {
	chargers := make([]domain.Charger, len(s.chargers))
	copy(chargers, s.chargers)

	var kiosk *domain.Kiosk
	if s.kiosk != nil {
		k := *s.kiosk
		kiosk = &k
	}

	return View{
		ID:         s.id,
		Phase:      s.phase,
		Kiosk:      kiosk,
		Chargers:   chargers,
		Stats:      directory.ComputeChargerStats(chargers),
		MockMode:   s.mockMode,
		SelectedID: s.selected,
		Confirming: s.confirming.Load(),
		Banner:     s.banner,
		Err:        s.err,
	}
}
