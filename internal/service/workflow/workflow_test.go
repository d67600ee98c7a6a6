package workflow

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/GlebRadaev/kioskhub/internal/domain"
	"github.com/GlebRadaev/kioskhub/internal/service/gateway"
	"github.com/GlebRadaev/kioskhub/internal/service/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

var (
	fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	testUser = &User{ID: "u1", Name: "Ana", Email: "ana@example.com"}
)

func NewMock(t *testing.T, failOpen bool) (*Service, *MockGateway, *MockPayments) {
	ctrl := gomock.NewController(t)
	gw := NewMockGateway(ctrl)
	payments := NewMockPayments(ctrl)
	service := New(gw, payments, failOpen, 10*time.Millisecond)
	service.clock = func() time.Time { return fixedNow }
	return service, gw, payments
}

func liveKiosk() *domain.Kiosk {
	return &domain.Kiosk{ID: "k1", Name: "Mall", Location: "Floor 1", Available: 4, Total: 6, Status: domain.KioskAvailable}
}

func liveChargers() []domain.Charger {
	statuses := []domain.ChargerStatus{
		domain.ChargerAvailable, domain.ChargerOccupied, domain.ChargerAvailable,
		domain.ChargerAvailable, domain.ChargerMaintenance, domain.ChargerAvailable,
	}
	chargers := make([]domain.Charger, 0, len(statuses))
	for i, st := range statuses {
		chargers = append(chargers, domain.Charger{
			ID:         "c" + string(rune('1'+i)),
			KioskID:    "k1",
			SlotNumber: i + 1,
			Status:     st,
		})
	}
	return chargers
}

func expectLoad(gw *MockGateway, kiosk *domain.Kiosk, kioskErr error, chargers []domain.Charger) {
	gw.EXPECT().GetKiosk(gomock.Any(), "k1").Return(kiosk, kioskErr)
	gw.EXPECT().ListChargersForKiosk(gomock.Any(), "k1").Return(chargers)
}

func countAvailable(chargers []domain.Charger) int {
	n := 0
	for _, c := range chargers {
		if c.Status == domain.ChargerAvailable {
			n++
		}
	}
	return n
}

func TestService_OpenLoadOutcomes(t *testing.T) {
	tests := []struct {
		name          string
		kiosk         *domain.Kiosk
		kioskErr      error
		chargers      []domain.Charger
		expectedMock  bool
		expectedName  string
		expectedAvail int
	}{
		{
			name:          "Backend unreachable uses demo kiosk and chargers",
			kioskErr:      gateway.ErrDataUnavailable,
			chargers:      []domain.Charger{},
			expectedMock:  true,
			expectedName:  "Totem 1",
			expectedAvail: 3,
		},
		{
			name:          "Kiosk without chargers uses demo chargers",
			kiosk:         liveKiosk(),
			chargers:      []domain.Charger{},
			expectedMock:  true,
			expectedName:  "Mall",
			expectedAvail: 3,
		},
		{
			name:          "Unknown kiosk uses demo data",
			chargers:      []domain.Charger{},
			expectedMock:  true,
			expectedName:  "Totem 1",
			expectedAvail: 3,
		},
		{
			name:          "Live data",
			kiosk:         liveKiosk(),
			chargers:      liveChargers(),
			expectedMock:  false,
			expectedName:  "Mall",
			expectedAvail: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, gw, _ := NewMock(t, true)
			expectLoad(gw, tt.kiosk, tt.kioskErr, tt.chargers)

			view, err := service.Open(context.Background(), "k1", testUser)
			require.NoError(t, err)

			assert.Equal(t, PhaseReady, view.Phase)
			assert.Equal(t, tt.expectedMock, view.MockMode)
			require.NotNil(t, view.Kiosk)
			assert.Equal(t, tt.expectedName, view.Kiosk.Name)
			assert.Len(t, view.Chargers, 6)
			assert.Equal(t, tt.expectedAvail, countAvailable(view.Chargers))
			assert.Equal(t, 6, view.Stats.Total)
			assert.Equal(t, tt.expectedAvail, view.Stats.Available)
			assert.Empty(t, view.SelectedID)
		})
	}
}

func TestService_OpenWithoutKiosk(t *testing.T) {
	service, _, _ := NewMock(t, true)

	view, err := service.Open(context.Background(), "", nil)
	require.NoError(t, err)
	assert.Equal(t, PhaseError, view.Phase)
	assert.ErrorIs(t, view.Err, ErrNoKiosk)

	_, err = service.Select(view.ID, "c1")
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestFallbackLayout(t *testing.T) {
	kiosk := fallbackKiosk("k9", fixedNow)
	chargers := fallbackChargers("k9", fixedNow)

	assert.Equal(t, "k9", kiosk.ID)
	assert.Equal(t, 3, kiosk.Available)
	assert.Equal(t, 6, kiosk.Total)
	require.Len(t, chargers, 6)
	for i, c := range chargers {
		assert.Equal(t, i+1, c.SlotNumber)
		assert.Equal(t, "k9", c.KioskID)
		assert.Equal(t, fallbackModel, c.Model)
		if c.Status == domain.ChargerOccupied || c.Status == domain.ChargerReserved {
			assert.NotEmpty(t, c.HeldBy, "held chargers name their holder")
		}
	}
	assert.Equal(t, 85, *chargers[0].BatteryLevel)
	assert.Equal(t, 0, *chargers[4].BatteryLevel)
}

func TestService_Select(t *testing.T) {
	service, gw, _ := NewMock(t, true)
	expectLoad(gw, liveKiosk(), nil, liveChargers())
	view, err := service.Open(context.Background(), "k1", testUser)
	require.NoError(t, err)

	view, err = service.Select(view.ID, "c1")
	require.NoError(t, err)
	assert.Equal(t, "c1", view.SelectedID)

	tests := []struct {
		name      string
		chargerID string
	}{
		{name: "Occupied charger", chargerID: "c2"},
		{name: "Maintenance charger", chargerID: "c5"},
		{name: "Unknown charger", chargerID: "nope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			after, err := service.Select(view.ID, tt.chargerID)
			assert.ErrorIs(t, err, ErrNotSelectable)
			assert.Equal(t, "c1", after.SelectedID, "selection is unchanged")
		})
	}

	view, err = service.Cancel(view.ID)
	require.NoError(t, err)
	assert.Empty(t, view.SelectedID)

	_, err = service.Select("missing", "c1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestService_ConfirmLive(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := NewMockGateway(ctrl)
	service := New(gw, payment.New(nil), true, time.Millisecond)
	ctx := context.Background()

	expectLoad(gw, liveKiosk(), nil, liveChargers())
	view, err := service.Open(ctx, "k1", testUser)
	require.NoError(t, err)
	assert.Equal(t, 4, view.Stats.Available)
	assert.Equal(t, 6, view.Stats.Total)

	_, err = service.Select(view.ID, "c3")
	require.NoError(t, err)

	gomock.InOrder(
		gw.EXPECT().Reserve(gomock.Any(), "c3", "u1").Return(nil),
		gw.EXPECT().CreateWithdrawal(gomock.Any(), "c3", "u1", "k1").Return(&domain.Withdrawal{ID: "w1"}, nil),
	)

	redirect, err := service.Confirm(ctx, view.ID)
	require.NoError(t, err)
	assert.Equal(t, "/payment/c3", redirect)

	after, err := service.Get(view.ID)
	require.NoError(t, err)
	assert.False(t, after.Confirming)
}

func TestService_ConfirmHandsOffWithdrawal(t *testing.T) {
	service, gw, payments := NewMock(t, true)
	ctx := context.Background()
	expectLoad(gw, liveKiosk(), nil, liveChargers())
	view, _ := service.Open(ctx, "k1", testUser)
	_, _ = service.Select(view.ID, "c1")

	gw.EXPECT().Reserve(gomock.Any(), "c1", "u1").Return(nil)
	gw.EXPECT().CreateWithdrawal(gomock.Any(), "c1", "u1", "k1").Return(&domain.Withdrawal{ID: "w7"}, nil)
	payments.EXPECT().Handoff(gomock.Any(), payment.Request{WithdrawalID: "w7", ChargerID: "c1", KioskID: "k1", UserID: "u1"}).Return("/payment/c1")

	redirect, err := service.Confirm(ctx, view.ID)
	require.NoError(t, err)
	assert.Equal(t, "/payment/c1", redirect)
}

func TestService_ConfirmMockBranch(t *testing.T) {
	tests := []struct {
		name     string
		kiosk    *domain.Kiosk
		kioskErr error
		chargers []domain.Charger
		user     *User
	}{
		{name: "Demo data", kioskErr: errors.New("offline"), chargers: []domain.Charger{}, user: testUser},
		{name: "Anonymous user", kiosk: liveKiosk(), chargers: liveChargers(), user: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, gw, payments := NewMock(t, true)
			ctx := context.Background()
			expectLoad(gw, tt.kiosk, tt.kioskErr, tt.chargers)
			view, err := service.Open(ctx, "k1", tt.user)
			require.NoError(t, err)
			_, err = service.Select(view.ID, "c1")
			if err != nil {
				_, err = service.Select(view.ID, "charger-1")
			}
			require.NoError(t, err)

			payments.EXPECT().Handoff(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, req payment.Request) string {
					assert.True(t, req.Mock)
					assert.Empty(t, req.WithdrawalID)
					return "/payment/" + req.ChargerID
				},
			)

			started := time.Now()
			redirect, err := service.Confirm(ctx, view.ID)
			require.NoError(t, err)
			assert.Contains(t, redirect, "/payment/")
			assert.GreaterOrEqual(t, time.Since(started), 10*time.Millisecond, "demo confirm is delayed")
		})
	}
}

func TestService_ConfirmTwiceIsNoop(t *testing.T) {
	service, gw, payments := NewMock(t, true)
	ctx := context.Background()
	expectLoad(gw, liveKiosk(), nil, liveChargers())
	view, _ := service.Open(ctx, "k1", testUser)
	_, _ = service.Select(view.ID, "c1")

	entered := make(chan struct{})
	release := make(chan struct{})
	gw.EXPECT().Reserve(gomock.Any(), "c1", "u1").DoAndReturn(
		func(context.Context, string, string) error {
			close(entered)
			<-release
			return nil
		},
	).Times(1)
	gw.EXPECT().CreateWithdrawal(gomock.Any(), "c1", "u1", "k1").Return(&domain.Withdrawal{ID: "w1"}, nil).Times(1)
	payments.EXPECT().Handoff(gomock.Any(), gomock.Any()).Return("/payment/c1").Times(1)

	var wg sync.WaitGroup
	wg.Add(1)
	var firstErr error
	go func() {
		defer wg.Done()
		_, firstErr = service.Confirm(ctx, view.ID)
	}()

	<-entered
	during, err := service.Get(view.ID)
	require.NoError(t, err)
	assert.True(t, during.Confirming)

	_, err = service.Confirm(ctx, view.ID)
	assert.ErrorIs(t, err, ErrConfirmInProgress)
	_, err = service.Select(view.ID, "c3")
	assert.ErrorIs(t, err, ErrConfirmInProgress)

	close(release)
	wg.Wait()
	assert.NoError(t, firstErr)
}

func TestService_ConfirmFailurePolicy(t *testing.T) {
	tests := []struct {
		name           string
		failOpen       bool
		prepareMock    func(gw *MockGateway, payments *MockPayments)
		expectRedirect bool
		expectBanner   string
	}{
		{
			name:     "Fail-open reservation error still hands off",
			failOpen: true,
			prepareMock: func(gw *MockGateway, payments *MockPayments) {
				gw.EXPECT().Reserve(gomock.Any(), "c1", "u1").Return(gateway.ErrReservationFailed)
				payments.EXPECT().Handoff(gomock.Any(), gomock.Any()).Return("/payment/c1")
			},
			expectRedirect: true,
		},
		{
			name:     "Fail-open withdrawal error still hands off",
			failOpen: true,
			prepareMock: func(gw *MockGateway, payments *MockPayments) {
				gw.EXPECT().Reserve(gomock.Any(), "c1", "u1").Return(nil)
				gw.EXPECT().CreateWithdrawal(gomock.Any(), "c1", "u1", "k1").Return(nil, gateway.ErrWithdrawalFailed)
				payments.EXPECT().Handoff(gomock.Any(), gomock.Any()).Return("/payment/c1")
			},
			expectRedirect: true,
		},
		{
			name:     "Fail-closed reservation error blocks",
			failOpen: false,
			prepareMock: func(gw *MockGateway, payments *MockPayments) {
				gw.EXPECT().Reserve(gomock.Any(), "c1", "u1").Return(gateway.ErrReservationFailed)
			},
			expectBanner: BannerCheckout,
		},
		{
			name:     "Fail-closed withdrawal error releases the charger",
			failOpen: false,
			prepareMock: func(gw *MockGateway, payments *MockPayments) {
				gw.EXPECT().Reserve(gomock.Any(), "c1", "u1").Return(nil)
				gw.EXPECT().CreateWithdrawal(gomock.Any(), "c1", "u1", "k1").Return(nil, gateway.ErrWithdrawalFailed)
				gw.EXPECT().Release(gomock.Any(), "c1").Return(nil)
			},
			expectBanner: BannerCheckout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, gw, payments := NewMock(t, tt.failOpen)
			ctx := context.Background()
			expectLoad(gw, liveKiosk(), nil, liveChargers())
			view, _ := service.Open(ctx, "k1", testUser)
			_, _ = service.Select(view.ID, "c1")
			tt.prepareMock(gw, payments)

			redirect, err := service.Confirm(ctx, view.ID)
			after, _ := service.Get(view.ID)
			if tt.expectRedirect {
				require.NoError(t, err)
				assert.Equal(t, "/payment/c1", redirect)
				return
			}
			assert.Error(t, err)
			assert.Empty(t, redirect)
			assert.Equal(t, tt.expectBanner, after.Banner)
			assert.Equal(t, "c1", after.SelectedID, "the user can retry")
			assert.False(t, after.Confirming)
		})
	}
}

func TestService_ConfirmConflict(t *testing.T) {
	for _, failOpen := range []bool{true, false} {
		service, gw, _ := NewMock(t, failOpen)
		ctx := context.Background()
		expectLoad(gw, liveKiosk(), nil, liveChargers())
		view, _ := service.Open(ctx, "k1", testUser)
		_, _ = service.Select(view.ID, "c1")

		refreshed := liveChargers()
		refreshed[0].Status = domain.ChargerReserved
		refreshed[0].HeldBy = "someone-else"
		gw.EXPECT().Reserve(gomock.Any(), "c1", "u1").Return(gateway.ErrChargerTaken)
		gw.EXPECT().ListChargersForKiosk(gomock.Any(), "k1").Return(refreshed)

		redirect, err := service.Confirm(ctx, view.ID)
		assert.ErrorIs(t, err, gateway.ErrChargerTaken)
		assert.Empty(t, redirect)

		after, _ := service.Get(view.ID)
		assert.Empty(t, after.SelectedID)
		assert.Equal(t, BannerChargerTaken, after.Banner)
		assert.Equal(t, domain.ChargerReserved, after.Chargers[0].Status)
	}
}

func TestService_ConfirmWithoutSelection(t *testing.T) {
	service, gw, _ := NewMock(t, true)
	expectLoad(gw, liveKiosk(), nil, liveChargers())
	view, _ := service.Open(context.Background(), "k1", testUser)

	_, err := service.Confirm(context.Background(), view.ID)
	assert.ErrorIs(t, err, ErrNothingSelected)
}

func TestService_CloseAbandonsConfirm(t *testing.T) {
	service, gw, _ := NewMock(t, true)
	service.mockDelay = time.Hour
	ctx := context.Background()
	expectLoad(gw, liveKiosk(), nil, liveChargers())
	view, _ := service.Open(ctx, "k1", nil)
	_, _ = service.Select(view.ID, "c1")

	done := make(chan error, 1)
	go func() {
		_, err := service.Confirm(ctx, view.ID)
		done <- err
	}()

	require.Eventually(t, func() bool {
		v, err := service.Get(view.ID)
		return err == nil && v.Confirming
	}, time.Second, time.Millisecond)

	require.NoError(t, service.Close(view.ID))
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("confirm was not abandoned")
	}

	assert.ErrorIs(t, service.Close(view.ID), ErrSessionNotFound)
	_, err := service.Get(view.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestService_OpenCancelled(t *testing.T) {
	service, gw, _ := NewMock(t, true)
	ctx, cancel := context.WithCancel(context.Background())

	gw.EXPECT().GetKiosk(gomock.Any(), "k1").DoAndReturn(func(ctx context.Context, _ string) (*domain.Kiosk, error) {
		cancel()
		<-ctx.Done()
		return nil, ctx.Err()
	})
	gw.EXPECT().ListChargersForKiosk(gomock.Any(), "k1").Return([]domain.Charger{})

	_, err := service.Open(ctx, "k1", testUser)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, service.sessions, "abandoned sessions are not kept")
}

func TestService_Reload(t *testing.T) {
	service, gw, _ := NewMock(t, true)
	ctx := context.Background()

	expectLoad(gw, nil, errors.New("offline"), []domain.Charger{})
	view, err := service.Open(ctx, "k1", testUser)
	require.NoError(t, err)
	assert.True(t, view.MockMode)

	expectLoad(gw, liveKiosk(), nil, liveChargers())
	view, err = service.Reload(ctx, view.ID)
	require.NoError(t, err)
	assert.False(t, view.MockMode)
	assert.Equal(t, "Mall", view.Kiosk.Name)

	_, err = service.Reload(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestService_Prune(t *testing.T) {
	service, gw, _ := NewMock(t, true)
	now := fixedNow
	service.clock = func() time.Time { return now }

	expectLoad(gw, liveKiosk(), nil, liveChargers())
	view, _ := service.Open(context.Background(), "k1", nil)

	assert.Equal(t, 0, service.Prune(time.Minute))

	now = now.Add(2 * time.Minute)
	assert.Equal(t, 1, service.Prune(time.Minute))
	_, err := service.Get(view.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
