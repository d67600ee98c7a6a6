package service

import (
	"context"
	"testing"
	"time"

	"github.com/GlebRadaev/kioskhub/internal/domain"
	"github.com/GlebRadaev/kioskhub/internal/repo"
	"github.com/GlebRadaev/kioskhub/internal/service/authservice"
	"github.com/GlebRadaev/kioskhub/internal/service/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repos := &repo.Repositories{
		UserRepo:       authservice.NewMockRepo(ctrl),
		KioskRepo:      gateway.NewMockKioskRepo(ctrl),
		ChargerRepo:    gateway.NewMockChargerRepo(ctrl),
		WithdrawalRepo: gateway.NewMockWithdrawalRepo(ctrl),
	}

	services := New(repos, Options{JWTSecret: "secret", FailOpen: true, MockDelay: time.Second})

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.KioskService)
	assert.NotNil(t, services.SessionService)
	assert.NotNil(t, services.WithdrawalService)
	assert.NotNil(t, services.TokenValidator)
	assert.Same(t, services.Gateway, services.KioskService)
	assert.Same(t, services.Workflow, services.SessionService)
}

func TestNewHashesWithConfiguredCost(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := authservice.NewMockRepo(ctrl)
	repos := &repo.Repositories{
		UserRepo:       users,
		KioskRepo:      gateway.NewMockKioskRepo(ctrl),
		ChargerRepo:    gateway.NewMockChargerRepo(ctrl),
		WithdrawalRepo: gateway.NewMockWithdrawalRepo(ctrl),
	}

	users.EXPECT().FindByEmail(gomock.Any(), "ana@example.com").Return(nil, nil)
	users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, user *domain.User) (*domain.User, error) {
			return user, nil
		},
	)

	services := New(repos, Options{JWTSecret: "secret", HashCost: bcrypt.MinCost})
	user, err := services.AuthService.Register(context.Background(), "Ana", "ana@example.com", "secret-pass")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(user.PasswordHash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}
