package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/GlebRadaev/kioskhub/internal/domain"
	"github.com/GlebRadaev/kioskhub/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(repo, hashService, jwtService)
	service.newID = func() string { return "user-1" }
	defer ctrl.Finish()
	return service, repo, hashService, jwtService
}

func TestRegister(t *testing.T) {
	service, userRepo, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		userName      string
		email         string
		password      string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:     "Successful registration",
			userName: " Ana ",
			email:    "Ana@Example.com",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "ana@example.com").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					return user, nil
				})
			},
			expectedUser: &domain.User{
				ID:           "user-1",
				Name:         "Ana",
				Email:        "ana@example.com",
				Role:         "user",
				PasswordHash: "hashedpassword",
			},
			expectedError: nil,
		},
		{
			name:     "User already exists",
			userName: "Ana",
			email:    "ana@example.com",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "ana@example.com").Return(&domain.User{ID: "user-0"}, nil)
			},
			expectedUser:  nil,
			expectedError: ErrUserExists,
		},
		{
			name:          "Invalid email",
			email:         "not-an-email",
			password:      "testpassword",
			prepareMock:   func() {},
			expectedError: ErrInvalidEmail,
		},
		{
			name:          "Short password",
			email:         "ana@example.com",
			password:      "123",
			prepareMock:   func() {},
			expectedError: ErrWeakPassword,
		},
		{
			name:     "Repository failure",
			email:    "ana@example.com",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "ana@example.com").Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
		{
			name:     "Hash failure",
			email:    "ana@example.com",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "ana@example.com").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("", errors.New("hash error"))
			},
			expectedError: errors.New("hash error"),
		},
		{
			name:     "Create failure",
			email:    "ana@example.com",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "ana@example.com").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).Return(nil, errors.New("create error"))
			},
			expectedError: errors.New("create error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, err := service.Register(context.Background(), tt.userName, tt.email, tt.password)

			assert.Equal(t, tt.expectedUser, user)
			assert.Equal(t, tt.expectedError, err)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, userRepo, passwordHasher, _ := NewMock(t)
	stored := &domain.User{ID: "user-1", Email: "ana@example.com", PasswordHash: "hashedpassword"}

	tests := []struct {
		name          string
		email         string
		password      string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:     "Successful authentication",
			email:    "ana@example.com",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "ana@example.com").Return(stored, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(true)
			},
			expectedUser: stored,
		},
		{
			name:     "Unknown user",
			email:    "bob@example.com",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "bob@example.com").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Wrong password",
			email:    "ana@example.com",
			password: "wrong",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "ana@example.com").Return(stored, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "wrong").Return(false)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:          "Malformed email",
			email:         "nope",
			password:      "testpassword",
			prepareMock:   func() {},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, err := service.Authenticate(context.Background(), tt.email, tt.password)

			assert.Equal(t, tt.expectedUser, user)
			assert.Equal(t, tt.expectedError, err)
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, jwtService := NewMock(t)
	user := &domain.User{ID: "user-1", Name: "Ana", Email: "ana@example.com"}

	jwtService.EXPECT().GenerateJWT(auth.Identity{UserID: "user-1", Name: "Ana", Email: "ana@example.com"}, gomock.Any()).Return("token", nil)
	token, err := service.GenerateToken(user)
	assert.NoError(t, err)
	assert.Equal(t, "token", token)

	jwtService.EXPECT().GenerateJWT(gomock.Any(), gomock.Any()).Return("", errors.New("sign error"))
	token, err = service.GenerateToken(user)
	assert.Error(t, err)
	assert.Empty(t, token)
}
