package withdrawalrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/kioskhub/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_CreateWithdrawal(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta("INSERT INTO withdrawals (id, doc)")
	doc := `{"chargerId":"c1","userId":"u1","kioskId":"k1","timestamp":"2024-05-01T10:00:00Z","status":"pending"}`

	newWithdrawal := func() *domain.Withdrawal {
		return &domain.Withdrawal{
			ID:        "w1",
			ChargerID: "c1",
			UserID:    "u1",
			KioskID:   "k1",
			Timestamp: "2024-05-01T10:00:00Z",
			Status:    domain.WithdrawalPending,
		}
	}

	tests := []struct {
		name       string
		withdrawal *domain.Withdrawal
		mockSetup  func()
		expectErr  bool
		result     *domain.Withdrawal
	}{
		{
			name:       "Create withdrawal successfully",
			withdrawal: newWithdrawal(),
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("w1", doc).
					WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(createdAt))
			},
			expectErr: false,
			result: &domain.Withdrawal{
				ID:        "w1",
				ChargerID: "c1",
				UserID:    "u1",
				KioskID:   "k1",
				Timestamp: "2024-05-01T10:00:00Z",
				Status:    domain.WithdrawalPending,
				CreatedAt: createdAt,
			},
		},
		{
			name:       "Database error",
			withdrawal: newWithdrawal(),
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("w1", doc).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.CreateWithdrawal(ctx, tt.withdrawal)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_GetWithdrawalsByUserID(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta("FROM withdrawals")

	tests := []struct {
		name      string
		userID    string
		mockSetup func()
		expectErr bool
		result    []domain.Withdrawal
	}{
		{
			name:   "Withdrawals found",
			userID: "u1",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "doc", "created_at"}).
					AddRow("w2", []byte(`{"chargerId":"c2","userId":"u1","kioskId":"k1","timestamp":"t2","status":"pending"}`), now).
					AddRow("w1", []byte(`{"chargerId":"c1","userId":"u1","totemId":"k1","timestamp":"t1","status":"pendente"}`), now.Add(-time.Hour))
				mock.ExpectQuery(query).
					WithArgs("u1").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: []domain.Withdrawal{
				{ID: "w2", ChargerID: "c2", UserID: "u1", KioskID: "k1", Timestamp: "t2", Status: "pending", CreatedAt: now},
				{ID: "w1", ChargerID: "c1", UserID: "u1", KioskID: "k1", Timestamp: "t1", Status: "pending", CreatedAt: now.Add(-time.Hour)},
			},
		},
		{
			name:   "No withdrawals",
			userID: "u2",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("u2").
					WillReturnRows(pgxmock.NewRows([]string{"id", "doc", "created_at"}))
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:   "Malformed document",
			userID: "u3",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "doc", "created_at"}).
					AddRow("w3", []byte(`{not json`), now)
				mock.ExpectQuery(query).
					WithArgs("u3").
					WillReturnRows(rows)
			},
			expectErr: true,
		},
		{
			name:   "Database error",
			userID: "u1",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("u1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetWithdrawalsByUserID(ctx, tt.userID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_GetLatestByChargerID(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta("WHERE doc->>'chargerId' = $1")

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("c1").
			WillReturnRows(pgxmock.NewRows([]string{"id", "doc", "created_at"}).
				AddRow("w1", []byte(`{"chargerId":"c1","userId":"u1","kioskId":"k1","status":"pending"}`), now))

		wd, err := repo.GetLatestByChargerID(ctx, "c1")
		assert.NoError(t, err)
		assert.Equal(t, &domain.Withdrawal{ID: "w1", ChargerID: "c1", UserID: "u1", KioskID: "k1", Status: "pending", CreatedAt: now}, wd)
	})

	t.Run("None", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("c2").
			WillReturnError(pgx.ErrNoRows)

		wd, err := repo.GetLatestByChargerID(ctx, "c2")
		assert.NoError(t, err)
		assert.Nil(t, wd)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("c3").
			WillReturnError(errors.New("database error"))

		_, err := repo.GetLatestByChargerID(ctx, "c3")
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
