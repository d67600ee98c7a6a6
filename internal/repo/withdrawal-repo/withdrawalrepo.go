package withdrawalrepo

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/kioskhub/internal/domain"
	"github.com/GlebRadaev/kioskhub/internal/pg"
	"github.com/GlebRadaev/kioskhub/internal/repo/schema"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// CreateWithdrawal appends a withdrawal document; created_at is assigned by the server.
func (r *Repository) CreateWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error) {
	query := `
		INSERT INTO withdrawals (id, doc)
		VALUES ($1, $2::jsonb)
		RETURNING created_at
	`
	raw, err := schema.EncodeWithdrawal(withdrawal)
	if err != nil {
		return nil, err
	}
	err = r.db.QueryRow(ctx, query, withdrawal.ID, string(raw)).Scan(&withdrawal.CreatedAt)
	if err != nil {
		zap.L().Error("can't save withdrawal", zap.Error(err))
		return nil, err
	}
	return withdrawal, nil
}

func (r *Repository) GetWithdrawalsByUserID(ctx context.Context, userID string) ([]domain.Withdrawal, error) {
	query := `
        SELECT id, doc, created_at
        FROM withdrawals
        WHERE doc->>'userId' = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		var id string
		var raw []byte
		var createdAt time.Time
		if err := rows.Scan(&id, &raw, &createdAt); err != nil {
			zap.L().Error("failed to scan withdrawal row", zap.Error(err))
			return nil, err
		}
		wd, err := schema.DecodeWithdrawal(id, raw, createdAt)
		if err != nil {
			zap.L().Error("failed to decode withdrawal", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, wd)
	}

	return withdrawals, nil
}

// GetLatestByChargerID returns the most recent withdrawal for a charger, or nil.
func (r *Repository) GetLatestByChargerID(ctx context.Context, chargerID string) (*domain.Withdrawal, error) {
	query := `
        SELECT id, doc, created_at
        FROM withdrawals
        WHERE doc->>'chargerId' = $1
        ORDER BY created_at DESC
        LIMIT 1
    `
	var id string
	var raw []byte
	var createdAt time.Time
	err := r.db.QueryRow(ctx, query, chargerID).Scan(&id, &raw, &createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to fetch latest withdrawal", zap.String("charger_id", chargerID), zap.Error(err))
		return nil, err
	}
	wd, err := schema.DecodeWithdrawal(id, raw, createdAt)
	if err != nil {
		return nil, err
	}
	return &wd, nil
}
