package kioskrepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/GlebRadaev/kioskhub/internal/domain"
	"github.com/GlebRadaev/kioskhub/internal/pg"
	"github.com/GlebRadaev/kioskhub/internal/repo/schema"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db    pg.Database
	clock func() time.Time
}

func New(db pg.Database) *Repository {
	return &Repository{
		db:    db,
		clock: time.Now,
	}
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Kiosk, error) {
	query := `
        SELECT id, doc
        FROM kiosks
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get kiosks", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	now := r.clock()
	var kiosks []domain.Kiosk
	for rows.Next() {
		var id string
		var raw []byte
		if err := rows.Scan(&id, &raw); err != nil {
			zap.L().Error("can't scan kiosk row", zap.Error(err))
			return nil, err
		}
		kiosk, err := r.decode(id, raw, now)
		if err != nil {
			continue
		}
		kiosks = append(kiosks, kiosk)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("kiosk rows iteration failed", zap.Error(err))
		return nil, err
	}
	return kiosks, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Kiosk, error) {
	query := `
        SELECT id, doc
        FROM kiosks
        WHERE id = $1
    `
	var raw []byte
	err := r.db.QueryRow(ctx, query, id).Scan(&id, &raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find kiosk", zap.String("kiosk_id", id), zap.Error(err))
		return nil, err
	}
	kiosk, err := r.decode(id, raw, r.clock())
	if err != nil {
		return nil, err
	}
	return &kiosk, nil
}

func (r *Repository) decode(id string, raw []byte, now time.Time) (domain.Kiosk, error) {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		zap.L().Warn("skipping malformed kiosk document", zap.String("kiosk_id", id), zap.Error(err))
		return domain.Kiosk{}, err
	}
	kiosk, anomalies := schema.DecodeKiosk(id, doc, now)
	for _, a := range anomalies {
		zap.L().Warn("repaired kiosk document", zap.String("kiosk_id", id), zap.Stringer("anomaly", a))
	}
	return kiosk, nil
}
