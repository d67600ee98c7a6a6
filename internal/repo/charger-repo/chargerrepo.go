package chargerrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/kioskhub/internal/domain"
	"github.com/GlebRadaev/kioskhub/internal/pg"
	"github.com/GlebRadaev/kioskhub/internal/repo/schema"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
	clock     func() time.Time
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
		clock:     time.Now,
	}
}

func (r *Repository) FindByKioskID(ctx context.Context, kioskID string) ([]domain.Charger, error) {
	query := `
        SELECT id, doc
        FROM chargers
        WHERE COALESCE(doc->>'kioskId', doc->>'totemId') = $1
    `
	rows, err := r.db.Query(ctx, query, kioskID)
	if err != nil {
		zap.L().Error("can't get chargers", zap.String("kiosk_id", kioskID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	now := r.clock()
	var chargers []domain.Charger
	for rows.Next() {
		var id string
		var raw []byte
		if err := rows.Scan(&id, &raw); err != nil {
			zap.L().Error("can't scan charger row", zap.Error(err))
			return nil, err
		}
		charger, err := decode(id, raw, now)
		if err != nil {
			continue
		}
		chargers = append(chargers, charger)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("charger rows iteration failed", zap.Error(err))
		return nil, err
	}
	return chargers, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Charger, error) {
	query := `
        SELECT id, doc
        FROM chargers
        WHERE id = $1
    `
	var raw []byte
	err := r.db.QueryRow(ctx, query, id).Scan(&id, &raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find charger", zap.String("charger_id", id), zap.Error(err))
		return nil, err
	}
	charger, err := decode(id, raw, r.clock())
	if err != nil {
		return nil, err
	}
	return &charger, nil
}

// FindReserved returns the oldest reservations first.
func (r *Repository) FindReserved(ctx context.Context, limit uint32) ([]domain.Reservation, error) {
	query := `
        SELECT id, doc, updated_at
        FROM chargers
        WHERE lower(trim(doc->>'status')) IN ('reserved', 'reservado')
        ORDER BY updated_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get reserved chargers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	now := r.clock()
	var reservations []domain.Reservation
	for rows.Next() {
		var id string
		var raw []byte
		var since time.Time
		if err := rows.Scan(&id, &raw, &since); err != nil {
			zap.L().Error("can't scan reserved charger row", zap.Error(err))
			return nil, err
		}
		charger, err := decode(id, raw, now)
		if err != nil {
			continue
		}
		reservations = append(reservations, domain.Reservation{Charger: charger, Since: since})
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("error iterating reserved charger rows", zap.Error(err))
		return nil, err
	}
	return reservations, nil
}

// Reserve marks the charger reserved by userID only if it is still available.
// It fails with domain.ErrConflict when someone else got there first.
func (r *Repository) Reserve(ctx context.Context, id, userID string) error {
	query := `
        UPDATE chargers
        SET doc = (doc - 'ocupadoPor') || $2::jsonb, updated_at = now()
        WHERE id = $1 AND lower(trim(COALESCE(doc->>'status', 'available'))) IN ('available', 'disponivel')
    `
	return r.transition(ctx, id, query, schema.ReservePatch(userID, r.clock()))
}

// Occupy moves a reserved charger to occupied.
func (r *Repository) Occupy(ctx context.Context, id, userID string) error {
	query := `
        UPDATE chargers
        SET doc = (doc - 'ocupadoPor') || $2::jsonb, updated_at = now()
        WHERE id = $1 AND lower(trim(doc->>'status')) IN ('reserved', 'reservado')
    `
	return r.transition(ctx, id, query, schema.OccupyPatch(userID, r.clock()))
}

// ReleaseReservation frees the charger only while it is still reserved by userID.
// Anything else (occupied, released, reserved by someone else) is domain.ErrConflict.
func (r *Repository) ReleaseReservation(ctx context.Context, id, userID string) error {
	query := `
        UPDATE chargers
        SET doc = (doc - 'ocupadoPor') || $2::jsonb, updated_at = now()
        WHERE id = $1
          AND lower(trim(doc->>'status')) IN ('reserved', 'reservado')
          AND COALESCE(doc->>'heldBy', doc->>'ocupadoPor', '') = $3
    `
	return r.transition(ctx, id, query, schema.ReleasePatch(r.clock()), userID)
}

func (r *Repository) Release(ctx context.Context, id string) error {
	query := `
        UPDATE chargers
        SET doc = (doc - 'ocupadoPor') || $2::jsonb, updated_at = now()
        WHERE id = $1
    `
	return r.transition(ctx, id, query, schema.ReleasePatch(r.clock()))
}

func (r *Repository) transition(ctx context.Context, id, query string, patch map[string]any, extra ...any) error {
	raw, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("can't encode charger patch: %w", err)
	}

	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		args := append([]any{id, string(raw)}, extra...)
		tag, err := r.db.Exec(ctx, query, args...)
		if err != nil {
			zap.L().Error("failed to update charger", zap.String("charger_id", id), zap.Error(err))
			return err
		}
		if tag.RowsAffected() > 0 {
			return nil
		}

		var exists int
		err = r.db.QueryRow(ctx, `SELECT 1 FROM chargers WHERE id = $1`, id).Scan(&exists)
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		if err != nil {
			zap.L().Error("failed to check charger", zap.String("charger_id", id), zap.Error(err))
			return err
		}
		return domain.ErrConflict
	})
}

func decode(id string, raw []byte, now time.Time) (domain.Charger, error) {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		zap.L().Warn("skipping malformed charger document", zap.String("charger_id", id), zap.Error(err))
		return domain.Charger{}, err
	}
	charger, anomalies, err := schema.DecodeCharger(id, doc, now)
	if err != nil {
		zap.L().Warn("skipping invalid charger document", zap.String("charger_id", id), zap.Error(err))
		return domain.Charger{}, err
	}
	for _, a := range anomalies {
		zap.L().Warn("repaired charger document", zap.String("charger_id", id), zap.Stringer("anomaly", a))
	}
	return charger, nil
}
