package pg

import (
	"context"
	"fmt"
	"strings"

	"github.com/GlebRadaev/kioskhub/migrations"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

// gooseLogger routes goose output through the global zap logger.
type gooseLogger struct{}

func (gooseLogger) Printf(format string, v ...any) {
	zap.L().Named("migrations").Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Fatalf is logged at error level; the failure itself reaches the caller as an error.
func (gooseLogger) Fatalf(format string, v ...any) {
	zap.L().Named("migrations").Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// RunMigrations brings the kiosk, charger, withdrawal and user tables up to
// the latest embedded schema version.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(gooseLogger{})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer func() {
		if err := db.Close(); err != nil {
			zap.L().Warn("failed to close migration db", zap.Error(err))
		}
	}()

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	zap.L().Info("schema is up to date", zap.Int64("version", version))
	return nil
}
