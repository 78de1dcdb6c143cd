package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-catalog-keeper/internal/config"
	"github.com/MKhiriev/go-catalog-keeper/internal/logger"
	"github.com/MKhiriev/go-catalog-keeper/migrations"
)

type DB struct {
	*sql.DB

	driverName         string
	listOrder          string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator

	logger *logger.Logger
}

// NewConnect opens the database selected by the DSN: a postgres:// or
// postgresql:// DSN connects to PostgreSQL, anything else is treated as a
// SQLite file path.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("empty database DSN")
	}

	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driverName)
}
