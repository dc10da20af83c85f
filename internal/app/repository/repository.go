package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shipment_erp/internal/app/apperr"
	"shipment_erp/internal/app/ds"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Repository is the relational Store, backed by gorm.
type Repository struct {
	db *gorm.DB
}

// Open connects with the named driver ("postgres", "mysql" or "sqlite").
func Open(driver, dsn string) (*Repository, error) {
	var dialector gorm.Dialector
	switch driver {
	case "", "postgres":
		dialector = postgres.Open(dsn)
	case "mysql":
		dialector = mysql.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}
	logrus.WithField("driver", db.Dialector.Name()).Info("database connected")
	return New(db), nil
}

// New wraps an already opened connection.
func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) DB() *gorm.DB {
	return r.db
}

// AutoMigrate creates or alters the parts and shipments tables.
func (r *Repository) AutoMigrate() error {
	if err := r.db.AutoMigrate(&ds.Part{}); err != nil {
		return fmt.Errorf("migrating parts: %w", err)
	}
	if err := r.db.AutoMigrate(&ds.Shipment{}); err != nil {
		return fmt.Errorf("migrating shipments: %w", err)
	}
	return nil
}

func (r *Repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return storeError(err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return storeError(err)
	}
	return nil
}

func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// snapshotOptions picks the isolation level for multi-statement reads.
// SQLite transactions are already serializable.
func (r *Repository) snapshotOptions() []*sql.TxOptions {
	switch r.db.Dialector.Name() {
	case "postgres", "mysql":
		return []*sql.TxOptions{{Isolation: sql.LevelRepeatableRead, ReadOnly: true}}
	default:
		return nil
	}
}

// storeError classifies a gorm error. Constraint violations are the
// caller's fault, everything else is a store failure.
func storeError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrCheckConstraintViolated),
		errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %w", apperr.ErrValidation, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return fmt.Errorf("%w: %w", apperr.ErrStore, err)
	}
}
