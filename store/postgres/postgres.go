// Package postgres provides a gorm-backed resignation.Store for PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/warp/leave-planner/calendar"
	"github.com/warp/leave-planner/resignation"
)

// row is the table layout shared with store/sqlite.
type row struct {
	ID                     int64     `gorm:"primaryKey;autoIncrement"`
	RetirementDate         time.Time `gorm:"type:date;not null"`
	RemainingPaidLeaveDays int64     `gorm:"not null;check:remaining_paid_leave_days >= 0"`
	CreatedAt              time.Time `gorm:"type:timestamp;not null;index:idx_resignation_created_at,sort:desc;autoCreateTime:false"`
}

func (row) TableName() string { return "resignation" }

// Store implements resignation.Store on top of gorm.
type Store struct {
	db  *gorm.DB
	loc *time.Location
}

// Open connects to dsn and migrates the schema. created_at is a timestamp
// without zone, written and read as wall clock time in loc.
func Open(dsn string, loc *time.Location) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	return New(db, loc)
}

// New wraps an existing gorm connection.
func New(db *gorm.DB, loc *time.Location) (*Store, error) {
	if loc == nil {
		loc = time.UTC
	}
	if err := db.AutoMigrate(&row{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return &Store{db: db, loc: loc}, nil
}

// Close closes the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Insert persists a record and returns it with its assigned ID.
func (s *Store) Insert(ctx context.Context, r resignation.Record) (resignation.Record, error) {
	local := r.CreatedAt.In(s.loc)
	rr := row{
		RetirementDate:         r.RetirementDate.Time(),
		RemainingPaidLeaveDays: int64(r.RemainingPaidLeaveDays),
		// Strip the zone so the stored timestamp is the wall clock in s.loc.
		CreatedAt: time.Date(local.Year(), local.Month(), local.Day(),
			local.Hour(), local.Minute(), local.Second(), 0, time.UTC),
	}
	if err := s.db.WithContext(ctx).Create(&rr).Error; err != nil {
		return resignation.Record{}, fmt.Errorf("insert resignation: %w", err)
	}
	r.ID = rr.ID
	return r, nil
}

// Latest returns the most recently created record.
func (s *Store) Latest(ctx context.Context) (resignation.Record, error) {
	var rr row
	err := s.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").First(&rr).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return resignation.Record{}, resignation.ErrNotFound
	}
	if err != nil {
		return resignation.Record{}, fmt.Errorf("query latest resignation: %w", err)
	}
	return s.toRecord(rr), nil
}

func (s *Store) toRecord(rr row) resignation.Record {
	c := rr.CreatedAt
	return resignation.Record{
		ID:                     rr.ID,
		RetirementDate:         calendar.FromTime(rr.RetirementDate),
		RemainingPaidLeaveDays: int(rr.RemainingPaidLeaveDays),
		CreatedAt: time.Date(c.Year(), c.Month(), c.Day(),
			c.Hour(), c.Minute(), c.Second(), 0, s.loc),
	}
}
