package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shipment_erp/internal/app/apperr"
	"shipment_erp/internal/app/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Sequence hands out the per-year enquiry counter.
type Sequence interface {
	Next(ctx context.Context, year int) (int64, error)
}

// StoreSequence derives the next number from the shipments created in the
// year. Two concurrent callers can get the same number.
type StoreSequence struct {
	store repository.Store
}

func NewStoreSequence(store repository.Store) *StoreSequence {
	return &StoreSequence{store: store}
}

func (s *StoreSequence) Next(ctx context.Context, year int) (int64, error) {
	count, err := s.created(ctx, year)
	if err != nil {
		return 0, err
	}
	return count + 1, nil
}

func (s *StoreSequence) created(ctx context.Context, year int) (int64, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return s.store.CountShipmentsCreatedBetween(ctx, from, from.AddDate(1, 0, 0))
}

// RedisSequence keeps the counter in Redis (INCR is atomic). A missing key
// is seeded from the store count first; on Redis errors it falls back to
// the store.
type RedisSequence struct {
	client   *redis.Client
	fallback *StoreSequence
}

func NewRedisSequence(client *redis.Client, fallback *StoreSequence) *RedisSequence {
	return &RedisSequence{client: client, fallback: fallback}
}

func (s *RedisSequence) Next(ctx context.Context, year int) (int64, error) {
	key := fmt.Sprintf("enquiry_seq:%d", year)

	n, err := s.next(ctx, key, year)
	if err == nil {
		return n, nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return 0, err
	}
	logrus.WithFields(logrus.Fields{
		"key":   key,
		"error": err,
	}).Warn("redis sequence unavailable, using store count")
	return s.fallback.Next(ctx, year)
}

func (s *RedisSequence) next(ctx context.Context, key string, year int) (int64, error) {
	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if exists == 0 {
		count, err := s.fallback.created(ctx, year)
		if err != nil {
			return 0, err
		}
		if err := s.client.SetNX(ctx, key, count, 0).Err(); err != nil {
			return 0, err
		}
	}
	return s.client.Incr(ctx, key).Result()
}

// EnquiryNumbers formats enquiry numbers as QMRel-<year>-<seq>.
type EnquiryNumbers struct {
	seq Sequence
	now func() time.Time
}

func NewEnquiryNumbers(seq Sequence) *EnquiryNumbers {
	return &EnquiryNumbers{seq: seq, now: time.Now}
}

func (e *EnquiryNumbers) Next(ctx context.Context) (string, error) {
	year := e.now().UTC().Year()
	n, err := e.seq.Next(ctx, year)
	if err != nil {
		if errors.Is(err, apperr.ErrStore) {
			return "", err
		}
		return "", fmt.Errorf("%w: enquiry sequence: %w", apperr.ErrStore, err)
	}
	return FormatEnquiryNo(year, n), nil
}

func FormatEnquiryNo(year int, seq int64) string {
	return fmt.Sprintf("QMRel-%d-%04d", year, seq)
}
