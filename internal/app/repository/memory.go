package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"shipment_erp/internal/app/apperr"
	"shipment_erp/internal/app/ds"
)

// MemoryStore is an in-process Store. It backs tests and local runs
// without a database (DBDriver "memory").
type MemoryStore struct {
	mu        sync.RWMutex
	shipments map[uint]ds.Shipment
	parts     map[string]ds.Part
	nextID    uint
	nextPart  uint
	now       func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		shipments: make(map[uint]ds.Shipment),
		parts:     make(map[string]ds.Part),
		now:       time.Now,
	}
}

// WithClock replaces the timestamp source.
func (s *MemoryStore) WithClock(now func() time.Time) *MemoryStore {
	s.now = now
	return s
}

func (s *MemoryStore) CreateShipment(ctx context.Context, shipment *ds.Shipment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	now := s.now()
	shipment.ID = s.nextID
	shipment.CreatedAt = now
	shipment.UpdatedAt = now
	s.shipments[shipment.ID] = *shipment
	return nil
}

func (s *MemoryStore) GetShipment(ctx context.Context, id uint) (ds.Shipment, error) {
	if err := ctx.Err(); err != nil {
		return ds.Shipment{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	shipment, ok := s.shipments[id]
	if !ok {
		return ds.Shipment{}, apperr.ErrNotFound
	}
	return shipment, nil
}

func (s *MemoryStore) UpdateShipment(ctx context.Context, id uint, columns map[string]any) (ds.Shipment, error) {
	if err := ctx.Err(); err != nil {
		return ds.Shipment{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	shipment, ok := s.shipments[id]
	if !ok {
		return ds.Shipment{}, apperr.ErrNotFound
	}
	if len(columns) == 0 {
		return shipment, nil
	}
	if err := shipment.Apply(columns); err != nil {
		return ds.Shipment{}, apperr.ErrValidation
	}
	// created_at is immutable
	shipment.ID = id
	shipment.CreatedAt = s.shipments[id].CreatedAt
	shipment.UpdatedAt = s.now()
	s.shipments[id] = shipment
	return shipment, nil
}

func (s *MemoryStore) ListShipments(ctx context.Context, filter ds.ShipmentFilter) ([]ds.Shipment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]ds.Shipment, 0, len(s.shipments))
	for _, shipment := range s.shipments {
		if matches(shipment, filter) {
			result = append(result, shipment)
		}
	}
	sortNewestFirst(result)

	if filter.Limit > 0 && len(result) > filter.Limit {
		result = result[:filter.Limit]
	}
	return result, nil
}

func (s *MemoryStore) ShipmentsCreatedBetween(ctx context.Context, from, to time.Time) ([]ds.Shipment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []ds.Shipment
	for _, shipment := range s.shipments {
		if !shipment.CreatedAt.Before(from) && shipment.CreatedAt.Before(to) {
			result = append(result, shipment)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (s *MemoryStore) CountShipmentsCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	shipments, err := s.ShipmentsCreatedBetween(ctx, from, to)
	if err != nil {
		return 0, err
	}
	return int64(len(shipments)), nil
}

func (s *MemoryStore) DashboardSummary(ctx context.Context) (ds.DashboardSummary, error) {
	if err := ctx.Err(); err != nil {
		return ds.DashboardSummary{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	byMode := map[string]int64{}
	var noMode int64
	byStatus := map[string]int64{}
	for _, shipment := range s.shipments {
		if shipment.Mode == nil {
			noMode++
		} else {
			byMode[*shipment.Mode]++
		}
		byStatus[shipment.Status]++
	}

	summary := ds.DashboardSummary{
		TotalShipments: int64(len(s.shipments)),
		ModeWise:       make([]ds.ModeCount, 0, len(byMode)+1),
		StatusWise:     make([]ds.StatusCount, 0, len(byStatus)),
	}
	if noMode > 0 {
		summary.ModeWise = append(summary.ModeWise, ds.ModeCount{Count: noMode})
	}
	for mode, count := range byMode {
		summary.ModeWise = append(summary.ModeWise, ds.ModeCount{Mode: &mode, Count: count})
	}
	for status, count := range byStatus {
		summary.StatusWise = append(summary.StatusWise, ds.StatusCount{Status: status, Count: count})
	}
	ds.SortModeCounts(summary.ModeWise)
	ds.SortStatusCounts(summary.StatusWise)
	return summary, nil
}

// InsertPartIfAbsent checks and inserts under one lock.
func (s *MemoryStore) InsertPartIfAbsent(ctx context.Context, part ds.Part) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.parts[part.PartNo]; exists {
		return nil
	}
	s.nextPart++
	now := s.now()
	part.ID = s.nextPart
	part.CreatedAt = now
	part.UpdatedAt = now
	s.parts[part.PartNo] = part
	return nil
}

func (s *MemoryStore) GetPart(ctx context.Context, partNo string) (ds.Part, error) {
	if err := ctx.Err(); err != nil {
		return ds.Part{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	part, ok := s.parts[partNo]
	if !ok {
		return ds.Part{}, apperr.ErrNotFound
	}
	return part, nil
}

// PartCount reports how many parts are stored.
func (s *MemoryStore) PartCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.parts)
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *MemoryStore) Close() error {
	return nil
}

func matches(shipment ds.Shipment, filter ds.ShipmentFilter) bool {
	if filter.Status != "" && shipment.Status != filter.Status {
		return false
	}
	if filter.DeliveryStatus != "" && shipment.DeliveryStatus != filter.DeliveryStatus {
		return false
	}
	if filter.Mode != "" && (shipment.Mode == nil || *shipment.Mode != filter.Mode) {
		return false
	}
	if filter.Customer != "" && !containsFold(shipment.Customer, filter.Customer) {
		return false
	}
	if filter.Search != "" {
		return containsFold(shipment.EnquiryNo, filter.Search) ||
			containsFold(shipment.InvoiceNo, filter.Search) ||
			containsFold(shipment.BlNo, filter.Search) ||
			containsFold(shipment.ContainerNo, filter.Search) ||
			containsFold(shipment.PartNo, filter.Search)
	}
	return true
}

func containsFold(value *string, needle string) bool {
	return value != nil && strings.Contains(strings.ToLower(*value), strings.ToLower(needle))
}

func sortNewestFirst(shipments []ds.Shipment) {
	sort.Slice(shipments, func(i, j int) bool {
		if shipments[i].CreatedAt.Equal(shipments[j].CreatedAt) {
			return shipments[i].ID > shipments[j].ID
		}
		return shipments[i].CreatedAt.After(shipments[j].CreatedAt)
	})
}
