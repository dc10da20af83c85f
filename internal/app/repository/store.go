package repository

import (
	"context"
	"time"

	"shipment_erp/internal/app/ds"
)

// Store is the record store capability the services are written against.
// Repository (gorm) and MemoryStore implement it.
type Store interface {
	CreateShipment(ctx context.Context, shipment *ds.Shipment) error
	// UpdateShipment writes only the given columns and returns the stored row.
	UpdateShipment(ctx context.Context, id uint, columns map[string]any) (ds.Shipment, error)
	GetShipment(ctx context.Context, id uint) (ds.Shipment, error)
	// ListShipments returns newest first; a zero Limit returns every row.
	ListShipments(ctx context.Context, filter ds.ShipmentFilter) ([]ds.Shipment, error)
	// ShipmentsCreatedBetween returns rows with from <= created_at < to, oldest first.
	ShipmentsCreatedBetween(ctx context.Context, from, to time.Time) ([]ds.Shipment, error)
	CountShipmentsCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
	// DashboardSummary reads all three aggregates from one snapshot.
	DashboardSummary(ctx context.Context) (ds.DashboardSummary, error)

	// InsertPartIfAbsent is a single atomic insert-if-absent keyed on part_no.
	// An existing row is left untouched.
	InsertPartIfAbsent(ctx context.Context, part ds.Part) error
	GetPart(ctx context.Context, partNo string) (ds.Part, error)

	Ping(ctx context.Context) error
	Close() error
}
