package repository

import (
	"context"
	"strings"
	"time"

	"shipment_erp/internal/app/ds"

	"gorm.io/gorm"
)

func (r *Repository) CreateShipment(ctx context.Context, shipment *ds.Shipment) error {
	return storeError(r.db.WithContext(ctx).Create(shipment).Error)
}

func (r *Repository) GetShipment(ctx context.Context, id uint) (ds.Shipment, error) {
	shipment := ds.Shipment{}
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&shipment).Error
	if err != nil {
		return ds.Shipment{}, storeError(err)
	}
	return shipment, nil
}

// UpdateShipment - частичное обновление: пишутся только переданные колонки
func (r *Repository) UpdateShipment(ctx context.Context, id uint, columns map[string]any) (ds.Shipment, error) {
	var updated ds.Shipment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&updated).Error; err != nil {
			return err
		}
		if len(columns) == 0 {
			return nil
		}
		if err := tx.Model(&ds.Shipment{}).Where("id = ?", id).Updates(columns).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).First(&updated).Error
	})
	if err != nil {
		return ds.Shipment{}, storeError(err)
	}
	return updated, nil
}

func (r *Repository) ListShipments(ctx context.Context, filter ds.ShipmentFilter) ([]ds.Shipment, error) {
	query := r.db.WithContext(ctx).Model(&ds.Shipment{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.DeliveryStatus != "" {
		query = query.Where("delivery_status = ?", filter.DeliveryStatus)
	}
	if filter.Mode != "" {
		query = query.Where("mode = ?", filter.Mode)
	}
	if filter.Customer != "" {
		query = query.Where("LOWER(customer) LIKE ? ESCAPE '!'", containsPattern(filter.Customer))
	}
	if filter.Search != "" {
		like := containsPattern(filter.Search)
		query = query.Where(
			"LOWER(enquiry_no) LIKE ? ESCAPE '!' OR LOWER(invoice_no) LIKE ? ESCAPE '!' OR LOWER(bl_no) LIKE ? ESCAPE '!' OR LOWER(container_no) LIKE ? ESCAPE '!' OR LOWER(part_no) LIKE ? ESCAPE '!'",
			like, like, like, like, like,
		)
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var shipments []ds.Shipment
	err := query.Order("created_at DESC").Order("id DESC").Find(&shipments).Error
	if err != nil {
		return nil, storeError(err)
	}
	return shipments, nil
}

// likeEscaper escapes LIKE wildcards with '!', which needs no quoting in
// any of the supported dialects.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// containsPattern is a case-insensitive substring pattern for user text.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}

func (r *Repository) ShipmentsCreatedBetween(ctx context.Context, from, to time.Time) ([]ds.Shipment, error) {
	var shipments []ds.Shipment
	err := r.db.WithContext(ctx).
		Where("created_at >= ? AND created_at < ?", from, to).
		Order("created_at ASC").Order("id ASC").
		Find(&shipments).Error
	if err != nil {
		return nil, storeError(err)
	}
	return shipments, nil
}

func (r *Repository) CountShipmentsCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ds.Shipment{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&count).Error
	if err != nil {
		return 0, storeError(err)
	}
	return count, nil
}

func (r *Repository) DashboardSummary(ctx context.Context) (ds.DashboardSummary, error) {
	summary := ds.DashboardSummary{}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&ds.Shipment{}).Count(&summary.TotalShipments).Error; err != nil {
			return err
		}
		if err := tx.Model(&ds.Shipment{}).
			Select("mode, COUNT(*) AS total").
			Group("mode").
			Scan(&summary.ModeWise).Error; err != nil {
			return err
		}
		return tx.Model(&ds.Shipment{}).
			Select("status, COUNT(*) AS total").
			Group("status").
			Scan(&summary.StatusWise).Error
	}, r.snapshotOptions()...)
	if err != nil {
		return ds.DashboardSummary{}, storeError(err)
	}

	if summary.ModeWise == nil {
		summary.ModeWise = []ds.ModeCount{}
	}
	if summary.StatusWise == nil {
		summary.StatusWise = []ds.StatusCount{}
	}
	ds.SortModeCounts(summary.ModeWise)
	ds.SortStatusCounts(summary.StatusWise)
	return summary, nil
}
