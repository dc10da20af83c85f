package repository

import (
	"context"

	"shipment_erp/internal/app/ds"

	"gorm.io/gorm/clause"
)

// InsertPartIfAbsent relies on the unique index on part_no: the insert is
// a single ON CONFLICT DO NOTHING statement, so concurrent callers cannot
// both observe "absent" and overwrite each other.
func (r *Repository) InsertPartIfAbsent(ctx context.Context, part ds.Part) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "part_no"}},
			DoNothing: true,
		}).
		Create(&part).Error
	return storeError(err)
}

func (r *Repository) GetPart(ctx context.Context, partNo string) (ds.Part, error) {
	part := ds.Part{}
	err := r.db.WithContext(ctx).Where("part_no = ?", partNo).First(&part).Error
	if err != nil {
		return ds.Part{}, storeError(err)
	}
	return part, nil
}
