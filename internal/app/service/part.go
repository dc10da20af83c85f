package service

import (
	"context"
	"fmt"
	"strings"

	"shipment_erp/internal/app/apperr"
	"shipment_erp/internal/app/ds"
	"shipment_erp/internal/app/repository"

	"github.com/sirupsen/logrus"
)

// PartReconciler keeps the part catalog in step with shipment input.
type PartReconciler struct {
	store repository.Store
}

func NewPartReconciler(store repository.Store) *PartReconciler {
	return &PartReconciler{store: store}
}

// EnsurePart inserts the part when part_no is new and leaves an existing
// row untouched. Empty arguments make it a no-op.
func (p *PartReconciler) EnsurePart(ctx context.Context, partNo, partDesc string) error {
	if partNo == "" || partDesc == "" {
		return nil
	}
	return p.store.InsertPartIfAbsent(ctx, ds.Part{PartNo: partNo, PartDesc: partDesc})
}

// reconcile is the best-effort variant used while writing shipments.
// Failures are logged and dropped.
func (p *PartReconciler) reconcile(ctx context.Context, columns map[string]any) {
	partNo, _ := columns["part_no"].(string)
	partDesc, _ := columns["part_desc"].(string)
	if err := p.EnsurePart(ctx, partNo, partDesc); err != nil {
		logrus.WithFields(logrus.Fields{
			"part_no": partNo,
			"error":   err,
		}).Warn("part reconcile failed")
	}
}

// CreatePart is the explicit catalog operation; unlike reconcile it
// requires both values and reports store failures.
func (p *PartReconciler) CreatePart(ctx context.Context, partNo, partDesc string) error {
	partNo = strings.TrimSpace(partNo)
	partDesc = strings.TrimSpace(partDesc)
	if partNo == "" || partDesc == "" {
		return fmt.Errorf("%w: part_no and part_desc are required", apperr.ErrValidation)
	}
	return p.EnsurePart(ctx, partNo, partDesc)
}

func (p *PartReconciler) GetPart(ctx context.Context, partNo string) (ds.Part, error) {
	return p.store.GetPart(ctx, partNo)
}
