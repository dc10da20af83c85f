package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"shipment_erp/internal/app/apperr"
	"shipment_erp/internal/app/ds"
	"shipment_erp/internal/app/repository"

	"github.com/shopspring/decimal"
)

var reportHeader = []string{
	"id", "enquiry_no", "freight_forwarder", "customer", "invoice_no", "invoice_date",
	"part_no", "part_desc", "part_qty", "box_size", "net_wt", "gross_wt", "package_type",
	"mode", "dispatch_date", "incoterm", "sb_no", "sb_date", "etd", "bl_no", "container_no",
	"eta", "final_delivery", "total_cost", "status", "delivery_status", "manual_desc",
	"created_at", "updated_at",
}

type ReportService struct {
	store repository.Store
}

func NewReportService(store repository.Store) *ReportService {
	return &ReportService{store: store}
}

// Monthly returns the shipments created in the given calendar month (UTC),
// oldest first.
func (r *ReportService) Monthly(ctx context.Context, month, year int) ([]ds.Shipment, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be 1-12", apperr.ErrValidation)
	}
	if year < 1970 || year > 9999 {
		return nil, fmt.Errorf("%w: invalid year %d", apperr.ErrValidation, year)
	}
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return r.store.ShipmentsCreatedBetween(ctx, from, from.AddDate(0, 1, 0))
}

// WriteCSV writes one header row and one row per shipment. Null columns
// are written as empty cells.
func WriteCSV(w io.Writer, shipments []ds.Shipment) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(reportHeader); err != nil {
		return err
	}
	for _, s := range shipments {
		record := []string{
			strconv.FormatUint(uint64(s.ID), 10),
			deref(s.EnquiryNo), deref(s.FreightForwarder), deref(s.Customer),
			deref(s.InvoiceNo), deref(s.InvoiceDate), deref(s.PartNo), deref(s.PartDesc),
			formatInt(s.PartQty), deref(s.BoxSize), formatDecimal(s.NetWt), formatDecimal(s.GrossWt),
			deref(s.PackageType), deref(s.Mode), deref(s.DispatchDate), deref(s.Incoterm),
			deref(s.SbNo), deref(s.SbDate), deref(s.ETD), deref(s.BlNo), deref(s.ContainerNo),
			deref(s.ETA), deref(s.FinalDelivery), formatDecimal(s.TotalCost),
			s.Status, s.DeliveryStatus, deref(s.ManualDesc),
			s.CreatedAt.UTC().Format(time.RFC3339), s.UpdatedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatInt(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func formatDecimal(v *float64) string {
	if v == nil {
		return ""
	}
	return decimal.NewFromFloat(*v).String()
}
