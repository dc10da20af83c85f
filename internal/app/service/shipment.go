package service

import (
	"context"
	"fmt"

	"shipment_erp/internal/app/apperr"
	"shipment_erp/internal/app/ds"
	"shipment_erp/internal/app/fields"
	"shipment_erp/internal/app/repository"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

const DefaultListLimit = 500

// ShipmentService runs the shipment lifecycle: normalize the input,
// reconcile the part catalog, then persist.
type ShipmentService struct {
	store     repository.Store
	parts     *PartReconciler
	validate  *validator.Validate
	listLimit int
}

func NewShipmentService(store repository.Store, parts *PartReconciler, listLimit int) *ShipmentService {
	if listLimit <= 0 {
		listLimit = DefaultListLimit
	}
	return &ShipmentService{
		store:     store,
		parts:     parts,
		validate:  validator.New(),
		listLimit: listLimit,
	}
}

// Create inserts a shipment from raw form or spreadsheet fields and
// returns its id. Only the enumerated columns are validated.
func (s *ShipmentService) Create(ctx context.Context, raw map[string]any) (uint, error) {
	columns, err := s.columns(raw)
	if err != nil {
		return 0, err
	}
	// NOT NULL колонки: null означает "по умолчанию"
	if columns["status"] == nil {
		delete(columns, "status")
	}
	if columns["delivery_status"] == nil {
		delete(columns, "delivery_status")
	}

	shipment := ds.Shipment{}
	if err := shipment.Apply(columns); err != nil {
		return 0, fmt.Errorf("%w: %v", apperr.ErrValidation, err)
	}
	if shipment.Status == "" {
		shipment.Status = ds.StatusActive
	}
	if shipment.DeliveryStatus == "" {
		shipment.DeliveryStatus = ds.DeliveryInProcess
	}

	s.parts.reconcile(ctx, columns)

	if err := s.store.CreateShipment(ctx, &shipment); err != nil {
		return 0, err
	}
	logrus.WithFields(logrus.Fields{
		"id":         shipment.ID,
		"enquiry_no": deref(shipment.EnquiryNo),
	}).Info("shipment created")
	return shipment.ID, nil
}

// Update writes only the keys present in raw. Keys the client did not
// send keep their stored values.
func (s *ShipmentService) Update(ctx context.Context, id uint, raw map[string]any) (ds.Shipment, error) {
	columns, err := s.columns(raw)
	if err != nil {
		return ds.Shipment{}, err
	}
	if columns["status"] == nil {
		delete(columns, "status")
	}
	if columns["delivery_status"] == nil {
		delete(columns, "delivery_status")
	}

	updated, err := s.store.UpdateShipment(ctx, id, columns)
	if err != nil {
		return ds.Shipment{}, err
	}
	s.parts.reconcile(ctx, columns)
	return updated, nil
}

func (s *ShipmentService) Get(ctx context.Context, id uint) (ds.Shipment, error) {
	return s.store.GetShipment(ctx, id)
}

// List returns shipments newest first. The limit is clamped to the
// configured cap.
func (s *ShipmentService) List(ctx context.Context, filter ds.ShipmentFilter) ([]ds.Shipment, error) {
	if filter.Limit <= 0 || filter.Limit > s.listLimit {
		filter.Limit = s.listLimit
	}
	shipments, err := s.store.ListShipments(ctx, filter)
	if err != nil {
		return nil, err
	}
	if shipments == nil {
		shipments = []ds.Shipment{}
	}
	return shipments, nil
}

func (s *ShipmentService) SetStatus(ctx context.Context, id uint, status string) error {
	if err := s.validateEnum("status", status, ds.StatusRule); err != nil {
		return err
	}
	_, err := s.store.UpdateShipment(ctx, id, map[string]any{"status": status})
	return err
}

func (s *ShipmentService) SetDeliveryStatus(ctx context.Context, id uint, deliveryStatus string) error {
	if err := s.validateEnum("delivery_status", deliveryStatus, ds.DeliveryStatusRule); err != nil {
		return err
	}
	_, err := s.store.UpdateShipment(ctx, id, map[string]any{"delivery_status": deliveryStatus})
	return err
}

// SetManualDesc stores free text; an empty string clears the note.
func (s *ShipmentService) SetManualDesc(ctx context.Context, id uint, text string) error {
	var value any
	if text != "" {
		value = text
	}
	_, err := s.store.UpdateShipment(ctx, id, map[string]any{"manual_desc": value})
	return err
}

func (s *ShipmentService) DashboardSummary(ctx context.Context) (ds.DashboardSummary, error) {
	return s.store.DashboardSummary(ctx)
}

// columns normalizes raw input into writable columns and checks the
// enumerated ones.
func (s *ShipmentService) columns(raw map[string]any) (map[string]any, error) {
	columns, err := ds.ShipmentColumns(fields.Normalize(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrValidation, err)
	}
	if status, ok := columns["status"].(string); ok {
		if err := s.validateEnum("status", status, ds.StatusRule); err != nil {
			return nil, err
		}
	}
	if deliveryStatus, ok := columns["delivery_status"].(string); ok {
		if err := s.validateEnum("delivery_status", deliveryStatus, ds.DeliveryStatusRule); err != nil {
			return nil, err
		}
	}
	return columns, nil
}

func (s *ShipmentService) validateEnum(field, value, rule string) error {
	if err := s.validate.Var(value, "required,"+rule); err != nil {
		return fmt.Errorf("%w: invalid %s %q", apperr.ErrValidation, field, value)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
