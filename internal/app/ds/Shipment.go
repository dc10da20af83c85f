package ds

import (
	"time"

	json "github.com/goccy/go-json"
)

// @Schema(description="Shipment model representing one tracked consignment")
type Shipment struct {
	ID               uint     `gorm:"primaryKey;column:id" json:"id"`
	EnquiryNo        *string  `gorm:"column:enquiry_no;size:64;index" json:"enquiry_no"`
	FreightForwarder *string  `gorm:"column:freight_forwarder" json:"freight_forwarder"`
	Customer         *string  `gorm:"column:customer" json:"customer"`
	InvoiceNo        *string  `gorm:"column:invoice_no" json:"invoice_no"`
	InvoiceDate      *string  `gorm:"column:invoice_date" json:"invoice_date"`
	PartNo           *string  `gorm:"column:part_no;size:128;index" json:"part_no"`
	PartDesc         *string  `gorm:"column:part_desc" json:"part_desc"`
	PartQty          *int64   `gorm:"column:part_qty;check:chk_shipments_part_qty,part_qty >= 0" json:"part_qty"`
	BoxSize          *string  `gorm:"column:box_size" json:"box_size"`
	NetWt            *float64 `gorm:"column:net_wt;type:decimal(14,3);check:chk_shipments_net_wt,net_wt >= 0" json:"net_wt"`
	GrossWt          *float64 `gorm:"column:gross_wt;type:decimal(14,3);check:chk_shipments_gross_wt,gross_wt >= 0" json:"gross_wt"`
	PackageType      *string  `gorm:"column:package_type" json:"package_type"`
	Mode             *string  `gorm:"column:mode;size:32;index" json:"mode"`
	DispatchDate     *string  `gorm:"column:dispatch_date" json:"dispatch_date"`
	Incoterm         *string  `gorm:"column:incoterm" json:"incoterm"`
	SbNo             *string  `gorm:"column:sb_no" json:"sb_no"`
	SbDate           *string  `gorm:"column:sb_date" json:"sb_date"`
	ETD              *string  `gorm:"column:etd" json:"etd"`
	BlNo             *string  `gorm:"column:bl_no" json:"bl_no"`
	ContainerNo      *string  `gorm:"column:container_no" json:"container_no"`
	ETA              *string  `gorm:"column:eta" json:"eta"`
	FinalDelivery    *string  `gorm:"column:final_delivery" json:"final_delivery"`
	TotalCost        *float64 `gorm:"column:total_cost;type:decimal(16,2);check:chk_shipments_total_cost,total_cost >= 0" json:"total_cost"`
	Status           string   `gorm:"column:status;size:16;not null;index;check:chk_shipments_status,status IN ('ACTIVE','CANCELLED')" json:"status"`
	DeliveryStatus   string   `gorm:"column:delivery_status;size:16;not null;check:chk_shipments_delivery_status,delivery_status IN ('IN_PROCESS','IN_TRANSIT','DELIVERED')" json:"delivery_status"`
	ManualDesc       *string  `gorm:"column:manual_desc;type:text" json:"manual_desc"`

	CreatedAt time.Time `gorm:"column:created_at;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Shipment) TableName() string {
	return "shipments"
}

// Apply overlays writable columns (as produced by ShipmentColumns) onto s.
// Keys missing from columns are left untouched; a nil value clears the field.
func (s *Shipment) Apply(columns map[string]any) error {
	if len(columns) == 0 {
		return nil
	}
	raw, err := json.Marshal(columns)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, s)
}

// ShipmentFilter narrows the shipment list. Zero values mean "no filter".
type ShipmentFilter struct {
	Status         string
	DeliveryStatus string
	Mode           string
	Customer       string
	Search         string
	Limit          int
}

// ModeCount is one row of the dashboard's per-mode breakdown.
type ModeCount struct {
	Mode  *string `gorm:"column:mode" json:"mode"`
	Count int64   `gorm:"column:total" json:"count"`
}

// StatusCount is one row of the dashboard's per-status breakdown.
type StatusCount struct {
	Status string `gorm:"column:status" json:"status"`
	Count  int64  `gorm:"column:total" json:"count"`
}

type DashboardSummary struct {
	TotalShipments int64         `json:"totalShipments"`
	ModeWise       []ModeCount   `json:"modeWise"`
	StatusWise     []StatusCount `json:"statusWise"`
}
