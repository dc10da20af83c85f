package ds

// Shipment.Status values. A cancelled shipment is never physically deleted.
const (
	StatusActive    = "ACTIVE"
	StatusCancelled = "CANCELLED"
)

// Shipment.DeliveryStatus values.
const (
	DeliveryInProcess = "IN_PROCESS"
	DeliveryInTransit = "IN_TRANSIT"
	DeliveryDelivered = "DELIVERED"
)

// validator tags for the enumerated columns
const (
	StatusRule         = "oneof=ACTIVE CANCELLED"
	DeliveryStatusRule = "oneof=IN_PROCESS IN_TRANSIT DELIVERED"
)
