package parcel

type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

type CashoutStatus string

const (
	CashoutStatusNone      CashoutStatus = "none"
	CashoutStatusCashedOut CashoutStatus = "cashed_out"
)

type DeliveryStatus string

const (
	DeliveryStatusPending       DeliveryStatus = "pending"
	DeliveryStatusRiderAssigned DeliveryStatus = "rider_assigned"
	DeliveryStatusInTransit     DeliveryStatus = "in_transit"
	DeliveryStatusDelivered     DeliveryStatus = "delivered"
	DeliveryStatusServiceCenter DeliveryStatus = "service_center_delivered"
	DeliveryStatusReturned      DeliveryStatus = "returned"
)

// deliveryStage orders the pipeline; all terminal outcomes share the last stage.
var deliveryStage = map[DeliveryStatus]int{
	DeliveryStatusPending:       0,
	DeliveryStatusRiderAssigned: 1,
	DeliveryStatusInTransit:     2,
	DeliveryStatusDelivered:     3,
	DeliveryStatusServiceCenter: 3,
	DeliveryStatusReturned:      3,
}

func (s DeliveryStatus) Valid() bool {
	_, ok := deliveryStage[s]
	return ok
}

// Terminal reports whether the parcel has reached a final delivery outcome.
func (s DeliveryStatus) Terminal() bool {
	return deliveryStage[s] == 3 && s.Valid()
}

// CanAdvanceTo reports whether next is the immediate next stage of the pipeline.
// Transitions never skip a stage and never regress, so a delivered parcel can
// not be re-assigned or re-picked through any lifecycle operation.
func (s DeliveryStatus) CanAdvanceTo(next DeliveryStatus) bool {
	from, ok := deliveryStage[s]
	if !ok || !next.Valid() {
		return false
	}
	return deliveryStage[next] == from+1
}

// ActiveStatuses are the states a rider currently works on.
func ActiveStatuses() []DeliveryStatus {
	return []DeliveryStatus{DeliveryStatusRiderAssigned, DeliveryStatusInTransit}
}

// CompletedStatuses are the terminal states shown in a rider's history.
func CompletedStatuses() []DeliveryStatus {
	return []DeliveryStatus{DeliveryStatusDelivered, DeliveryStatusServiceCenter, DeliveryStatusReturned}
}
