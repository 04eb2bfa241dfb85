package parcel_test

import (
	"testing"

	"zap-shift/models/parcel"

	"github.com/stretchr/testify/assert"
)

func TestDeliveryStatusCanAdvanceTo(t *testing.T) {
	tests := []struct {
		name string
		from parcel.DeliveryStatus
		to   parcel.DeliveryStatus
		want bool
	}{
		{"pending to rider_assigned", parcel.DeliveryStatusPending, parcel.DeliveryStatusRiderAssigned, true},
		{"rider_assigned to in_transit", parcel.DeliveryStatusRiderAssigned, parcel.DeliveryStatusInTransit, true},
		{"in_transit to delivered", parcel.DeliveryStatusInTransit, parcel.DeliveryStatusDelivered, true},
		{"in_transit to service_center_delivered", parcel.DeliveryStatusInTransit, parcel.DeliveryStatusServiceCenter, true},
		{"in_transit to returned", parcel.DeliveryStatusInTransit, parcel.DeliveryStatusReturned, true},
		{"pending skips to in_transit", parcel.DeliveryStatusPending, parcel.DeliveryStatusInTransit, false},
		{"pending skips to delivered", parcel.DeliveryStatusPending, parcel.DeliveryStatusDelivered, false},
		{"rider_assigned back to pending", parcel.DeliveryStatusRiderAssigned, parcel.DeliveryStatusPending, false},
		{"delivered back to in_transit", parcel.DeliveryStatusDelivered, parcel.DeliveryStatusInTransit, false},
		{"delivered to returned", parcel.DeliveryStatusDelivered, parcel.DeliveryStatusReturned, false},
		{"returned to delivered", parcel.DeliveryStatusReturned, parcel.DeliveryStatusDelivered, false},
		{"unknown source", parcel.DeliveryStatus("bogus"), parcel.DeliveryStatusPending, false},
		{"unknown target", parcel.DeliveryStatusPending, parcel.DeliveryStatus("bogus"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanAdvanceTo(tt.to))
		})
	}
}

// A delivered parcel must never regress through any defined transition.
func TestDeliveredNeverRegresses(t *testing.T) {
	all := []parcel.DeliveryStatus{
		parcel.DeliveryStatusPending,
		parcel.DeliveryStatusRiderAssigned,
		parcel.DeliveryStatusInTransit,
		parcel.DeliveryStatusDelivered,
		parcel.DeliveryStatusServiceCenter,
		parcel.DeliveryStatusReturned,
	}
	for _, next := range all {
		assert.False(t, parcel.DeliveryStatusDelivered.CanAdvanceTo(next),
			"delivered advanced to %s", next)
	}
}

func TestTerminal(t *testing.T) {
	assert.True(t, parcel.DeliveryStatusDelivered.Terminal())
	assert.True(t, parcel.DeliveryStatusServiceCenter.Terminal())
	assert.True(t, parcel.DeliveryStatusReturned.Terminal())
	assert.False(t, parcel.DeliveryStatusPending.Terminal())
	assert.False(t, parcel.DeliveryStatusInTransit.Terminal())
	assert.False(t, parcel.DeliveryStatus("bogus").Terminal())
}

func TestStatusGroups(t *testing.T) {
	assert.ElementsMatch(t,
		[]parcel.DeliveryStatus{parcel.DeliveryStatusRiderAssigned, parcel.DeliveryStatusInTransit},
		parcel.ActiveStatuses())
	assert.ElementsMatch(t,
		[]parcel.DeliveryStatus{parcel.DeliveryStatusDelivered, parcel.DeliveryStatusServiceCenter, parcel.DeliveryStatusReturned},
		parcel.CompletedStatuses())
}
