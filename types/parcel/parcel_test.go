package parcel_test

import (
	"testing"

	parcelModel "zap-shift/models/parcel"
	"zap-shift/types/parcel"

	"github.com/stretchr/testify/assert"
)

func TestDeliverRequestValidate(t *testing.T) {
	assert.NoError(t, (&parcel.DeliverRequest{}).Validate())
	assert.NoError(t, (&parcel.DeliverRequest{Status: "delivered"}).Validate())
	assert.NoError(t, (&parcel.DeliverRequest{Status: "service_center_delivered"}).Validate())
	assert.NoError(t, (&parcel.DeliverRequest{Status: "returned"}).Validate())
	assert.Error(t, (&parcel.DeliverRequest{Status: "in_transit"}).Validate())
	assert.Error(t, (&parcel.DeliverRequest{Status: "done"}).Validate())
}

func TestDeliverRequestFinalStatus(t *testing.T) {
	assert.Equal(t, parcelModel.DeliveryStatusDelivered, (&parcel.DeliverRequest{}).FinalStatus())
	assert.Equal(t, parcelModel.DeliveryStatusReturned, (&parcel.DeliverRequest{Status: "returned"}).FinalStatus())
}

func TestAssignRiderRequestValidate(t *testing.T) {
	assert.Error(t, (&parcel.AssignRiderRequest{}).Validate())
	assert.NoError(t, (&parcel.AssignRiderRequest{RiderID: 7}).Validate())
}
