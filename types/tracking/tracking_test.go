package tracking_test

import (
	"testing"

	"zap-shift/types/tracking"

	"github.com/stretchr/testify/assert"
)

func TestAppendEventRequestValidate(t *testing.T) {
	assert.NoError(t, (&tracking.AppendEventRequest{TrackingID: "ZAP-1", Status: "in_transit"}).Validate())
	assert.Error(t, (&tracking.AppendEventRequest{Status: "in_transit"}).Validate())
	assert.Error(t, (&tracking.AppendEventRequest{TrackingID: "ZAP-1"}).Validate())
	assert.Error(t, (&tracking.AppendEventRequest{TrackingID: "  ", Status: "x"}).Validate())
}
