package tracking_event_test

import (
	"testing"

	"zap-shift/services/tracking_event"

	"github.com/stretchr/testify/assert"
)

func TestAppendRequiresTrackingIDAndStatus(t *testing.T) {
	_, err := tracking_event.Append(nil, "", "in_transit", "", "")
	assert.Error(t, err)

	_, err = tracking_event.Append(nil, "ZAP-1", "", "", "")
	assert.Error(t, err)

	_, err = tracking_event.Append(nil, "   ", "in_transit", "", "")
	assert.Error(t, err)
}
