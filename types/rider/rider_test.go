package rider_test

import (
	"testing"

	"zap-shift/types/rider"

	"github.com/stretchr/testify/assert"
)

func TestApplyRequestValidate(t *testing.T) {
	valid := rider.ApplyRequest{
		Name:        "Rahim",
		Email:       "r@x.com",
		AreasToRide: []string{"dhaka"},
	}
	assert.NoError(t, valid.Validate())

	missingName := valid
	missingName.Name = "  "
	assert.Error(t, missingName.Validate())

	missingEmail := valid
	missingEmail.Email = ""
	assert.Error(t, missingEmail.Validate())

	badEmail := valid
	badEmail.Email = "not-an-email"
	assert.Error(t, badEmail.Validate())
}
