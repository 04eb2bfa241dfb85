package user_test

import (
	"testing"

	"zap-shift/types/user"

	"github.com/stretchr/testify/assert"
)

func TestUpsertUserRequestValidate(t *testing.T) {
	assert.NoError(t, (&user.UpsertUserRequest{Email: "a@x.com"}).Validate())
	assert.Error(t, (&user.UpsertUserRequest{}).Validate())
	assert.Error(t, (&user.UpsertUserRequest{Email: "nope"}).Validate())
}

func TestUpdateRoleRequestValidate(t *testing.T) {
	for _, role := range []string{"user", "admin", "rider"} {
		assert.NoError(t, (&user.UpdateRoleRequest{Role: role}).Validate())
	}
	assert.Error(t, (&user.UpdateRoleRequest{Role: "postman"}).Validate())
	assert.Error(t, (&user.UpdateRoleRequest{}).Validate())
}
