package user

import (
	"fmt"
	"strings"

	userModel "zap-shift/models/user"
)

type UpsertUserRequest struct {
	Email string `json:"email" validate:"required"`
	Name  string `json:"name"`
}

// Validate validates the UpsertUserRequest fields
func (r *UpsertUserRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if !strings.Contains(r.Email, "@") {
		return fmt.Errorf("email is not valid")
	}
	return nil
}

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// Validate validates the UpdateRoleRequest fields
func (r *UpdateRoleRequest) Validate() error {
	if !userModel.Role(r.Role).Valid() {
		return fmt.Errorf("role must be one of 'user', 'admin' or 'rider'")
	}
	return nil
}
