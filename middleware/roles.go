package middleware

import (
	"errors"

	"zap-shift/database"
	"zap-shift/logger"
	userModel "zap-shift/models/user"
	"zap-shift/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RequireRole runs after RequireAuth and checks the caller's role against the
// users table. The role column is the single source of truth; nothing from the
// token besides the email is trusted for authorization.
func RequireRole(role userModel.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, ok := EmailFromContext(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Message: "Authorization token missing",
				Status:  fiber.StatusUnauthorized,
			})
		}

		var u userModel.User
		if err := database.DB.Where("email = ?", email).First(&u).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
					Message: "Insufficient permissions",
					Status:  fiber.StatusForbidden,
				})
			}
			logger.Error("Failed to load user for role check", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Message: "Internal server error",
				Status:  fiber.StatusInternalServerError,
			})
		}

		if u.Role != role {
			return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
				Message: "Insufficient permissions",
				Status:  fiber.StatusForbidden,
			})
		}

		c.Locals("role", string(u.Role))
		return c.Next()
	}
}

// RequireAdmin gates admin-only routes.
func RequireAdmin() fiber.Handler {
	return RequireRole(userModel.RoleAdmin)
}

// RequireRider gates rider-only routes.
func RequireRider() fiber.Handler {
	return RequireRole(userModel.RoleRider)
}
