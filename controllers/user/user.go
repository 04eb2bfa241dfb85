package user

import (
	"errors"
	"strings"
	"time"

	"zap-shift/logger"
	userModel "zap-shift/models/user"
	"zap-shift/types"
	userTypes "zap-shift/types/user"
	"zap-shift/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserController manages the users table: the login upsert, admin listing and
// search, and role lookups. Role changes through PATCH are admin-only; rider
// transitions rewrite roles through the rider controller instead.
type UserController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewUserController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *UserController {
	return &UserController{
		DB:     db,
		Logger: asyncLogger,
	}
}

func (uc *UserController) sendResponseWithLog(c *fiber.Ctx, status int, response types.ApiResponse) error {
	result := c.Status(status).JSON(response)
	uc.Logger.Log(utils.CreateSanitizedLogEntry(c))
	return result
}

// Upsert records a login: inserts the user with the default role on first
// sight, otherwise refreshes the last-login stamp.
func (uc *UserController) Upsert(c *fiber.Ctx) error {
	var req userTypes.UpsertUserRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return uc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}
	if err := req.Validate(); err != nil {
		return uc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	nowTime := time.Now()

	var u userModel.User
	err := uc.DB.Where("email = ?", email).First(&u).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		u = userModel.User{
			Email:       email,
			Name:        req.Name,
			Role:        userModel.RoleUser,
			LastLoginAt: &nowTime,
		}
		if err := uc.DB.Create(&u).Error; err != nil {
			logger.Error("Failed to create user", err)
			return uc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
				Message: "Failed to create user",
				Status:  fiber.StatusInternalServerError,
			})
		}
		return uc.sendResponseWithLog(c, fiber.StatusCreated, types.ApiResponse{
			Message: "User created successfully",
			Status:  fiber.StatusCreated,
			Data:    u,
		})
	case err != nil:
		logger.Error("Failed to look up user", err)
		return uc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Message: "Internal server error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	if err := uc.DB.Model(&u).Update("last_login_at", nowTime).Error; err != nil {
		logger.Error("Failed to update last login", err)
		return uc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Message: "Failed to update user",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return uc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Message: "User login recorded",
		Status:  fiber.StatusOK,
		Data:    u,
	})
}

// Index lists all users, newest first.
func (uc *UserController) Index(c *fiber.Ctx) error {
	var users []userModel.User
	if err := uc.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		logger.Error("Failed to list users", err)
		return uc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Message: "Failed to fetch users",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return uc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Message: "Users fetched successfully",
		Status:  fiber.StatusOK,
		Data:    users,
	})
}

// Search finds users whose email contains the given fragment.
func (uc *UserController) Search(c *fiber.Ctx) error {
	fragment := strings.TrimSpace(c.Query("email"))
	if fragment == "" {
		return uc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Message: "email is required",
			Status:  fiber.StatusBadRequest,
		})
	}

	var users []userModel.User
	if err := uc.DB.Where("email ILIKE ?", "%"+fragment+"%").
		Order("created_at DESC").Limit(20).Find(&users).Error; err != nil {
		logger.Error("Failed to search users", err)
		return uc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Message: "Failed to search users",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return uc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Message: "Users fetched successfully",
		Status:  fiber.StatusOK,
		Data:    users,
	})
}

// GetRole returns the stored role for an email.
func (uc *UserController) GetRole(c *fiber.Ctx) error {
	email := c.Params("email")

	var u userModel.User
	if err := uc.DB.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uc.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
				Message: "User not found",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to fetch user role", err)
		return uc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Message: "Internal server error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return uc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Message: "Role fetched successfully",
		Status:  fiber.StatusOK,
		Data:    map[string]interface{}{"email": u.Email, "role": u.Role},
	})
}

// UpdateRole sets a user's role directly. Intended for admin bootstrap; rider
// role flips normally come from the rider lifecycle.
func (uc *UserController) UpdateRole(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return uc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Message: "Invalid user id",
			Status:  fiber.StatusBadRequest,
		})
	}

	var req userTypes.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return uc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}
	if err := req.Validate(); err != nil {
		return uc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	result := uc.DB.Model(&userModel.User{}).Where("id = ?", id).Update("role", req.Role)
	if result.Error != nil {
		logger.Error("Failed to update user role", result.Error)
		return uc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Message: "Failed to update user role",
			Status:  fiber.StatusInternalServerError,
		})
	}
	if result.RowsAffected == 0 {
		return uc.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
			Message: "User not found",
			Status:  fiber.StatusNotFound,
		})
	}

	return uc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Message: "User role updated successfully",
		Status:  fiber.StatusOK,
	})
}
