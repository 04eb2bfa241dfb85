package rider

import (
	"errors"
	"fmt"
	"strings"

	"zap-shift/logger"
	riderModel "zap-shift/models/rider"
	userModel "zap-shift/models/user"
	"zap-shift/types"
	riderTypes "zap-shift/types/rider"
	"zap-shift/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RiderController owns the rider lifecycle: application, approval,
// deactivation, reactivation and the availability query. Every status
// transition rewrites the matching user's role in the same transaction.
type RiderController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewRiderController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *RiderController {
	return &RiderController{
		DB:     db,
		Logger: asyncLogger,
	}
}

func (rc *RiderController) sendResponseWithLog(c *fiber.Ctx, status int, response types.ApiResponse) error {
	result := c.Status(status).JSON(response)
	rc.Logger.Log(utils.CreateSanitizedLogEntry(c))
	return result
}

// Apply registers a rider application in pending state. A second application
// with the same email is refused.
func (rc *RiderController) Apply(c *fiber.Ctx) error {
	var req riderTypes.ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return rc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}
	if err := req.Validate(); err != nil {
		return rc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing riderModel.Rider
	err := rc.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return rc.sendResponseWithLog(c, fiber.StatusConflict, types.ApiResponse{
			Message: "A rider application already exists for this email",
			Status:  fiber.StatusConflict,
		})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to check existing rider", err)
		return rc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Message: "Internal server error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	r := riderModel.Rider{
		Name:        req.Name,
		Email:       email,
		Phone:       req.Phone,
		Region:      req.Region,
		NIDNumber:   req.NIDNumber,
		BikeBrand:   req.BikeBrand,
		AreasToRide: riderModel.StringSlice(req.AreasToRide),
		Status:      riderModel.StatusPending,
		WorkStatus:  riderModel.WorkStatusAvailable,
	}

	if err := rc.DB.Create(&r).Error; err != nil {
		logger.Error("Failed to create rider application", err)
		return rc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Message: "Failed to create rider application",
			Status:  fiber.StatusInternalServerError,
		})
	}

	logger.Success(fmt.Sprintf("Rider application received from %s", email))
	return rc.sendResponseWithLog(c, fiber.StatusCreated, types.ApiResponse{
		Message: "Rider application submitted successfully",
		Status:  fiber.StatusCreated,
		Data:    r,
	})
}

// Index lists riders, optionally filtered by status, newest application first.
func (rc *RiderController) Index(c *fiber.Ctx) error {
	query := rc.DB.Model(&riderModel.Rider{})
	if s := c.Query("status"); s != "" {
		status := riderModel.Status(s)
		if !status.Valid() {
			return rc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
				Message: "status must be one of 'pending', 'approved' or 'deactivated'",
				Status:  fiber.StatusBadRequest,
			})
		}
		query = query.Where("status = ?", status)
	}

	var riders []riderModel.Rider
	if err := query.Order("created_at DESC").Find(&riders).Error; err != nil {
		logger.Error("Failed to list riders", err)
		return rc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Message: "Failed to fetch riders",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return rc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Message: "Riders fetched successfully",
		Status:  fiber.StatusOK,
		Data:    riders,
	})
}

// ListByStatus serves the /riders/pending style routes.
func (rc *RiderController) ListByStatus(status riderModel.Status) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var riders []riderModel.Rider
		if err := rc.DB.Where("status = ?", status).Order("created_at DESC").Find(&riders).Error; err != nil {
			logger.Error("Failed to list riders by status", err)
			return rc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
				Message: "Failed to fetch riders",
				Status:  fiber.StatusInternalServerError,
			})
		}
		return rc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
			Message: "Riders fetched successfully",
			Status:  fiber.StatusOK,
			Data:    riders,
		})
	}
}

// Available returns approved, currently free riders covering the given area.
// The match is case-insensitive and exact per area entry; no pattern matching
// is built from the input, so metacharacters are harmless.
func (rc *RiderController) Available(c *fiber.Ctx) error {
	area := strings.TrimSpace(c.Query("area"))
	if area == "" {
		return rc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Message: "area is required",
			Status:  fiber.StatusBadRequest,
		})
	}

	var riders []riderModel.Rider
	if err := rc.DB.Where("status = ? AND work_status = ?", riderModel.StatusApproved, riderModel.WorkStatusAvailable).
		Find(&riders).Error; err != nil {
		logger.Error("Failed to list available riders", err)
		return rc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Message: "Failed to fetch riders",
			Status:  fiber.StatusInternalServerError,
		})
	}

	matched := make([]riderModel.Rider, 0, len(riders))
	for i := range riders {
		if riders[i].MatchesArea(area) {
			matched = append(matched, riders[i])
		}
	}

	return rc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Message: "Available riders fetched successfully",
		Status:  fiber.StatusOK,
		Data:    matched,
	})
}

// Approve moves a rider to approved and promotes the matching user to the
// rider role. Also used to reactivate a deactivated rider.
func (rc *RiderController) Approve(c *fiber.Ctx) error {
	return rc.setStatus(c, riderModel.StatusApproved, userModel.RoleRider, "Rider approved successfully")
}

// Deactivate moves a rider to deactivated and demotes the matching user.
func (rc *RiderController) Deactivate(c *fiber.Ctx) error {
	return rc.setStatus(c, riderModel.StatusDeactivated, userModel.RoleUser, "Rider deactivated successfully")
}

// Reactivate restores a deactivated rider to approved.
func (rc *RiderController) Reactivate(c *fiber.Ctx) error {
	return rc.setStatus(c, riderModel.StatusApproved, userModel.RoleRider, "Rider reactivated successfully")
}

// setStatus applies a rider status transition and synchronizes the user role
// inside one transaction, keeping Rider.status the source of truth.
func (rc *RiderController) setStatus(c *fiber.Ctx, status riderModel.Status, role userModel.Role, message string) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return rc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Message: "Invalid rider id",
			Status:  fiber.StatusBadRequest,
		})
	}

	var r riderModel.Rider
	txErr := rc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&r, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&r).Update("status", status).Error; err != nil {
			return err
		}
		return tx.Model(&userModel.User{}).Where("email = ?", r.Email).
			Update("role", role).Error
	})

	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return rc.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
				Message: "Rider not found",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to update rider status", txErr)
		return rc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Message: "Failed to update rider status",
			Status:  fiber.StatusInternalServerError,
		})
	}

	logger.Success(fmt.Sprintf("Rider %d set to %s", r.ID, status))
	return rc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Message: message,
		Status:  fiber.StatusOK,
		Data:    r,
	})
}

// Destroy removes a rider application.
func (rc *RiderController) Destroy(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return rc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Message: "Invalid rider id",
			Status:  fiber.StatusBadRequest,
		})
	}

	result := rc.DB.Delete(&riderModel.Rider{}, id)
	if result.Error != nil {
		logger.Error("Failed to delete rider", result.Error)
		return rc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Message: "Failed to delete rider",
			Status:  fiber.StatusInternalServerError,
		})
	}
	if result.RowsAffected == 0 {
		return rc.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
			Message: "Rider not found",
			Status:  fiber.StatusNotFound,
		})
	}

	return rc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Message: "Rider deleted successfully",
		Status:  fiber.StatusOK,
	})
}
