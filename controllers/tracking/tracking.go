package tracking

import (
	"zap-shift/logger"
	"zap-shift/middleware"
	trackingModel "zap-shift/models/tracking"
	"zap-shift/services/tracking_event"
	"zap-shift/types"
	trackingTypes "zap-shift/types/tracking"
	"zap-shift/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// TrackingController exposes the append-only tracking ledger.
type TrackingController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewTrackingController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *TrackingController {
	return &TrackingController{
		DB:     db,
		Logger: asyncLogger,
	}
}

func (tc *TrackingController) sendResponseWithLog(c *fiber.Ctx, status int, response types.ApiResponse) error {
	result := c.Status(status).JSON(response)
	tc.Logger.Log(utils.CreateSanitizedLogEntry(c))
	return result
}

// Store appends one event to the ledger.
func (tc *TrackingController) Store(c *fiber.Ctx) error {
	var req trackingTypes.AppendEventRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return tc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}
	if err := req.Validate(); err != nil {
		return tc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	email, _ := middleware.EmailFromContext(c)

	ev, err := tracking_event.Append(tc.DB, req.TrackingID, req.Status, req.Message, email)
	if err != nil {
		logger.Error("Failed to append tracking event", err)
		return tc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Message: "Failed to append tracking event",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return tc.sendResponseWithLog(c, fiber.StatusCreated, types.ApiResponse{
		Message: "Tracking event recorded successfully",
		Status:  fiber.StatusCreated,
		Data:    ev,
	})
}

// Show returns the full event sequence for a tracking id, oldest first.
// An unknown tracking id has an empty sequence and is reported as not found.
func (tc *TrackingController) Show(c *fiber.Ctx) error {
	trackingID := c.Params("trackingId")

	var events []trackingModel.TrackingEvent
	if err := tc.DB.Where("tracking_id = ?", trackingID).
		Order("created_at ASC").Find(&events).Error; err != nil {
		logger.Error("Failed to fetch tracking events", err)
		return tc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Message: "Failed to fetch tracking events",
			Status:  fiber.StatusInternalServerError,
		})
	}

	if len(events) == 0 {
		return tc.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
			Message: "No tracking events found",
			Status:  fiber.StatusNotFound,
		})
	}

	return tc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Message: "Tracking events fetched successfully",
		Status:  fiber.StatusOK,
		Data:    events,
	})
}
