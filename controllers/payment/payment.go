package payment

import (
	"errors"
	"fmt"
	"time"

	"zap-shift/logger"
	"zap-shift/middleware"
	parcelModel "zap-shift/models/parcel"
	paymentModel "zap-shift/models/payment"
	trackingModel "zap-shift/models/tracking"
	userModel "zap-shift/models/user"
	"zap-shift/services/paymentgw"
	"zap-shift/services/tracking_event"
	"zap-shift/types"
	paymentTypes "zap-shift/types/payment"
	"zap-shift/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// PaymentController talks to the external payment processor, confirms parcel
// payments and serves the payment history.
type PaymentController struct {
	DB      *gorm.DB
	Logger  *logger.AsyncLogger
	Gateway *paymentgw.Client
}

func NewPaymentController(db *gorm.DB, asyncLogger *logger.AsyncLogger, gateway *paymentgw.Client) *PaymentController {
	return &PaymentController{
		DB:      db,
		Logger:  asyncLogger,
		Gateway: gateway,
	}
}

func (pc *PaymentController) sendResponseWithLog(c *fiber.Ctx, status int, response types.ApiResponse) error {
	result := c.Status(status).JSON(response)
	pc.Logger.Log(utils.CreateSanitizedLogEntry(c))
	return result
}

// CreateIntent asks the processor for a new payment intent.
func (pc *PaymentController) CreateIntent(c *fiber.Ctx) error {
	var req paymentTypes.CreateIntentRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return pc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}
	if err := req.Validate(); err != nil {
		return pc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	intent, err := pc.Gateway.CreateIntent(req.Amount)
	if err != nil {
		logger.Error("Payment processor failed to create intent", err)
		return pc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Message: "Failed to create payment intent",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return pc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Message: "Payment intent created successfully",
		Status:  fiber.StatusOK,
		Data:    intent,
	})
}

// IntentStatus reads the current state of a payment intent.
func (pc *PaymentController) IntentStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return pc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Message: "Intent id is required",
			Status:  fiber.StatusBadRequest,
		})
	}

	intent, err := pc.Gateway.RetrieveIntent(id)
	if err != nil {
		logger.Error("Payment processor failed to retrieve intent", err)
		return pc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Message: "Failed to retrieve payment intent",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return pc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Message: "Payment intent fetched successfully",
		Status:  fiber.StatusOK,
		Data:    intent,
	})
}

// Confirm marks a parcel paid and appends the payment record and a ledger
// event, all in one transaction so a paid parcel always has its record.
func (pc *PaymentController) Confirm(c *fiber.Ctx) error {
	parcelID, err := c.ParamsInt("parcelId")
	if err != nil {
		return pc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Message: "Invalid parcel id",
			Status:  fiber.StatusBadRequest,
		})
	}

	var req paymentTypes.ConfirmPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return pc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}
	if err := req.Validate(); err != nil {
		return pc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	var p parcelModel.Parcel
	var record paymentModel.PaymentRecord
	txErr := pc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, parcelID).Error; err != nil {
			return err
		}

		paidAt := time.Now()
		if err := tx.Model(&p).Updates(map[string]interface{}{
			"payment_status":    parcelModel.PaymentStatusPaid,
			"payment_intent_id": req.PaymentIntentID,
			"payment_method":    req.PaymentMethod,
			"paid_amount":       req.Amount,
			"paid_at":           paidAt,
		}).Error; err != nil {
			return err
		}

		record = paymentModel.PaymentRecord{
			ParcelID:        p.ID,
			TrackingID:      p.TrackingID,
			PaymentIntentID: req.PaymentIntentID,
			Amount:          req.Amount,
			Email:           req.UserEmail,
			PaymentMethod:   req.PaymentMethod,
			Status:          "succeeded",
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		_, err := tracking_event.Append(tx, p.TrackingID, trackingModel.StatusPaymentDone,
			"Payment confirmed", req.UserEmail)
		return err
	})

	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return pc.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
				Message: "Parcel not found",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to confirm payment", txErr)
		return pc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Message: "Failed to confirm payment",
			Status:  fiber.StatusInternalServerError,
		})
	}

	logger.Success(fmt.Sprintf("Payment %s recorded for parcel %d", req.PaymentIntentID, p.ID))
	return pc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Message: "Payment recorded successfully",
		Status:  fiber.StatusOK,
		Data:    record,
	})
}

// History lists payment records newest first. Admins may query any payer via
// ?email=; other callers always get their own. An optional ?date=YYYY-MM-DD
// narrows the list to that day.
func (pc *PaymentController) History(c *fiber.Ctx) error {
	callerEmail, ok := middleware.EmailFromContext(c)
	if !ok {
		return pc.sendResponseWithLog(c, fiber.StatusUnauthorized, types.ApiResponse{
			Message: "Authorization token missing",
			Status:  fiber.StatusUnauthorized,
		})
	}

	email := callerEmail
	if requested := c.Query("email"); requested != "" && requested != callerEmail {
		var caller userModel.User
		if err := pc.DB.Where("email = ?", callerEmail).First(&caller).Error; err != nil || caller.Role != userModel.RoleAdmin {
			return pc.sendResponseWithLog(c, fiber.StatusForbidden, types.ApiResponse{
				Message: "Insufficient permissions",
				Status:  fiber.StatusForbidden,
			})
		}
		email = requested
	}

	if email == "" {
		return pc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Message: "email is required",
			Status:  fiber.StatusBadRequest,
		})
	}

	query := pc.DB.Where("email = ?", email)
	if d := c.Query("date"); d != "" {
		day, err := time.Parse("2006-01-02", d)
		if err != nil {
			return pc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
				Message: "date must be in YYYY-MM-DD format",
				Status:  fiber.StatusBadRequest,
			})
		}
		n := now.New(day)
		query = query.Where("created_at BETWEEN ? AND ?", n.BeginningOfDay(), n.EndOfDay())
	}

	var records []paymentModel.PaymentRecord
	if err := query.Order("created_at DESC").Find(&records).Error; err != nil {
		logger.Error("Failed to list payments", err)
		return pc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Message: "Failed to fetch payments",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return pc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Message: "Payments fetched successfully",
		Status:  fiber.StatusOK,
		Data:    records,
	})
}
