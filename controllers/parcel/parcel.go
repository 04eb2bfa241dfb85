package parcel

import (
	"errors"
	"fmt"
	"time"

	"zap-shift/logger"
	"zap-shift/middleware"
	parcelModel "zap-shift/models/parcel"
	riderModel "zap-shift/models/rider"
	trackingModel "zap-shift/models/tracking"
	userModel "zap-shift/models/user"
	"zap-shift/services/tracking_event"
	"zap-shift/types"
	parcelTypes "zap-shift/types/parcel"
	"zap-shift/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ParcelController owns every parcel state transition and the parcel queries.
type ParcelController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewParcelController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *ParcelController {
	return &ParcelController{
		DB:     db,
		Logger: asyncLogger,
	}
}

func (pc *ParcelController) sendResponseWithLog(c *fiber.Ctx, status int, response types.ApiResponse) error {
	result := c.Status(status).JSON(response)
	pc.Logger.Log(utils.CreateSanitizedLogEntry(c))
	return result
}

// Store creates a parcel for the authenticated caller. The payload is stored
// as submitted; a tracking id is minted and the first ledger event written.
func (pc *ParcelController) Store(c *fiber.Ctx) error {
	email, ok := middleware.EmailFromContext(c)
	if !ok {
		return pc.sendResponseWithLog(c, fiber.StatusUnauthorized, types.ApiResponse{
			Message: "Authorization token missing",
			Status:  fiber.StatusUnauthorized,
		})
	}

	var req parcelTypes.CreateParcelRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return pc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}

	p := parcelModel.Parcel{
		TrackingID:          "ZAP-" + uuid.NewString(),
		CreatedBy:           email,
		Type:                req.Type,
		Title:               req.Title,
		WeightKg:            req.WeightKg,
		SenderName:          req.SenderName,
		SenderContact:       req.SenderContact,
		SenderRegion:        req.SenderRegion,
		SenderAddress:       req.SenderAddress,
		PickupInstruction:   req.PickupInstruction,
		ReceiverName:        req.ReceiverName,
		ReceiverContact:     req.ReceiverContact,
		ReceiverRegion:      req.ReceiverRegion,
		ReceiverAddress:     req.ReceiverAddress,
		DeliveryInstruction: req.DeliveryInstruction,
		Cost:                req.Cost,
		PaymentStatus:       parcelModel.PaymentStatusUnpaid,
		DeliveryStatus:      parcelModel.DeliveryStatusPending,
		CashoutStatus:       parcelModel.CashoutStatusNone,
	}

	if err := pc.DB.Create(&p).Error; err != nil {
		logger.Error("Failed to create parcel", err)
		return pc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Message: "Failed to create parcel",
			Status:  fiber.StatusInternalServerError,
		})
	}

	if _, err := tracking_event.Append(pc.DB, p.TrackingID, trackingModel.StatusParcelCreated, "Parcel created", email); err != nil {
		logger.Error("Failed to write tracking event (parcel_created)", err)
	}

	logger.Success(fmt.Sprintf("Parcel created with tracking id %s by %s", p.TrackingID, email))
	return pc.sendResponseWithLog(c, fiber.StatusCreated, types.ApiResponse{
		Message: "Parcel created successfully",
		Status:  fiber.StatusCreated,
		Data:    p,
	})
}

// Index lists parcels. Admins see everything, optionally filtered by
// payment_status / delivery_status; everyone else sees their own parcels.
// Newest first in both cases.
func (pc *ParcelController) Index(c *fiber.Ctx) error {
	email, ok := middleware.EmailFromContext(c)
	if !ok {
		return pc.sendResponseWithLog(c, fiber.StatusUnauthorized, types.ApiResponse{
			Message: "Authorization token missing",
			Status:  fiber.StatusUnauthorized,
		})
	}

	var caller userModel.User
	if err := pc.DB.Where("email = ?", email).First(&caller).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to load caller", err)
		return pc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Message: "Internal server error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	query := pc.DB.Model(&parcelModel.Parcel{})
	if caller.Role == userModel.RoleAdmin {
		if ps := c.Query("payment_status"); ps != "" {
			query = query.Where("payment_status = ?", ps)
		}
		if ds := c.Query("delivery_status"); ds != "" {
			query = query.Where("delivery_status = ?", ds)
		}
	} else {
		query = query.Where("created_by = ?", email)
	}

	var parcels []parcelModel.Parcel
	if err := query.Order("created_at DESC").Find(&parcels).Error; err != nil {
		logger.Error("Failed to list parcels", err)
		return pc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Message: "Failed to fetch parcels",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return pc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Message: "Parcels fetched successfully",
		Status:  fiber.StatusOK,
		Data:    parcels,
	})
}

// Show returns a single parcel by id.
func (pc *ParcelController) Show(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return pc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Message: "Invalid parcel id",
			Status:  fiber.StatusBadRequest,
		})
	}

	var p parcelModel.Parcel
	if err := pc.DB.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pc.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
				Message: "Parcel not found",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to fetch parcel", err)
		return pc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Message: "Internal server error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return pc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Message: "Parcel fetched successfully",
		Status:  fiber.StatusOK,
		Data:    p,
	})
}

// Destroy removes a parcel. Deleting an absent id is reported as not found
// rather than silently succeeding.
func (pc *ParcelController) Destroy(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return pc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Message: "Invalid parcel id",
			Status:  fiber.StatusBadRequest,
		})
	}

	result := pc.DB.Delete(&parcelModel.Parcel{}, id)
	if result.Error != nil {
		logger.Error("Failed to delete parcel", result.Error)
		return pc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Message: "Failed to delete parcel",
			Status:  fiber.StatusInternalServerError,
		})
	}
	if result.RowsAffected == 0 {
		return pc.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
			Message: "Parcel not found",
			Status:  fiber.StatusNotFound,
		})
	}

	return pc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Message: "Parcel deleted successfully",
		Status:  fiber.StatusOK,
	})
}

// AssignRider moves a pending parcel to rider_assigned, stamps the rider
// snapshot and marks the rider busy. The rider must exist with status
// approved. Both writes run in one transaction.
func (pc *ParcelController) AssignRider(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return pc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Message: "Invalid parcel id",
			Status:  fiber.StatusBadRequest,
		})
	}

	var req parcelTypes.AssignRiderRequest
	if err := c.BodyParser(&req); err != nil {
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

	email, _ := middleware.EmailFromContext(c)

	var p parcelModel.Parcel
	txErr := pc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, id).Error; err != nil {
			return err
		}
		if !p.DeliveryStatus.CanAdvanceTo(parcelModel.DeliveryStatusRiderAssigned) {
			return errAlreadyTransitioned
		}

		var r riderModel.Rider
		if err := tx.Where("id = ? AND status = ?", req.RiderID, riderModel.StatusApproved).First(&r).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errRiderNotApproved
			}
			return err
		}

		assignedAt := time.Now()
		if err := tx.Model(&p).Updates(map[string]interface{}{
			"delivery_status":      parcelModel.DeliveryStatusRiderAssigned,
			"assigned_rider_id":    r.ID,
			"assigned_rider_name":  r.Name,
			"assigned_rider_phone": r.Phone,
			"assigned_rider_email": r.Email,
			"assigned_at":          assignedAt,
		}).Error; err != nil {
			return err
		}

		if err := tx.Model(&r).Update("work_status", riderModel.WorkStatusBusy).Error; err != nil {
			return err
		}

		_, err := tracking_event.Append(tx, p.TrackingID, trackingModel.StatusRiderAssigned,
			fmt.Sprintf("Rider %s assigned", r.Name), email)
		return err
	})

	if txErr != nil {
		return pc.transitionError(c, txErr, "Failed to assign rider")
	}

	logger.Success(fmt.Sprintf("Rider %d assigned to parcel %d", req.RiderID, p.ID))
	return pc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Message: "Rider assigned successfully",
		Status:  fiber.StatusOK,
		Data:    p,
	})
}

// Pickup moves a rider_assigned parcel to in_transit. Only the assigned rider
// can pick the parcel up.
func (pc *ParcelController) Pickup(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return pc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Message: "Invalid parcel id",
			Status:  fiber.StatusBadRequest,
		})
	}

	email, ok := middleware.EmailFromContext(c)
	if !ok {
		return pc.sendResponseWithLog(c, fiber.StatusUnauthorized, types.ApiResponse{
			Message: "Authorization token missing",
			Status:  fiber.StatusUnauthorized,
		})
	}

	var p parcelModel.Parcel
	txErr := pc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, id).Error; err != nil {
			return err
		}
		if !p.DeliveryStatus.CanAdvanceTo(parcelModel.DeliveryStatusInTransit) {
			return errAlreadyTransitioned
		}
		if p.AssignedRiderEmail != email {
			return errNotAssignedRider
		}

		pickedAt := time.Now()
		if err := tx.Model(&p).Updates(map[string]interface{}{
			"delivery_status": parcelModel.DeliveryStatusInTransit,
			"picked_up_at":    pickedAt,
			"picked_by":       email,
		}).Error; err != nil {
			return err
		}

		_, err := tracking_event.Append(tx, p.TrackingID, trackingModel.StatusInTransit, "Parcel picked up", email)
		return err
	})

	if txErr != nil {
		return pc.transitionError(c, txErr, "Failed to mark parcel picked up")
	}

	return pc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Message: "Parcel marked as in transit",
		Status:  fiber.StatusOK,
		Data:    p,
	})
}

// Deliver moves an in_transit parcel to its terminal status (delivered by
// default) and frees the rider in the same transaction.
func (pc *ParcelController) Deliver(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return pc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Message: "Invalid parcel id",
			Status:  fiber.StatusBadRequest,
		})
	}

	email, ok := middleware.EmailFromContext(c)
	if !ok {
		return pc.sendResponseWithLog(c, fiber.StatusUnauthorized, types.ApiResponse{
			Message: "Authorization token missing",
			Status:  fiber.StatusUnauthorized,
		})
	}

	var req parcelTypes.DeliverRequest
	if err := c.BodyParser(&req); err != nil {
		// An empty body is fine; the status defaults to delivered.
		req = parcelTypes.DeliverRequest{}
	}
	if err := req.Validate(); err != nil {
		return pc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}
	finalStatus := req.FinalStatus()

	var p parcelModel.Parcel
	txErr := pc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, id).Error; err != nil {
			return err
		}
		if !p.DeliveryStatus.CanAdvanceTo(finalStatus) {
			return errAlreadyTransitioned
		}
		if p.AssignedRiderEmail != email {
			return errNotAssignedRider
		}

		deliveredAt := time.Now()
		if err := tx.Model(&p).Updates(map[string]interface{}{
			"delivery_status": finalStatus,
			"delivered_at":    deliveredAt,
			"delivered_by":    email,
		}).Error; err != nil {
			return err
		}

		// The rider's busy flag must always reflect the active assignment.
		if p.AssignedRiderID != nil {
			if err := tx.Model(&riderModel.Rider{}).Where("id = ?", *p.AssignedRiderID).
				Update("work_status", riderModel.WorkStatusAvailable).Error; err != nil {
				return err
			}
		}

		_, err := tracking_event.Append(tx, p.TrackingID, trackingModel.StatusDelivered,
			fmt.Sprintf("Parcel %s", finalStatus), email)
		return err
	})

	if txErr != nil {
		return pc.transitionError(c, txErr, "Failed to mark parcel delivered")
	}

	logger.Success(fmt.Sprintf("Parcel %d marked %s by %s", p.ID, finalStatus, email))
	return pc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Message: "Parcel delivery recorded",
		Status:  fiber.StatusOK,
		Data:    p,
	})
}

// Cashout settles a parcel's proceeds to the assigned rider. No delivery
// precondition is enforced, but a second cashout is refused.
func (pc *ParcelController) Cashout(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return pc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Message: "Invalid parcel id",
			Status:  fiber.StatusBadRequest,
		})
	}

	var p parcelModel.Parcel
	if err := pc.DB.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pc.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
				Message: "Parcel not found",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to fetch parcel", err)
		return pc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Message: "Internal server error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	if p.CashoutStatus == parcelModel.CashoutStatusCashedOut {
		return pc.sendResponseWithLog(c, fiber.StatusConflict, types.ApiResponse{
			Message: "Parcel is already cashed out",
			Status:  fiber.StatusConflict,
		})
	}

	cashedOutAt := time.Now()
	if err := pc.DB.Model(&p).Updates(map[string]interface{}{
		"cashout_status": parcelModel.CashoutStatusCashedOut,
		"cashed_out_at":  cashedOutAt,
	}).Error; err != nil {
		logger.Error("Failed to cash out parcel", err)
		return pc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Message: "Failed to cash out parcel",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return pc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Message: "Parcel cashed out successfully",
		Status:  fiber.StatusOK,
		Data:    p,
	})
}

// StatusCount aggregates parcels grouped by delivery status.
func (pc *ParcelController) StatusCount(c *fiber.Ctx) error {
	var counts []parcelTypes.StatusCount
	if err := pc.DB.Model(&parcelModel.Parcel{}).
		Select("delivery_status AS status, COUNT(*) AS count").
		Group("delivery_status").
		Scan(&counts).Error; err != nil {
		logger.Error("Failed to aggregate parcel status counts", err)
		return pc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Message: "Failed to fetch status counts",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return pc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Message: "Status counts fetched successfully",
		Status:  fiber.StatusOK,
		Data:    counts,
	})
}

// RiderActive lists the caller's outstanding assignments, newest first.
func (pc *ParcelController) RiderActive(c *fiber.Ctx) error {
	email, ok := middleware.EmailFromContext(c)
	if !ok {
		return pc.sendResponseWithLog(c, fiber.StatusUnauthorized, types.ApiResponse{
			Message: "Authorization token missing",
			Status:  fiber.StatusUnauthorized,
		})
	}

	var parcels []parcelModel.Parcel
	if err := pc.DB.Where("assigned_rider_email = ? AND delivery_status IN ?", email, parcelModel.ActiveStatuses()).
		Order("assigned_at DESC").Find(&parcels).Error; err != nil {
		logger.Error("Failed to list rider parcels", err)
		return pc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Message: "Failed to fetch parcels",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return pc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Message: "Parcels fetched successfully",
		Status:  fiber.StatusOK,
		Data:    parcels,
	})
}

// RiderCompleted lists the caller's finished deliveries, newest first.
func (pc *ParcelController) RiderCompleted(c *fiber.Ctx) error {
	email, ok := middleware.EmailFromContext(c)
	if !ok {
		return pc.sendResponseWithLog(c, fiber.StatusUnauthorized, types.ApiResponse{
			Message: "Authorization token missing",
			Status:  fiber.StatusUnauthorized,
		})
	}

	var parcels []parcelModel.Parcel
	if err := pc.DB.Where("assigned_rider_email = ? AND delivery_status IN ?", email, parcelModel.CompletedStatuses()).
		Order("delivered_at DESC").Find(&parcels).Error; err != nil {
		logger.Error("Failed to list completed rider parcels", err)
		return pc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Message: "Failed to fetch parcels",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return pc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Message: "Parcels fetched successfully",
		Status:  fiber.StatusOK,
		Data:    parcels,
	})
}

var (
	errAlreadyTransitioned = errors.New("parcel is not in the required state for this transition")
	errRiderNotApproved    = errors.New("rider not found or not approved")
	errNotAssignedRider    = errors.New("parcel is assigned to a different rider")
)

// transitionError maps lifecycle transaction failures onto the error taxonomy.
func (pc *ParcelController) transitionError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return pc.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
			Message: "Parcel not found",
			Status:  fiber.StatusNotFound,
		})
	case errors.Is(err, errRiderNotApproved):
		return pc.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
			Message: errRiderNotApproved.Error(),
			Status:  fiber.StatusNotFound,
		})
	case errors.Is(err, errAlreadyTransitioned):
		return pc.sendResponseWithLog(c, fiber.StatusConflict, types.ApiResponse{
			Message: errAlreadyTransitioned.Error(),
			Status:  fiber.StatusConflict,
		})
	case errors.Is(err, errNotAssignedRider):
		return pc.sendResponseWithLog(c, fiber.StatusForbidden, types.ApiResponse{
			Message: errNotAssignedRider.Error(),
			Status:  fiber.StatusForbidden,
		})
	default:
		logger.Error(fallback, err)
		return pc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Message: fallback,
			Status:  fiber.StatusInternalServerError,
		})
	}
}
