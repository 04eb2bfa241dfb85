package routes

import (
	"os"

	parcelController "zap-shift/controllers/parcel"
	paymentController "zap-shift/controllers/payment"
	riderController "zap-shift/controllers/rider"
	trackingController "zap-shift/controllers/tracking"
	userController "zap-shift/controllers/user"
	"zap-shift/logger"
	"zap-shift/middleware"
	riderModel "zap-shift/models/rider"
	"zap-shift/services/paymentgw"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	gateway := paymentgw.NewClient(os.Getenv("STRIPE_SECRET_KEY"), os.Getenv("PAYMENT_CURRENCY"))
	asyncLogger := logger.NewAsyncLogger(db)

	parcels := parcelController.NewParcelController(db, asyncLogger)
	riders := riderController.NewRiderController(db, asyncLogger)
	trackings := trackingController.NewTrackingController(db, asyncLogger)
	payments := paymentController.NewPaymentController(db, asyncLogger, gateway)
	users := userController.NewUserController(db, asyncLogger)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	// Index route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Zap-Shift Server is running successfully")
	})

	/*=============================================================================
	| User Routes
	===============================================================================*/
	app.Post("/users", users.Upsert)
	app.Get("/users", middleware.RequireAuth(), middleware.RequireAdmin(), users.Index)
	app.Get("/users/search", middleware.RequireAuth(), middleware.RequireAdmin(), users.Search)
	app.Get("/users/:email/role", middleware.RequireAuth(), users.GetRole)
	app.Patch("/users/:id/role", middleware.RequireAuth(), middleware.RequireAdmin(), users.UpdateRole)

	/*=============================================================================
	| Parcel Routes
	===============================================================================*/
	parcelGroup := app.Group("/parcels", middleware.RequireAuth())
	parcelGroup.Post("/", parcels.Store)
	parcelGroup.Get("/", parcels.Index)
	parcelGroup.Get("/delivery/status-count", middleware.RequireAdmin(), parcels.StatusCount)
	parcelGroup.Get("/rider", middleware.RequireRider(), parcels.RiderActive)
	parcelGroup.Get("/rider/completed", middleware.RequireRider(), parcels.RiderCompleted)
	parcelGroup.Get("/:id", parcels.Show)
	parcelGroup.Delete("/:id", parcels.Destroy)
	parcelGroup.Patch("/:id/assign-rider", middleware.RequireAdmin(), parcels.AssignRider)
	parcelGroup.Patch("/:id/pickup", middleware.RequireRider(), parcels.Pickup)
	parcelGroup.Patch("/:id/deliver", middleware.RequireRider(), parcels.Deliver)
	parcelGroup.Patch("/:id/cashout", middleware.RequireRider(), parcels.Cashout)

	/*=============================================================================
	| Rider Routes
	===============================================================================*/
	riderGroup := app.Group("/riders", middleware.RequireAuth())
	riderGroup.Post("/", riders.Apply)
	riderGroup.Get("/", middleware.RequireAdmin(), riders.Index)
	riderGroup.Get("/pending", middleware.RequireAdmin(), riders.ListByStatus(riderModel.StatusPending))
	riderGroup.Get("/approved", middleware.RequireAdmin(), riders.ListByStatus(riderModel.StatusApproved))
	riderGroup.Get("/deactivated", middleware.RequireAdmin(), riders.ListByStatus(riderModel.StatusDeactivated))
	riderGroup.Get("/available", middleware.RequireAdmin(), riders.Available)
	riderGroup.Patch("/:id/approve", middleware.RequireAdmin(), riders.Approve)
	riderGroup.Patch("/:id/deactivate", middleware.RequireAdmin(), riders.Deactivate)
	riderGroup.Patch("/:id/activate", middleware.RequireAdmin(), riders.Reactivate)
	riderGroup.Delete("/:id", middleware.RequireAdmin(), riders.Destroy)

	/*=============================================================================
	| Tracking Routes
	===============================================================================*/
	app.Post("/trackings", middleware.RequireAuth(), trackings.Store)
	app.Get("/trackings/:trackingId", middleware.RequireAuth(), trackings.Show)

	/*=============================================================================
	| Payment Routes
	===============================================================================*/
	app.Post("/create-payment-intent", middleware.RequireAuth(), payments.CreateIntent)
	app.Get("/intent-status/:id", middleware.RequireAuth(), payments.IntentStatus)
	app.Patch("/parcel/payment-success/:parcelId", middleware.RequireAuth(), payments.Confirm)
	app.Get("/payments", middleware.RequireAuth(), payments.History)
}
