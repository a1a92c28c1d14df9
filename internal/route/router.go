package router

import (
	bookinghandler "reservation-service/internal/module/booking/handler"
	paymenthandler "reservation-service/internal/module/payment/handler"
	reservationhandler "reservation-service/internal/module/reservation/handler"
	"reservation-service/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
)

func Initialize(
	app *fiber.App,
	handlerReservation *reservationhandler.ReservationHandler,
	handlerPayment *paymenthandler.PaymentHandler,
	handlerBooking *bookinghandler.BookingHandler,
	m *middleware.Middleware,
) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	Api := app.Group("/api")

	// public routes
	v1 := Api.Group("/v1")
	v1.Post("/reservations", m.ValidateToken, handlerReservation.CreateHold)
	v1.Get("/reservations/:id", m.ValidateToken, handlerReservation.GetReservation)
	v1.Delete("/reservations/:id", m.ValidateToken, handlerReservation.CancelReservation)
	v1.Post("/payments/orders", m.ValidateToken, handlerPayment.CreateOrder)
	v1.Post("/payments/orders/:id/capture", m.ValidateToken, handlerPayment.Capture)
	v1.Post("/payments/orders/:id/refund", m.ValidateToken, handlerPayment.Refund)
	v1.Get("/bookings", m.ValidateToken, handlerBooking.ShowBookings)
	v1.Post("/bookings/:id/cancel", m.ValidateToken, handlerBooking.CancelBooking)

	private := Api.Group("/private")
	private.Get("/reservations/active", handlerReservation.CountActiveHolds)

	return app

}
