package booking

import (
	"context"
	"time"

	"weddify/models"
	"weddify/services/notification"
	"weddify/session"

	"go.uber.org/zap"
)

// FallbackPath is where the user lands when payment initiation fails
// after the booking was already created.
const FallbackPath = "/dashboard/my-bookings"

// Redirector performs the full-page navigation that hands the user over
// to the external checkout, or back to a safe screen.
type Redirector interface {
	Redirect(url string)
}

// PaymentAPI is the REST slice the orchestrator drives. The client
// service façade satisfies it.
type PaymentAPI interface {
	CreateBooking(ctx context.Context, input models.BookingInput) (models.Booking, error)
	InitiatePayment(ctx context.Context, req models.PaymentRequest) (models.CheckoutSession, error)
}

// Orchestrator sequences booking creation, payment initiation and the
// redirect to the external checkout. The pipeline is linear; there is no
// branching back.
type Orchestrator struct {
	API           PaymentAPI
	Sessions      session.Store
	Notifier      notification.Notifier
	Redirector    Redirector
	Logger        *zap.Logger
	RedirectDelay time.Duration
}

func NewOrchestrator(api PaymentAPI, sessions session.Store, notifier notification.Notifier, redirector Redirector, logger *zap.Logger, redirectDelay time.Duration) *Orchestrator {
	return &Orchestrator{
		API:           api,
		Sessions:      sessions,
		Notifier:      notifier,
		Redirector:    redirector,
		Logger:        logger,
		RedirectDelay: redirectDelay,
	}
}

// ValidateInput runs the pre-flight checks: event date, location and a
// selected tier are all required before anything is sent.
func ValidateInput(input models.BookingInput) error {
	if input.EventDate.IsZero() {
		return newValidationError("eventDate", "an event date is required")
	}
	if input.Location == "" {
		return newValidationError("location", "a location is required")
	}
	if input.ServiceTierPriceID == "" {
		return newValidationError("serviceTierPriceId", "a service tier must be selected")
	}
	return nil
}

// CanSubmit is the gate for the initiating action: while it is false the
// action stays disabled and no REST call can be issued.
func CanSubmit(input models.BookingInput) bool {
	return ValidateInput(input) == nil
}

// BookAndPay runs the pipeline for a service: create the booking, chain
// payment initiation, and redirect to the returned checkout URL. When
// payment initiation fails after the booking was created, the booking is
// NOT rolled back; the user is notified and sent to the bookings list
// after a short delay so they are not stranded.
func (o *Orchestrator) BookAndPay(ctx context.Context, svc models.Service, input models.BookingInput) (models.Booking, error) {
	if err := ValidateInput(input); err != nil {
		return models.Booking{}, err
	}

	booking, err := o.API.CreateBooking(ctx, input)
	if err != nil {
		o.Notifier.Error("Failed to book service. Please try again.")
		return models.Booking{}, err
	}
	o.Notifier.Success("Service booked successfully!")

	checkout, err := o.initiatePayment(ctx, svc, booking)
	if err != nil {
		o.Notifier.Error("Failed to process payment. Redirecting to bookings page.")
		o.redirectAfterDelay(ctx, FallbackPath)
		return booking, err
	}

	o.Notifier.Info("Redirecting to payment page...")
	o.Redirector.Redirect(checkout.CheckoutURL)
	return booking, nil
}

func (o *Orchestrator) initiatePayment(ctx context.Context, svc models.Service, booking models.Booking) (models.CheckoutSession, error) {
	amount := svc.BasePrice
	if booking.Amount > 0 {
		amount = booking.Amount
	}
	if booking.Tier != nil && booking.Tier.Price > 0 {
		amount = booking.Tier.Price
	}

	vendorID := booking.VendorID
	if vendorID == "" {
		vendorID = svc.VendorID
	}

	sess, _ := o.Sessions.Get()
	req := models.PaymentRequest{
		Amount:    amount,
		VendorID:  vendorID,
		BookingID: booking.ID,
		UserID:    sess.UserID,
	}

	checkout, err := o.API.InitiatePayment(ctx, req)
	if err != nil {
		o.Logger.Error("payment initiation failed",
			zap.String("bookingId", booking.ID), zap.Error(err))
		return models.CheckoutSession{}, err
	}
	return checkout, nil
}

// redirectAfterDelay is the best-effort compensation: a pause long
// enough to read the notice, then navigation to a safe screen.
func (o *Orchestrator) redirectAfterDelay(ctx context.Context, path string) {
	timer := time.NewTimer(o.RedirectDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
		return
	}
	o.Redirector.Redirect(path)
}
