package booking

import (
	"context"
	"time"

	"weddify/models"
	"weddify/services/notification"

	"go.uber.org/zap"
)

// VerifyAPI is the payment verification endpoint.
type VerifyAPI interface {
	VerifyPayment(ctx context.Context, txRef, paymentID string) (models.Payment, error)
}

// StatusPoller resolves a payment after the gateway redirects back. It
// verifies once immediately, then re-checks on a fixed interval only
// while the status stays pending. The first terminal status, any
// verification error, or context cancellation stops it; it never loops
// on errors.
type StatusPoller struct {
	API      VerifyAPI
	Notifier notification.Notifier
	Logger   *zap.Logger
	Interval time.Duration

	// OnUpdate, when set, receives every verified snapshot.
	OnUpdate func(models.Payment)
}

func NewStatusPoller(api VerifyAPI, notifier notification.Notifier, logger *zap.Logger, interval time.Duration) *StatusPoller {
	return &StatusPoller{API: api, Notifier: notifier, Logger: logger, Interval: interval}
}

// Await blocks until the payment resolves or polling stops.
func (p *StatusPoller) Await(ctx context.Context, txRef, paymentID string) (models.Payment, error) {
	payment, err := p.API.VerifyPayment(ctx, txRef, paymentID)
	if err != nil {
		p.Notifier.Error("Failed to verify payment status")
		return models.Payment{}, err
	}
	p.report(payment)
	if payment.Status.Terminal() {
		return payment, nil
	}

	ticker := time.NewTicker(p.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return payment, ctx.Err()
		case <-ticker.C:
			next, err := p.API.VerifyPayment(ctx, txRef, paymentID)
			if err != nil {
				p.Logger.Warn("payment verification poll failed",
					zap.String("txRef", txRef), zap.Error(err))
				return payment, err
			}
			payment = next
			if p.OnUpdate != nil {
				p.OnUpdate(payment)
			}
			if payment.Status.Terminal() {
				p.notifyStatus(payment)
				return payment, nil
			}
		}
	}
}

// report is used for the immediate verification only; interim pending
// polls stay quiet so the user is not spammed with notices.
func (p *StatusPoller) report(payment models.Payment) {
	if p.OnUpdate != nil {
		p.OnUpdate(payment)
	}
	p.notifyStatus(payment)
}

func (p *StatusPoller) notifyStatus(payment models.Payment) {
	switch payment.Status {
	case models.PaymentCompleted:
		p.Notifier.Success("Payment completed successfully!")
	case models.PaymentFailed:
		p.Notifier.Error("Payment failed. Please try again.")
	default:
		p.Notifier.Info("Payment is still processing.")
	}
}
