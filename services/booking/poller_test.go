package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"weddify/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeVerifyAPI struct {
	calls    int
	statuses []models.PaymentStatus
	err      error
	errAfter int
}

func (f *fakeVerifyAPI) VerifyPayment(ctx context.Context, txRef, paymentID string) (models.Payment, error) {
	f.calls++
	if f.err != nil && f.calls > f.errAfter {
		return models.Payment{}, f.err
	}
	status := f.statuses[len(f.statuses)-1]
	if f.calls <= len(f.statuses) {
		status = f.statuses[f.calls-1]
	}
	return models.Payment{ID: paymentID, TxRef: txRef, Status: status}, nil
}

func newTestPoller(api *fakeVerifyAPI) (*StatusPoller, *fakeNotifier) {
	notifier := &fakeNotifier{}
	p := NewStatusPoller(api, notifier, zap.NewNop(), 5*time.Millisecond)
	return p, notifier
}

func TestStatusPollerAwait(t *testing.T) {
	t.Run("immediate terminal status polls once", func(t *testing.T) {
		api := &fakeVerifyAPI{statuses: []models.PaymentStatus{models.PaymentCompleted}}
		p, notifier := newTestPoller(api)

		payment, err := p.Await(context.Background(), "tx-1", "pay-1")
		require.NoError(t, err)
		assert.Equal(t, models.PaymentCompleted, payment.Status)
		assert.Equal(t, 1, api.calls)
		assert.Contains(t, notifier.successes, "Payment completed successfully!")
	})

	t.Run("stops at the first terminal status", func(t *testing.T) {
		api := &fakeVerifyAPI{statuses: []models.PaymentStatus{
			models.PaymentPending,
			models.PaymentPending,
			models.PaymentFailed,
		}}
		p, notifier := newTestPoller(api)

		var seen []models.PaymentStatus
		p.OnUpdate = func(payment models.Payment) { seen = append(seen, payment.Status) }

		payment, err := p.Await(context.Background(), "tx-1", "pay-1")
		require.NoError(t, err)
		assert.Equal(t, models.PaymentFailed, payment.Status)
		assert.Equal(t, 3, api.calls)
		assert.Equal(t, []models.PaymentStatus{
			models.PaymentPending,
			models.PaymentPending,
			models.PaymentFailed,
		}, seen)
		assert.Contains(t, notifier.errors, "Payment failed. Please try again.")
		// Interim pending polls produce no extra notices.
		assert.Len(t, notifier.infos, 1)
	})

	t.Run("initial verification failure notifies and returns", func(t *testing.T) {
		api := &fakeVerifyAPI{err: errors.New("502"), statuses: []models.PaymentStatus{models.PaymentPending}}
		p, notifier := newTestPoller(api)

		_, err := p.Await(context.Background(), "tx-1", "pay-1")
		require.Error(t, err)
		assert.Equal(t, 1, api.calls)
		assert.Contains(t, notifier.errors, "Failed to verify payment status")
	})

	t.Run("poll failure stops instead of looping", func(t *testing.T) {
		api := &fakeVerifyAPI{
			statuses: []models.PaymentStatus{models.PaymentPending},
			err:      errors.New("timeout"),
			errAfter: 2,
		}
		p, _ := newTestPoller(api)

		_, err := p.Await(context.Background(), "tx-1", "pay-1")
		require.Error(t, err)
		assert.Equal(t, 3, api.calls)
	})

	t.Run("context cancellation stops polling", func(t *testing.T) {
		api := &fakeVerifyAPI{statuses: []models.PaymentStatus{models.PaymentPending}}
		p, _ := newTestPoller(api)

		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(20 * time.Millisecond)
			cancel()
		}()

		_, err := p.Await(ctx, "tx-1", "pay-1")
		assert.ErrorIs(t, err, context.Canceled)
	})
}
