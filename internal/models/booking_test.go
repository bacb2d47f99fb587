package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncPayment(t *testing.T) {
	tests := []struct {
		name          string
		total         int64
		advance       int64
		wantRemaining int64
		wantStatus    string
	}{
		{"no advance", 70000, 0, 70000, PaymentPending},
		{"partial advance", 70000, 20000, 50000, PaymentPartial},
		{"exact payment", 12500, 12500, 0, PaymentPaid},
		{"overpayment", 10000, 12000, -2000, PaymentPaid},
		{"single rupee advance", 500, 1, 499, PaymentPartial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Booking{TotalAmount: tt.total, AdvancePaid: tt.advance}
			b.SyncPayment()

			assert.Equal(t, tt.wantRemaining, b.RemainingAmount)
			assert.Equal(t, tt.wantStatus, b.PaymentStatus)
		})
	}
}

func TestTerminal(t *testing.T) {
	assert.False(t, (&Booking{Status: StatusPending}).Terminal())
	assert.False(t, (&Booking{Status: StatusConfirmed}).Terminal())
	assert.True(t, (&Booking{Status: StatusCompleted}).Terminal())
	assert.True(t, (&Booking{Status: StatusCancelled}).Terminal())
}
