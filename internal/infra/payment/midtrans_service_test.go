package payment

import (
	"testing"

	"harvest/internal/domain/service"

	"github.com/stretchr/testify/assert"
)

func TestVerdictFor(t *testing.T) {
	cases := []struct {
		name              string
		transactionStatus string
		fraudStatus       string
		want              service.PaymentVerdict
	}{
		{"settlement", "settlement", "", service.VerdictSuccess},
		{"capture accepted", "capture", "accept", service.VerdictSuccess},
		{"capture challenged", "capture", "challenge", service.VerdictPending},
		{"pending", "pending", "", service.VerdictPending},
		{"authorize", "authorize", "", service.VerdictPending},
		{"deny", "deny", "", service.VerdictFailure},
		{"cancel", "cancel", "", service.VerdictFailure},
		{"expire", "expire", "", service.VerdictFailure},
		{"unrecognized", "refund", "", service.VerdictFailure},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, verdictFor(tc.transactionStatus, tc.fraudStatus))
		})
	}
}
