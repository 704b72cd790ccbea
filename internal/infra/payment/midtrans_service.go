// Package payment fronts the Midtrans hosted payment flow. Checkout opens
// a Snap session; webhook verdicts are re-checked against the Core API
// because the webhook body itself is untrusted.
package payment

import (
	"context"
	"log/slog"
	"math"

	"harvest/config"
	"harvest/internal/domain/service"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/pkg/errors"
)

type midtransService struct {
	snap   *snap.Client
	core   *coreapi.Client
	logger *slog.Logger
}

// New builds the gateway clients from config.
func New(cfg *config.Config, logger *slog.Logger) (service.PaymentService, error) {
	if cfg.Payment == nil || cfg.Payment.ServerKey == "" {
		return nil, errors.New("payment gateway is not configured")
	}

	env := midtrans.Sandbox
	if cfg.Payment.Environment == "production" {
		env = midtrans.Production
	}

	snapClient := &snap.Client{}
	snapClient.New(cfg.Payment.ServerKey, env)

	coreClient := &coreapi.Client{}
	coreClient.New(cfg.Payment.ServerKey, env)

	return &midtransService{
		snap:   snapClient,
		core:   coreClient,
		logger: logger,
	}, nil
}

func (s *midtransService) CreateTransaction(ctx context.Context, orderRef string, grossAmount float64, customer service.CustomerDetails) (*service.PaymentSession, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderRef,
			GrossAmt: int64(math.Round(grossAmount)),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: customer.Name,
			Email: customer.Email,
			Phone: customer.Phone,
		},
	}

	resp, err := s.snap.CreateTransaction(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create payment session")
	}

	s.logger.Info("payment session created",
		slog.String("order_ref", orderRef),
		slog.Float64("gross_amount", grossAmount),
	)

	return &service.PaymentSession{
		Token:       resp.Token,
		RedirectURL: resp.RedirectURL,
	}, nil
}

func (s *midtransService) ResolveNotification(ctx context.Context, orderRef string) (*service.PaymentNotification, error) {
	status, err := s.core.CheckTransaction(orderRef)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check transaction %s", orderRef)
	}

	notification := &service.PaymentNotification{
		OrderRef:    orderRef,
		Verdict:     verdictFor(status.TransactionStatus, status.FraudStatus),
		Description: status.StatusMessage,
	}
	if status.TransactionStatus == "capture" && status.FraudStatus == "challenge" {
		notification.Description = "transaction challenged by fraud detection"
	}

	s.logger.Info("payment notification resolved",
		slog.String("order_ref", orderRef),
		slog.String("transaction_status", status.TransactionStatus),
		slog.String("verdict", string(notification.Verdict)),
	)

	return notification, nil
}

// verdictFor maps gateway transaction statuses to a checkout verdict.
// Pending and authorize precede a later settlement webhook for async
// payment methods; a challenged capture awaits manual review. None of
// those are final.
func verdictFor(transactionStatus, fraudStatus string) service.PaymentVerdict {
	switch transactionStatus {
	case "capture":
		if fraudStatus == "challenge" {
			return service.VerdictPending
		}
		if fraudStatus == "accept" {
			return service.VerdictSuccess
		}

		return service.VerdictFailure
	case "settlement":
		return service.VerdictSuccess
	case "pending", "authorize":
		return service.VerdictPending
	default:
		// deny, cancel, expire, failure and anything unrecognized.
		return service.VerdictFailure
	}
}
