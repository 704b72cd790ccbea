package service

import "context"

// CustomerDetails is the prefill contact info handed to the hosted
// payment flow.
type CustomerDetails struct {
	Name  string
	Email string
	Phone string
}

// PaymentSession is the hosted-flow handle returned at checkout begin.
type PaymentSession struct {
	Token       string
	RedirectURL string
}

// PaymentVerdict classifies a gateway notification. Only success and
// failure are final; pending verdicts arrive for asynchronous payment
// methods ahead of the settlement webhook.
type PaymentVerdict string

const (
	VerdictPending PaymentVerdict = "pending"
	VerdictSuccess PaymentVerdict = "success"
	VerdictFailure PaymentVerdict = "failure"
)

// PaymentNotification is the gateway's verdict for one order reference.
// Description carries the gateway's own wording verbatim on failure.
type PaymentNotification struct {
	OrderRef    string
	Verdict     PaymentVerdict
	Description string
}

// PaymentService fronts the hosted payment gateway. Its only contract
// with the checkout pipeline is the session handle and the notification
// verdict.
type PaymentService interface {
	// CreateTransaction opens a hosted payment session for the amount.
	CreateTransaction(ctx context.Context, orderRef string, grossAmount float64, customer CustomerDetails) (*PaymentSession, error)

	// ResolveNotification re-checks the transaction status with the
	// gateway for a webhook-delivered order reference. Webhook payloads
	// are untrusted; the gateway is the source of truth.
	ResolveNotification(ctx context.Context, orderRef string) (*PaymentNotification, error)
}
