package contracts

import "context"

// PaymentInfo mirrors the gateway's payment entity. Amount is in minor
// currency units (paise for INR).
type PaymentInfo struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Method   string `json:"method,omitempty"`
}

// PaymentGatewayService wraps the external pay-by-reference capture flow.
// Capture is only valid on an authorized payment; callers must re-fetch
// afterwards to confirm the final state, the gateway does not guarantee
// synchronous consistency.
type PaymentGatewayService interface {
	FetchPayment(ctx context.Context, transactionID string) (*PaymentInfo, error)
	CapturePayment(ctx context.Context, transactionID string, amountMinorUnits int64, currency string) (*PaymentInfo, error)
}
