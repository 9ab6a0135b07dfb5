package payment_gateway

import (
	"bytes"
	"context"
	"fmt"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

type razorpayService struct {
	BaseUrl   string
	KeyID     string
	KeySecret string
	client    *http.Client
}

// NewRazorpayService builds the gateway adapter over the pay-by-reference
// capture API. The adapter is injected wherever payments are needed; it is
// never a package-level singleton.
func NewRazorpayService(internalConfig *config.InternalConfig) contracts.PaymentGatewayService {
	return &razorpayService{
		BaseUrl:   internalConfig.PaymentGateway.BaseUrl,
		KeyID:     internalConfig.PaymentGateway.KeyID,
		KeySecret: internalConfig.PaymentGateway.KeySecret,
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *razorpayService) FetchPayment(ctx context.Context, transactionID string) (*contracts.PaymentInfo, error) {
	url := fmt.Sprintf("%s/payments/%s", s.BaseUrl, transactionID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.SetBasicAuth(s.KeyID, s.KeySecret)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == constvars.StatusNotFound {
		return nil, exceptions.ErrPaymentNotFound(fmt.Errorf("transaction %s", transactionID))
	}
	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrSendHTTPRequest(fmt.Errorf("gateway returned status %d", resp.StatusCode))
	}

	var payment contracts.PaymentInfo
	if err := json.NewDecoder(resp.Body).Decode(&payment); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, "payment gateway")
	}
	return &payment, nil
}

func (s *razorpayService) CapturePayment(ctx context.Context, transactionID string, amountMinorUnits int64, currency string) (*contracts.PaymentInfo, error) {
	body, err := json.Marshal(map[string]interface{}{
		"amount":   amountMinorUnits,
		"currency": currency,
	})
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	url := fmt.Sprintf("%s/payments/%s/capture", s.BaseUrl, transactionID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.SetBasicAuth(s.KeyID, s.KeySecret)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == constvars.StatusNotFound {
		return nil, exceptions.ErrPaymentNotFound(fmt.Errorf("transaction %s", transactionID))
	}
	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrPaymentNotCaptured(fmt.Errorf("gateway returned status %d", resp.StatusCode))
	}

	var payment contracts.PaymentInfo
	if err := json.NewDecoder(resp.Body).Decode(&payment); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, "payment gateway")
	}
	return &payment, nil
}
