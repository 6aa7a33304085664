// Package payments talks to the mobile-money gateway that collects funds from
// a customer phone number at checkout.
package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// InitiationResult carries the gateway's answer to a payment initiation.
// On a non-200 StatusCode the RawBody is passed through to the caller
// unmodified; ResponseCode and CheckoutRequestID are only set on 200.
type InitiationResult struct {
	StatusCode        int
	ResponseCode      string
	CheckoutRequestID string
	RawBody           []byte
}

type initiationResponse struct {
	ResponseCode      string `json:"ResponseCode"`
	CheckoutRequestID string `json:"CheckoutRequestID"`
}

// Client is constructed once with the gateway base URL and a request timeout;
// it never reads process environment.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.SugaredLogger
}

func NewClient(baseURL string, timeout time.Duration, log *zap.SugaredLogger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// InitiatePayment asks the gateway to collect amount from phoneNumber. The
// gateway takes whole currency units, so the amount is truncated, never
// rounded up. A transport-level failure returns an error; any HTTP response,
// 200 or not, returns a result.
func (c *Client) InitiatePayment(ctx context.Context, phoneNumber string, amount decimal.Decimal) (*InitiationResult, error) {
	q := url.Values{}
	q.Set("phone_number", phoneNumber)
	q.Set("total_amount", amount.Truncate(0).String())

	payURL := c.baseURL + "/payment/pay?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, payURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build payment request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach payment gateway: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read payment response: %w", err)
	}

	result := &InitiationResult{StatusCode: resp.StatusCode, RawBody: body}

	if resp.StatusCode != http.StatusOK {
		c.log.Warnw("payment initiation rejected", "status", resp.StatusCode, "body", string(body))
		return result, nil
	}

	var parsed initiationResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse payment response: %w", err)
	}
	result.ResponseCode = parsed.ResponseCode
	result.CheckoutRequestID = parsed.CheckoutRequestID

	c.log.Infow("payment initiated", "phone_number", phoneNumber, "checkout_request_id", result.CheckoutRequestID)
	return result, nil
}
