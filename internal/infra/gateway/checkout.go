package gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"decor-market/internal/pkg/config"
	"decor-market/internal/pkg/errs"
	"decor-market/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var (
	errGatewayRequest = errs.New("checkout gateway request failed")
	errGatewayDecode  = errs.New("failed to decode checkout gateway response")
)

const sessionKeyPrefix = "checkout:session:"

// CheckoutClient talks to the hosted-checkout provider. Requests are signed
// with an HMAC-SHA256 digest of the body; the provider rejects unsigned calls.
// A redis index maps session ids back to booking ids so reconciliation can
// verify the session belongs to the booking the provider reports.
type CheckoutClient struct {
	cfg   config.CheckoutConfig
	http  *http.Client
	redis *redis.Client
}

func NewCheckoutClient(cfg config.CheckoutConfig, redisClient *redis.Client) *CheckoutClient {
	return &CheckoutClient{
		cfg:   cfg,
		http:  &http.Client{Timeout: cfg.Timeout},
		redis: redisClient,
	}
}

type createSessionPayload struct {
	Reference  string `json:"reference"`
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
	SuccessURL string `json:"success_url"`
	CancelURL  string `json:"cancel_url"`
}

type sessionResponse struct {
	ID            string     `json:"id"`
	URL           string     `json:"url"`
	Reference     string     `json:"reference"`
	Status        string     `json:"status"`
	Amount        int64      `json:"amount"`
	Currency      string     `json:"currency"`
	TransactionID string     `json:"transaction_id"`
	PaidAt        *time.Time `json:"paid_at"`
}

func (c *CheckoutClient) CreateSession(ctx context.Context, req commands.CreateSessionRequest) (*commands.CheckoutSession, error) {
	payload := createSessionPayload{
		Reference:  req.BookingRef,
		Amount:     req.Amount,
		Currency:   req.Currency,
		SuccessURL: c.cfg.SuccessURL,
		CancelURL:  c.cfg.CancelURL,
	}

	var resp sessionResponse
	if err := c.do(ctx, http.MethodPost, "/v1/checkout/sessions", payload, &resp); err != nil {
		return nil, err
	}

	key := sessionKeyPrefix + resp.ID
	if err := c.redis.Set(ctx, key, req.BookingID.String(), c.cfg.SessionTTL).Err(); err != nil {
		return nil, errs.Wrap(err, "failed to index checkout session")
	}

	return &commands.CheckoutSession{ID: resp.ID, URL: resp.URL}, nil
}

// FetchSession asks the provider for the session state. The provider, not the
// local index, decides whether the session exists: an expired redis entry
// leaves BookingID unset and the caller resolves the booking through the
// reference carried in the provider's response.
func (c *CheckoutClient) FetchSession(ctx context.Context, sessionID string) (*commands.CheckoutSessionStatus, error) {
	var resp sessionResponse
	if err := c.do(ctx, http.MethodGet, "/v1/checkout/sessions/"+sessionID, nil, &resp); err != nil {
		return nil, err
	}

	bookingID, err := c.lookupBookingID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	status := &commands.CheckoutSessionStatus{
		SessionID:     resp.ID,
		BookingID:     bookingID,
		BookingRef:    resp.Reference,
		Captured:      resp.Status == "captured",
		TransactionID: resp.TransactionID,
		Amount:        resp.Amount,
		Currency:      resp.Currency,
	}
	if resp.PaidAt != nil {
		status.PaidAt = *resp.PaidAt
	}
	return status, nil
}

func (c *CheckoutClient) lookupBookingID(ctx context.Context, sessionID string) (uuid.UUID, error) {
	val, err := c.redis.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			// Index entry expired; the gateway reference takes over.
			return uuid.Nil, nil
		}
		return uuid.Nil, errs.Wrap(err, "failed to look up checkout session")
	}
	bookingID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "corrupt checkout session index entry")
	}
	return bookingID, nil
}

func (c *CheckoutClient) do(ctx context.Context, method, path string, payload, out any) error {
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return errs.Wrap(err, "failed to encode checkout request")
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "failed to build checkout request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Signature", c.sign(body))

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.Mark(err, errGatewayRequest)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errs.ErrSessionNotFound
	case resp.StatusCode >= 400:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return errs.Mark(fmt.Errorf("checkout gateway returned %d: %s", resp.StatusCode, raw), errGatewayRequest)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errs.Mark(err, errGatewayDecode)
		}
	}
	return nil
}

func (c *CheckoutClient) sign(body []byte) string {
	mac := hmac.New(sha256.New, []byte(c.cfg.Secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
