package intake

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/community-support-hub/server/internal/hub/model"
)

// Delivery hands a validated request to whoever answers it.
type Delivery interface {
	Deliver(ctx context.Context, id string, req model.HelpRequest) error
}

type deliveryReply struct {
	Success *bool `json:"success"`
	OK      *bool `json:"ok"`
}

// HTTPDelivery posts the request as JSON to the intake endpoint. The
// endpoint must answer 2xx with {"success": true} (or {"ok": true}).
type HTTPDelivery struct {
	endpoint   string
	httpClient *http.Client
}

func NewHTTPDelivery(endpoint string, timeout time.Duration) *HTTPDelivery {
	return &HTTPDelivery{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (d *HTTPDelivery) Deliver(ctx context.Context, id string, req model.HelpRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal help request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Idempotency-Key", id)

	resp, err := d.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("post help request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("post help request: unexpected status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return fmt.Errorf("read reply: %w", err)
	}
	var reply deliveryReply
	if err := json.Unmarshal(raw, &reply); err != nil {
		return fmt.Errorf("decode reply: %w", err)
	}
	if (reply.Success != nil && *reply.Success) || (reply.OK != nil && *reply.OK) {
		return nil
	}
	return fmt.Errorf("intake endpoint rejected the request")
}
