package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"

	"github.com/community-support-hub/server/internal/hub/model"
	logx "github.com/community-support-hub/server/pkg/logger"
)

// maxPayload caps the remote response body.
const maxPayload = 4 << 20

// envelopeSchema is the accepted shape of GET {base}/resources.
const envelopeSchema = `{
  "type": "object",
  "required": ["success", "data"],
  "properties": {
    "success": {"type": "boolean"},
    "data": {
      "type": "array",
      "items": {"type": "object"}
    }
  }
}`

var envelope = gojsonschema.NewStringLoader(envelopeSchema)

// Fetcher loads remote resource records.
type Fetcher interface {
	Fetch(ctx context.Context) ([]model.Resource, error)
}

type remoteEnvelope struct {
	Success bool             `json:"success"`
	Data    []model.Resource `json:"data"`
}

// HTTPFetcher reads the catalog from the community support backend.
type HTTPFetcher struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPFetcher(baseURL string, timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Fetch returns the remote records. Any non-success response, payload of the
// wrong shape or `success=false` is an error; callers treat every error as
// "no remote records".
func (f *HTTPFetcher) Fetch(ctx context.Context) ([]model.Resource, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/resources", nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch resources: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch resources: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayload))
	if err != nil {
		return nil, fmt.Errorf("read resources: %w", err)
	}

	return decodeEnvelope(body)
}

func decodeEnvelope(body []byte) ([]model.Resource, error) {
	result, err := gojsonschema.Validate(envelope, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return nil, fmt.Errorf("malformed resources payload: %w", err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return nil, fmt.Errorf("resources payload validation failed: %v", errs)
	}

	var env remoteEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode resources: %w", err)
	}
	if !env.Success {
		return nil, fmt.Errorf("resources payload reported success=false")
	}

	records := make([]model.Resource, 0, len(env.Data))
	for i, r := range env.Data {
		if strings.TrimSpace(r.Name) == "" {
			logx.Warn().
				Str("component", "catalog").
				Int("index", i).
				Msg("skipping remote resource without name")
			continue
		}
		records = append(records, r)
	}
	return records, nil
}
