package contactform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"europlast-backend/internal/domain"

	"github.com/google/uuid"
)

// SessionHeader identifies one form across requests so the API can refuse
// a second submission while the first is in flight.
const SessionHeader = "X-Form-Session"

// APIError is a non-2xx answer from the contact API.
type APIError struct {
	StatusCode int
	Message    string
	Fields     domain.FieldErrors
}

func (e *APIError) Error() string {
	return fmt.Sprintf("contact api returned %d: %s", e.StatusCode, e.Message)
}

// HTTPDelivery posts requests as JSON to the contact endpoint.
type HTTPDelivery struct {
	Endpoint  string
	SessionID string
	Client    *http.Client
}

// NewHTTPDelivery targets baseURL + "/v1/contact" with a fresh session id.
func NewHTTPDelivery(baseURL string) *HTTPDelivery {
	return &HTTPDelivery{
		Endpoint:  strings.TrimRight(baseURL, "/") + "/v1/contact",
		SessionID: uuid.NewString(),
		Client:    http.DefaultClient,
	}
}

type apiEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   json.RawMessage `json:"error"`
}

func (d *HTTPDelivery) Deliver(ctx context.Context, req domain.ContactRequest) error {
	body, err := json.Marshal(req.Input())
	if err != nil {
		return fmt.Errorf("encode contact request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, d.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build contact request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if d.SessionID != "" {
		httpReq.Header.Set(SessionHeader, d.SessionID)
	}

	client := d.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	var env apiEnvelope
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&env); err == nil {
		if env.Message != "" {
			apiErr.Message = env.Message
		}
		apiErr.Fields = decodeFieldErrors(env.Error)
	}
	return apiErr
}

func decodeFieldErrors(raw json.RawMessage) domain.FieldErrors {
	if len(raw) == 0 {
		return nil
	}
	var fields map[string]domain.FieldError
	if err := json.Unmarshal(raw, &fields); err != nil || len(fields) == 0 {
		return nil
	}
	out := make(domain.FieldErrors, len(fields))
	for name, fe := range fields {
		fe.Field = name
		out[name] = fe
	}
	return out
}
