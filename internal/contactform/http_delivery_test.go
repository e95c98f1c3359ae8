package contactform

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"europlast-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPDeliveryPostsJSON(t *testing.T) {
	var got domain.ContactInput
	var session string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/contact", r.URL.Path)
		session = r.Header.Get(SessionHeader)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"message":"ok"}`))
	}))
	defer srv.Close()

	d := NewHTTPDelivery(srv.URL + "/")
	d.Client = srv.Client()
	req, errs := Validate(validInput())
	require.Empty(t, errs)

	require.NoError(t, d.Deliver(context.Background(), req))
	assert.Equal(t, "Alice Doe", got.Name)
	assert.Equal(t, "Acme Foods", got.Company)
	assert.Equal(t, d.SessionID, session)
	assert.NotEmpty(t, session)
}

func TestHTTPDeliveryDecodesFieldErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"message":"Validation failed","error":{"phone":{"kind":"TooShort","message":"Please enter a valid phone number"}}}`))
	}))
	defer srv.Close()

	d := NewHTTPDelivery(srv.URL)
	d.Client = srv.Client()
	req, _ := Validate(validInput())

	err := d.Deliver(context.Background(), req)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Validation failed", apiErr.Message)
	require.Contains(t, apiErr.Fields, domain.FieldPhone)
	assert.Equal(t, domain.FieldError{Field: "phone", Kind: domain.KindTooShort, Message: "Please enter a valid phone number"}, apiErr.Fields[domain.FieldPhone])
}

func TestHTTPDeliveryFailureSendsFormBackToIdle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	d := NewHTTPDelivery(srv.URL)
	d.Client = srv.Client()
	f, rec := newForm(t, d)
	require.NoError(t, f.Fill(validInput()))

	err := f.SubmitForm(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusText(http.StatusBadGateway), apiErr.Message)
	assert.Equal(t, StateIdle, f.State())
	assert.Equal(t, []Notification{{Level: LevelError, Message: FailureMessage}}, rec.Notifications())
}
