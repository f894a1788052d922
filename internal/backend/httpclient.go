package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "grocer/cli/internal/errors"
	"grocer/cli/internal/logging"
	"grocer/cli/internal/session"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultUserAgent identifies the CLI to the API.
const DefaultUserAgent = "grocer-cli/1.0"

// HTTP implements API over the REST endpoints.
// Every call sends the stored session cookie explicitly; there is no cookie
// jar and no retry.
type HTTP struct {
	// baseURL is the base URL for all HTTP requests (e.g., "http://localhost:8080")
	baseURL string
	// client is the underlying HTTP client with configured timeout
	client *http.Client
	// store supplies and receives the session cookie; nil disables both
	store session.Store
	// validate checks request payloads before they leave the process
	validate  *validator.Validate
	log       zerolog.Logger
	userAgent string
}

// newHTTP creates a new HTTP client with the given base URL.
// It configures a 10-second timeout for all requests.
func newHTTP(baseURL string, store session.Store) *HTTP {
	return &HTTP{
		baseURL:   strings.TrimRight(baseURL, "/"),
		client:    &http.Client{Timeout: 10 * time.Second},
		store:     store,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		log:       zerolog.Nop(),
		userAgent: DefaultUserAgent,
	}
}

// BaseURL returns the API base URL without a trailing slash.
func (h *HTTP) BaseURL() string { return h.baseURL }

// setStandardHeaders sets the headers every request carries.
func (h *HTTP) setStandardHeaders(req *http.Request) string {
	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set("X-Request-ID", reqID)
	return reqID
}

// attachSession forwards the session cookie when one is stored.
func (h *HTTP) attachSession(req *http.Request) bool {
	if h.store == nil {
		return false
	}
	c, ok := h.store.Cookie()
	if !ok {
		return false
	}
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: c.Value})
	return true
}

// check validates a request payload and maps failures onto a validation error.
func (h *HTTP) check(v any) error {
	if err := h.validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return apperrors.Wrap(apperrors.Validation, fieldMessage(fe), err)
		}
		return apperrors.Wrap(apperrors.Validation, "invalid request", err)
	}
	return nil
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return field + " must be at least " + fe.Param() + " characters"
	case "max":
		return field + " must be " + fe.Param() + " characters or less"
	case "gte":
		return field + " must not be negative"
	case "url":
		return field + " must be a URL"
	default:
		return field + " is invalid"
	}
}

// send performs one request. On a 2xx the caller owns resp.Body; any other
// outcome is returned as an *apperrors.E with the body already closed.
func (h *HTTP) send(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.Validation, "encode request", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, rdr)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Transport, method+" "+path, err)
	}
	reqID := h.setStandardHeaders(req)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	withCookie := h.attachSession(req)

	start := time.Now()
	resp, err := h.client.Do(req)
	if err != nil {
		h.log.Debug().
			Str("method", method).
			Str("path", path).
			Str("request_id", reqID).
			Str("error", logging.Mask(err.Error())).
			Msg("request failed")
		return nil, apperrors.Wrap(apperrors.Transport, method+" "+path, err)
	}
	h.log.Debug().
		Str("method", method).
		Str("path", path).
		Str("request_id", reqID).
		Bool("cookie", withCookie).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Msg("request")

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}
	defer resp.Body.Close()
	return nil, decodeAPIError(resp)
}

// decodeAPIError reads the {"error": "..."} body the API sends with every
// non-2xx response.
func decodeAPIError(resp *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	msg := ""
	if err := json.Unmarshal(b, &payload); err == nil {
		msg = payload.Error
		if msg == "" {
			msg = payload.Message
		}
	}
	if msg == "" {
		msg = strings.TrimSpace(string(b))
	}
	return apperrors.FromStatus(resp.StatusCode, msg)
}

// do sends a request and decodes the JSON response into out (if non-nil).
func (h *HTTP) do(ctx context.Context, method, path string, body, out any) error {
	resp, err := h.send(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &apperrors.E{
			Kind:    apperrors.Unexpected,
			Status:  resp.StatusCode,
			Message: "decode " + method + " " + path + " response",
			Err:     err,
		}
	}
	return nil
}
