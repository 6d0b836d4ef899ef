package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	apperrors "premier-properties/internal/errors"
	"premier-properties/internal/models"
	"premier-properties/internal/utils"
	"premier-properties/pkg/logger"
)

const maxBodyBytes = 4 << 20

// ListingsClient talks to the listings backend. Every call is a single
// attempt: no retries and no client-side timeout.
type ListingsClient struct {
	baseURL string
	http    *retryablehttp.Client
}

// NewListingsClient creates a client for the backend rooted at baseURL.
func NewListingsClient(baseURL string) *ListingsClient {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 0
	rc.CheckRetry = noRetry
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	rc.Logger = leveledLogger{}

	return &ListingsClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    rc,
	}
}

// BaseURL returns the backend origin the client issues requests against.
func (c *ListingsClient) BaseURL() string {
	return c.baseURL
}

// FetchProperties lists the properties matching filters. Transport errors,
// non-2xx responses and undecodable bodies are all reported as a fetch error.
func (c *ListingsClient) FetchProperties(ctx context.Context, filters models.PropertyFilters) (props []models.Property, err error) {
	start := time.Now()
	defer func() { utils.RecordBackendCall("fetch_properties", start, err) }()

	u, err := utils.BuildURL(c.baseURL, "/api/properties", filters.QueryValues())
	if err != nil {
		return nil, apperrors.NewFetchError("failed to build properties url", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, apperrors.NewFetchError("failed to create properties request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to fetch properties: url=%s, error=%v", u, err)
		return nil, apperrors.NewFetchError(fmt.Sprintf("GET %s failed", u), err)
	}
	defer resp.Body.Close()

	body, err := readAllLimit(resp.Body, maxBodyBytes)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to read properties response: url=%s, status=%s, error=%v", u, resp.Status, err)
		return nil, apperrors.NewFetchError(fmt.Sprintf("GET %s: reading body", u), err)
	}

	if !isSuccess(resp.StatusCode) {
		logger.GlobalLogger.Errorf("Properties request failed: url=%s, status=%s, response=%s", u, resp.Status, truncate(body))
		return nil, apperrors.NewFetchError(fmt.Sprintf("GET %s returned %s", u, resp.Status), nil)
	}

	if err := json.Unmarshal(body, &props); err != nil {
		logger.GlobalLogger.Errorf("Failed to decode properties response: url=%s, error=%v", u, err)
		return nil, apperrors.NewFetchError(fmt.Sprintf("GET %s: decoding body", u), err)
	}
	if props == nil {
		props = []models.Property{}
	}

	logger.GlobalLogger.Debugf("Fetched properties: url=%s, count=%d, duration=%v", u, len(props), time.Since(start))
	return props, nil
}

// SubmitContactInquiry posts a contact inquiry. The response body is ignored
// on success.
func (c *ListingsClient) SubmitContactInquiry(ctx context.Context, data models.ContactFormData) (err error) {
	start := time.Now()
	defer func() { utils.RecordBackendCall("submit_contact", start, err) }()

	payload, err := json.Marshal(data)
	if err != nil {
		return apperrors.NewSubmitError("failed to marshal contact inquiry", err)
	}

	u, err := utils.BuildURL(c.baseURL, "/api/contact", nil)
	if err != nil {
		return apperrors.NewSubmitError("failed to build contact url", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return apperrors.NewSubmitError("failed to create contact request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to submit contact inquiry: url=%s, property_id=%d, error=%v", u, data.PropertyID, err)
		return apperrors.NewSubmitError(fmt.Sprintf("POST %s failed", u), err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		body, _ := readAllLimit(resp.Body, maxBodyBytes)
		logger.GlobalLogger.Errorf("Contact inquiry rejected: url=%s, property_id=%d, status=%s, response=%s",
			u, data.PropertyID, resp.Status, truncate(body))
		return apperrors.NewSubmitError(fmt.Sprintf("POST %s returned %s", u, resp.Status), nil)
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))

	logger.GlobalLogger.Printf("Contact inquiry submitted: property_id=%d", data.PropertyID)
	return nil
}

func noRetry(ctx context.Context, _ *http.Response, _ error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	return false, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func readAllLimit(r io.Reader, limit int64) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > limit {
		return nil, errors.New("payload too large")
	}
	return b, nil
}

func truncate(b []byte) string {
	const max = 512
	if len(b) > max {
		return string(b[:max]) + "..."
	}
	return string(b)
}
