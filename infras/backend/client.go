package backend

//go:generate go run go.uber.org/mock/mockgen -source=./client.go -destination=./mocks/client_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const userAgent = "frontdesk"

// Client talks to the hotel REST backend. Every call carries the caller's session; non-success
// statuses come back as a *failure.Failure wrapping *Error.
type Client interface {
	Get(ctx context.Context, session Session, path string, query url.Values) (*Response, error)
	GetURL(ctx context.Context, session Session, rawURL string) (*Response, error)
	Post(ctx context.Context, session Session, path string, body any) (*Response, error)
	Put(ctx context.Context, session Session, path string, body any) (*Response, error)
	Patch(ctx context.Context, session Session, path string, body any) (*Response, error)
	Delete(ctx context.Context, session Session, path string) (*Response, error)
}

type clientImpl struct {
	baseURL    string
	httpClient *http.Client
	otel       otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Client {
	return NewWithHTTPClient(cfg.Backend.BaseURL, &http.Client{
		Timeout: time.Duration(cfg.Backend.TimeoutSeconds) * time.Second,
	}, otel)
}

// NewWithHTTPClient builds a client against baseURL using httpClient for transport.
func NewWithHTTPClient(baseURL string, httpClient *http.Client, otel otel.Otel) Client {
	return &clientImpl{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		otel:       otel,
	}
}

func (c *clientImpl) Get(ctx context.Context, session Session, path string, query url.Values) (*Response, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	return c.do(ctx, session, http.MethodGet, target, nil)
}

// GetURL follows an absolute link handed out by the backend, such as a pagination cursor.
func (c *clientImpl) GetURL(ctx context.Context, session Session, rawURL string) (*Response, error) {
	return c.do(ctx, session, http.MethodGet, rawURL, nil)
}

func (c *clientImpl) Post(ctx context.Context, session Session, path string, body any) (*Response, error) {
	return c.do(ctx, session, http.MethodPost, c.baseURL+path, body)
}

func (c *clientImpl) Put(ctx context.Context, session Session, path string, body any) (*Response, error) {
	return c.do(ctx, session, http.MethodPut, c.baseURL+path, body)
}

func (c *clientImpl) Patch(ctx context.Context, session Session, path string, body any) (*Response, error) {
	return c.do(ctx, session, http.MethodPatch, c.baseURL+path, body)
}

func (c *clientImpl) Delete(ctx context.Context, session Session, path string) (*Response, error) {
	return c.do(ctx, session, http.MethodDelete, c.baseURL+path, nil)
}

func (c *clientImpl) do(ctx context.Context, session Session, method, target string, body any) (resp *Response, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".backend."+method)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		constant.OtelMethodAttributeKey: method,
		constant.OtelPathAttributeKey:   target,
	})

	var reqBody io.Reader
	if body != nil {
		payload, marshalErr := json.Marshal(body)
		if marshalErr != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", marshalErr)
		}

		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderAccept, constant.ContentTypeJSON)
	req.Header.Set(constant.RequestHeaderUserAgent, userAgent)

	if body != nil {
		req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	}

	if auth := session.Authorization(); auth != constant.Empty {
		req.Header.Set(constant.RequestHeaderAuthorization, auth)
	}

	started := time.Now()

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Str("method", method).Str("url", target).Msg("backend request failed")

		return nil, failure.Upstream(0, "backend unreachable: "+err.Error(), err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	scope.SetAttribute(constant.OtelStatusAttributeKey, httpResp.StatusCode)

	log.Debug().
		Str("method", method).
		Str("url", target).
		Int("status", httpResp.StatusCode).
		Dur("elapsed", time.Since(started)).
		Str("session", session.String()).
		Msg("backend request")

	if httpResp.StatusCode < http.StatusOK || httpResp.StatusCode >= http.StatusMultipleChoices {
		backendErr := &Error{
			Method: method,
			Path:   target,
			Status: httpResp.StatusCode,
			Detail: ErrorDetail(httpResp.StatusCode, respBody),
		}

		log.Warn().Err(backendErr).Msg("backend rejected request")

		return nil, failure.Upstream(backendErr.Status, backendErr.Detail, backendErr)
	}

	return &Response{
		Response: httpResp,
		Body:     respBody,
	}, nil
}
