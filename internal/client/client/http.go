package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/findash/internal/client/models"
	"github.com/dmitrijs2005/findash/internal/common"
	"github.com/dmitrijs2005/findash/internal/logging"
	"github.com/google/uuid"
)

var _ API = (*HTTPClient)(nil)

// HTTPClient implements API over JSON/HTTP.
type HTTPClient struct {
	baseURL string
	tokens  TokenSource
	http    *http.Client
	log     logging.Logger
}

// NewHTTPClient builds a client for baseURL (e.g. "http://localhost:5000/api").
// A nil httpClient means http.DefaultClient.
func NewHTTPClient(baseURL string, tokens TokenSource, httpClient *http.Client, log logging.Logger) *HTTPClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		http:    httpClient,
		log:     log,
	}
}

// Do sends one request and returns the raw JSON body.
// A nil result with a nil error means the backend returned no content.
func (c *HTTPClient) Do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	token, err := c.tokens.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("read credential: %w", err)
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
	}

	reqID := uuid.NewString()
	c.log.Debug(ctx, "api request", "method", method, "path", path, "request_id", reqID)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "api unreachable", "method", method, "path", path, "request_id", reqID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		re := &RequestError{Status: resp.StatusCode, Message: errorMessage(data)}
		c.log.Info(ctx, "api error", "method", method, "path", path, "status", resp.StatusCode, "request_id", reqID, "msg", re.Message)
		return nil, re
	}

	if resp.StatusCode == http.StatusNoContent || resp.Header.Get("Content-Length") == "0" || len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	return json.RawMessage(data), nil
}

func errorMessage(body []byte) string {
	var e struct {
		Msg *string `json:"msg"`
	}
	if err := json.Unmarshal(body, &e); err != nil {
		return MsgServerError
	}
	if e.Msg == nil || *e.Msg == "" {
		return MsgNetworkError
	}
	return *e.Msg
}

// call runs Do and decodes a non-empty result into T.
func call[T any](ctx context.Context, c *HTTPClient, method, path string, body any) (T, error) {
	var out T
	raw, err := c.Do(ctx, method, path, body)
	if err != nil {
		return out, err
	}
	if raw == nil {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return out, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (models.LoginResult, error) {
	res, err := call[models.LoginResult](ctx, c, http.MethodPost, PathLogin, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return res, err
	}
	if res.AccessToken == "" {
		return res, errors.New(MsgServerError)
	}
	return res, nil
}

func (c *HTTPClient) Register(ctx context.Context, username, email, password string) (models.Ack, error) {
	return call[models.Ack](ctx, c, http.MethodPost, PathRegister, models.RegisterRequest{Username: username, Email: email, Password: password})
}

func (c *HTTPClient) Me(ctx context.Context) (models.User, error) {
	return call[models.User](ctx, c, http.MethodGet, PathMe, nil)
}
