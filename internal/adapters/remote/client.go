package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/digital-prison-cli/internal/domain"
	"github.com/bnema/digital-prison-cli/internal/observe"
	"github.com/google/uuid"
)

const (
	CredentialHeader = "X-Gemini-API-Key"
	RequestIDHeader  = "X-Request-ID"

	DefaultBaseURL = "http://localhost:5000"
	DefaultTimeout = 60 * time.Second

	maxResponseBytes = 1 << 20
)

const (
	initPath   = "/api/init"
	actionPath = "/api/action"
	hintPath   = "/api/hint"
	savePath   = "/api/save"
	loadPath   = "/api/load"
	pingPath   = "/api/ping"
)

type CredentialSource interface {
	Credential(ctx context.Context) (string, error)
}

// Client talks to the game server over JSON/HTTP.
type Client struct {
	BaseURL     string
	HTTPClient  *http.Client
	Timeout     time.Duration
	Credentials CredentialSource
	Metrics     *observe.Metrics
	Logger      *slog.Logger
}

type actionRequest struct {
	Command string `json:"command"`
}

type loadRequest struct {
	State domain.SaveBlob `json:"state"`
}

type saveResponse struct {
	State domain.SaveBlob `json:"state"`
}

type loadResponse struct {
	Success *bool `json:"success"`
}

type errorResponse struct {
	Message     string            `json:"message"`
	Error       string            `json:"error"`
	Logs        []json.RawMessage `json:"logs"`
	ErrorDetail string            `json:"error_detail"`
	Trace       string            `json:"trace"`
}

func (c Client) Init(ctx context.Context) ([]domain.LogEntry, error) {
	body, err := c.do(ctx, "init", http.MethodPost, initPath, nil)
	if err != nil {
		return nil, err
	}
	return c.decodeLogs("init", body)
}

func (c Client) Act(ctx context.Context, command string) ([]domain.LogEntry, error) {
	body, err := c.do(ctx, "action", http.MethodPost, actionPath, actionRequest{Command: command})
	if err != nil {
		return nil, err
	}
	return c.decodeLogs("action", body)
}

func (c Client) Hint(ctx context.Context) ([]domain.LogEntry, error) {
	body, err := c.do(ctx, "hint", http.MethodPost, hintPath, nil)
	if err != nil {
		return nil, err
	}
	return c.decodeLogs("hint", body)
}

// Save returns an empty blob when the response carries no state.
func (c Client) Save(ctx context.Context) (domain.SaveBlob, error) {
	body, err := c.do(ctx, "save", http.MethodPost, savePath, nil)
	if err != nil {
		return nil, err
	}

	var payload saveResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, malformed("save", "decode save response", err)
	}
	if payload.State.IsEmpty() {
		return nil, nil
	}
	return payload.State, nil
}

// Load restores blob on the server. The server answers a successful load
// with bare logs, so only an explicit success=false is a failure.
func (c Client) Load(ctx context.Context, blob domain.SaveBlob) ([]domain.LogEntry, error) {
	if blob.IsEmpty() {
		return nil, domain.ErrNoSavedState
	}

	body, err := c.do(ctx, "load", http.MethodPost, loadPath, loadRequest{State: blob})
	if err != nil {
		return nil, err
	}

	var status loadResponse
	if err := json.Unmarshal(body, &status); err != nil {
		return nil, malformed("load", "decode load response", err)
	}
	if status.Success != nil && !*status.Success {
		message, trace := extractServerMessage(body)
		if message == "" {
			message = "load rejected"
		}
		return nil, &domain.SessionError{Kind: domain.ErrorKindServer, Op: "load", Status: http.StatusOK, Message: message, Trace: trace}
	}

	return c.decodeLogs("load", body)
}

func (c Client) Ping(ctx context.Context) error {
	_, err := c.do(ctx, "ping", http.MethodGet, pingPath, nil)
	return err
}

func (c Client) do(ctx context.Context, op string, method string, path string, payload any) ([]byte, error) {
	endpoint, err := buildAPIURL(c.baseURL(), path)
	if err != nil {
		return nil, err
	}

	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s request: %w", op, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", op, err)
	}
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(CredentialHeader, c.credential(ctx))

	logger := c.logger().With("op", op, "request_id", requestID)
	started := time.Now()

	body, err := c.roundTrip(req, op)
	elapsed := time.Since(started)

	errKind := ""
	if kind, ok := domain.KindOf(err); ok {
		errKind = string(kind)
	}
	c.Metrics.RecordRemoteRequest(ctx, op, elapsed, errKind)

	if err != nil {
		logger.Warn("remote request failed", "elapsed", elapsed, "error", err)
		return nil, err
	}
	logger.Debug("remote request completed", "elapsed", elapsed, "bytes", len(body))
	return body, nil
}

func (c Client) roundTrip(req *http.Request, op string) ([]byte, error) {
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, transportError(op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, transportError(op, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		message, trace := extractServerMessage(body)
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return nil, &domain.SessionError{
			Kind:    domain.ErrorKindServer,
			Op:      op,
			Status:  resp.StatusCode,
			Message: message,
			Trace:   trace,
		}
	}

	return body, nil
}

func (c Client) decodeLogs(op string, body []byte) ([]domain.LogEntry, error) {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, malformed(op, "decode response", err)
	}

	rawLogs := bytes.TrimSpace(payload["logs"])
	if len(rawLogs) == 0 || rawLogs[0] != '[' {
		return nil, malformed(op, "response has no logs array", nil)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(rawLogs, &items); err != nil {
		return nil, malformed(op, "decode logs", err)
	}

	entries, dropped := domain.DecodeEntries(items)
	if dropped > 0 {
		c.logger().Warn("dropped invalid log entries", "op", op, "dropped", dropped)
	}
	return entries, nil
}

func (c Client) credential(ctx context.Context) string {
	if c.Credentials == nil {
		return ""
	}
	value, err := c.Credentials.Credential(ctx)
	if err != nil {
		c.logger().Warn("read credential failed; sending empty credential", "error", err)
		return ""
	}
	return value
}

func (c Client) baseURL() string {
	if strings.TrimSpace(c.BaseURL) == "" {
		return DefaultBaseURL
	}
	return c.BaseURL
}

func (c Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c Client) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// requestContext bounds ctx by the client timeout; an earlier caller deadline
// still wins.
func (c Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return context.WithTimeout(ctx, timeout)
}

func transportError(op string, err error) error {
	kind := domain.ErrorKindUnreachable
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) || (errors.As(err, &netErr) && netErr.Timeout()) {
		kind = domain.ErrorKindTimeout
	}
	return &domain.SessionError{Kind: kind, Op: op, Err: err}
}

func malformed(op string, message string, err error) error {
	return &domain.SessionError{Kind: domain.ErrorKindMalformedResponse, Op: op, Message: message, Err: err}
}

// extractServerMessage pulls a human readable message and a trace out of an
// error body. Non-JSON bodies are returned as the message.
func extractServerMessage(body []byte) (string, string) {
	var payload errorResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return strings.TrimSpace(string(body)), ""
	}

	trace := payload.ErrorDetail
	if trace == "" {
		trace = payload.Trace
	}

	switch {
	case payload.Message != "":
		return payload.Message, trace
	case payload.Error != "":
		return payload.Error, trace
	}

	entries, _ := domain.DecodeEntries(payload.Logs)
	for _, entry := range entries {
		if entry.Text != "" {
			return entry.Text, trace
		}
	}
	return "", trace
}

func buildAPIURL(baseURL string, path string) (string, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse server url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("server url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("server url host is required")
	}

	endpoint, err := parsed.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse api path: %w", err)
	}
	return endpoint.String(), nil
}
