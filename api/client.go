// Package api is the HTTP client for the restaurant REST backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/princinho/menufront/dto"
	"github.com/princinho/menufront/normalizer"
	"github.com/princinho/menufront/session"
)

const (
	DefaultTimeout = 10 * time.Second
	maxBodyBytes   = 10 << 20
)

type Client struct {
	baseURL string
	http    *http.Client
	session session.Store
	logger  *zap.Logger
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New returns a client bound to one session store. Web handlers build one per
// request around the request's cookie store; the CLI builds one around a file store.
func New(baseURL string, store session.Store, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
		session: store,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Session() session.Store {
	return c.session
}

// LoggedIn reports whether an unexpired token is stored.
func (c *Client) LoggedIn(ctx context.Context) bool {
	_, err := session.Active(ctx, c.session)
	return err == nil
}

type field struct {
	name  string
	value string
}

type request struct {
	method string
	path   string
	auth   bool
	json   any
	fields []field
	file   *dto.Upload
}

func (r request) encode() (io.Reader, string, error) {
	if r.file != nil {
		return r.multipart()
	}
	if r.json == nil {
		return nil, "", nil
	}
	raw, err := json.Marshal(r.json)
	if err != nil {
		return nil, "", fmt.Errorf("encode body: %w", err)
	}
	return bytes.NewReader(raw), "application/json", nil
}

func (r request) multipart() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range r.fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", err
		}
	}

	src, err := r.file.Open()
	if err != nil {
		return nil, "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	part, err := w.CreateFormFile("image", r.file.Filename)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, src); err != nil {
		return nil, "", fmt.Errorf("copy upload: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

// do sends r and returns the decoded JSON payload of a successful response.
func (c *Client) do(ctx context.Context, r request) (any, error) {
	var token string
	if r.auth {
		t, err := session.Active(ctx, c.session)
		if err != nil {
			if errors.Is(err, session.ErrNoToken) {
				// a wrapped ErrNoToken means an expired token could not be cleared
				if err != session.ErrNoToken {
					c.logger.Error("failed to clear session", zap.Error(err))
				}
				return nil, ErrNoSession
			}
			return nil, err
		}
		token = t
	}

	body, contentType, err := r.encode()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, r.method, c.baseURL+r.path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.logger.Warn("backend request failed",
			zap.String("method", r.method), zap.String("path", r.path), zap.Error(err))
		return nil, &Error{Message: GenericMessage, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &Error{Status: resp.StatusCode, Message: GenericMessage, Err: err}
	}
	payload := normalizer.Decode(raw)

	c.logger.Debug("backend request",
		zap.String("method", r.method),
		zap.String("path", r.path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)))

	if resp.StatusCode == http.StatusUnauthorized && r.auth {
		if err := c.session.Clear(ctx); err != nil {
			c.logger.Error("failed to clear session", zap.Error(err))
		}
		return nil, ErrUnauthorized
	}
	if resp.StatusCode >= http.StatusBadRequest {
		msg, ok := normalizer.ErrorMessage(payload)
		if !ok {
			msg = GenericMessage
		}
		return nil, &Error{Status: resp.StatusCode, Message: msg}
	}
	return payload, nil
}
