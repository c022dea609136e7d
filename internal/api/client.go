package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	errx "github.com/trendify-core/client/internal/core/error"
	"github.com/trendify-core/client/internal/model"
	logx "github.com/trendify-core/client/pkg/logger"
)

const headerRequestID = "X-Request-ID"

// TokenSource yields the session token to attach to outgoing requests. An
// empty token means the request goes out anonymously.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type Client struct {
	rc     *resty.Client
	hc     *http.Client
	tokens TokenSource
}

type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client (tests, custom transports).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.hc = hc
	}
}

// WithTokenSource attaches the session token to every request.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

func NewClient(cfg Config, opts ...Option) *Client {
	c := &Client{}
	for _, opt := range opts {
		opt(c)
	}

	if c.hc != nil {
		c.rc = resty.NewWithClient(c.hc)
	} else {
		c.rc = resty.New()
	}
	c.rc.SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.timeout()).
		SetLogger(restyLogger{}).
		SetDebug(cfg.Debug).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")
	if cfg.Lang != "" {
		c.rc.SetHeader("lang", cfg.Lang)
	}
	c.rc.OnBeforeRequest(c.authorize)
	return c
}

var _ Service = (*Client)(nil)

func (c *Client) Register(ctx context.Context, req model.RegisterRequest) (*Response[model.RegisterResponse], error) {
	return call[model.RegisterResponse](ctx, c, http.MethodPost, PathRegister, req)
}

func (c *Client) Login(ctx context.Context, req model.LoginRequest) (*Response[model.LoginResponse], error) {
	return call[model.LoginResponse](ctx, c, http.MethodPost, PathLogin, req)
}

func (c *Client) GetHome(ctx context.Context) (*Response[model.Home], error) {
	return call[model.Home](ctx, c, http.MethodGet, PathHome, nil)
}

func (c *Client) GetFavorites(ctx context.Context) (*Response[model.GetFavoritesResponse], error) {
	return call[model.GetFavoritesResponse](ctx, c, http.MethodGet, PathFavorites, nil)
}

func (c *Client) AddOrDeleteFavorite(ctx context.Context, req model.AddOrDeleteFavRequest) (*Response[model.AddOrDeleteFavResponse], error) {
	return call[model.AddOrDeleteFavResponse](ctx, c, http.MethodPost, PathToggleFavorite, req)
}

func (c *Client) GetCarts(ctx context.Context) (*Response[model.GetCartsResponse], error) {
	return call[model.GetCartsResponse](ctx, c, http.MethodGet, PathCarts, nil)
}

func (c *Client) AddOrDeleteCart(ctx context.Context, req model.AddOrDeleteCartRequest) (*Response[model.AddOrDeleteCartResponse], error) {
	return call[model.AddOrDeleteCartResponse](ctx, c, http.MethodPost, PathToggleCart, req)
}

func (c *Client) authorize(_ *resty.Client, r *resty.Request) error {
	if c.tokens == nil {
		return nil
	}
	// an unreadable session is not a transport failure; the request goes out
	// anonymously and the server decides whether that is enough
	token, err := c.tokens.Token(r.Context())
	if err != nil {
		logx.Warn().Err(err).Str("url", r.URL).Msg("session token unavailable, sending request without it")
		return nil
	}
	if token != "" {
		r.SetHeader("Authorization", "Bearer "+token)
	}
	return nil
}

func call[T any](ctx context.Context, c *Client, method, path string, body any) (*Response[T], error) {
	requestID := uuid.NewString()
	req := c.rc.R().
		SetContext(ctx).
		SetHeader(headerRequestID, requestID)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		logx.Error().Err(err).Str("method", method).Str("path", path).Str("requestID", requestID).Msg("api request failed")
		return nil, errx.WrapTransport(err)
	}

	out := &Response[T]{
		StatusCode: resp.StatusCode(),
		RequestID:  requestID,
	}
	logx.Debug().
		Str("method", method).
		Str("path", path).
		Str("requestID", requestID).
		Int("status", out.StatusCode).
		Dur("elapsed", resp.Time()).
		Msg("api request completed")

	if !resp.IsSuccess() {
		out.Raw = resp.String()
		return out, nil
	}

	raw := resp.Body()
	if len(raw) == 0 {
		return out, nil
	}
	var decoded T
	if err := json.Unmarshal(raw, &decoded); err != nil {
		logx.Warn().Err(err).Str("path", path).Str("requestID", requestID).Msg("failed to decode api response body")
		out.Raw = string(raw)
		return out, nil
	}
	out.Body = &decoded
	return out, nil
}
