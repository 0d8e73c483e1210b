package feishu

import (
	"context"
	"fmt"
	"strings"

	"github.com/takak2166/feishudocs/internal/logger"
)

// Client talks to the Feishu Open API with a resolved credential. It
// holds no other state; every method performs its own network I/O.
type Client struct {
	transport *transport
	token     string
}

// Config carries credential material and optional transport overrides.
// Exactly one credential form is required: a ready access token, or an
// app id/secret pair to exchange for a tenant token.
type Config struct {
	AccessToken string
	AppID       string
	AppSecret   string

	// BaseURL overrides the API root, for tests. Empty means BaseURL.
	BaseURL string
	// Doer overrides the HTTP client, for tests. Nil means a client
	// with the default request timeout.
	Doer Doer
}

// New resolves a usable credential and returns a client bound to it.
// A supplied access token is used unmodified with no network call;
// otherwise the app id/secret pair is exchanged once for a tenant
// token. No retry on a failed exchange.
func New(ctx context.Context, cfg Config) (*Client, error) {
	t := newTransport(cfg.BaseURL, cfg.Doer)

	token := strings.TrimSpace(cfg.AccessToken)
	if token == "" {
		appID := strings.TrimSpace(cfg.AppID)
		appSecret := strings.TrimSpace(cfg.AppSecret)
		if appID == "" || appSecret == "" {
			return nil, fmt.Errorf("%w: access_token or app_id/app_secret is required", ErrAuth)
		}
		exchanged, err := exchangeTenantToken(ctx, t, appID, appSecret)
		if err != nil {
			return nil, err
		}
		token = exchanged
		logger.Debug("Resolved tenant access token", map[string]interface{}{
			"app_id": appID,
		})
	}

	return &Client{transport: t, token: token}, nil
}
