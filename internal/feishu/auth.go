package feishu

import (
	"context"
	"fmt"
	"net/http"
)

const tenantTokenPath = "/auth/v3/tenant_access_token/internal"

// tenantTokenResponse is the credential exchange reply. Unlike every
// other endpoint, the token sits beside code/msg instead of in data.
type tenantTokenResponse struct {
	Code              int    `json:"code"`
	Msg               string `json:"msg"`
	TenantAccessToken string `json:"tenant_access_token"`
	Expire            int    `json:"expire"`
}

// exchangeTenantToken trades an app id/secret pair for a short-lived
// tenant access token. Single attempt, no retry.
func exchangeTenantToken(ctx context.Context, t *transport, appID, appSecret string) (string, error) {
	body := map[string]string{
		"app_id":     appID,
		"app_secret": appSecret,
	}

	var resp tenantTokenResponse
	if err := t.callRaw(ctx, http.MethodPost, tenantTokenPath, "", nil, body, &resp); err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuth, err)
	}
	if resp.Code != 0 {
		return "", fmt.Errorf("%w: exchange returned code %d: %s", ErrAuth, resp.Code, resp.Msg)
	}
	if resp.TenantAccessToken == "" {
		return "", fmt.Errorf("%w: exchange response carried no tenant_access_token", ErrAuth)
	}
	return resp.TenantAccessToken, nil
}
