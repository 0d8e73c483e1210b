package feishu

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// BaseURL is the Feishu Open API root.
const BaseURL = "https://open.feishu.cn/open-apis"

const requestTimeout = 30 * time.Second

//go:generate mockgen -source=transport.go -destination=mock_feishu/mock_feishu.go -package=mock_feishu
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// transport issues authenticated JSON calls against the Feishu API and
// decodes the {code, msg, data} envelope every endpoint wraps its
// payload in.
type transport struct {
	baseURL string
	doer    Doer
}

func newTransport(baseURL string, doer Doer) *transport {
	if baseURL == "" {
		baseURL = BaseURL
	}
	if doer == nil {
		doer = &http.Client{Timeout: requestTimeout}
	}
	return &transport{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		doer:    doer,
	}
}

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

// call issues one request and unmarshals the envelope's data field into
// out. A non-zero envelope code, a non-2xx status and a transport
// failure all surface as *APIError. No retries at this layer.
func (t *transport) call(ctx context.Context, method, path, token string, params url.Values, body, out any) error {
	raw, err := t.roundTrip(ctx, method, path, token, params, body)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return &APIError{Path: path, Err: fmt.Errorf("decode response: %w", err)}
	}
	if env.Code != 0 {
		return &APIError{Path: path, Code: env.Code, Msg: env.Msg}
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &APIError{Path: path, Err: fmt.Errorf("decode data: %w", err)}
		}
	}
	return nil
}

// callRaw is like call but decodes the whole response body into out.
// The tenant token endpoint returns its payload beside code/msg rather
// than inside data, so it cannot go through the envelope path.
func (t *transport) callRaw(ctx context.Context, method, path, token string, params url.Values, body, out any) error {
	raw, err := t.roundTrip(ctx, method, path, token, params, body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &APIError{Path: path, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func (t *transport) roundTrip(ctx context.Context, method, path, token string, params url.Values, body any) ([]byte, error) {
	u := t.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, &APIError{Path: path, Err: fmt.Errorf("encode body: %w", err)}
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, &APIError{Path: path, Err: err}
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := t.doer.Do(req)
	if err != nil {
		return nil, &APIError{Path: path, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Path: path, StatusCode: resp.StatusCode, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			Path:       path,
			StatusCode: resp.StatusCode,
			Msg:        strings.TrimSpace(string(raw)),
		}
	}
	return raw, nil
}
