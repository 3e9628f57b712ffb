package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-safe-keeper/internal/logger"
	"github.com/MKhiriev/go-safe-keeper/internal/utils"
	"github.com/MKhiriev/go-safe-keeper/models"
)

type httpSafeClient struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPSafeClient constructs the HTTP/REST implementation of [SafeClient].
// address may omit the scheme ("localhost:8080"); http is assumed.
//
// Returns an error if address is empty or cannot be parsed as a URL.
func NewHTTPSafeClient(address string, requestTimeout time.Duration, logger *logger.Logger) (SafeClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout).
		SetError(&models.ErrorResponse{})

	return &httpSafeClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpSafeClient) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpSafeClient) Token() string {
	return h.token
}

// GetOrCreateSafe implements [SafeClient] via PUT /api/safes/{safeID}.
func (h *httpSafeClient) GetOrCreateSafe(ctx context.Context, safeID string) (models.SafeInfo, error) {
	var info models.SafeInfo

	resp, err := h.request(ctx).
		SetPathParam("safeID", safeID).
		SetResult(&info).
		Put("/api/safes/{safeID}")
	if err != nil {
		return models.SafeInfo{}, fmt.Errorf("get or create safe request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SafeInfo{}, err
	}

	return info, nil
}

// EncryptObject implements [SafeClient] via POST /api/safes/{safeID}/encrypt.
func (h *httpSafeClient) EncryptObject(ctx context.Context, safeID string, obj map[string]any, keys ...string) (map[string]any, error) {
	return h.transformObject(ctx, "/api/safes/{safeID}/encrypt", safeID, obj, keys)
}

// DecryptObject implements [SafeClient] via POST /api/safes/{safeID}/decrypt.
func (h *httpSafeClient) DecryptObject(ctx context.Context, safeID string, obj map[string]any, keys ...string) (map[string]any, error) {
	return h.transformObject(ctx, "/api/safes/{safeID}/decrypt", safeID, obj, keys)
}

func (h *httpSafeClient) transformObject(ctx context.Context, path, safeID string, obj map[string]any, keys []string) (map[string]any, error) {
	var result models.ObjectResponse

	resp, err := h.request(ctx).
		SetPathParam("safeID", safeID).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ObjectRequest{Object: obj, Keys: keys}).
		SetResult(&result).
		Post(path)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("func", "*httpSafeClient.transformObject").Str("safe_id", safeID).Msg("server rejected request")
		return nil, err
	}

	return result.Object, nil
}

// EncryptValues implements [SafeClient] via
// POST /api/safes/{safeID}/values/encrypt.
func (h *httpSafeClient) EncryptValues(ctx context.Context, safeID string, values []any) ([]string, error) {
	var result models.TokensPayload

	resp, err := h.request(ctx).
		SetPathParam("safeID", safeID).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ValuesPayload{Values: values}).
		SetResult(&result).
		Post("/api/safes/{safeID}/values/encrypt")
	if err != nil {
		return nil, fmt.Errorf("encrypt values request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Tokens, nil
}

// DecryptValues implements [SafeClient] via
// POST /api/safes/{safeID}/values/decrypt.
func (h *httpSafeClient) DecryptValues(ctx context.Context, safeID string, tokens []string) ([]any, error) {
	var result models.ValuesPayload

	resp, err := h.request(ctx).
		SetPathParam("safeID", safeID).
		SetHeader("Content-Type", "application/json").
		SetBody(models.TokensPayload{Tokens: tokens}).
		SetResult(&result).
		Post("/api/safes/{safeID}/values/decrypt")
	if err != nil {
		return nil, fmt.Errorf("decrypt values request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Values, nil
}

// Mask implements [SafeClient] via POST /api/mask.
func (h *httpSafeClient) Mask(ctx context.Context, req models.MaskRequest) (map[string]any, error) {
	var result models.ObjectResponse

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/mask")
	if err != nil {
		return nil, fmt.Errorf("mask request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Object, nil
}

// GetServerVersion implements [SafeClient] via GET /api/version/.
func (h *httpSafeClient) GetServerVersion(ctx context.Context) (models.VersionInfo, error) {
	var info models.VersionInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/api/version/")
	if err != nil {
		return models.VersionInfo{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionInfo{}, err
	}

	return info, nil
}

// request starts a request carrying the bearer token, if one is set.
func (h *httpSafeClient) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.token != "" {
		req.SetAuthToken(h.token)
	}
	return req
}
