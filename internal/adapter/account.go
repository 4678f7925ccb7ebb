package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/internal/config"
	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/internal/logger"
	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/internal/utils"
	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/models"
)

// MaxBatchSize is the largest number of account ids the public account
// lookup accepts per call.
const MaxBatchSize = 100

const oauthTokenPath = "/account/api/oauth/token"

type accountAdapter struct {
	client *utils.HTTPClient

	clientID     string
	clientSecret string
	token        string

	logger *logger.Logger
}

// NewAccountAdapter constructs an HTTP/REST implementation of
// [AccountAdapter] against the account service. It normalises and validates
// the base URL from adapterCfg.AccountServiceURL and configures the
// underlying HTTP client with the resolved base URL and request timeout.
//
// Returns an error if adapterCfg.AccountServiceURL is empty or cannot be
// parsed as a valid URL.
func NewAccountAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (AccountAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.AccountServiceURL)
	if err != nil {
		return nil, fmt.Errorf("invalid account service address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &accountAdapter{
		client:       client,
		clientID:     appCfg.ClientID,
		clientSecret: appCfg.ClientSecret,
		logger:       logger,
	}, nil
}

// SetToken implements [IdentityDirectory]. It stores token
// (whitespace-trimmed) for use in the Authorization header of all subsequent
// account lookups.
func (h *accountAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// ClientCredentialsToken implements [AuthProvider]. It POSTs a
// client_credentials grant to the token endpoint using the configured client
// credential as HTTP basic auth. The resulting token is only good for
// requesting a device code.
func (h *accountAdapter) ClientCredentialsToken(ctx context.Context) (models.TokenGrant, error) {
	var grant models.TokenGrant

	resp, err := h.client.R().
		SetContext(ctx).
		SetBasicAuth(h.clientID, h.clientSecret).
		SetFormData(map[string]string{"grant_type": "client_credentials"}).
		SetResult(&grant).
		Post(oauthTokenPath)
	if err != nil {
		return models.TokenGrant{}, fmt.Errorf("client credentials request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenGrant{}, err
	}

	return grant, nil
}

// IssueDeviceCode implements [AuthProvider]. It POSTs to the device
// authorization endpoint with the short-lived client token and returns the
// device code together with the user-facing verification URL.
func (h *accountAdapter) IssueDeviceCode(ctx context.Context, clientToken string) (models.DeviceAuthorization, error) {
	var device models.DeviceAuthorization

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(clientToken).
		SetResult(&device).
		Post("/account/api/oauth/deviceAuthorization")
	if err != nil {
		return models.DeviceAuthorization{}, fmt.Errorf("device authorization request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DeviceAuthorization{}, err
	}

	return device, nil
}

// ExchangeDeviceCode implements [AuthProvider]. It POSTs a device_code grant
// to the token endpoint. A 4xx response whose OAuth error code signals that
// the approval is still outstanding (authorization_pending, invalid_grant,
// slow_down) is reported as [ErrAuthorizationPending]; every other failure is
// mapped to its transport sentinel and is terminal for the handshake.
func (h *accountAdapter) ExchangeDeviceCode(ctx context.Context, deviceCode string) (models.TokenGrant, error) {
	var grant models.TokenGrant

	resp, err := h.client.R().
		SetContext(ctx).
		SetBasicAuth(h.clientID, h.clientSecret).
		SetFormData(map[string]string{
			"grant_type":  "device_code",
			"device_code": deviceCode,
		}).
		SetResult(&grant).
		Post(oauthTokenPath)
	if err != nil {
		return models.TokenGrant{}, fmt.Errorf("device code exchange request: %w", err)
	}
	if resp.IsSuccess() {
		return grant, nil
	}

	if code, ok := oauthErrorCode(resp); ok && isPendingCode(code) {
		return models.TokenGrant{}, fmt.Errorf("%w: %s", ErrAuthorizationPending, code)
	}

	return models.TokenGrant{}, mapHTTPError(resp)
}

// Invalidate implements [AuthProvider]. It DELETEs the session behind
// bearerToken. Callers treat the result as best-effort.
func (h *accountAdapter) Invalidate(ctx context.Context, bearerToken string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(bearerToken).
		Delete("/account/api/oauth/sessions/kill/" + url.PathEscape(bearerToken))
	if err != nil {
		return fmt.Errorf("kill session request: %w", err)
	}

	return mapHTTPError(resp)
}

// ResolveBatch implements [IdentityDirectory]. It GETs the public account
// lookup for up to [MaxBatchSize] ids in one call. The service answers with a
// JSON array, or with a bare object when a single account matches; both forms
// are accepted. Accounts without a display name are left out of the result so
// callers fall back to their placeholder.
func (h *accountAdapter) ResolveBatch(ctx context.Context, accountIDs []string) (map[string]string, error) {
	if len(accountIDs) > MaxBatchSize {
		return nil, fmt.Errorf("resolve batch of %d ids exceeds maximum of %d", len(accountIDs), MaxBatchSize)
	}

	out := make(map[string]string, len(accountIDs))
	if len(accountIDs) == 0 {
		return out, nil
	}

	resp, err := h.authedRequest(ctx).
		SetQueryParam("locale", "en").
		SetQueryParamsFromValues(url.Values{"accountId": accountIDs}).
		Get("/account/api/public/account")
	if err != nil {
		return nil, fmt.Errorf("account lookup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	accounts, err := decodeAccountList(resp.Body())
	if err != nil {
		return nil, err
	}

	for _, account := range accounts {
		if account.ID == "" || account.DisplayName == "" {
			continue
		}
		out[account.ID] = account.DisplayName
	}

	return out, nil
}

func (h *accountAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.token != "" {
		req.SetAuthToken(h.token)
	}
	return req
}

func decodeAccountList(body []byte) ([]models.AccountInfo, error) {
	var accounts []models.AccountInfo
	if err := json.Unmarshal(body, &accounts); err == nil {
		return accounts, nil
	}

	var single models.AccountInfo
	if err := json.Unmarshal(body, &single); err != nil || single.ID == "" {
		return nil, fmt.Errorf("decode account lookup response: %s", strings.TrimSpace(string(body)))
	}

	return []models.AccountInfo{single}, nil
}

func oauthErrorCode(resp *resty.Response) (string, bool) {
	if resp.StatusCode() != 400 && resp.StatusCode() != 401 && resp.StatusCode() != 403 {
		return "", false
	}

	var oauthErr models.OAuthError
	if err := json.Unmarshal(resp.Body(), &oauthErr); err != nil || oauthErr.Code == "" {
		return "", false
	}

	return oauthErr.Code, true
}

func isPendingCode(code string) bool {
	switch code {
	case "authorization_pending", "invalid_grant", "slow_down":
		return true
	default:
		return false
	}
}
