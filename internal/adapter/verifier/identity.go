package verifier

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"payout-engine/internal/core/port"
)

// IdentityClient resolves linked platform accounts through the identity
// service.
type IdentityClient struct {
	c *client
}

var _ port.IdentityVerifier = (*IdentityClient)(nil)

func NewIdentityClient(baseURL, apiKey string, timeout time.Duration) *IdentityClient {
	return &IdentityClient{c: newClient("identity", baseURL, apiKey, timeout)}
}

type linkedAccountResponse struct {
	PlatformUserID string `json:"platform_user_id"`
	Credential     string `json:"credential"`
	Expired        bool   `json:"expired"`
}

// LinkedAccount maps 404 to port.ErrIdentityNotLinked and 401/410 or an
// expired flag to port.ErrCredentialExpired.
func (i *IdentityClient) LinkedAccount(ctx context.Context, userID string) (port.LinkedAccount, error) {
	var out linkedAccountResponse
	err := i.c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(userID)+"/linked-account", nil, &out)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) {
			switch se.Status {
			case http.StatusNotFound:
				return port.LinkedAccount{}, port.ErrIdentityNotLinked
			case http.StatusUnauthorized, http.StatusGone:
				return port.LinkedAccount{}, port.ErrCredentialExpired
			}
		}
		return port.LinkedAccount{}, err
	}
	if out.Expired {
		return port.LinkedAccount{}, port.ErrCredentialExpired
	}
	if out.PlatformUserID == "" {
		return port.LinkedAccount{}, port.ErrIdentityNotLinked
	}
	return port.LinkedAccount{PlatformUserID: out.PlatformUserID, Credential: out.Credential}, nil
}
