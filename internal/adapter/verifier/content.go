package verifier

import (
	"context"
	"net/http"
	"time"

	"payout-engine/internal/core/domain"
	"payout-engine/internal/core/port"
)

// ContentClient asks the compliance service whether a post follows the
// campaign guidelines.
type ContentClient struct {
	c *client
}

var _ port.ContentVerifier = (*ContentClient)(nil)

func NewContentClient(baseURL, apiKey string, timeout time.Duration) *ContentClient {
	return &ContentClient{c: newClient("content", baseURL, apiKey, timeout)}
}

type contentCheckRequest struct {
	Text       string            `json:"text"`
	Media      []port.Media      `json:"media"`
	Guidelines domain.Guidelines `json:"guidelines"`
}

type contentCheckResponse struct {
	Passed      bool   `json:"passed"`
	Explanation string `json:"explanation"`
}

func (c *ContentClient) CheckContent(ctx context.Context, text string, media []port.Media, g domain.Guidelines) (port.ContentVerdict, error) {
	if media == nil {
		media = []port.Media{}
	}
	var out contentCheckResponse
	if err := c.c.do(ctx, http.MethodPost, "/content/check", contentCheckRequest{Text: text, Media: media, Guidelines: g}, &out); err != nil {
		return port.ContentVerdict{}, err
	}
	return port.ContentVerdict{Passed: out.Passed, Explanation: out.Explanation}, nil
}
