package verifier

import (
	"context"
	"net/http"
	"time"

	"payout-engine/internal/core/domain"
	"payout-engine/internal/core/port"
)

// MetricsClient reads post engagement and authorship from the social metrics
// service.
type MetricsClient struct {
	c *client
}

var _ port.MetricsVerifier = (*MetricsClient)(nil)

func NewMetricsClient(baseURL, apiKey string, timeout time.Duration) *MetricsClient {
	return &MetricsClient{c: newClient("metrics", baseURL, apiKey, timeout)}
}

type postLookupRequest struct {
	Platform   domain.Platform `json:"platform"`
	PostID     string          `json:"post_id"`
	URL        string          `json:"url"`
	Credential string          `json:"credential"`
}

type postLookupResponse struct {
	Engagement int64        `json:"engagement"`
	AuthorID   string       `json:"author_id"`
	Text       string       `json:"text"`
	Media      []port.Media `json:"media"`
}

func (m *MetricsClient) FetchPost(ctx context.Context, ref domain.PostRef, credential string) (port.PostMetrics, error) {
	var out postLookupResponse
	req := postLookupRequest{Platform: ref.Platform, PostID: ref.PostID, URL: ref.URL, Credential: credential}
	if err := m.c.do(ctx, http.MethodPost, "/posts/lookup", req, &out); err != nil {
		return port.PostMetrics{}, err
	}
	return port.PostMetrics{
		Engagement: max(out.Engagement, 0),
		AuthorID:   out.AuthorID,
		Text:       out.Text,
		Media:      out.Media,
	}, nil
}
