package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"video-share-api/internal/metrics"
)

// FeedVideo is one entry in a trending or search feed
type FeedVideo struct {
	VideoID      string `json:"videoId"`
	Title        string `json:"title"`
	ChannelTitle string `json:"channelTitle"`
	Thumbnail    string `json:"thumbnail"`
	PublishedAt  string `json:"publishedAt"`
	ViewCount    string `json:"viewCount,omitempty"`
	Duration     string `json:"duration,omitempty"`
}

// VideoPlatformClient defines the interface to the upstream video data API
type VideoPlatformClient interface {
	Trending(ctx context.Context, region string, maxResults int) ([]FeedVideo, error)
	Search(ctx context.Context, query string, maxResults int) ([]FeedVideo, error)
	VideoDetail(ctx context.Context, videoID string) (*FeedVideo, error)
}

// videoPlatformClient implements VideoPlatformClient against the YouTube Data API v3 shape
type videoPlatformClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

// NewVideoPlatformClient creates a new video platform API client
func NewVideoPlatformClient(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger, m *metrics.Metrics) VideoPlatformClient {
	return &videoPlatformClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  logger,
		metrics: m,
	}
}

type listResponse struct {
	Items []struct {
		ID      json.RawMessage `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			ChannelTitle string `json:"channelTitle"`
			PublishedAt  string `json:"publishedAt"`
			Thumbnails   struct {
				Medium struct {
					URL string `json:"url"`
				} `json:"medium"`
			} `json:"thumbnails"`
		} `json:"snippet"`
		Statistics struct {
			ViewCount string `json:"viewCount"`
		} `json:"statistics"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
	} `json:"items"`
}

// Trending fetches the most popular videos for a region
func (c *videoPlatformClient) Trending(ctx context.Context, region string, maxResults int) ([]FeedVideo, error) {
	params := url.Values{}
	params.Set("part", "snippet,statistics,contentDetails")
	params.Set("chart", "mostPopular")
	params.Set("regionCode", region)
	params.Set("maxResults", fmt.Sprintf("%d", maxResults))

	body, err := c.get(ctx, "/videos", params)
	if err != nil {
		return nil, err
	}
	return c.parseList(body)
}

// Search fetches videos matching a query
func (c *videoPlatformClient) Search(ctx context.Context, query string, maxResults int) ([]FeedVideo, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("type", "video")
	params.Set("q", query)
	params.Set("maxResults", fmt.Sprintf("%d", maxResults))

	body, err := c.get(ctx, "/search", params)
	if err != nil {
		return nil, err
	}
	return c.parseList(body)
}

// VideoDetail fetches a single video by its platform ID
func (c *videoPlatformClient) VideoDetail(ctx context.Context, videoID string) (*FeedVideo, error) {
	params := url.Values{}
	params.Set("part", "snippet,statistics,contentDetails")
	params.Set("id", videoID)

	body, err := c.get(ctx, "/videos", params)
	if err != nil {
		return nil, err
	}
	videos, err := c.parseList(body)
	if err != nil {
		return nil, err
	}
	if len(videos) == 0 {
		return nil, fmt.Errorf("video %s not found upstream", videoID)
	}
	return &videos[0], nil
}

func (c *videoPlatformClient) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	// Metrics label is built before the key is added so it never carries credentials
	endpoint := path + "?" + params.Encode()
	params.Set("key", c.apiKey)
	fullURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	startTime := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	duration := time.Since(startTime)

	// Record metrics
	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}
	if c.metrics != nil {
		c.metrics.RecordExternalAPICall(endpoint, http.MethodGet, statusCode, duration, err)
	}

	if err != nil {
		c.logger.Error("Video platform request failed",
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, fmt.Errorf("video platform request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Video platform returned non-200",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return nil, fmt.Errorf("video platform returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}

func (c *videoPlatformClient) parseList(body []byte) ([]FeedVideo, error) {
	var parsed listResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	videos := make([]FeedVideo, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		videos = append(videos, FeedVideo{
			VideoID:      decodeItemID(item.ID),
			Title:        item.Snippet.Title,
			ChannelTitle: item.Snippet.ChannelTitle,
			Thumbnail:    item.Snippet.Thumbnails.Medium.URL,
			PublishedAt:  item.Snippet.PublishedAt,
			ViewCount:    item.Statistics.ViewCount,
			Duration:     item.ContentDetails.Duration,
		})
	}
	return videos, nil
}

// decodeItemID handles both list shapes: videos return a plain string ID,
// search returns an object with a videoId field
func decodeItemID(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var obj struct {
		VideoID string `json:"videoId"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.VideoID
	}
	return ""
}
