package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"video-share-api/internal/dto"
	"video-share-api/internal/response"
)

// CommentAPI is the client interface to the comment endpoints. The
// terminal thread viewer runs against it, and tests swap in a fake.
type CommentAPI interface {
	ListForVideo(ctx context.Context, videoID string) ([]*dto.CommentResponse, error)
	CreateComment(ctx context.Context, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	CreateReply(ctx context.Context, parentID uuid.UUID, req *dto.CreateReplyRequest) (*dto.CommentResponse, error)
	UpdateComment(ctx context.Context, commentID uuid.UUID, text string) (*dto.CommentResponse, error)
	DeleteComment(ctx context.Context, commentID uuid.UUID) (int64, error)
}

type commentAPIClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewCommentAPIClient creates a comment API client. baseURL includes the
// server's base path, e.g. "http://localhost:8080/api".
func NewCommentAPIClient(baseURL string, timeout time.Duration, logger *zap.Logger) CommentAPI {
	return &commentAPIClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

func (c *commentAPIClient) ListForVideo(ctx context.Context, videoID string) ([]*dto.CommentResponse, error) {
	var comments []*dto.CommentResponse
	if err := c.do(ctx, http.MethodGet, "/comments/video/"+videoID, nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *commentAPIClient) CreateComment(ctx context.Context, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	var comment dto.CommentResponse
	if err := c.do(ctx, http.MethodPost, "/comments", req, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (c *commentAPIClient) CreateReply(ctx context.Context, parentID uuid.UUID, req *dto.CreateReplyRequest) (*dto.CommentResponse, error) {
	var reply dto.CommentResponse
	path := "/comments/" + parentID.String() + "/replies"
	if err := c.do(ctx, http.MethodPost, path, req, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

func (c *commentAPIClient) UpdateComment(ctx context.Context, commentID uuid.UUID, text string) (*dto.CommentResponse, error) {
	var comment dto.CommentResponse
	req := dto.UpdateCommentRequest{Text: text}
	if err := c.do(ctx, http.MethodPut, "/comments/"+commentID.String(), req, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (c *commentAPIClient) DeleteComment(ctx context.Context, commentID uuid.UUID) (int64, error) {
	var result dto.DeleteCommentResponse
	if err := c.do(ctx, http.MethodDelete, "/comments/"+commentID.String(), nil, &result); err != nil {
		return 0, err
	}
	return result.Deleted, nil
}

// envelope mirrors the server's response wrapper
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *commentAPIClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Comment API request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return fmt.Errorf("comment API request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return fmt.Errorf("failed to decode response (status %d): %w", resp.StatusCode, err)
	}

	if !env.Success {
		if env.Error != nil {
			// Surface the server's error taxonomy so callers can branch on code
			return response.NewAppError(env.Error.Code, env.Error.Message, "")
		}
		return fmt.Errorf("comment API returned status %d", resp.StatusCode)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}
