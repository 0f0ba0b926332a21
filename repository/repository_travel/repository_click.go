package repository_travel

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/lakbay-travel/lakbay-backend/domain/domain_travel/travel_interface"
)

// clickStore 对接外部点击遥测服务的HTTP客户端
// 服务不可用时上层降级为零点击信号，不影响推荐主流程
type clickStore struct {
	baseURL string
	client  *http.Client
}

func NewClickStore(baseURL string, timeout time.Duration) travel_interface.ClickStore {
	return &clickStore{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type clickCountsResponse struct {
	Clicks map[string]int `json:"clicks"`
}

type recordClickRequest struct {
	UserID     string `json:"user_id"`
	LocationID string `json:"location_id"`
}

func (s *clickStore) GetUserClicks(ctx context.Context, userID string) (map[string]int, error) {
	url := fmt.Sprintf("%s/api/clicks/%s", s.baseURL, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("点击查询请求构建失败: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("点击服务不可达: %w", err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			fmt.Printf("error closing response body: %v\n", err)
		}
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("点击服务返回异常状态: %d", resp.StatusCode)
	}

	var payload clickCountsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("点击数据解码失败: %w", err)
	}
	if payload.Clicks == nil {
		return map[string]int{}, nil
	}
	return payload.Clicks, nil
}

func (s *clickStore) RecordClick(ctx context.Context, userID, locationID string) error {
	body, err := json.Marshal(recordClickRequest{
		UserID:     userID,
		LocationID: locationID,
	})
	if err != nil {
		return fmt.Errorf("点击上报编码失败: %w", err)
	}

	url := fmt.Sprintf("%s/api/clicks", s.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("点击上报请求构建失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("点击服务不可达: %w", err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			fmt.Printf("error closing response body: %v\n", err)
		}
	}(resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("点击服务返回异常状态: %d", resp.StatusCode)
	}
	return nil
}
