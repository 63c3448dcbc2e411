package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Error 远端 API 错误
// 非 2xx 响应统一归一化为该结构：
//   - Message 优先取 JSON body 的 message 字段
//   - 其次取 body 原始文本
//   - 最后退回 HTTP 状态描述
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Client 帮派后端 API 客户端
// 所有出站请求统一在此封装：Base URL 前缀、Bearer Token、错误归一化
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient 创建 API 客户端
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Get 发起 GET 请求并将 JSON 响应解码到 out
func (c *Client) Get(ctx context.Context, token, path string, out interface{}) error {
	return c.Do(ctx, http.MethodGet, token, path, nil, out)
}

// Post 发起 POST 请求，body 为 nil 时不携带请求体
func (c *Client) Post(ctx context.Context, token, path string, body, out interface{}) error {
	return c.Do(ctx, http.MethodPost, token, path, body, out)
}

// Patch 发起 PATCH 请求
func (c *Client) Patch(ctx context.Context, token, path string, body, out interface{}) error {
	return c.Do(ctx, http.MethodPatch, token, path, body, out)
}

// Put 发起 PUT 请求
func (c *Client) Put(ctx context.Context, token, path string, body, out interface{}) error {
	return c.Do(ctx, http.MethodPut, token, path, body, out)
}

// Delete 发起 DELETE 请求
func (c *Client) Delete(ctx context.Context, token, path string) error {
	return c.Do(ctx, http.MethodDelete, token, path, nil, nil)
}

// Do 发起请求并处理响应
//
// 约定（与后端 API 对齐）：
//   - 除 multipart 外所有请求设置 Content-Type: application/json
//   - token 非空时携带 Authorization: Bearer <token>
//   - 2xx 响应按 Content-Type 处理：JSON 解码到 out，纯文本按原样赋给 *string
//   - 非 2xx 响应返回 *Error
func (c *Client) Do(ctx context.Context, method, token, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("序列化请求体失败: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("构造请求失败: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("请求 %s %s 失败: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseError(resp)
	}

	if out == nil {
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("读取响应失败: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if strings.Contains(contentType, "application/json") {
		if len(data) == 0 {
			return nil
		}
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("解码 %s 响应失败: %w", path, err)
		}
		return nil
	}

	// 纯文本响应：仅支持 *string 接收
	if s, ok := out.(*string); ok {
		*s = string(data)
		return nil
	}
	return fmt.Errorf("响应 Content-Type %q 与接收类型不匹配", contentType)
}

// parseError 将非 2xx 响应归一化为 *Error
func parseError(resp *http.Response) error {
	apiErr := &Error{
		Status:  resp.StatusCode,
		Message: http.StatusText(resp.StatusCode),
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil || len(data) == 0 {
		return apiErr
	}

	var payload struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(data, &payload) == nil && payload.Message != "" {
		apiErr.Message = payload.Message
	} else {
		apiErr.Message = string(data)
	}
	return apiErr
}

// AsError 判断 err 是否为 API 错误并返回
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
