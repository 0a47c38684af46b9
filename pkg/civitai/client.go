package civitai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// 上游 API 错误类型
var (
	ErrUnauthorized = errors.New("civitai: unauthorized (missing or rejected api token)")
	ErrNotFound     = errors.New("civitai: resource not found")
)

// StatusError 非 401 的上游 HTTP 失败，保留状态码供上层换算
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("civitai: request failed (status %d): %s", e.StatusCode, e.Message)
}

type Client struct {
	baseUrl    *url.URL
	httpClient *http.Client
	token      string // API token（Bearer 认证），可为空，调用方可逐次传入
}

func NewClient(apiURL string, token string) (*Client, error) {
	baseUrl, err := url.Parse(apiURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseUrl: baseUrl,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		token: token,
	}, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, result interface{}) error {
	endpoint := c.baseUrl.JoinPath(path)
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode >= 400:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}

// GetModels 查询模型列表（游标分页）
func (c *Client) GetModels(ctx context.Context, params QueryParams) (*ModelListResponse, error) {
	values := url.Values{}
	if params.Limit > 0 {
		values.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Page > 0 {
		values.Set("page", strconv.Itoa(params.Page))
	}
	if params.Query != "" {
		values.Set("query", params.Query)
	}
	if params.Tag != "" {
		values.Set("tag", params.Tag)
	}
	if params.Username != "" {
		values.Set("username", params.Username)
	}
	for _, t := range params.Types {
		values.Add("types", t)
	}
	if params.Sort != "" {
		values.Set("sort", params.Sort)
	}
	if params.Period != "" {
		values.Set("period", params.Period)
	}
	if params.Nsfw {
		values.Set("nsfw", "true")
	}
	if params.Cursor != "" {
		values.Set("cursor", params.Cursor)
	}

	var result ModelListResponse
	if err := c.get(ctx, "/models", values, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetModel 查询单个模型详情（含全部版本）
func (c *Client) GetModel(ctx context.Context, modelID int) (*Model, error) {
	var result Model
	if err := c.get(ctx, fmt.Sprintf("/models/%d", modelID), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetModelVersion 查询单个模型版本详情
func (c *Client) GetModelVersion(ctx context.Context, versionID int) (*ModelVersion, error) {
	var result ModelVersion
	if err := c.get(ctx, fmt.Sprintf("/model-versions/%d", versionID), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ResolveDownloadURL 解析带鉴权的下载地址，返回重定向后的最终 URL
// （通常是带签名的限时 CDN 链接，外部下载器拿它直接取二进制）。
// token 为空时回退到客户端配置的 token；两者都没有则不发起网络请求直接失败。
// 单次尝试，不做重试，重试策略由调用方决定。
func (c *Client) ResolveDownloadURL(ctx context.Context, downloadURL string, token string) (string, error) {
	if token == "" {
		token = c.token
	}
	if token == "" {
		return "", fmt.Errorf("%w: no api token available", ErrUnauthorized)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, downloadURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	// http.Client 默认自动跟随重定向，resp.Request.URL 即最终地址
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return "", fmt.Errorf("%w: the api token may lack access rights to this file", ErrUnauthorized)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &StatusError{StatusCode: resp.StatusCode, Message: "failed to resolve download url, please retry later"}
	}

	return resp.Request.URL.String(), nil
}
