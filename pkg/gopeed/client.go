package gopeed

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// 任务状态枚举（与下载器 REST API 一致）
const (
	TaskStatusReady   = "ready"
	TaskStatusRunning = "running"
	TaskStatusPause   = "pause"
	TaskStatusError   = "error"
	TaskStatusDone    = "done"
)

var ErrTaskNotFound = errors.New("gopeed: task not found")

// ApiError 下载器返回的业务失败，保留状态码供上层换算
type ApiError struct {
	StatusCode int
	Message    string
}

func (e *ApiError) Error() string {
	return fmt.Sprintf("gopeed: api error (status %d): %s", e.StatusCode, e.Message)
}

// TaskRequest 下载请求（url + 可选请求头，例如签名 CDN 链接无需额外头）
type TaskRequest struct {
	URL     string            `json:"url"`
	Headers map[string]string `json:"headers,omitempty"`
}

// TaskOptions 落盘选项
type TaskOptions struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// CreateTaskParams 创建任务参数，形如 { request: { url, headers? }, options: { name, path } }
type CreateTaskParams struct {
	Request TaskRequest `json:"request"`
	Options TaskOptions `json:"options"`
}

type TaskProgress struct {
	Used       int64 `json:"used"`
	Speed      int64 `json:"speed"`
	Downloaded int64 `json:"downloaded"`
}

type Task struct {
	ID       string       `json:"id"`
	Status   string       `json:"status"`
	Progress TaskProgress `json:"progress"`
	Size     int64        `json:"size"`
}

// 响应统一包裹 { code, msg, data }
type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

type Client struct {
	baseUrl    *url.URL
	httpClient *http.Client
	token      string // X-Api-Token 认证，可为空（下载器未开启鉴权时）
}

func NewClient(apiURL string, token string) (*Client, error) {
	baseUrl, err := url.Parse(apiURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseUrl: baseUrl,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		token: token,
	}, nil
}

func (c *Client) request(ctx context.Context, method, path string, query url.Values, body, result interface{}) error {
	endpoint := c.baseUrl.JoinPath("/api/v1", path)
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("X-Api-Token", c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrTaskNotFound
	}
	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var env envelope
		if json.Unmarshal(raw, &env) == nil && env.Msg != "" {
			return &ApiError{StatusCode: resp.StatusCode, Message: env.Msg}
		}
		return &ApiError{StatusCode: resp.StatusCode, Message: string(raw)}
	}

	if result != nil {
		var env envelope
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			return err
		}
		if env.Code != 0 {
			return &ApiError{StatusCode: resp.StatusCode, Message: env.Msg}
		}
		if env.Data != nil {
			return json.Unmarshal(env.Data, result)
		}
	}
	return nil
}

// Info 获取下载器版本信息（用于连通性探测）
func (c *Client) Info(ctx context.Context) (map[string]interface{}, error) {
	var result map[string]interface{}
	if err := c.request(ctx, http.MethodGet, "/info", nil, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// CreateTask 创建下载任务，返回任务 id
func (c *Client) CreateTask(ctx context.Context, params *CreateTaskParams) (string, error) {
	var taskID string
	if err := c.request(ctx, http.MethodPost, "/tasks", nil, params, &taskID); err != nil {
		return "", err
	}
	return taskID, nil
}

// GetTask 查询任务状态与进度
func (c *Client) GetTask(ctx context.Context, taskID string) (*Task, error) {
	var task Task
	if err := c.request(ctx, http.MethodGet, "/tasks/"+taskID, nil, nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// PauseTask 暂停任务
func (c *Client) PauseTask(ctx context.Context, taskID string) error {
	return c.request(ctx, http.MethodPut, "/tasks/"+taskID+"/pause", nil, nil, nil)
}

// ContinueTask 恢复任务
func (c *Client) ContinueTask(ctx context.Context, taskID string) error {
	return c.request(ctx, http.MethodPut, "/tasks/"+taskID+"/continue", nil, nil, nil)
}

// DeleteTask 删除任务，force 时连同已下载的文件一起删除
func (c *Client) DeleteTask(ctx context.Context, taskID string, force bool) error {
	query := url.Values{}
	if force {
		query.Set("force", "true")
	}
	return c.request(ctx, http.MethodDelete, "/tasks/"+taskID, query, nil, nil)
}
