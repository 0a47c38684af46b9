package v1

import "civistash/pkg/civitai"

// 下载编排与任务管理相关 API 定义

// StartDownloadRequest 发起下载会话请求
type StartDownloadRequest struct {
	Model          civitai.Model `json:"model" binding:"required"`
	ModelVersionID int           `json:"modelVersionId" binding:"required" example:"130072"`
}

// StartDownloadResponseData 发起下载会话响应：两类任务 id 列表
// 两个列表都为空也是合法的成功结果（所有文件都已在本地）
type StartDownloadResponseData struct {
	FileTaskIds  []string `json:"fileTaskIds"`
	MediaTaskIds []string `json:"mediaTaskIds"`
}

type StartDownloadResponse struct {
	Response
	Data StartDownloadResponseData
}

// GetTaskStatusRequest 查询单个资源的任务状态
type GetTaskStatusRequest struct {
	ResourceID int  `form:"resource_id" binding:"required" example:"150123"`
	IsMedia    bool `form:"is_media" example:"false"`
}

// TaskStatusData 任务状态响应
type TaskStatusData struct {
	ResourceID int    `json:"resourceId"`
	IsMedia    bool   `json:"isMedia"`
	State      string `json:"state"`
	TaskID     string `json:"taskId,omitempty"`
}

type GetTaskStatusResponse struct {
	Response
	Data TaskStatusData
}

// TaskOpRequest 任务操作请求（暂停/恢复/删除）
type TaskOpRequest struct {
	TaskID string `json:"taskId" binding:"required" example:"7a3f"`
	Force  bool   `json:"force" example:"false"`
}

// FinishTaskRequest 完成并清理任务请求
type FinishTaskRequest struct {
	TaskID     string `json:"taskId" binding:"required" example:"7a3f"`
	ResourceID int    `json:"resourceId" binding:"required" example:"150123"`
	IsMedia    bool   `json:"isMedia" example:"false"`
	Force      bool   `json:"force" example:"false"`
}

// TaskProgressFrame 任务进度推送帧（WebSocket）
type TaskProgressFrame struct {
	TaskID     string `json:"taskId"`
	Status     string `json:"status"`
	Downloaded int64  `json:"downloaded"`
	Size       int64  `json:"size"`
	Speed      int64  `json:"speed"`
}
