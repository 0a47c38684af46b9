package handler

import (
	"encoding/json"
	"net/http"
	"time"

	v1 "civistash/api/v1"
	"civistash/internal/service"
	"civistash/pkg/gopeed"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type DownloadHandler struct {
	*Handler
	downloadService service.DownloadService
	taskService     service.DownloadTaskService
	gateway         service.GatewayService
}

func NewDownloadHandler(
	handler *Handler,
	downloadService service.DownloadService,
	taskService service.DownloadTaskService,
	gateway service.GatewayService,
) *DownloadHandler {
	return &DownloadHandler{
		Handler:         handler,
		downloadService: downloadService,
		taskService:     taskService,
		gateway:         gateway,
	}
}

// downloadErrorStatus 下载编排业务错误对应的 HTTP 状态码
func downloadErrorStatus(err error) int {
	switch err {
	case v1.ErrResolveUnauthorized, v1.ErrUpstreamUnauthorized:
		return http.StatusUnauthorized
	case v1.ErrTaskDuplicate, v1.ErrTaskAlreadyFinished:
		return http.StatusConflict
	case v1.ErrInvalidTaskSpec, v1.ErrBadRequest:
		return http.StatusBadRequest
	case v1.ErrTaskRecordNotFound, v1.ErrVersionNotFound, v1.ErrNotFound:
		return http.StatusNotFound
	case v1.ErrDownloaderUnavailable:
		return http.StatusServiceUnavailable
	case v1.ErrResolveFailed, v1.ErrDownloaderApi:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// StartDownload godoc
// @Summary 发起下载会话
// @Schemes
// @Description 解析版本内全部文件直链并批量创建下载任务
// @Tags 下载模块
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body v1.StartDownloadRequest true "params"
// @Success 200 {object} v1.StartDownloadResponse
// @Router /api/v1/downloads [post]
func (h *DownloadHandler) StartDownload(ctx *gin.Context) {
	var req v1.StartDownloadRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}

	result, err := h.downloadService.StartDownload(ctx, &req)
	if err != nil {
		h.logger.WithContext(ctx).Error("downloadService.StartDownload error", zap.Error(err))
		v1.HandleError(ctx, downloadErrorStatus(err), err, nil)
		return
	}

	v1.HandleSuccess(ctx, result)
}

// GetTaskStatus godoc
// @Summary 查询资源任务状态
// @Schemes
// @Description 由注册表记录推导任务生命周期状态
// @Tags 下载模块
// @Accept json
// @Produce json
// @Security Bearer
// @Param resource_id query int true "资源ID（文件或预览图）"
// @Param is_media query bool false "是否预览图资源"
// @Success 200 {object} v1.GetTaskStatusResponse
// @Router /api/v1/downloads/status [get]
func (h *DownloadHandler) GetTaskStatus(ctx *gin.Context) {
	req := new(v1.GetTaskStatusRequest)
	if err := ctx.ShouldBindQuery(req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}

	result, err := h.taskService.GetTaskStatus(ctx, req.ResourceID, req.IsMedia)
	if err != nil {
		h.logger.WithContext(ctx).Error("taskService.GetTaskStatus error", zap.Error(err))
		v1.HandleError(ctx, downloadErrorStatus(err), err, nil)
		return
	}

	v1.HandleSuccess(ctx, result)
}

// PauseTask godoc
// @Summary 暂停下载任务
// @Tags 下载模块
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body v1.TaskOpRequest true "params"
// @Success 200 {object} v1.Response
// @Router /api/v1/downloads/pause [post]
func (h *DownloadHandler) PauseTask(ctx *gin.Context) {
	var req v1.TaskOpRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}

	if err := h.taskService.PauseTask(ctx, req.TaskID); err != nil {
		h.logger.WithContext(ctx).Error("taskService.PauseTask error", zap.Error(err), zap.String("taskId", req.TaskID))
		v1.HandleError(ctx, downloadErrorStatus(err), err, nil)
		return
	}

	v1.HandleSuccess(ctx, nil)
}

// ResumeTask godoc
// @Summary 恢复下载任务
// @Tags 下载模块
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body v1.TaskOpRequest true "params"
// @Success 200 {object} v1.Response
// @Router /api/v1/downloads/resume [post]
func (h *DownloadHandler) ResumeTask(ctx *gin.Context) {
	var req v1.TaskOpRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}

	if err := h.taskService.ResumeTask(ctx, req.TaskID); err != nil {
		h.logger.WithContext(ctx).Error("taskService.ResumeTask error", zap.Error(err), zap.String("taskId", req.TaskID))
		v1.HandleError(ctx, downloadErrorStatus(err), err, nil)
		return
	}

	v1.HandleSuccess(ctx, nil)
}

// DeleteTask godoc
// @Summary 删除下载任务
// @Schemes
// @Description 删除下载器侧任务并把资源重置为可重建状态
// @Tags 下载模块
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body v1.TaskOpRequest true "params"
// @Success 200 {object} v1.Response
// @Router /api/v1/downloads/delete [post]
func (h *DownloadHandler) DeleteTask(ctx *gin.Context) {
	var req v1.TaskOpRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}

	if err := h.taskService.DeleteTask(ctx, req.TaskID, req.Force); err != nil {
		h.logger.WithContext(ctx).Error("taskService.DeleteTask error", zap.Error(err), zap.String("taskId", req.TaskID))
		v1.HandleError(ctx, downloadErrorStatus(err), err, nil)
		return
	}

	v1.HandleSuccess(ctx, nil)
}

// FinishTask godoc
// @Summary 完成并清理下载任务
// @Schemes
// @Description 清理下载器侧任务记录并把资源记为已完成已清理
// @Tags 下载模块
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body v1.FinishTaskRequest true "params"
// @Success 200 {object} v1.Response
// @Router /api/v1/downloads/finish [post]
func (h *DownloadHandler) FinishTask(ctx *gin.Context) {
	var req v1.FinishTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}

	if err := h.taskService.FinishAndCleanTask(ctx, &req); err != nil {
		h.logger.WithContext(ctx).Error("taskService.FinishAndCleanTask error", zap.Error(err), zap.String("taskId", req.TaskID))
		v1.HandleError(ctx, downloadErrorStatus(err), err, nil)
		return
	}

	v1.HandleSuccess(ctx, nil)
}

// TaskProgress godoc
// @Summary 任务进度推送
// @Schemes
// @Description WS 长连接，按秒推送任务进度帧，任务终态后关闭
// @Tags 下载模块
// @Security Bearer
// @Param task_id query string true "任务ID"
// @Router /api/v1/downloads/progress [get]
func (h *DownloadHandler) TaskProgress(ctx *gin.Context) {
	taskID := ctx.Query("task_id")
	if taskID == "" {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}
	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	client, err := h.gateway.DownloaderClient(ctx)
	if err != nil {
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "downloader unavailable"))
		return
	}

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Request.Context().Done():
			return
		case <-ticker.C:
			task, err := client.GetTask(ctx, taskID)
			if err != nil {
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "task not found"))
				return
			}
			frame := v1.TaskProgressFrame{
				TaskID:     task.ID,
				Status:     task.Status,
				Downloaded: task.Progress.Downloaded,
				Size:       task.Size,
				Speed:      task.Progress.Speed,
			}
			raw, err := json.Marshal(frame)
			if err != nil {
				return
			}
			if err = conn.WriteMessage(websocket.TextMessage, raw); err != nil {
				return
			}
			if task.Status == gopeed.TaskStatusDone || task.Status == gopeed.TaskStatusError {
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "task reached terminal status"))
				return
			}
		}
	}
}
