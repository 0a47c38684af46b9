package handler

import (
	"net/http"
	"strconv"

	v1 "civistash/api/v1"
	"civistash/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ModelHandler struct {
	*Handler
	modelService service.ModelService
}

func NewModelHandler(handler *Handler, modelService service.ModelService) *ModelHandler {
	return &ModelHandler{
		Handler:      handler,
		modelService: modelService,
	}
}

// mirrorErrorStatus 镜像相关业务错误对应的 HTTP 状态码
func mirrorErrorStatus(err error) int {
	switch err {
	case v1.ErrUpstreamUnauthorized:
		return http.StatusUnauthorized
	case v1.ErrModelNotFound, v1.ErrVersionNotFound:
		return http.StatusNotFound
	case v1.ErrUpstreamFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ListModels godoc
// @Summary 浏览上游模型列表
// @Schemes
// @Description 透传 Civitai 查询参数，带短 TTL 缓存
// @Tags 模型镜像模块
// @Accept json
// @Produce json
// @Security Bearer
// @Param query query string false "搜索关键字"
// @Param limit query int false "每页数量"
// @Param page query int false "页码"
// @Success 200 {object} v1.ListModelsResponse
// @Router /api/v1/models [get]
func (h *ModelHandler) ListModels(ctx *gin.Context) {
	req := new(v1.ListModelsRequest)
	if err := ctx.ShouldBindQuery(req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}

	result, err := h.modelService.ListModels(ctx, req)
	if err != nil {
		h.logger.WithContext(ctx).Error("modelService.ListModels error", zap.Error(err))
		v1.HandleError(ctx, mirrorErrorStatus(err), err, nil)
		return
	}

	v1.HandleSuccess(ctx, result)
}

// GetModel godoc
// @Summary 获取模型详情
// @Schemes
// @Description
// @Tags 模型镜像模块
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "模型ID"
// @Success 200 {object} v1.GetModelResponse
// @Router /api/v1/models/{id} [get]
func (h *ModelHandler) GetModel(ctx *gin.Context) {
	modelID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || modelID <= 0 {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}

	result, err := h.modelService.GetModel(ctx, modelID)
	if err != nil {
		h.logger.WithContext(ctx).Error("modelService.GetModel error", zap.Error(err), zap.Int("modelId", modelID))
		v1.HandleError(ctx, mirrorErrorStatus(err), err, nil)
		return
	}

	v1.HandleSuccess(ctx, result)
}

// ListLibrary godoc
// @Summary 浏览本地模型库
// @Schemes
// @Description 已下载模型的快照列表
// @Tags 模型镜像模块
// @Accept json
// @Produce json
// @Security Bearer
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Param query query string false "名称模糊搜索"
// @Success 200 {object} v1.ListLibraryResponse
// @Router /api/v1/library [get]
func (h *ModelHandler) ListLibrary(ctx *gin.Context) {
	req := new(v1.ListLibraryRequest)
	if err := ctx.ShouldBindQuery(req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}

	result, err := h.modelService.ListLibrary(ctx, req)
	if err != nil {
		h.logger.WithContext(ctx).Error("modelService.ListLibrary error", zap.Error(err))
		v1.HandleError(ctx, http.StatusInternalServerError, err, nil)
		return
	}

	v1.HandleSuccess(ctx, result)
}
