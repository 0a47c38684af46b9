package handler

import (
	"net/http"

	v1 "civistash/api/v1"
	"civistash/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SettingHandler struct {
	*Handler
	settingService service.SettingService
}

func NewSettingHandler(handler *Handler, settingService service.SettingService) *SettingHandler {
	return &SettingHandler{
		Handler:        handler,
		settingService: settingService,
	}
}

// ListSettings godoc
// @Summary 获取设置列表
// @Schemes
// @Description 敏感项（API token）打码返回
// @Tags 设置模块
// @Accept json
// @Produce json
// @Security Bearer
// @Success 200 {object} v1.ListSettingsResponse
// @Router /api/v1/settings [get]
func (h *SettingHandler) ListSettings(ctx *gin.Context) {
	items, err := h.settingService.ListSettings(ctx)
	if err != nil {
		h.logger.WithContext(ctx).Error("settingService.ListSettings error", zap.Error(err))
		v1.HandleError(ctx, http.StatusInternalServerError, err, nil)
		return
	}

	v1.HandleSuccess(ctx, items)
}

// UpdateSetting godoc
// @Summary 更新设置项
// @Schemes
// @Description
// @Tags 设置模块
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body v1.UpdateSettingRequest true "params"
// @Success 200 {object} v1.Response
// @Router /api/v1/settings [put]
func (h *SettingHandler) UpdateSetting(ctx *gin.Context) {
	var req v1.UpdateSettingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}

	if err := h.settingService.UpdateSetting(ctx, &req); err != nil {
		h.logger.WithContext(ctx).Error("settingService.UpdateSetting error", zap.Error(err))
		v1.HandleError(ctx, http.StatusInternalServerError, err, nil)
		return
	}

	v1.HandleSuccess(ctx, nil)
}
