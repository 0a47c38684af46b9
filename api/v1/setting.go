package v1

// 设置项相关 API 定义

// SettingItem 单个设置项
type SettingItem struct {
	Key   string `json:"key" example:"civitai.apiToken"`
	Value string `json:"value"`
}

// ListSettingsResponse 设置列表响应
type ListSettingsResponse struct {
	Response
	Data []SettingItem `json:"data"`
}

// UpdateSettingRequest 更新设置请求
type UpdateSettingRequest struct {
	Key   string `json:"key" binding:"required" example:"civitai.apiToken"`
	Value string `json:"value" example:"xxxx"`
}
