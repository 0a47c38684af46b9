package v1

import "civistash/pkg/civitai"

// 模型镜像浏览相关 API 定义

// ListModelsRequest 模型列表查询请求（透传上游查询参数）
type ListModelsRequest struct {
	Limit    int    `form:"limit" example:"20"`
	Page     int    `form:"page" example:"1"`
	Query    string `form:"query" example:"landscape"`
	Tag      string `form:"tag" example:"style"`
	Username string `form:"username" example:"alice"`
	Types    string `form:"types" example:"Checkpoint"`
	Sort     string `form:"sort" example:"Most Downloaded"`
	Period   string `form:"period" example:"AllTime"`
	Nsfw     bool   `form:"nsfw" example:"false"`
	Cursor   string `form:"cursor"`
}

// ListModelsResponse 模型列表响应
type ListModelsResponse struct {
	Response
	Data civitai.ModelListResponse `json:"data"`
}

// GetModelResponse 模型详情响应
type GetModelResponse struct {
	Response
	Data civitai.Model `json:"data"`
}

// LibraryModelItem 本地库中的模型快照项
type LibraryModelItem struct {
	ModelID     int    `json:"modelId"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	CreatorName string `json:"creatorName"`
	VersionID   int    `json:"versionId"`
	VersionName string `json:"versionName"`
	BaseModel   string `json:"baseModel"`
	SyncedAt    string `json:"syncedAt"`
}

// ListLibraryRequest 本地库分页查询请求
type ListLibraryRequest struct {
	Page     int    `form:"page" example:"1"`
	PageSize int    `form:"page_size" example:"20"`
	Query    string `form:"query"`
}

// ListLibraryResponseData 本地库分页查询响应
type ListLibraryResponseData struct {
	Total int64              `json:"total"`
	List  []LibraryModelItem `json:"list"`
}

type ListLibraryResponse struct {
	Response
	Data ListLibraryResponseData
}
