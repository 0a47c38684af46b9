package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	v1 "civistash/api/v1"
	"civistash/internal/repository"
	"civistash/pkg/civitai"
	"civistash/pkg/log"

	"go.uber.org/zap"
)

const mirrorCacheTTL = 5 * time.Minute

type ModelService interface {
	ListModels(ctx context.Context, req *v1.ListModelsRequest) (*civitai.ModelListResponse, error)
	GetModel(ctx context.Context, modelID int) (*civitai.Model, error)
	ListLibrary(ctx context.Context, req *v1.ListLibraryRequest) (*v1.ListLibraryResponseData, error)
}

func NewModelService(
	service *Service,
	gateway GatewayService,
	repo *repository.Repository,
	modelRepo repository.CivitaiModelRepository,
	versionRepo repository.ModelVersionRepository,
	logger *log.Logger,
) ModelService {
	return &modelService{
		gateway:     gateway,
		repo:        repo,
		modelRepo:   modelRepo,
		versionRepo: versionRepo,
		Service:     service,
		logger:      logger,
	}
}

type modelService struct {
	gateway     GatewayService
	repo        *repository.Repository
	modelRepo   repository.CivitaiModelRepository
	versionRepo repository.ModelVersionRepository
	*Service
	logger *log.Logger
}

// mapUpstreamError 把上游客户端错误换算成业务错误码
func mapUpstreamError(err error, notFound error) error {
	if errors.Is(err, civitai.ErrUnauthorized) {
		return v1.ErrUpstreamUnauthorized
	}
	if errors.Is(err, civitai.ErrNotFound) {
		return notFound
	}
	return v1.ErrUpstreamFailed
}

func (s *modelService) ListModels(ctx context.Context, req *v1.ListModelsRequest) (*civitai.ModelListResponse, error) {
	cacheKey := listModelsCacheKey(req)
	if cached := s.repo.CacheGet(ctx, cacheKey); cached != "" {
		var result civitai.ModelListResponse
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return &result, nil
		}
	}

	client, err := s.gateway.CivitaiClient(ctx)
	if err != nil {
		return nil, err
	}

	params := civitai.QueryParams{
		Limit:    req.Limit,
		Page:     req.Page,
		Query:    req.Query,
		Tag:      req.Tag,
		Username: req.Username,
		Sort:     req.Sort,
		Period:   req.Period,
		Nsfw:     req.Nsfw,
		Cursor:   req.Cursor,
	}
	if req.Types != "" {
		params.Types = strings.Split(req.Types, ",")
	}

	result, err := client.GetModels(ctx, params)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to list models from upstream", zap.Error(err))
		return nil, mapUpstreamError(err, v1.ErrModelNotFound)
	}

	if raw, err := json.Marshal(result); err == nil {
		s.repo.CacheSet(ctx, cacheKey, string(raw), mirrorCacheTTL)
	}
	return result, nil
}

func (s *modelService) GetModel(ctx context.Context, modelID int) (*civitai.Model, error) {
	cacheKey := fmt.Sprintf("mirror:model:%d", modelID)
	if cached := s.repo.CacheGet(ctx, cacheKey); cached != "" {
		var result civitai.Model
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return &result, nil
		}
	}

	client, err := s.gateway.CivitaiClient(ctx)
	if err != nil {
		return nil, err
	}

	result, err := client.GetModel(ctx, modelID)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to get model from upstream", zap.Error(err), zap.Int("modelId", modelID))
		return nil, mapUpstreamError(err, v1.ErrModelNotFound)
	}

	if raw, err := json.Marshal(result); err == nil {
		s.repo.CacheSet(ctx, cacheKey, string(raw), mirrorCacheTTL)
	}
	return result, nil
}

func (s *modelService) ListLibrary(ctx context.Context, req *v1.ListLibraryRequest) (*v1.ListLibraryResponseData, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	models, total, err := s.modelRepo.List(ctx, req.Query, (page-1)*pageSize, pageSize)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to list library models", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}

	list := make([]v1.LibraryModelItem, 0, len(models))
	for _, m := range models {
		versions, err := s.versionRepo.ListByModelID(ctx, m.ModelID)
		if err != nil {
			s.logger.WithContext(ctx).Error("failed to list model versions", zap.Error(err), zap.Int("modelId", m.ModelID))
			return nil, v1.ErrInternalServerError
		}
		if len(versions) == 0 {
			list = append(list, v1.LibraryModelItem{
				ModelID:     m.ModelID,
				Name:        m.Name,
				Type:        m.Type,
				CreatorName: m.CreatorName,
				SyncedAt:    m.LastSyncedAt.Format(time.RFC3339),
			})
			continue
		}
		for _, v := range versions {
			list = append(list, v1.LibraryModelItem{
				ModelID:     m.ModelID,
				Name:        m.Name,
				Type:        m.Type,
				CreatorName: m.CreatorName,
				VersionID:   v.VersionID,
				VersionName: v.Name,
				BaseModel:   v.BaseModel,
				SyncedAt:    v.LastSyncedAt.Format(time.RFC3339),
			})
		}
	}

	return &v1.ListLibraryResponseData{
		Total: total,
		List:  list,
	}, nil
}

func listModelsCacheKey(req *v1.ListModelsRequest) string {
	values := url.Values{}
	values.Set("limit", fmt.Sprintf("%d", req.Limit))
	values.Set("page", fmt.Sprintf("%d", req.Page))
	values.Set("query", req.Query)
	values.Set("tag", req.Tag)
	values.Set("username", req.Username)
	values.Set("types", req.Types)
	values.Set("sort", req.Sort)
	values.Set("period", req.Period)
	values.Set("nsfw", fmt.Sprintf("%t", req.Nsfw))
	values.Set("cursor", req.Cursor)
	return "mirror:models:" + values.Encode()
}
