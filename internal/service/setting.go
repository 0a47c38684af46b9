package service

import (
	"context"

	v1 "civistash/api/v1"
	"civistash/internal/repository"
	"civistash/pkg/log"

	"go.uber.org/zap"
)

// 敏感设置项在列表里打码返回
var maskedSettingKeys = map[string]bool{
	"civitai.apiToken": true,
}

type SettingService interface {
	ListSettings(ctx context.Context) ([]v1.SettingItem, error)
	UpdateSetting(ctx context.Context, req *v1.UpdateSettingRequest) error
}

func NewSettingService(
	service *Service,
	settingRepo repository.SettingRepository,
	logger *log.Logger,
) SettingService {
	return &settingService{
		settingRepo: settingRepo,
		Service:     service,
		logger:      logger,
	}
}

type settingService struct {
	settingRepo repository.SettingRepository
	*Service
	logger *log.Logger
}

func (s *settingService) ListSettings(ctx context.Context) ([]v1.SettingItem, error) {
	settings, err := s.settingRepo.List(ctx)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to list settings", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}

	items := make([]v1.SettingItem, 0, len(settings))
	for _, setting := range settings {
		value := setting.Value
		if maskedSettingKeys[setting.Key] && value != "" {
			value = "******"
		}
		items = append(items, v1.SettingItem{
			Key:   setting.Key,
			Value: value,
		})
	}
	return items, nil
}

func (s *settingService) UpdateSetting(ctx context.Context, req *v1.UpdateSettingRequest) error {
	if err := s.settingRepo.Set(ctx, req.Key, req.Value); err != nil {
		s.logger.WithContext(ctx).Error("failed to update setting", zap.Error(err), zap.String("key", req.Key))
		return v1.ErrInternalServerError
	}
	return nil
}
