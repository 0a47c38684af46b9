package service

import (
	"context"

	v1 "civistash/api/v1"
	"civistash/internal/model"
	"civistash/internal/repository"
	"civistash/pkg/civitai"
	"civistash/pkg/gopeed"
	"civistash/pkg/log"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// GatewayService 构建上游 Civitai 客户端与下载器客户端
// API token 与保存目录优先取数据库设置项，库里没有时回退到配置文件
type GatewayService interface {
	CivitaiClient(ctx context.Context) (*civitai.Client, error)
	DownloaderClient(ctx context.Context) (*gopeed.Client, error)
	SaveRoot(ctx context.Context) string
}

func NewGatewayService(
	service *Service,
	conf *viper.Viper,
	settingRepo repository.SettingRepository,
	logger *log.Logger,
) GatewayService {
	return &gatewayService{
		conf:        conf,
		settingRepo: settingRepo,
		Service:     service,
		logger:      logger,
	}
}

type gatewayService struct {
	conf        *viper.Viper
	settingRepo repository.SettingRepository
	*Service
	logger *log.Logger
}

func (s *gatewayService) settingOr(ctx context.Context, key, confKey string) string {
	setting, err := s.settingRepo.Get(ctx, key)
	if err != nil {
		s.logger.WithContext(ctx).Warn("failed to load setting", zap.Error(err), zap.String("key", key))
	}
	if setting != nil && setting.Value != "" {
		return setting.Value
	}
	return s.conf.GetString(confKey)
}

func (s *gatewayService) CivitaiClient(ctx context.Context) (*civitai.Client, error) {
	token := s.settingOr(ctx, model.SettingKeyApiToken, "civitai.apiToken")
	client, err := civitai.NewClient(s.conf.GetString("civitai.apiUrl"), token)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to create civitai client", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	return client, nil
}

func (s *gatewayService) DownloaderClient(ctx context.Context) (*gopeed.Client, error) {
	client, err := gopeed.NewClient(
		s.conf.GetString("downloader.apiUrl"),
		s.conf.GetString("downloader.apiToken"),
	)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to create downloader client", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	return client, nil
}

func (s *gatewayService) SaveRoot(ctx context.Context) string {
	return s.settingOr(ctx, model.SettingKeySaveRoot, "storage.saveRoot")
}
