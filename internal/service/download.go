package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"path"
	"path/filepath"

	v1 "civistash/api/v1"
	"civistash/internal/model"
	"civistash/internal/repository"
	"civistash/pkg/civitai"
	"civistash/pkg/hash"
	"civistash/pkg/log"

	"go.uber.org/zap"
)

type DownloadService interface {
	// StartDownload 发起一次下载会话：健康检查 → 直链解析 → 快照落库 → 批量建任务
	StartDownload(ctx context.Context, req *v1.StartDownloadRequest) (*v1.StartDownloadResponseData, error)
}

func NewDownloadService(
	service *Service,
	gateway GatewayService,
	taskService DownloadTaskService,
	modelRepo repository.CivitaiModelRepository,
	versionRepo repository.ModelVersionRepository,
	fileRepo repository.ModelFileRepository,
	imageRepo repository.ModelImageRepository,
	logger *log.Logger,
) DownloadService {
	return &downloadService{
		gateway:     gateway,
		taskService: taskService,
		modelRepo:   modelRepo,
		versionRepo: versionRepo,
		fileRepo:    fileRepo,
		imageRepo:   imageRepo,
		Service:     service,
		logger:      logger,
	}
}

type downloadService struct {
	gateway     GatewayService
	taskService DownloadTaskService
	modelRepo   repository.CivitaiModelRepository
	versionRepo repository.ModelVersionRepository
	fileRepo    repository.ModelFileRepository
	imageRepo   repository.ModelImageRepository
	*Service
	logger *log.Logger
}

// resolvedFile 直链解析结果，全部解析成功后才会进入建任务阶段
type resolvedFile struct {
	file civitai.ModelFile
	url  string
}

func (s *downloadService) StartDownload(ctx context.Context, req *v1.StartDownloadRequest) (*v1.StartDownloadResponseData, error) {
	// 下载器不可用时直接失败，不做任何落库
	downloader, err := s.gateway.DownloaderClient(ctx)
	if err != nil {
		return nil, err
	}
	if _, err = downloader.Info(ctx); err != nil {
		s.logger.WithContext(ctx).Error("download manager unreachable", zap.Error(err))
		return nil, v1.ErrDownloaderUnavailable
	}

	var version *civitai.ModelVersion
	for i := range req.Model.ModelVersions {
		if req.Model.ModelVersions[i].ID == req.ModelVersionID {
			version = &req.Model.ModelVersions[i]
			break
		}
	}
	if version == nil {
		return nil, v1.ErrVersionNotFound
	}

	// 全量解析直链，任何一个失败整个会话失败（不留半成品任务）
	civitaiClient, err := s.gateway.CivitaiClient(ctx)
	if err != nil {
		return nil, err
	}
	resolved := make([]resolvedFile, 0, len(version.Files))
	for _, f := range version.Files {
		if f.DownloadUrl == "" {
			continue
		}
		finalURL, err := civitaiClient.ResolveDownloadURL(ctx, f.DownloadUrl, "")
		if err != nil {
			s.logger.WithContext(ctx).Error("failed to resolve download url",
				zap.Error(err),
				zap.Int("fileId", f.ID),
				zap.String("url", f.DownloadUrl))
			if errors.Is(err, civitai.ErrUnauthorized) {
				return nil, v1.ErrResolveUnauthorized
			}
			return nil, v1.ErrResolveFailed
		}
		resolved = append(resolved, resolvedFile{file: f, url: finalURL})
	}

	saveDir := s.versionSaveDir(ctx, &req.Model, version)
	if err = s.persistSnapshot(ctx, &req.Model, version, resolved, saveDir); err != nil {
		s.logger.WithContext(ctx).Error("failed to persist model snapshot", zap.Error(err), zap.Int("modelId", req.Model.ID))
		return nil, v1.ErrInternalServerError
	}

	// 建任务阶段尽力而为：重复/已完成的资源跳过，失败的资源不回滚已建任务
	// 注册表写入在任务创建成功后由本层完成
	result := &v1.StartDownloadResponseData{
		FileTaskIds:  make([]string, 0, len(resolved)),
		MediaTaskIds: make([]string, 0, len(version.Images)),
	}
	var createErr error
	for _, rf := range resolved {
		taskID, err := s.taskService.CreateTask(ctx, &TaskSpec{
			ResourceID: rf.file.ID,
			IsMedia:    false,
			Name:       rf.file.Name,
			SavePath:   saveDir,
			Url:        rf.url,
		})
		if err != nil {
			if errors.Is(err, v1.ErrTaskDuplicate) || errors.Is(err, v1.ErrTaskAlreadyFinished) {
				s.logger.WithContext(ctx).Info("skip file task", zap.Int("fileId", rf.file.ID), zap.Error(err))
				continue
			}
			s.logger.WithContext(ctx).Warn("failed to create file task", zap.Int("fileId", rf.file.ID), zap.Error(err))
			createErr = err
			continue
		}
		if err = s.fileRepo.RecordCreated(ctx, rf.file.ID, taskID); err != nil {
			s.logger.WithContext(ctx).Error("failed to record created file task", zap.Error(err), zap.String("taskId", taskID))
		}
		result.FileTaskIds = append(result.FileTaskIds, taskID)
	}
	mediaDir := filepath.Join(saveDir, "media")
	for _, img := range version.Images {
		if img.URL == "" {
			continue
		}
		taskID, err := s.taskService.CreateTask(ctx, &TaskSpec{
			ResourceID: img.ID,
			IsMedia:    true,
			Name:       mediaFileName(img),
			SavePath:   mediaDir,
			Url:        img.URL,
		})
		if err != nil {
			if errors.Is(err, v1.ErrTaskDuplicate) || errors.Is(err, v1.ErrTaskAlreadyFinished) {
				s.logger.WithContext(ctx).Info("skip media task", zap.Int("imageId", img.ID), zap.Error(err))
				continue
			}
			s.logger.WithContext(ctx).Warn("failed to create media task", zap.Int("imageId", img.ID), zap.Error(err))
			createErr = err
			continue
		}
		if err = s.imageRepo.RecordCreated(ctx, img.ID, taskID); err != nil {
			s.logger.WithContext(ctx).Error("failed to record created media task", zap.Error(err), zap.String("taskId", taskID))
		}
		result.MediaTaskIds = append(result.MediaTaskIds, taskID)
	}

	// 全部创建都失败时整个会话按失败处理；只要有任务建成就算部分成功
	if createErr != nil && len(result.FileTaskIds)+len(result.MediaTaskIds) == 0 {
		return nil, createErr
	}

	s.logger.WithContext(ctx).Info("download session started",
		zap.Int("modelId", req.Model.ID),
		zap.Int("versionId", version.ID),
		zap.Int("fileTasks", len(result.FileTaskIds)),
		zap.Int("mediaTasks", len(result.MediaTaskIds)))
	return result, nil
}

// versionSaveDir 版本落盘目录：<saveRoot>/<模型类型>/<模型名>/<版本名>
func (s *downloadService) versionSaveDir(ctx context.Context, m *civitai.Model, version *civitai.ModelVersion) string {
	return filepath.Join(
		s.gateway.SaveRoot(ctx),
		sanitizePathSegment(m.Type),
		sanitizePathSegment(m.Name),
		sanitizePathSegment(version.Name),
	)
}

// persistSnapshot 把模型/版本快照与资源注册表记录写入数据库（单事务）
func (s *downloadService) persistSnapshot(ctx context.Context, m *civitai.Model, version *civitai.ModelVersion, resolved []resolvedFile, saveDir string) error {
	return s.tm.Transaction(ctx, func(ctx context.Context) error {
		modelMeta, err := json.Marshal(m)
		if err != nil {
			return err
		}
		modelSnapshot := &model.CivitaiModel{
			ModelID:     m.ID,
			Name:        m.Name,
			Type:        m.Type,
			CreatorName: m.Creator.Username,
			Nsfw:        m.Nsfw,
			Metadata:    string(modelMeta),
		}
		if modelSnapshot.SnapshotHash, err = hash.CalculateSnapshotHash(modelSnapshot); err != nil {
			return err
		}
		if err = s.modelRepo.Upsert(ctx, modelSnapshot); err != nil {
			return err
		}

		versionMeta, err := json.Marshal(version)
		if err != nil {
			return err
		}
		versionSnapshot := &model.ModelVersion{
			VersionID: version.ID,
			ModelID:   m.ID,
			Name:      version.Name,
			BaseModel: version.BaseModel,
			Metadata:  string(versionMeta),
		}
		if versionSnapshot.SnapshotHash, err = hash.CalculateSnapshotHash(versionSnapshot); err != nil {
			return err
		}
		if err = s.versionRepo.Upsert(ctx, versionSnapshot); err != nil {
			return err
		}

		for _, rf := range resolved {
			err = s.fileRepo.Upsert(ctx, &model.ModelFile{
				FileID:    rf.file.ID,
				VersionID: version.ID,
				Name:      rf.file.Name,
				SavePath:  saveDir,
				Url:       rf.url,
				SizeKB:    rf.file.SizeKB,
			})
			if err != nil {
				return err
			}
		}
		mediaDir := filepath.Join(saveDir, "media")
		for _, img := range version.Images {
			if img.URL == "" {
				continue
			}
			err = s.imageRepo.Upsert(ctx, &model.ModelImage{
				ImageID:   img.ID,
				VersionID: version.ID,
				Name:      mediaFileName(img),
				SavePath:  mediaDir,
				Url:       img.URL,
				Width:     img.Width,
				Height:    img.Height,
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// mediaFileName 从预览图 URL 提取文件名，取不到时用 id 兜底
func mediaFileName(img civitai.ModelImage) string {
	if u, err := url.Parse(img.URL); err == nil {
		if name := path.Base(u.Path); name != "" && name != "." && name != "/" {
			return sanitizePathSegment(name)
		}
	}
	return fmt.Sprintf("%d.jpeg", img.ID)
}

// sanitizePathSegment 过滤路径段里的分隔符和空白，避免落盘目录逃逸
func sanitizePathSegment(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			out = append(out, '_')
		default:
			out = append(out, r)
		}
	}
	result := string(out)
	if result == "" || result == "." || result == ".." {
		return "_"
	}
	return result
}
