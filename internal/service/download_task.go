package service

import (
	"context"
	"errors"
	"path/filepath"

	v1 "civistash/api/v1"
	"civistash/internal/model"
	"civistash/internal/repository"
	"civistash/pkg/gopeed"
	"civistash/pkg/log"

	"github.com/duke-git/lancet/v2/fileutil"
	"go.uber.org/zap"
)

// TaskSpec 一次传输任务的完整描述：资源身份 + 已解析直链 + 落盘位置
type TaskSpec struct {
	ResourceID int
	IsMedia    bool
	Name       string
	SavePath   string
	Url        string
}

type DownloadTaskService interface {
	// CreateTask 创建传输任务，按顺序执行参数校验、落盘去重、注册表去重
	// 只返回下载器生成的任务 id，注册表写入由调用方完成
	CreateTask(ctx context.Context, spec *TaskSpec) (string, error)
	PauseTask(ctx context.Context, taskID string) error
	ResumeTask(ctx context.Context, taskID string) error
	// DeleteTask 从下载器删除任务并清空注册表 task_id，资源回到可重建状态
	DeleteTask(ctx context.Context, taskID string, force bool) error
	// FinishAndCleanTask 确认下载完成并清理下载器侧任务记录
	FinishAndCleanTask(ctx context.Context, req *v1.FinishTaskRequest) error
	GetTaskStatus(ctx context.Context, resourceID int, isMedia bool) (*v1.TaskStatusData, error)
}

func NewDownloadTaskService(
	service *Service,
	gateway GatewayService,
	fileRepo repository.ModelFileRepository,
	imageRepo repository.ModelImageRepository,
	logger *log.Logger,
) DownloadTaskService {
	return &downloadTaskService{
		gateway:   gateway,
		fileRepo:  fileRepo,
		imageRepo: imageRepo,
		Service:   service,
		logger:    logger,
	}
}

type downloadTaskService struct {
	gateway   GatewayService
	fileRepo  repository.ModelFileRepository
	imageRepo repository.ModelImageRepository
	*Service
	logger *log.Logger
}

// registryRecord 统一两类资源的注册表读写入口
type registryRecord struct {
	taskID   *string
	finished bool
	deleted  bool
}

func (s *downloadTaskService) getRecord(ctx context.Context, resourceID int, isMedia bool) (*registryRecord, error) {
	if isMedia {
		img, err := s.imageRepo.GetByImageID(ctx, resourceID)
		if err != nil {
			return nil, err
		}
		if img == nil {
			return nil, nil
		}
		return &registryRecord{taskID: img.TaskID, finished: img.Finished, deleted: img.Deleted}, nil
	}
	f, err := s.fileRepo.GetByFileID(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, nil
	}
	return &registryRecord{taskID: f.TaskID, finished: f.Finished, deleted: f.Deleted}, nil
}

func (s *downloadTaskService) CreateTask(ctx context.Context, spec *TaskSpec) (string, error) {
	if spec.SavePath == "" || spec.Name == "" {
		return "", v1.ErrInvalidTaskSpec
	}

	// 目标文件已经在磁盘上，视为已完成，不再重复下载
	target := filepath.Join(spec.SavePath, spec.Name)
	if fileutil.IsExist(target) {
		s.logger.WithContext(ctx).Info("destination file already exists, skip task creation",
			zap.String("file", target),
			zap.Int("resourceId", spec.ResourceID))
		return "", v1.ErrTaskAlreadyFinished
	}

	record, err := s.getRecord(ctx, spec.ResourceID, spec.IsMedia)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to query task registry", zap.Error(err), zap.Int("resourceId", spec.ResourceID))
		return "", v1.ErrInternalServerError
	}
	// 没有记录等同于 failed 状态，允许首次创建
	if record != nil {
		switch model.DeriveTaskState(record.taskID, record.finished, record.deleted) {
		case model.TaskStateCreated:
			return "", v1.ErrTaskDuplicate
		case model.TaskStateFinished, model.TaskStateCleaned:
			return "", v1.ErrTaskAlreadyFinished
		}
	}

	client, err := s.gateway.DownloaderClient(ctx)
	if err != nil {
		return "", err
	}
	taskID, err := client.CreateTask(ctx, &gopeed.CreateTaskParams{
		Request: gopeed.TaskRequest{URL: spec.Url},
		Options: gopeed.TaskOptions{Name: spec.Name, Path: spec.SavePath},
	})
	if err != nil {
		s.logger.WithContext(ctx).Error("downloader rejected task creation",
			zap.Error(err),
			zap.Int("resourceId", spec.ResourceID),
			zap.Bool("isMedia", spec.IsMedia))
		return "", v1.ErrDownloaderApi
	}

	s.logger.WithContext(ctx).Info("download task created",
		zap.String("taskId", taskID),
		zap.Int("resourceId", spec.ResourceID),
		zap.Bool("isMedia", spec.IsMedia))
	return taskID, nil
}

func (s *downloadTaskService) PauseTask(ctx context.Context, taskID string) error {
	client, err := s.gateway.DownloaderClient(ctx)
	if err != nil {
		return err
	}
	if err = client.PauseTask(ctx, taskID); err != nil {
		s.logger.WithContext(ctx).Error("failed to pause task", zap.Error(err), zap.String("taskId", taskID))
		return v1.ErrDownloaderApi
	}
	return nil
}

func (s *downloadTaskService) ResumeTask(ctx context.Context, taskID string) error {
	client, err := s.gateway.DownloaderClient(ctx)
	if err != nil {
		return err
	}
	if err = client.ContinueTask(ctx, taskID); err != nil {
		s.logger.WithContext(ctx).Error("failed to resume task", zap.Error(err), zap.String("taskId", taskID))
		return v1.ErrDownloaderApi
	}
	return nil
}

func (s *downloadTaskService) DeleteTask(ctx context.Context, taskID string, force bool) error {
	client, err := s.gateway.DownloaderClient(ctx)
	if err != nil {
		return err
	}
	// 下载器里任务已经不存在时照常清理注册表
	if err = client.DeleteTask(ctx, taskID, force); err != nil && !errors.Is(err, gopeed.ErrTaskNotFound) {
		s.logger.WithContext(ctx).Error("failed to delete task", zap.Error(err), zap.String("taskId", taskID))
		return v1.ErrDownloaderApi
	}
	return s.clearRegistryByTaskID(ctx, taskID)
}

// clearRegistryByTaskID 把 task_id 对应的注册表记录重置为可重建状态
func (s *downloadTaskService) clearRegistryByTaskID(ctx context.Context, taskID string) error {
	f, err := s.fileRepo.GetByTaskID(ctx, taskID)
	if err != nil {
		return v1.ErrInternalServerError
	}
	if f != nil {
		if err = s.fileRepo.RecordFailed(ctx, f.FileID); err != nil {
			return v1.ErrInternalServerError
		}
		return nil
	}
	img, err := s.imageRepo.GetByTaskID(ctx, taskID)
	if err != nil {
		return v1.ErrInternalServerError
	}
	if img != nil {
		if err = s.imageRepo.RecordFailed(ctx, img.ImageID); err != nil {
			return v1.ErrInternalServerError
		}
	}
	return nil
}

func (s *downloadTaskService) FinishAndCleanTask(ctx context.Context, req *v1.FinishTaskRequest) error {
	client, err := s.gateway.DownloaderClient(ctx)
	if err != nil {
		return err
	}
	if err = client.DeleteTask(ctx, req.TaskID, req.Force); err != nil && !errors.Is(err, gopeed.ErrTaskNotFound) {
		s.logger.WithContext(ctx).Error("failed to clean task", zap.Error(err), zap.String("taskId", req.TaskID))
		return v1.ErrDownloaderApi
	}

	// finished 与 deleted 一并置位，清理过的任务必然已完成
	if req.IsMedia {
		err = s.imageRepo.RecordCleaned(ctx, req.ResourceID)
	} else {
		err = s.fileRepo.RecordCleaned(ctx, req.ResourceID)
	}
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to record cleaned task", zap.Error(err), zap.Int("resourceId", req.ResourceID))
		return v1.ErrInternalServerError
	}

	s.logger.WithContext(ctx).Info("download task finished and cleaned",
		zap.String("taskId", req.TaskID),
		zap.Int("resourceId", req.ResourceID),
		zap.Bool("isMedia", req.IsMedia))
	return nil
}

func (s *downloadTaskService) GetTaskStatus(ctx context.Context, resourceID int, isMedia bool) (*v1.TaskStatusData, error) {
	record, err := s.getRecord(ctx, resourceID, isMedia)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to query task registry", zap.Error(err), zap.Int("resourceId", resourceID))
		return nil, v1.ErrInternalServerError
	}
	if record == nil {
		return nil, v1.ErrTaskRecordNotFound
	}

	data := &v1.TaskStatusData{
		ResourceID: resourceID,
		IsMedia:    isMedia,
		State:      model.DeriveTaskState(record.taskID, record.finished, record.deleted),
	}
	if record.taskID != nil {
		data.TaskID = *record.taskID
	}
	return data, nil
}
