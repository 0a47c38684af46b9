package job

import (
	"context"
	"errors"
	"sync/atomic"

	"civistash/internal/repository"
	"civistash/internal/service"
	"civistash/pkg/gopeed"
	"civistash/pkg/log"

	"go.uber.org/zap"
)

// TaskReconcileJob 周期对账：把注册表里进行中的任务与下载器侧实际状态对齐
//   - done                  → 记完成
//   - error / 任务丢失 / 状态查询失败 → 清空 task_id，资源回到可重建状态
//   - ready/running         → 重写一遍 created 记录（自愈）
//   - pause                 → 保持不变
type TaskReconcileJob interface {
	Reconcile(ctx context.Context) error
}

func NewTaskReconcileJob(
	job *Job,
	gateway service.GatewayService,
	fileRepo repository.ModelFileRepository,
	imageRepo repository.ModelImageRepository,
	logger *log.Logger,
) TaskReconcileJob {
	return &taskReconcileJob{
		gateway:   gateway,
		fileRepo:  fileRepo,
		imageRepo: imageRepo,
		Job:       job,
		logger:    logger,
	}
}

type taskReconcileJob struct {
	gateway   service.GatewayService
	fileRepo  repository.ModelFileRepository
	imageRepo repository.ModelImageRepository
	*Job
	logger *log.Logger

	inProgress atomic.Bool
}

func (j *taskReconcileJob) Reconcile(ctx context.Context) error {
	// 上一轮还没跑完时跳过本轮，避免并发对账
	if !j.inProgress.CompareAndSwap(false, true) {
		j.logger.WithContext(ctx).Warn("task reconcile still in progress, skip this round")
		return nil
	}
	defer j.inProgress.Store(false)

	client, err := j.gateway.DownloaderClient(ctx)
	if err != nil {
		return err
	}
	// 下载器不可用时整轮跳过，保持注册表现状
	if _, err = client.Info(ctx); err != nil {
		j.logger.WithContext(ctx).Warn("download manager unreachable, skip reconcile", zap.Error(err))
		return nil
	}

	files, err := j.fileRepo.ListActive(ctx)
	if err != nil {
		j.logger.WithContext(ctx).Error("failed to list active file tasks", zap.Error(err))
		return err
	}
	for _, f := range files {
		if f.TaskID == nil {
			continue
		}
		j.reconcileOne(ctx, client, *f.TaskID, f.FileID, false)
	}

	images, err := j.imageRepo.ListActive(ctx)
	if err != nil {
		j.logger.WithContext(ctx).Error("failed to list active media tasks", zap.Error(err))
		return err
	}
	for _, img := range images {
		if img.TaskID == nil {
			continue
		}
		j.reconcileOne(ctx, client, *img.TaskID, img.ImageID, true)
	}

	return nil
}

// reconcileOne 对单个资源对账，错误只记日志不中断整轮
func (j *taskReconcileJob) reconcileOne(ctx context.Context, client *gopeed.Client, taskID string, resourceID int, isMedia bool) {
	task, err := client.GetTask(ctx, taskID)
	if err != nil {
		if errors.Is(err, gopeed.ErrTaskNotFound) {
			// 任务在下载器侧已经消失，清空 task_id 允许重建
			j.logger.WithContext(ctx).Info("task lost on downloader, reset registry",
				zap.String("taskId", taskID),
				zap.Int("resourceId", resourceID),
				zap.Bool("isMedia", isMedia))
			j.recordFailed(ctx, resourceID, isMedia)
			return
		}
		// 状态查不到按失败处理，清空 task_id 让资源可以重试
		j.logger.WithContext(ctx).Warn("failed to query task status, reset registry",
			zap.Error(err),
			zap.String("taskId", taskID),
			zap.Int("resourceId", resourceID))
		j.recordFailed(ctx, resourceID, isMedia)
		return
	}

	switch task.Status {
	case gopeed.TaskStatusDone:
		j.recordFinished(ctx, resourceID, isMedia)
	case gopeed.TaskStatusError:
		// 失败任务先从下载器删掉再重置注册表，防止残留任务占着 id
		if err = client.DeleteTask(ctx, taskID, false); err != nil && !errors.Is(err, gopeed.ErrTaskNotFound) {
			j.logger.WithContext(ctx).Warn("failed to delete errored task", zap.Error(err), zap.String("taskId", taskID))
		}
		j.recordFailed(ctx, resourceID, isMedia)
	case gopeed.TaskStatusReady, gopeed.TaskStatusRunning:
		j.recordCreated(ctx, resourceID, isMedia, taskID)
	case gopeed.TaskStatusPause:
		// 暂停由用户控制，对账不干预
	default:
		j.logger.WithContext(ctx).Warn("unknown task status, skip",
			zap.String("status", task.Status),
			zap.String("taskId", taskID))
	}
}

// recordCreated 进行中的任务重写一遍 created 记录，修复被外部改动过的注册表行
func (j *taskReconcileJob) recordCreated(ctx context.Context, resourceID int, isMedia bool, taskID string) {
	var err error
	if isMedia {
		err = j.imageRepo.RecordCreated(ctx, resourceID, taskID)
	} else {
		err = j.fileRepo.RecordCreated(ctx, resourceID, taskID)
	}
	if err != nil {
		j.logger.WithContext(ctx).Error("failed to re-affirm created task", zap.Error(err), zap.Int("resourceId", resourceID))
	}
}

func (j *taskReconcileJob) recordFinished(ctx context.Context, resourceID int, isMedia bool) {
	var err error
	if isMedia {
		err = j.imageRepo.RecordFinished(ctx, resourceID)
	} else {
		err = j.fileRepo.RecordFinished(ctx, resourceID)
	}
	if err != nil {
		j.logger.WithContext(ctx).Error("failed to record finished task", zap.Error(err), zap.Int("resourceId", resourceID))
		return
	}
	j.logger.WithContext(ctx).Info("task reconciled as finished", zap.Int("resourceId", resourceID), zap.Bool("isMedia", isMedia))
}

func (j *taskReconcileJob) recordFailed(ctx context.Context, resourceID int, isMedia bool) {
	var err error
	if isMedia {
		err = j.imageRepo.RecordFailed(ctx, resourceID)
	} else {
		err = j.fileRepo.RecordFailed(ctx, resourceID)
	}
	if err != nil {
		j.logger.WithContext(ctx).Error("failed to reset task registry", zap.Error(err), zap.Int("resourceId", resourceID))
	}
}
