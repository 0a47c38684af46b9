package repository

import (
	"context"

	"civistash/internal/model"

	"gorm.io/gorm"
)

type ModelFileRepository interface {
	GetByFileID(ctx context.Context, fileID int) (*model.ModelFile, error)
	GetByTaskID(ctx context.Context, taskID string) (*model.ModelFile, error)
	ListByVersionID(ctx context.Context, versionID int) ([]*model.ModelFile, error)
	// ListActive 返回存在下载任务且未完成的记录，供对账轮询使用
	ListActive(ctx context.Context) ([]*model.ModelFile, error)
	Upsert(ctx context.Context, f *model.ModelFile) error
	RecordCreated(ctx context.Context, fileID int, taskID string) error
	RecordFailed(ctx context.Context, fileID int) error
	RecordFinished(ctx context.Context, fileID int) error
	RecordCleaned(ctx context.Context, fileID int) error
}

func NewModelFileRepository(
	r *Repository,
) ModelFileRepository {
	return &modelFileRepository{
		Repository: r,
	}
}

type modelFileRepository struct {
	*Repository
}

func (r *modelFileRepository) GetByFileID(ctx context.Context, fileID int) (*model.ModelFile, error) {
	var f model.ModelFile
	err := r.DB(ctx).Where("file_id = ?", fileID).First(&f).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *modelFileRepository) GetByTaskID(ctx context.Context, taskID string) (*model.ModelFile, error) {
	var f model.ModelFile
	err := r.DB(ctx).Where("task_id = ?", taskID).First(&f).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *modelFileRepository) ListByVersionID(ctx context.Context, versionID int) ([]*model.ModelFile, error) {
	var files []*model.ModelFile
	err := r.DB(ctx).Where("version_id = ?", versionID).Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (r *modelFileRepository) ListActive(ctx context.Context) ([]*model.ModelFile, error) {
	var files []*model.ModelFile
	err := r.DB(ctx).
		Where("task_id IS NOT NULL AND finished = ? AND deleted = ?", false, false).
		Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}

// Upsert 创建或刷新文件元数据，不触碰任务跟踪三元组
func (r *modelFileRepository) Upsert(ctx context.Context, f *model.ModelFile) error {
	existing, err := r.GetByFileID(ctx, f.FileID)
	if err != nil {
		return err
	}
	if existing == nil {
		return r.DB(ctx).Create(f).Error
	}
	return r.DB(ctx).Model(&model.ModelFile{}).
		Where("file_id = ?", f.FileID).
		Updates(map[string]interface{}{
			"version_id": f.VersionID,
			"name":       f.Name,
			"save_path":  f.SavePath,
			"url":        f.Url,
			"size_kb":    f.SizeKB,
		}).Error
}

// RecordCreated 任务创建成功，写入完整状态三元组
func (r *modelFileRepository) RecordCreated(ctx context.Context, fileID int, taskID string) error {
	return r.DB(ctx).Model(&model.ModelFile{}).
		Where("file_id = ?", fileID).
		Updates(map[string]interface{}{
			"task_id":  taskID,
			"finished": false,
			"deleted":  false,
		}).Error
}

// RecordFailed 任务失败或被下载器删除，清空 task_id 以允许重建
func (r *modelFileRepository) RecordFailed(ctx context.Context, fileID int) error {
	return r.DB(ctx).Model(&model.ModelFile{}).
		Where("file_id = ?", fileID).
		Updates(map[string]interface{}{
			"task_id":  nil,
			"finished": false,
			"deleted":  false,
		}).Error
}

func (r *modelFileRepository) RecordFinished(ctx context.Context, fileID int) error {
	return r.DB(ctx).Model(&model.ModelFile{}).
		Where("file_id = ?", fileID).
		Updates(map[string]interface{}{
			"finished": true,
			"deleted":  false,
		}).Error
}

// RecordCleaned 下载器侧任务已清理，finished 同步置位保证 deleted ⇒ finished
func (r *modelFileRepository) RecordCleaned(ctx context.Context, fileID int) error {
	return r.DB(ctx).Model(&model.ModelFile{}).
		Where("file_id = ?", fileID).
		Updates(map[string]interface{}{
			"finished": true,
			"deleted":  true,
		}).Error
}
