package repository

import (
	"context"

	"civistash/internal/model"

	"gorm.io/gorm"
)

type ModelImageRepository interface {
	GetByImageID(ctx context.Context, imageID int) (*model.ModelImage, error)
	GetByTaskID(ctx context.Context, taskID string) (*model.ModelImage, error)
	ListByVersionID(ctx context.Context, versionID int) ([]*model.ModelImage, error)
	ListActive(ctx context.Context) ([]*model.ModelImage, error)
	Upsert(ctx context.Context, img *model.ModelImage) error
	RecordCreated(ctx context.Context, imageID int, taskID string) error
	RecordFailed(ctx context.Context, imageID int) error
	RecordFinished(ctx context.Context, imageID int) error
	RecordCleaned(ctx context.Context, imageID int) error
}

func NewModelImageRepository(
	r *Repository,
) ModelImageRepository {
	return &modelImageRepository{
		Repository: r,
	}
}

type modelImageRepository struct {
	*Repository
}

func (r *modelImageRepository) GetByImageID(ctx context.Context, imageID int) (*model.ModelImage, error) {
	var img model.ModelImage
	err := r.DB(ctx).Where("image_id = ?", imageID).First(&img).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *modelImageRepository) GetByTaskID(ctx context.Context, taskID string) (*model.ModelImage, error) {
	var img model.ModelImage
	err := r.DB(ctx).Where("task_id = ?", taskID).First(&img).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *modelImageRepository) ListByVersionID(ctx context.Context, versionID int) ([]*model.ModelImage, error) {
	var images []*model.ModelImage
	err := r.DB(ctx).Where("version_id = ?", versionID).Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (r *modelImageRepository) ListActive(ctx context.Context) ([]*model.ModelImage, error) {
	var images []*model.ModelImage
	err := r.DB(ctx).
		Where("task_id IS NOT NULL AND finished = ? AND deleted = ?", false, false).
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

// Upsert 创建或刷新预览图元数据，不触碰任务跟踪三元组
func (r *modelImageRepository) Upsert(ctx context.Context, img *model.ModelImage) error {
	existing, err := r.GetByImageID(ctx, img.ImageID)
	if err != nil {
		return err
	}
	if existing == nil {
		return r.DB(ctx).Create(img).Error
	}
	return r.DB(ctx).Model(&model.ModelImage{}).
		Where("image_id = ?", img.ImageID).
		Updates(map[string]interface{}{
			"version_id": img.VersionID,
			"name":       img.Name,
			"save_path":  img.SavePath,
			"url":        img.Url,
			"width":      img.Width,
			"height":     img.Height,
		}).Error
}

func (r *modelImageRepository) RecordCreated(ctx context.Context, imageID int, taskID string) error {
	return r.DB(ctx).Model(&model.ModelImage{}).
		Where("image_id = ?", imageID).
		Updates(map[string]interface{}{
			"task_id":  taskID,
			"finished": false,
			"deleted":  false,
		}).Error
}

func (r *modelImageRepository) RecordFailed(ctx context.Context, imageID int) error {
	return r.DB(ctx).Model(&model.ModelImage{}).
		Where("image_id = ?", imageID).
		Updates(map[string]interface{}{
			"task_id":  nil,
			"finished": false,
			"deleted":  false,
		}).Error
}

func (r *modelImageRepository) RecordFinished(ctx context.Context, imageID int) error {
	return r.DB(ctx).Model(&model.ModelImage{}).
		Where("image_id = ?", imageID).
		Updates(map[string]interface{}{
			"finished": true,
			"deleted":  false,
		}).Error
}

func (r *modelImageRepository) RecordCleaned(ctx context.Context, imageID int) error {
	return r.DB(ctx).Model(&model.ModelImage{}).
		Where("image_id = ?", imageID).
		Updates(map[string]interface{}{
			"finished": true,
			"deleted":  true,
		}).Error
}
