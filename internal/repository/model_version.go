package repository

import (
	"context"
	"time"

	"civistash/internal/model"

	"gorm.io/gorm"
)

type ModelVersionRepository interface {
	GetByVersionID(ctx context.Context, versionID int) (*model.ModelVersion, error)
	ListByModelID(ctx context.Context, modelID int) ([]*model.ModelVersion, error)
	Upsert(ctx context.Context, v *model.ModelVersion) error
}

func NewModelVersionRepository(
	r *Repository,
) ModelVersionRepository {
	return &modelVersionRepository{
		Repository: r,
	}
}

type modelVersionRepository struct {
	*Repository
}

func (r *modelVersionRepository) GetByVersionID(ctx context.Context, versionID int) (*model.ModelVersion, error) {
	var v model.ModelVersion
	err := r.DB(ctx).Where("version_id = ?", versionID).First(&v).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *modelVersionRepository) ListByModelID(ctx context.Context, modelID int) ([]*model.ModelVersion, error) {
	var versions []*model.ModelVersion
	err := r.DB(ctx).Where("model_id = ?", modelID).Order("version_id DESC").Find(&versions).Error
	if err != nil {
		return nil, err
	}
	return versions, nil
}

// Upsert 按 version_id 创建或更新版本快照，与模型快照相同的哈希比较策略
func (r *modelVersionRepository) Upsert(ctx context.Context, v *model.ModelVersion) error {
	existing, err := r.GetByVersionID(ctx, v.VersionID)
	if err != nil {
		return err
	}
	now := time.Now()
	if existing == nil {
		v.LastSyncedAt = now
		return r.DB(ctx).Create(v).Error
	}
	if existing.SnapshotHash == v.SnapshotHash {
		return r.DB(ctx).Model(&model.ModelVersion{}).
			Where("version_id = ?", v.VersionID).
			Update("last_synced_at", now).Error
	}
	return r.DB(ctx).Model(&model.ModelVersion{}).
		Where("version_id = ?", v.VersionID).
		Updates(map[string]interface{}{
			"model_id":       v.ModelID,
			"name":           v.Name,
			"base_model":     v.BaseModel,
			"metadata":       v.Metadata,
			"snapshot_hash":  v.SnapshotHash,
			"last_synced_at": now,
		}).Error
}
