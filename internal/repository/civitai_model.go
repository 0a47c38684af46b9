package repository

import (
	"context"
	"time"

	"civistash/internal/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CivitaiModelRepository interface {
	GetByModelID(ctx context.Context, modelID int) (*model.CivitaiModel, error)
	Upsert(ctx context.Context, m *model.CivitaiModel) error
	List(ctx context.Context, keyword string, offset, limit int) ([]*model.CivitaiModel, int64, error)
}

func NewCivitaiModelRepository(
	r *Repository,
) CivitaiModelRepository {
	return &civitaiModelRepository{
		Repository: r,
	}
}

type civitaiModelRepository struct {
	*Repository
}

func (r *civitaiModelRepository) GetByModelID(ctx context.Context, modelID int) (*model.CivitaiModel, error) {
	var m model.CivitaiModel
	err := r.DB(ctx).Where("model_id = ?", modelID).First(&m).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Upsert 按 model_id 创建或更新快照，哈希未变化时只刷新同步时间
func (r *civitaiModelRepository) Upsert(ctx context.Context, m *model.CivitaiModel) error {
	existing, err := r.GetByModelID(ctx, m.ModelID)
	if err != nil {
		return err
	}
	now := time.Now()
	if existing == nil {
		m.LastSyncedAt = now
		return r.DB(ctx).Create(m).Error
	}
	if existing.SnapshotHash == m.SnapshotHash {
		return r.DB(ctx).Model(&model.CivitaiModel{}).
			Where("model_id = ?", m.ModelID).
			Update("last_synced_at", now).Error
	}
	r.logger.WithContext(ctx).Info("model snapshot changed",
		zap.Int("modelId", m.ModelID),
		zap.String("oldHash", existing.SnapshotHash),
		zap.String("newHash", m.SnapshotHash))
	return r.DB(ctx).Model(&model.CivitaiModel{}).
		Where("model_id = ?", m.ModelID).
		Updates(map[string]interface{}{
			"name":           m.Name,
			"type":           m.Type,
			"creator_name":   m.CreatorName,
			"nsfw":           m.Nsfw,
			"metadata":       m.Metadata,
			"snapshot_hash":  m.SnapshotHash,
			"last_synced_at": now,
		}).Error
}

func (r *civitaiModelRepository) List(ctx context.Context, keyword string, offset, limit int) ([]*model.CivitaiModel, int64, error) {
	var (
		items []*model.CivitaiModel
		total int64
	)
	query := r.DB(ctx).Model(&model.CivitaiModel{})
	if keyword != "" {
		query = query.Where("name LIKE ?", "%"+keyword+"%")
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("last_synced_at DESC").Offset(offset).Limit(limit).Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
