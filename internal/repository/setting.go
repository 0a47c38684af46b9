package repository

import (
	"context"

	"civistash/internal/model"

	"gorm.io/gorm"
)

type SettingRepository interface {
	Get(ctx context.Context, key string) (*model.Setting, error)
	Set(ctx context.Context, key, value string) error
	List(ctx context.Context) ([]*model.Setting, error)
}

func NewSettingRepository(
	r *Repository,
) SettingRepository {
	return &settingRepository{
		Repository: r,
	}
}

type settingRepository struct {
	*Repository
}

func (r *settingRepository) Get(ctx context.Context, key string) (*model.Setting, error) {
	var s model.Setting
	err := r.DB(ctx).Where("`key` = ?", key).First(&s).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *settingRepository) Set(ctx context.Context, key, value string) error {
	existing, err := r.Get(ctx, key)
	if err != nil {
		return err
	}
	if existing == nil {
		return r.DB(ctx).Create(&model.Setting{Key: key, Value: value}).Error
	}
	return r.DB(ctx).Model(&model.Setting{}).
		Where("`key` = ?", key).
		Update("value", value).Error
}

func (r *settingRepository) List(ctx context.Context) ([]*model.Setting, error) {
	var settings []*model.Setting
	err := r.DB(ctx).Order("`key` ASC").Find(&settings).Error
	if err != nil {
		return nil, err
	}
	return settings, nil
}
