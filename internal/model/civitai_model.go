package model

import "time"

// CivitaiModel 上游模型元数据快照（发起下载时写入，供离线查看）
type CivitaiModel struct {
	Id          int64  `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	ModelID     int    `json:"model_id" gorm:"column:model_id;uniqueIndex;not null"`
	Name        string `json:"name" gorm:"column:name;size:500;not null"`
	Type        string `json:"type" gorm:"column:type;size:50"`
	CreatorName string `json:"creator_name" gorm:"column:creator_name;size:100;index"`
	Nsfw        bool   `json:"nsfw" gorm:"column:nsfw;default:false"`

	// 原始元数据 JSON（完整保留，便于前端直接渲染）
	Metadata string `json:"metadata" gorm:"column:metadata;type:text"`

	// 快照哈希：上游数据未变化时跳过重写
	SnapshotHash string `json:"snapshot_hash" gorm:"column:snapshot_hash;size:64"`

	LastSyncedAt time.Time `json:"last_synced_at" gorm:"column:last_synced_at"`
	CreateTime   time.Time `json:"create_time" gorm:"column:gmt_create;autoCreateTime"`
	UpdateTime   time.Time `json:"update_time" gorm:"column:gmt_modified;autoUpdateTime"`
}

func (CivitaiModel) TableName() string {
	return "civitai_model"
}
