package model

import "time"

// ModelVersion 模型版本元数据快照
type ModelVersion struct {
	Id        int64  `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	VersionID int    `json:"version_id" gorm:"column:version_id;uniqueIndex;not null"`
	ModelID   int    `json:"model_id" gorm:"column:model_id;not null;index"`
	Name      string `json:"name" gorm:"column:name;size:500;not null"`
	BaseModel string `json:"base_model" gorm:"column:base_model;size:100"`

	Metadata     string `json:"metadata" gorm:"column:metadata;type:text"`
	SnapshotHash string `json:"snapshot_hash" gorm:"column:snapshot_hash;size:64"`

	LastSyncedAt time.Time `json:"last_synced_at" gorm:"column:last_synced_at"`
	CreateTime   time.Time `json:"create_time" gorm:"column:gmt_create;autoCreateTime"`
	UpdateTime   time.Time `json:"update_time" gorm:"column:gmt_modified;autoUpdateTime"`
}

func (ModelVersion) TableName() string {
	return "model_version"
}
