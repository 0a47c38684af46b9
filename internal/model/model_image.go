package model

import "time"

// ModelImage 模型版本预览图及其下载任务跟踪记录
// 任务跟踪字段与 ModelFile 完全一致，但两类资源各自独立建表
type ModelImage struct {
	Id        int64  `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	ImageID   int    `json:"image_id" gorm:"column:image_id;uniqueIndex;not null"`
	VersionID int    `json:"version_id" gorm:"column:version_id;not null;index"`
	Name      string `json:"name" gorm:"column:name;size:500;not null"`
	SavePath  string `json:"save_path" gorm:"column:save_path;size:500;not null"`
	Url       string `json:"url" gorm:"column:url;size:1000;not null"`
	Width     int    `json:"width" gorm:"column:width;default:0"`
	Height    int    `json:"height" gorm:"column:height;default:0"`

	TaskID   *string `json:"task_id" gorm:"column:task_id;size:100"`
	Finished bool    `json:"finished" gorm:"column:finished;default:false"`
	Deleted  bool    `json:"deleted" gorm:"column:deleted;default:false"`

	CreateTime time.Time `json:"create_time" gorm:"column:gmt_create;autoCreateTime"`
	UpdateTime time.Time `json:"update_time" gorm:"column:gmt_modified;autoUpdateTime"`
}

func (ModelImage) TableName() string {
	return "model_image"
}
