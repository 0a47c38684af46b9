package model

import "time"

// Setting 键值设置项（API token、保存目录等）
type Setting struct {
	Id         int64     `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Key        string    `json:"key" gorm:"column:key;size:100;uniqueIndex;not null"`
	Value      string    `json:"value" gorm:"column:value;type:text"`
	CreateTime time.Time `json:"create_time" gorm:"column:gmt_create;autoCreateTime"`
	UpdateTime time.Time `json:"update_time" gorm:"column:gmt_modified;autoUpdateTime"`
}

func (Setting) TableName() string {
	return "setting"
}

// 设置项 key 常量
const (
	SettingKeyApiToken = "civitai.apiToken"
	SettingKeySaveRoot = "storage.saveRoot"
)
